package http

import (
	"fmt"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ActorHeader carries the name recorded as the audit actor.
const ActorHeader = "X-Actor"

func actor(c echo.Context) string {
	return strings.TrimSpace(c.Request().Header.Get(ActorHeader))
}

// pathParam binds a required simple-style path parameter.
func pathParam(c echo.Context, name string) (string, error) {
	var value string
	err := runtime.BindStyledParameterWithOptions("simple", name, c.Param(name), &value,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return "", badRequest(fmt.Errorf("invalid format for parameter %s: %w", name, err))
	}
	return value, nil
}

// queryParam binds an optional form-style query parameter. It returns nil
// when the parameter is absent.
func queryParam[T any](c echo.Context, name string) (*T, error) {
	var value *T
	if err := runtime.BindQueryParameter("form", true, false, name, c.QueryParams(), &value); err != nil {
		return nil, badRequest(fmt.Errorf("invalid format for parameter %s: %w", name, err))
	}
	return value, nil
}

func valueOr[T any](p *T, fallback T) T {
	if p == nil {
		return fallback
	}
	return *p
}

func bindBody(c echo.Context, dest any) error {
	if err := c.Bind(dest); err != nil {
		return badRequest(fmt.Errorf("invalid request body: %w", err))
	}
	return nil
}
