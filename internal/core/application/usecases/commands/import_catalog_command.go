package commands

import (
	"errors"
	"strings"

	"hangerflow/internal/core/domain/model/hanger"
	"hangerflow/internal/core/domain/model/inventory"
	"hangerflow/internal/core/domain/model/team"
	"hangerflow/internal/pkg/guard"
)

var ErrImportCatalogCommandIsNotConstructed = errors.New(
	"ImportCatalogCommand must be created via NewImportCatalogCommand constructor",
)

// ImportCatalogCommand carries already-built catalog entities.
type ImportCatalogCommand struct { //nolint:recvcheck //using for validation
	actor   string
	hangers []*hanger.Hanger
	teams   []*team.Team
	items   []*inventory.Item
	guard   guard.ConstructorGuard
}

func NewImportCatalogCommand(
	actor string,
	hangers []*hanger.Hanger,
	teams []*team.Team,
	items []*inventory.Item,
) (ImportCatalogCommand, error) {
	var errList []error
	for _, h := range hangers {
		errList = append(errList, h.Validate())
	}
	for _, t := range teams {
		errList = append(errList, t.Validate())
	}
	for _, i := range items {
		errList = append(errList, i.Validate())
	}
	if err := errors.Join(errList...); err != nil {
		return ImportCatalogCommand{}, err
	}

	return ImportCatalogCommand{
		actor:   strings.TrimSpace(actor),
		hangers: hangers,
		teams:   teams,
		items:   items,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c ImportCatalogCommand) Validate() error {
	return c.guard.Validate(ErrImportCatalogCommandIsNotConstructed)
}

func (c ImportCatalogCommand) Actor() string             { return c.actor }
func (c ImportCatalogCommand) Hangers() []*hanger.Hanger { return c.hangers }
func (c ImportCatalogCommand) Teams() []*team.Team       { return c.teams }
func (c ImportCatalogCommand) Items() []*inventory.Item  { return c.items }
