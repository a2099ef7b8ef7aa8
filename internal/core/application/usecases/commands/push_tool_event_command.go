package commands

import (
	"errors"
	"strings"

	"hangerflow/internal/core/domain/model/kernel"
	"hangerflow/internal/pkg/guard"
)

var ErrPushToolEventCommandIsNotConstructed = errors.New(
	"PushToolEventCommand must be created via NewPushToolEventCommand constructor",
)

// PushToolEventCommand carries shop tool telemetry. Only the assignment id is
// checked; the payload is stored as given.
type PushToolEventCommand struct { //nolint:recvcheck //using for validation
	actor        string
	assignmentID kernel.UUID
	station      string
	toolID       string
	event        string
	value        *string
	guard        guard.ConstructorGuard
}

func NewPushToolEventCommand(actor, assignmentID, station, toolID, event string, value *string) (PushToolEventCommand, error) {
	id, err := kernel.UUIDFromString(assignmentID)
	if err != nil {
		return PushToolEventCommand{}, err
	}
	return PushToolEventCommand{
		actor:        strings.TrimSpace(actor),
		assignmentID: id,
		station:      station,
		toolID:       toolID,
		event:        event,
		value:        value,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c PushToolEventCommand) Validate() error {
	return c.guard.Validate(ErrPushToolEventCommandIsNotConstructed)
}

func (c PushToolEventCommand) Actor() string             { return c.actor }
func (c PushToolEventCommand) AssignmentID() kernel.UUID { return c.assignmentID }
func (c PushToolEventCommand) Station() string           { return c.station }
func (c PushToolEventCommand) ToolID() string            { return c.toolID }
func (c PushToolEventCommand) Event() string             { return c.event }
func (c PushToolEventCommand) Value() *string            { return c.value }
