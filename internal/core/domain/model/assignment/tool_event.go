package assignment

import (
	"strings"
	"time"
)

// ToolEvent is a telemetry entry pushed by a shop tool (saw, torque wrench,
// scanner). The engine records it as given.
type ToolEvent struct {
	Station string    `json:"station"`
	ToolID  string    `json:"toolId"`
	Event   string    `json:"event"`
	Value   *string   `json:"value,omitempty"`
	At      time.Time `json:"at"`
}

func NewToolEvent(station, toolID, event string, value *string, at time.Time) ToolEvent {
	return ToolEvent{
		Station: strings.TrimSpace(station),
		ToolID:  strings.TrimSpace(toolID),
		Event:   strings.TrimSpace(event),
		Value:   value,
		At:      at.UTC(),
	}
}
