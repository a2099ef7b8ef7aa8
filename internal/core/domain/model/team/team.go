// Package team models a shop crew: its roster, the stations it can run and
// its daily-hours capacity.
package team

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"hangerflow/internal/core/domain/model/kernel"
	"hangerflow/internal/pkg/errs"
)

// ErrTeamIsNotConstructed is returned when a Team was not created through NewTeam.
var ErrTeamIsNotConstructed = errors.New("Team must be created via NewTeam constructor")

type Team struct {
	id            kernel.Code
	name          string
	members       []string
	stations      []string
	dailyHours    kernel.Quantity
	isConstructed bool
}

// NewTeam creates a crew. Member and station lists are trimmed and
// de-duplicated, keeping first occurrence order.
func NewTeam(id kernel.Code, name string, members, stations []string, dailyHours kernel.Quantity) (*Team, error) {
	if err := id.Validate(); err != nil {
		return nil, fmt.Errorf("team id: %w", err)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errs.NewValueIsRequiredError("team name")
	}
	return &Team{
		id:            id,
		name:          name,
		members:       normalize(members),
		stations:      normalize(stations),
		dailyHours:    dailyHours,
		isConstructed: true,
	}, nil
}

func (t *Team) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTeamIsNotConstructed
	}
	return nil
}

func (t *Team) ID() kernel.Code             { return t.id }
func (t *Team) Name() string                { return t.name }
func (t *Team) Members() []string           { return slices.Clone(t.members) }
func (t *Team) Stations() []string          { return slices.Clone(t.stations) }
func (t *Team) DailyHours() kernel.Quantity { return t.dailyHours }

// CanRun reports whether the crew lists station among its capabilities.
// A crew with no stations listed is treated as general purpose.
func (t *Team) CanRun(station string) bool {
	if len(t.stations) == 0 {
		return true
	}
	return slices.ContainsFunc(t.stations, func(s string) bool {
		return strings.EqualFold(s, station)
	})
}

// Snapshot is the serializable state of a Team.
type Snapshot struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Members    []string        `json:"members"`
	Stations   []string        `json:"stations"`
	DailyHours kernel.Quantity `json:"dailyHours"`
}

func (t *Team) Snapshot() Snapshot {
	return Snapshot{
		ID:         t.id.String(),
		Name:       t.name,
		Members:    t.Members(),
		Stations:   t.Stations(),
		DailyHours: t.dailyHours,
	}
}

func Restore(s Snapshot) (*Team, error) {
	id, err := kernel.NewCode(s.ID)
	if err != nil {
		return nil, err
	}
	return NewTeam(id, s.Name, s.Members, s.Stations, s.DailyHours)
}

func normalize(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" || slices.Contains(out, s) {
			continue
		}
		out = append(out, s)
	}
	return out
}
