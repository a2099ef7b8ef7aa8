package assignment

import (
	"fmt"
	"maps"
	"slices"
	"time"

	"hangerflow/internal/core/domain/model/kernel"
)

// Snapshot is the serializable state of an Assignment.
type Snapshot struct {
	ID         string         `json:"id"`
	PackageID  string         `json:"packageId"`
	HangerID   string         `json:"hangerId"`
	TeamID     *string        `json:"teamId,omitempty"`
	Priority   string         `json:"priority"`
	Expedite   bool           `json:"expedite"`
	Order      *int           `json:"order,omitempty"`
	Steps      []StepSnapshot `json:"steps"`
	Status     string         `json:"status"`
	CreatedAt  time.Time      `json:"createdAt"`
	StartedAt  *time.Time     `json:"startedAt,omitempty"`
	FinishedAt *time.Time     `json:"finishedAt,omitempty"`
	ToolEvents []ToolEvent    `json:"toolEvents"`
}

type StepSnapshot struct {
	Key            string         `json:"key"`
	Label          string         `json:"label"`
	RequiredInputs []string       `json:"requiredInputs"`
	Completed      bool           `json:"completed"`
	CompletedAt    *time.Time     `json:"completedAt,omitempty"`
	Data           map[string]any `json:"data,omitempty"`
}

func (a *Assignment) Snapshot() Snapshot {
	steps := make([]StepSnapshot, len(a.steps))
	for i, s := range a.steps {
		steps[i] = StepSnapshot{
			Key:            string(s.key),
			Label:          s.label,
			RequiredInputs: slices.Clone(s.requiredInputs),
			Completed:      s.completed,
			CompletedAt:    copyTime(s.completedAt),
			Data:           maps.Clone(s.data),
		}
	}
	snap := Snapshot{
		ID:         a.id.String(),
		PackageID:  a.packageID.String(),
		HangerID:   a.hangerID.String(),
		Priority:   a.priority.String(),
		Expedite:   a.expedite,
		Steps:      steps,
		Status:     a.status.String(),
		CreatedAt:  a.createdAt,
		StartedAt:  copyTime(a.startedAt),
		FinishedAt: copyTime(a.finishedAt),
		ToolEvents: slices.Clone(a.toolEvents),
	}
	if a.teamID != nil {
		t := a.teamID.String()
		snap.TeamID = &t
	}
	if a.order != nil {
		o := *a.order
		snap.Order = &o
	}
	return snap
}

// Restore rebuilds an Assignment from a snapshot. Step labels and required
// inputs are taken from the snapshot so older records keep their original
// definition.
func Restore(s Snapshot) (*Assignment, error) {
	id, err := kernel.UUIDFromString(s.ID)
	if err != nil {
		return nil, err
	}
	packageID, err := kernel.NewCode(s.PackageID)
	if err != nil {
		return nil, err
	}
	hangerID, err := kernel.NewCode(s.HangerID)
	if err != nil {
		return nil, err
	}
	var teamID *kernel.Code
	if s.TeamID != nil {
		t, err := kernel.NewCode(*s.TeamID)
		if err != nil {
			return nil, err
		}
		teamID = &t
	}
	priority, err := ParsePriority(s.Priority)
	if err != nil {
		return nil, err
	}
	status, err := ParseStatus(s.Status)
	if err != nil {
		return nil, err
	}

	steps := make([]Step, 0, len(s.Steps))
	for _, ss := range s.Steps {
		key := StepKey(ss.Key)
		if _, ok := stepDefinitions[key]; !ok {
			return nil, fmt.Errorf("restore assignment %s: unknown step %q", s.ID, ss.Key)
		}
		steps = append(steps, Step{
			key:            key,
			label:          ss.Label,
			requiredInputs: slices.Clone(ss.RequiredInputs),
			completed:      ss.Completed,
			completedAt:    copyTime(ss.CompletedAt),
			data:           maps.Clone(ss.Data),
		})
	}

	a, err := New(id, packageID, hangerID, teamID, priority, s.Expedite, steps, s.CreatedAt)
	if err != nil {
		return nil, err
	}
	if s.Order != nil {
		o := *s.Order
		a.order = &o
	}
	a.status = status
	a.startedAt = copyTime(s.StartedAt)
	a.finishedAt = copyTime(s.FinishedAt)
	a.toolEvents = slices.Clone(s.ToolEvents)
	return a, nil
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
