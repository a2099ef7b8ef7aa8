package assignment

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"hangerflow/internal/core/domain/model/kernel"
	"hangerflow/internal/pkg/errs"
)

// ErrAssignmentIsNotConstructed is returned when an Assignment was not created through New or Restore.
var ErrAssignmentIsNotConstructed = errors.New("Assignment must be created via New constructor")

// Assignment is the aggregate root for one hanger's work on the shop floor.
//
// Invariants:
//   - steps are fixed at creation and keep their template order
//   - Done is terminal; a Done assignment accepts no transitions or step changes
//   - startedAt is set by Start, finishedAt by Finish
type Assignment struct {
	id            kernel.UUID
	packageID     kernel.Code
	hangerID      kernel.Code
	teamID        *kernel.Code
	priority      Priority
	expedite      bool
	order         *int
	steps         []Step
	status        Status
	createdAt     time.Time
	startedAt     *time.Time
	finishedAt    *time.Time
	toolEvents    []ToolEvent
	isConstructed bool
}

// New creates a Queued assignment.
func New(
	id kernel.UUID,
	packageID, hangerID kernel.Code,
	teamID *kernel.Code,
	priority Priority,
	expedite bool,
	steps []Step,
	createdAt time.Time,
) (*Assignment, error) {
	a := &Assignment{
		expedite:      expedite,
		status:        Queued,
		createdAt:     createdAt.UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		a.setID(id),
		a.setPackageID(packageID),
		a.setHangerID(hangerID),
		a.setTeamID(teamID),
		a.setPriority(priority),
		a.setSteps(steps),
	); err != nil {
		return nil, err
	}

	return a, nil
}

func (a *Assignment) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAssignmentIsNotConstructed
	}
	return nil
}

func (a *Assignment) ID() kernel.UUID        { return a.id }
func (a *Assignment) PackageID() kernel.Code { return a.packageID }
func (a *Assignment) HangerID() kernel.Code  { return a.hangerID }
func (a *Assignment) TeamID() *kernel.Code   { return a.teamID }
func (a *Assignment) Priority() Priority     { return a.priority }
func (a *Assignment) Expedite() bool         { return a.expedite }
func (a *Assignment) Order() *int            { return a.order }
func (a *Assignment) Status() Status         { return a.status }
func (a *Assignment) CreatedAt() time.Time   { return a.createdAt }
func (a *Assignment) StartedAt() *time.Time  { return a.startedAt }
func (a *Assignment) FinishedAt() *time.Time { return a.finishedAt }
func (a *Assignment) IsOpen() bool           { return a.status.IsOpen() }

// Steps returns a copy of the steps in template order.
func (a *Assignment) Steps() []Step {
	return slices.Clone(a.steps)
}

func (a *Assignment) ToolEvents() []ToolEvent {
	return slices.Clone(a.toolEvents)
}

// Start moves a Queued assignment to InProgress and records startedAt.
func (a *Assignment) Start(now time.Time) error {
	if err := a.requireStatus(Queued, InProgress); err != nil {
		return err
	}
	started := now.UTC()
	a.status = InProgress
	a.startedAt = &started
	return nil
}

func (a *Assignment) Pause() error {
	if err := a.requireStatus(InProgress, Paused); err != nil {
		return err
	}
	a.status = Paused
	return nil
}

func (a *Assignment) Resume() error {
	if err := a.requireStatus(Paused, InProgress); err != nil {
		return err
	}
	a.status = InProgress
	return nil
}

func (a *Assignment) SubmitForQA() error {
	if err := a.requireStatus(InProgress, QA); err != nil {
		return err
	}
	a.status = QA
	return nil
}

// CompleteStep marks the named step complete with its captured data. The
// assignment status is left unchanged.
func (a *Assignment) CompleteStep(key StepKey, data map[string]any, now time.Time) error {
	if a.status == Done {
		return errs.NewInvalidTransitionError("assignment", a.status.String(), "step "+string(key))
	}
	for i := range a.steps {
		if a.steps[i].key == key {
			return a.steps[i].complete(data, now)
		}
	}
	return errs.NewValueIsInvalidErrorWithCause("step key",
		fmt.Errorf("assignment %s has no step %q", a.id, key))
}

// MissingSteps lists the keys of incomplete steps in order.
func (a *Assignment) MissingSteps() []string {
	var missing []string
	for _, s := range a.steps {
		if !s.completed {
			missing = append(missing, string(s.key))
		}
	}
	return missing
}

// Finish moves the assignment to Done when every step is complete.
func (a *Assignment) Finish(now time.Time) error {
	if a.status == Done {
		return errs.NewInvalidTransitionError("assignment", a.status.String(), Done.String())
	}
	if missing := a.MissingSteps(); len(missing) > 0 {
		return errs.NewIncompleteStepsError(a.id.String(), missing)
	}
	finished := now.UTC()
	a.status = Done
	a.finishedAt = &finished
	return nil
}

// AssignTeam routes the assignment to a crew. Done assignments keep their crew.
func (a *Assignment) AssignTeam(teamID kernel.Code) error {
	if err := teamID.Validate(); err != nil {
		return err
	}
	if a.status == Done {
		return errs.NewInvalidTransitionError("assignment", a.status.String(), "reassigned")
	}
	a.teamID = &teamID
	return nil
}

// Reprioritize sets the queue position fields. A nil order clears the explicit position.
func (a *Assignment) Reprioritize(priority Priority, expedite bool, order *int) error {
	if err := priority.Validate(); err != nil {
		return err
	}
	if order != nil && *order < 0 {
		return errs.NewValueIsOutOfRangeError("order", *order, 0, "unbounded")
	}
	a.priority = priority
	a.expedite = expedite
	if order != nil {
		o := *order
		a.order = &o
	} else {
		a.order = nil
	}
	return nil
}

// RecordToolEvent appends telemetry regardless of status.
func (a *Assignment) RecordToolEvent(ev ToolEvent) {
	a.toolEvents = append(a.toolEvents, ev)
}

func (a *Assignment) requireStatus(from, to Status) error {
	if a.status != from {
		return errs.NewInvalidTransitionError("assignment", a.status.String(), to.String())
	}
	return nil
}

func (a *Assignment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Assignment) setPackageID(id kernel.Code) error {
	if err := id.Validate(); err != nil {
		return fmt.Errorf("package id: %w", err)
	}
	a.packageID = id
	return nil
}

func (a *Assignment) setHangerID(id kernel.Code) error {
	if err := id.Validate(); err != nil {
		return fmt.Errorf("hanger id: %w", err)
	}
	a.hangerID = id
	return nil
}

func (a *Assignment) setTeamID(id *kernel.Code) error {
	if id == nil {
		return nil
	}
	if err := id.Validate(); err != nil {
		return fmt.Errorf("team id: %w", err)
	}
	teamID := *id
	a.teamID = &teamID
	return nil
}

func (a *Assignment) setPriority(p Priority) error {
	if err := p.Validate(); err != nil {
		return err
	}
	a.priority = p
	return nil
}

func (a *Assignment) setSteps(steps []Step) error {
	if len(steps) == 0 {
		return errs.NewValueIsRequiredError("steps")
	}
	seen := make(map[StepKey]struct{}, len(steps))
	for _, s := range steps {
		if _, ok := stepDefinitions[s.key]; !ok {
			return errs.NewValueIsInvalidErrorWithCause("step key", fmt.Errorf("%q is not a known station", s.key))
		}
		if _, dup := seen[s.key]; dup {
			return errs.NewValueIsInvalidErrorWithCause("steps", fmt.Errorf("%s is listed twice", s.key))
		}
		seen[s.key] = struct{}{}
	}
	a.steps = slices.Clone(steps)
	return nil
}
