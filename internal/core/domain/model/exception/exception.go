package exception

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"hangerflow/internal/core/domain/model/kernel"
	"hangerflow/internal/pkg/errs"
)

// ErrExceptionIsNotConstructed is returned when an Exception was not created through New or Restore.
var ErrExceptionIsNotConstructed = errors.New("Exception must be created via New constructor")

// Ref points at the entity an exception is about.
type Ref struct {
	Kind RefKind `json:"kind"`
	ID   string  `json:"id"`
}

type Exception struct {
	id              kernel.UUID
	exceptionType   Type
	severity        Severity
	ref             Ref
	description     string
	state           State
	assignee        string
	resolutionNotes string
	createdAt       time.Time
	resolvedAt      *time.Time
	closedAt        *time.Time
	isConstructed   bool
}

// New opens an exception. The caller is responsible for checking that ref resolves.
func New(id kernel.UUID, t Type, severity Severity, ref Ref, description string, createdAt time.Time) (*Exception, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if _, ok := typeNames[t]; !ok {
		return nil, errs.NewValueIsInvalidErrorWithCause("exception type", fmt.Errorf("%d is not valid", t))
	}
	if _, ok := severityNames[severity]; !ok {
		return nil, errs.NewValueIsInvalidErrorWithCause("severity", fmt.Errorf("%d is not valid", severity))
	}
	kind, err := ParseRefKind(string(ref.Kind))
	if err != nil {
		return nil, err
	}
	refID := strings.TrimSpace(ref.ID)
	if refID == "" {
		return nil, errs.NewValueIsRequiredError("ref")
	}
	return &Exception{
		id:            id,
		exceptionType: t,
		severity:      severity,
		ref:           Ref{Kind: kind, ID: refID},
		description:   strings.TrimSpace(description),
		state:         Open,
		createdAt:     createdAt.UTC(),
		isConstructed: true,
	}, nil
}

func (e *Exception) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrExceptionIsNotConstructed
	}
	return nil
}

func (e *Exception) ID() kernel.UUID         { return e.id }
func (e *Exception) Type() Type              { return e.exceptionType }
func (e *Exception) Severity() Severity      { return e.severity }
func (e *Exception) Ref() Ref                { return e.ref }
func (e *Exception) Description() string     { return e.description }
func (e *Exception) State() State            { return e.state }
func (e *Exception) Assignee() string        { return e.assignee }
func (e *Exception) ResolutionNotes() string { return e.resolutionNotes }
func (e *Exception) CreatedAt() time.Time    { return e.createdAt }
func (e *Exception) ResolvedAt() *time.Time  { return e.resolvedAt }
func (e *Exception) ClosedAt() *time.Time    { return e.closedAt }

// Assign hands an active exception to someone and moves it to InProgress.
func (e *Exception) Assign(assignee string) error {
	assignee = strings.TrimSpace(assignee)
	if assignee == "" {
		return errs.NewValueIsRequiredError("assignee")
	}
	if !e.state.IsActive() {
		return errs.NewInvalidTransitionError("exception", e.state.String(), InProgress.String())
	}
	e.assignee = assignee
	e.state = InProgress
	return nil
}

// Resolve records the resolution notes and resolvedAt.
func (e *Exception) Resolve(notes string, now time.Time) error {
	notes = strings.TrimSpace(notes)
	if notes == "" {
		return errs.NewValueIsRequiredError("notes")
	}
	if !e.state.IsActive() {
		return errs.NewInvalidTransitionError("exception", e.state.String(), Resolved.String())
	}
	at := now.UTC()
	e.resolutionNotes = notes
	e.state = Resolved
	e.resolvedAt = &at
	return nil
}

// Close archives a resolved exception.
func (e *Exception) Close(now time.Time) error {
	if e.state != Resolved {
		return errs.NewInvalidTransitionError("exception", e.state.String(), Closed.String())
	}
	at := now.UTC()
	e.state = Closed
	e.closedAt = &at
	return nil
}

// Snapshot is the serializable state of an Exception.
type Snapshot struct {
	ID              string     `json:"id"`
	Type            string     `json:"type"`
	Severity        string     `json:"severity"`
	Ref             Ref        `json:"ref"`
	Description     string     `json:"description"`
	State           string     `json:"state"`
	Assignee        string     `json:"assignee,omitempty"`
	ResolutionNotes string     `json:"resolutionNotes,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	ResolvedAt      *time.Time `json:"resolvedAt,omitempty"`
	ClosedAt        *time.Time `json:"closedAt,omitempty"`
}

func (e *Exception) Snapshot() Snapshot {
	return Snapshot{
		ID:              e.id.String(),
		Type:            e.exceptionType.String(),
		Severity:        e.severity.String(),
		Ref:             e.ref,
		Description:     e.description,
		State:           e.state.String(),
		Assignee:        e.assignee,
		ResolutionNotes: e.resolutionNotes,
		CreatedAt:       e.createdAt,
		ResolvedAt:      copyTime(e.resolvedAt),
		ClosedAt:        copyTime(e.closedAt),
	}
}

func Restore(s Snapshot) (*Exception, error) {
	id, idErr := kernel.UUIDFromString(s.ID)
	t, typeErr := ParseType(s.Type)
	severity, sevErr := ParseSeverity(s.Severity)
	state, stateErr := ParseState(s.State)
	if err := errors.Join(idErr, typeErr, sevErr, stateErr); err != nil {
		return nil, err
	}
	e, err := New(id, t, severity, s.Ref, s.Description, s.CreatedAt)
	if err != nil {
		return nil, err
	}
	e.state = state
	e.assignee = s.Assignee
	e.resolutionNotes = s.ResolutionNotes
	e.resolvedAt = copyTime(s.ResolvedAt)
	e.closedAt = copyTime(s.ClosedAt)
	return e, nil
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
