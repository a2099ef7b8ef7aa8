package workpackage

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"hangerflow/internal/core/domain/model/kernel"
	"hangerflow/internal/pkg/errs"
)

// ErrPackageIsNotConstructed is returned when a Package was not created through NewPackage or Restore.
var ErrPackageIsNotConstructed = errors.New("Package must be created via NewPackage constructor")

// Package groups hangers of one level/zone into the unit the shop approves,
// kits and routes.
//
// Invariants:
//   - hanger membership is fixed at creation, non-empty and free of duplicates
//   - Rejected is entered only through Reject and carries a non-blank reason
//   - approvedWithShortages stays nil until the package is approved
type Package struct {
	id                    kernel.Code
	projectID             kernel.Code
	name                  string
	level                 string
	zone                  string
	hangerIDs             []kernel.Code
	status                Status
	pickListID            *kernel.UUID
	rejectionReason       string
	approvedWithShortages *bool
	createdAt             time.Time
	isConstructed         bool
}

// NewPackage creates a Submitted package over the given hangers.
func NewPackage(
	id, projectID kernel.Code,
	name, level, zone string,
	hangerIDs []kernel.Code,
	createdAt time.Time,
) (*Package, error) {
	p := &Package{
		name:          strings.TrimSpace(name),
		level:         strings.TrimSpace(level),
		zone:          strings.TrimSpace(zone),
		status:        Submitted,
		createdAt:     createdAt.UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setProjectID(projectID),
		p.setHangerIDs(hangerIDs),
	); err != nil {
		return nil, err
	}

	if p.name == "" {
		p.name = p.id.String()
	}
	return p, nil
}

// Validate ensures the Package was constructed properly.
func (p *Package) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPackageIsNotConstructed
	}
	return nil
}

func (p *Package) ID() kernel.Code          { return p.id }
func (p *Package) ProjectID() kernel.Code   { return p.projectID }
func (p *Package) Name() string             { return p.name }
func (p *Package) Level() string            { return p.level }
func (p *Package) Zone() string             { return p.zone }
func (p *Package) Status() Status           { return p.status }
func (p *Package) PickListID() *kernel.UUID { return p.pickListID }
func (p *Package) RejectionReason() string  { return p.rejectionReason }
func (p *Package) CreatedAt() time.Time     { return p.createdAt }

// ApprovedWithShortages is nil until the package has been approved.
func (p *Package) ApprovedWithShortages() *bool { return p.approvedWithShortages }

// HangerIDs returns the member hangers in creation order.
func (p *Package) HangerIDs() []kernel.Code {
	out := make([]kernel.Code, len(p.hangerIDs))
	copy(out, p.hangerIDs)
	return out
}

// Contains reports whether hangerID belongs to the package.
func (p *Package) Contains(hangerID kernel.Code) bool {
	for _, id := range p.hangerIDs {
		if id == hangerID {
			return true
		}
	}
	return false
}

// IsOpen reports whether the package still claims its hangers.
func (p *Package) IsOpen() bool {
	return p.status.IsOpen()
}

// Advance moves the package to any status except Rejected, which needs a
// reason and therefore goes through Reject.
func (p *Package) Advance(to Status, validate TransitionValidator) error {
	if err := to.Validate(); err != nil {
		return err
	}
	if to == Rejected {
		return errs.NewValueIsInvalidErrorWithCause("status",
			errors.New("Rejected requires a reason, use RejectPackage"))
	}
	return p.transition(to, validate)
}

// Approve moves the package to ApprovedForFab. Approval is never blocked by
// shortfall; withShortages records whether there was any.
func (p *Package) Approve(withShortages bool, validate TransitionValidator) error {
	if err := p.transition(ApprovedForFab, validate); err != nil {
		return err
	}
	p.approvedWithShortages = &withShortages
	return nil
}

// Reject terminates a Submitted or Planned package with a reason.
func (p *Package) Reject(reason string, validate TransitionValidator) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}
	if !p.status.CanReject() {
		return errs.NewInvalidTransitionError("package", p.status.String(), Rejected.String())
	}
	if err := p.transition(Rejected, validate); err != nil {
		return err
	}
	p.rejectionReason = reason
	return nil
}

// Kit records the pick list produced by a reservation and moves the package
// to Kitted. Closed packages cannot be kitted.
func (p *Package) Kit(pickListID kernel.UUID, validate TransitionValidator) error {
	if err := pickListID.Validate(); err != nil {
		return err
	}
	if !p.IsOpen() {
		return errs.NewInvalidTransitionError("package", p.status.String(), Kitted.String())
	}
	if err := p.transition(Kitted, validate); err != nil {
		return err
	}
	p.pickListID = &pickListID
	return nil
}

// ValidateRouting returns InvalidTransition unless assignments may be generated.
func (p *Package) ValidateRouting() error {
	if !p.status.CanRoute() {
		return errs.NewInvalidTransitionError("package", p.status.String(), "routed")
	}
	return nil
}

// transition refuses to leave Rejected: a rejected package has released its
// hangers and may no longer hold them.
func (p *Package) transition(to Status, validate TransitionValidator) error {
	if p.status == Rejected {
		return errs.NewInvalidTransitionError("package", p.status.String(), to.String())
	}
	if validate != nil {
		if err := validate(p.status, to); err != nil {
			return err
		}
	}
	p.status = to
	return nil
}

func (p *Package) setID(id kernel.Code) error {
	if err := id.Validate(); err != nil {
		return fmt.Errorf("package id: %w", err)
	}
	p.id = id
	return nil
}

func (p *Package) setProjectID(id kernel.Code) error {
	if err := id.Validate(); err != nil {
		return fmt.Errorf("project id: %w", err)
	}
	p.projectID = id
	return nil
}

func (p *Package) setHangerIDs(ids []kernel.Code) error {
	if len(ids) == 0 {
		return errs.NewValueIsRequiredError("hanger ids")
	}
	seen := make(map[kernel.Code]struct{}, len(ids))
	out := make([]kernel.Code, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return fmt.Errorf("hanger id: %w", err)
		}
		if _, dup := seen[id]; dup {
			return errs.NewValueIsInvalidErrorWithCause("hanger ids", fmt.Errorf("%s is listed twice", id))
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	p.hangerIDs = out
	return nil
}
