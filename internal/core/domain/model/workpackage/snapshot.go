package workpackage

import (
	"errors"
	"time"

	"hangerflow/internal/core/domain/model/kernel"
)

// Snapshot is the serializable state of a Package.
type Snapshot struct {
	ID                    string    `json:"id"`
	ProjectID             string    `json:"projectId"`
	Name                  string    `json:"name"`
	Level                 string    `json:"level"`
	Zone                  string    `json:"zone"`
	HangerIDs             []string  `json:"hangerIds"`
	Status                string    `json:"status"`
	PickListID            *string   `json:"pickListId,omitempty"`
	RejectionReason       string    `json:"rejectionReason,omitempty"`
	ApprovedWithShortages *bool     `json:"approvedWithShortages,omitempty"`
	CreatedAt             time.Time `json:"createdAt"`
}

func (p *Package) Snapshot() Snapshot {
	s := Snapshot{
		ID:              p.id.String(),
		ProjectID:       p.projectID.String(),
		Name:            p.name,
		Level:           p.level,
		Zone:            p.zone,
		HangerIDs:       kernel.CodeStrings(p.hangerIDs),
		Status:          p.status.String(),
		RejectionReason: p.rejectionReason,
		CreatedAt:       p.createdAt,
	}
	if p.pickListID != nil {
		id := p.pickListID.String()
		s.PickListID = &id
	}
	if p.approvedWithShortages != nil {
		v := *p.approvedWithShortages
		s.ApprovedWithShortages = &v
	}
	return s
}

// Restore rebuilds a Package from a snapshot.
func Restore(s Snapshot) (*Package, error) {
	id, idErr := kernel.NewCode(s.ID)
	projectID, projectErr := kernel.NewCode(s.ProjectID)
	hangerIDs, hangersErr := kernel.NewCodes(s.HangerIDs)
	status, statusErr := ParseStatus(s.Status)
	if err := errors.Join(idErr, projectErr, hangersErr, statusErr); err != nil {
		return nil, err
	}

	p, err := NewPackage(id, projectID, s.Name, s.Level, s.Zone, hangerIDs, s.CreatedAt)
	if err != nil {
		return nil, err
	}
	p.status = status
	p.rejectionReason = s.RejectionReason
	if s.PickListID != nil {
		pickListID, err := kernel.UUIDFromString(*s.PickListID)
		if err != nil {
			return nil, err
		}
		p.pickListID = &pickListID
	}
	if s.ApprovedWithShortages != nil {
		v := *s.ApprovedWithShortages
		p.approvedWithShortages = &v
	}
	return p, nil
}
