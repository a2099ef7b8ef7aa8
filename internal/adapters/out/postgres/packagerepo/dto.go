// Package packagerepo persists work packages. Hanger membership is a text[]
// column so the exclusivity check is a single array-overlap query.
package packagerepo

import (
	"time"

	"hangerflow/internal/core/domain/model/workpackage"

	"github.com/lib/pq"
)

type PackageDTO struct {
	ID                    string         `gorm:"type:varchar(64);primaryKey"`
	ProjectID             string         `gorm:"type:varchar(64);not null;index"`
	Name                  string         `gorm:"type:varchar(255)"`
	Level                 string         `gorm:"type:varchar(64)"`
	Zone                  string         `gorm:"type:varchar(64)"`
	HangerIDs             pq.StringArray `gorm:"type:text[];not null"`
	Status                string         `gorm:"type:varchar(32);not null;index"`
	PickListID            *string        `gorm:"type:uuid"`
	RejectionReason       string         `gorm:"type:text"`
	ApprovedWithShortages *bool
	CreatedAt             time.Time `gorm:"not null"`
}

func (PackageDTO) TableName() string {
	return "packages"
}

func fromDomain(p *workpackage.Package) PackageDTO {
	s := p.Snapshot()
	return PackageDTO{
		ID:                    s.ID,
		ProjectID:             s.ProjectID,
		Name:                  s.Name,
		Level:                 s.Level,
		Zone:                  s.Zone,
		HangerIDs:             pq.StringArray(s.HangerIDs),
		Status:                s.Status,
		PickListID:            s.PickListID,
		RejectionReason:       s.RejectionReason,
		ApprovedWithShortages: s.ApprovedWithShortages,
		CreatedAt:             s.CreatedAt,
	}
}

func toDomain(dto PackageDTO) (*workpackage.Package, error) {
	return workpackage.Restore(workpackage.Snapshot{
		ID:                    dto.ID,
		ProjectID:             dto.ProjectID,
		Name:                  dto.Name,
		Level:                 dto.Level,
		Zone:                  dto.Zone,
		HangerIDs:             []string(dto.HangerIDs),
		Status:                dto.Status,
		PickListID:            dto.PickListID,
		RejectionReason:       dto.RejectionReason,
		ApprovedWithShortages: dto.ApprovedWithShortages,
		CreatedAt:             dto.CreatedAt.UTC(),
	})
}
