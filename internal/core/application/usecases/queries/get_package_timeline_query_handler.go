package queries

import (
	"context"
	"encoding/json"
	"time"

	"hangerflow/internal/core/domain/model/audit"
)

// TimelineEntry is one stay of a package in a status.
type TimelineEntry struct {
	Status    string     `json:"status"`
	EnteredAt time.Time  `json:"enteredAt"`
	LeftAt    *time.Time `json:"leftAt,omitempty"`
	Seconds   float64    `json:"seconds"`
}

type PackageTimeline struct {
	PackageID string          `json:"packageId"`
	Entries   []TimelineEntry `json:"entries"`
}

// GetPackageTimelineQueryHandler derives time in state from the package's
// audit records. The open entry is measured up to now.
type GetPackageTimelineQueryHandler struct {
	uowFactory UoWFactory
	now        func() time.Time
}

func NewGetPackageTimelineQueryHandler(uowFactory UoWFactory) GetPackageTimelineQueryHandler {
	return GetPackageTimelineQueryHandler{uowFactory: uowFactory, now: time.Now}
}

func (h GetPackageTimelineQueryHandler) Handle(ctx context.Context, query GetPackageTimelineQuery) (PackageTimeline, error) {
	if err := query.Validate(); err != nil {
		return PackageTimeline{}, err
	}
	return read(ctx, h.uowFactory, func(uow UoW) (PackageTimeline, error) {
		if _, err := uow.PackageRepository().Get(ctx, query.PackageID()); err != nil {
			return PackageTimeline{}, err
		}
		records, err := uow.AuditRepository().ListByEntity(ctx, audit.EntityPackage, query.PackageID().String())
		if err != nil {
			return PackageTimeline{}, err
		}
		return PackageTimeline{
			PackageID: query.PackageID().String(),
			Entries:   buildTimeline(records, h.now()),
		}, nil
	})
}

// statusView reads the status out of either a package snapshot or a
// reservation record that nests one.
type statusView struct {
	Status  string `json:"status"`
	Package *struct {
		Status string `json:"status"`
	} `json:"package"`
}

func statusAfter(r *audit.Record) string {
	var p statusView
	if err := json.Unmarshal(r.After(), &p); err != nil {
		return ""
	}
	if p.Status != "" {
		return p.Status
	}
	if p.Package != nil {
		return p.Package.Status
	}
	return ""
}

func buildTimeline(records []*audit.Record, now time.Time) []TimelineEntry {
	entries := make([]TimelineEntry, 0)
	for _, r := range records {
		status := statusAfter(r)
		if status == "" {
			continue
		}
		if n := len(entries); n > 0 {
			if entries[n-1].Status == status {
				continue
			}
			left := r.At()
			entries[n-1].LeftAt = &left
			entries[n-1].Seconds = left.Sub(entries[n-1].EnteredAt).Seconds()
		}
		entries = append(entries, TimelineEntry{Status: status, EnteredAt: r.At()})
	}
	if n := len(entries); n > 0 {
		entries[n-1].Seconds = now.Sub(entries[n-1].EnteredAt).Seconds()
	}
	return entries
}
