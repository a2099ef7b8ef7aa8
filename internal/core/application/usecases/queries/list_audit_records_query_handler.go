package queries

import (
	"context"
	"encoding/json"
	"time"

	"hangerflow/internal/core/domain/model/audit"
)

// AuditRecordResponse is the wire form of one audit record.
type AuditRecordResponse struct {
	Seq        int64           `json:"seq"`
	ID         string          `json:"id"`
	At         time.Time       `json:"at"`
	Actor      string          `json:"actor"`
	Action     string          `json:"action"`
	EntityType string          `json:"entityType"`
	EntityID   string          `json:"entityId"`
	Before     json.RawMessage `json:"before"`
	After      json.RawMessage `json:"after"`
}

func NewAuditRecordResponse(r *audit.Record) AuditRecordResponse {
	return AuditRecordResponse{
		Seq:        r.Seq(),
		ID:         r.ID().String(),
		At:         r.At(),
		Actor:      r.Actor(),
		Action:     r.Action(),
		EntityType: r.EntityType(),
		EntityID:   r.EntityID(),
		Before:     r.Before(),
		After:      r.After(),
	}
}

type ListAuditRecordsQueryHandler struct {
	uowFactory UoWFactory
}

func NewListAuditRecordsQueryHandler(uowFactory UoWFactory) ListAuditRecordsQueryHandler {
	return ListAuditRecordsQueryHandler{uowFactory: uowFactory}
}

// Handle returns records with seq > afterSeq in ascending order.
func (h ListAuditRecordsQueryHandler) Handle(ctx context.Context, query ListAuditRecordsQuery) ([]AuditRecordResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return read(ctx, h.uowFactory, func(uow UoW) ([]AuditRecordResponse, error) {
		records, err := uow.AuditRepository().ListAfter(ctx, query.AfterSeq(), query.Limit())
		if err != nil {
			return nil, err
		}
		out := make([]AuditRecordResponse, 0, len(records))
		for _, r := range records {
			out = append(out, NewAuditRecordResponse(r))
		}
		return out, nil
	})
}
