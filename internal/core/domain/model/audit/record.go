// Package audit defines the append-only audit record every mutating command
// writes inside its unit of work.
package audit

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"hangerflow/internal/core/domain/model/kernel"
	"hangerflow/internal/pkg/errs"
)

// ErrRecordIsNotConstructed is returned when a Record was not created through NewRecord.
var ErrRecordIsNotConstructed = errors.New("Record must be created via NewRecord constructor")

// SystemActor is recorded when a mutation originates from a background job.
const SystemActor = "system"

// Entity types referenced by audit records.
const (
	EntityHanger     = "hanger"
	EntityPackage    = "package"
	EntityAssignment = "assignment"
	EntityException  = "exception"
	EntityTeam       = "team"
	EntityInventory  = "inventory"
)

// Record is immutable. Seq is zero until the repository assigns it on append.
type Record struct {
	seq           int64
	id            kernel.UUID
	at            time.Time
	actor         string
	action        string
	entityType    string
	entityID      string
	before        json.RawMessage
	after         json.RawMessage
	isConstructed bool
}

// NewRecord marshals before and after into JSON snapshots. A nil value is
// stored as JSON null. An empty actor becomes SystemActor.
func NewRecord(at time.Time, actor, action, entityType, entityID string, before, after any) (*Record, error) {
	action = strings.TrimSpace(action)
	if action == "" {
		return nil, errs.NewValueIsRequiredError("action")
	}
	if strings.TrimSpace(entityType) == "" || strings.TrimSpace(entityID) == "" {
		return nil, errs.NewValueIsRequiredError("entity")
	}
	actor = strings.TrimSpace(actor)
	if actor == "" {
		actor = SystemActor
	}
	beforeJSON, err := marshalSnapshot(before)
	if err != nil {
		return nil, err
	}
	afterJSON, err := marshalSnapshot(after)
	if err != nil {
		return nil, err
	}
	return &Record{
		id:            kernel.NewUUID(),
		at:            at.UTC(),
		actor:         actor,
		action:        action,
		entityType:    entityType,
		entityID:      entityID,
		before:        beforeJSON,
		after:         afterJSON,
		isConstructed: true,
	}, nil
}

// RestoreRecord rebuilds a persisted record, including its sequence number.
func RestoreRecord(seq int64, id kernel.UUID, at time.Time, actor, action, entityType, entityID string,
	before, after json.RawMessage,
) (*Record, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if seq <= 0 {
		return nil, errs.NewValueIsOutOfRangeError("seq", seq, 1, "unbounded")
	}
	return &Record{
		seq:           seq,
		id:            id,
		at:            at.UTC(),
		actor:         actor,
		action:        action,
		entityType:    entityType,
		entityID:      entityID,
		before:        cloneRaw(before),
		after:         cloneRaw(after),
		isConstructed: true,
	}, nil
}

func (r *Record) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRecordIsNotConstructed
	}
	return nil
}

func (r *Record) Seq() int64              { return r.seq }
func (r *Record) ID() kernel.UUID         { return r.id }
func (r *Record) At() time.Time           { return r.at }
func (r *Record) Actor() string           { return r.actor }
func (r *Record) Action() string          { return r.action }
func (r *Record) EntityType() string      { return r.entityType }
func (r *Record) EntityID() string        { return r.entityID }
func (r *Record) Before() json.RawMessage { return cloneRaw(r.before) }
func (r *Record) After() json.RawMessage  { return cloneRaw(r.after) }

// WithSeq returns a copy carrying the sequence number assigned on append.
func (r *Record) WithSeq(seq int64) *Record {
	c := *r
	c.seq = seq
	return &c
}

func marshalSnapshot(v any) (json.RawMessage, error) {
	if v == nil {
		return json.RawMessage("null"), nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal audit snapshot: %w", err)
	}
	return b, nil
}

func cloneRaw(b json.RawMessage) json.RawMessage {
	if b == nil {
		return json.RawMessage("null")
	}
	out := make(json.RawMessage, len(b))
	copy(out, b)
	return out
}
