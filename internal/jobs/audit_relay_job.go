package jobs

import (
	"context"
	"log/slog"
	"sync"

	"hangerflow/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

const (
	// DefaultAuditRelaySchedule polls every ten seconds.
	DefaultAuditRelaySchedule = "*/10 * * * * *"
	auditRelayPageSize        = 200
)

// AuditReader is satisfied by queries.ListAuditRecordsQueryHandler.
type AuditReader interface {
	Handle(ctx context.Context, query queries.ListAuditRecordsQuery) ([]queries.AuditRecordResponse, error)
}

// AuditSink receives audit records in sequence order. A returned error makes
// the relay deliver the same records again on the next run.
type AuditSink interface {
	Deliver(ctx context.Context, records []queries.AuditRecordResponse) error
}

// AuditRelayJob polls the audit log from a cursor and forwards new records to
// a sink. The cursor only moves past records the sink accepted.
type AuditRelayJob struct {
	reader   AuditReader
	sink     AuditSink
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger

	mu     sync.Mutex
	cursor int64
}

func NewAuditRelayJob(reader AuditReader, sink AuditSink, schedule string, logger *slog.Logger) *AuditRelayJob {
	if schedule == "" {
		schedule = DefaultAuditRelaySchedule
	}
	return &AuditRelayJob{
		reader:   reader,
		sink:     sink,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:   logger.With("component", "audit_relay_job"),
	}
}

// Cursor returns the sequence number of the last delivered record.
func (j *AuditRelayJob) Cursor() int64 {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.cursor
}

// RunOnce drains the log from the cursor and returns how many records were
// delivered.
func (j *AuditRelayJob) RunOnce(ctx context.Context) (int, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	delivered := 0
	for {
		query, err := queries.NewListAuditRecordsQuery(j.cursor, auditRelayPageSize)
		if err != nil {
			return delivered, err
		}
		records, err := j.reader.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Audit poll failed", "error", err, "after_seq", j.cursor)
			return delivered, err
		}
		if len(records) == 0 {
			return delivered, nil
		}

		if err = j.sink.Deliver(ctx, records); err != nil {
			j.logger.ErrorContext(ctx, "Audit delivery failed", "error", err, "after_seq", j.cursor)
			return delivered, err
		}
		j.cursor = records[len(records)-1].Seq
		delivered += len(records)

		if len(records) < auditRelayPageSize {
			return delivered, nil
		}
	}
}

func (j *AuditRelayJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		_, _ = j.RunOnce(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Audit relay job started", "schedule", j.schedule)
	return nil
}

func (j *AuditRelayJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Audit relay job stopped", "cursor", j.Cursor())
}

// SlogAuditSink writes each record as one structured log line.
type SlogAuditSink struct {
	logger *slog.Logger
}

func NewSlogAuditSink(logger *slog.Logger) SlogAuditSink {
	return SlogAuditSink{logger: logger.With("component", "audit_sink")}
}

func (s SlogAuditSink) Deliver(ctx context.Context, records []queries.AuditRecordResponse) error {
	for _, r := range records {
		s.logger.InfoContext(ctx, "Audit record",
			"seq", r.Seq,
			"action", r.Action,
			"entity_type", r.EntityType,
			"entity_id", r.EntityID,
			"actor", r.Actor,
			"at", r.At,
		)
	}
	return nil
}
