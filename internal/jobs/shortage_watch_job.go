package jobs

import (
	"context"
	"log/slog"

	"hangerflow/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultShortageScanSchedule runs the scan every five minutes.
const DefaultShortageScanSchedule = "0 */5 * * * *"

// ShortageScanner is satisfied by commands.ScanShortagesCommandHandler.
type ShortageScanner interface {
	Handle(ctx context.Context, command commands.ScanShortagesCommand) (int, error)
}

// ShortageWatchJob periodically opens InventoryShort exceptions for packages
// that were kitted or are in fabrication with material still missing.
type ShortageWatchJob struct {
	scanner  ShortageScanner
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewShortageWatchJob uses DefaultShortageScanSchedule for an empty schedule.
// Schedules are six-field cron expressions with seconds.
func NewShortageWatchJob(scanner ShortageScanner, schedule string, logger *slog.Logger) *ShortageWatchJob {
	if schedule == "" {
		schedule = DefaultShortageScanSchedule
	}
	return &ShortageWatchJob{
		scanner:  scanner,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "shortage_watch_job"),
	}
}

// RunOnce performs a single scan.
func (j *ShortageWatchJob) RunOnce(ctx context.Context) (int, error) {
	opened, err := j.scanner.Handle(ctx, commands.NewScanShortagesCommand())
	if err != nil {
		j.logger.ErrorContext(ctx, "Shortage scan failed", "error", err, "opened", opened)
		return opened, err
	}
	if opened > 0 {
		j.logger.InfoContext(ctx, "Shortage exceptions opened", "opened", opened)
	}
	return opened, nil
}

func (j *ShortageWatchJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		_, _ = j.RunOnce(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Shortage watch job started", "schedule", j.schedule)
	return nil
}

// Stop waits for a running scan to finish.
func (j *ShortageWatchJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Shortage watch job stopped")
}
