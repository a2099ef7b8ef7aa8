package jobs

import "fmt"

type job interface {
	Start() error
	Stop()
}

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	shortageWatchJob *ShortageWatchJob
	auditRelayJob    *AuditRelayJob
}

// NewJobManager takes the already configured jobs. A nil job is skipped.
func NewJobManager(shortageWatchJob *ShortageWatchJob, auditRelayJob *AuditRelayJob) *JobManager {
	return &JobManager{
		shortageWatchJob: shortageWatchJob,
		auditRelayJob:    auditRelayJob,
	}
}

func (jm *JobManager) jobs() []job {
	var list []job
	if jm.shortageWatchJob != nil {
		list = append(list, jm.shortageWatchJob)
	}
	if jm.auditRelayJob != nil {
		list = append(list, jm.auditRelayJob)
	}
	return list
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	var started []job
	for _, j := range jm.jobs() {
		if err := j.Start(); err != nil {
			// Stop already started jobs if this one fails
			for _, s := range started {
				s.Stop()
			}
			return fmt.Errorf("failed to start job %T: %w", j, err)
		}
		started = append(started, j)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	for _, j := range jm.jobs() {
		j.Stop()
	}
}
