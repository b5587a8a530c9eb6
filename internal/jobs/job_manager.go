package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	orderStatsJob *OrderStatsJob
}

// NewJobManager creates the job manager. An empty statsSchedule disables the
// order statistics job.
func NewJobManager(counter OrderCounter, gauge StatusGauge, statsSchedule string, logger *slog.Logger) *JobManager {
	jm := &JobManager{}
	if statsSchedule != "" {
		jm.orderStatsJob = NewOrderStatsJob(counter, gauge, statsSchedule, logger)
	}
	return jm
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if jm.orderStatsJob == nil {
		return nil
	}
	if err := jm.orderStatsJob.Start(); err != nil {
		return fmt.Errorf("failed to start order stats job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	if jm.orderStatsJob != nil {
		jm.orderStatsJob.Stop()
	}
}
