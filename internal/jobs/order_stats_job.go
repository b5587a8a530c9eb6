package jobs

import (
	"context"
	"log/slog"

	"ordermanager/internal/core/application/usecases/queries"
	"ordermanager/internal/core/domain/model/order"

	"github.com/robfig/cron/v3"
)

// OrderCounter counts the orders of one status.
type OrderCounter interface {
	Handle(ctx context.Context, query queries.CountOrdersByStatusQuery) (queries.CountOrdersByStatusQueryResponse, error)
}

// StatusGauge receives the per status counts.
type StatusGauge interface {
	SetOrdersByStatus(status string, count int64)
}

// OrderStatsJob periodically counts orders per status, updates the
// orders_by_status gauge and logs the snapshot.
type OrderStatsJob struct {
	counter  OrderCounter
	gauge    StatusGauge
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewOrderStatsJob creates the job. schedule is a cron expression with a
// leading seconds field, e.g. "0 */5 * * * *".
func NewOrderStatsJob(counter OrderCounter, gauge StatusGauge, schedule string, logger *slog.Logger) *OrderStatsJob {
	return &OrderStatsJob{
		counter:  counter,
		gauge:    gauge,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "order_stats_job"),
	}
}

// Start schedules the job.
func (j *OrderStatsJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order stats job started", "schedule", j.schedule)
	return nil
}

// Run takes one snapshot. A status whose count fails keeps its previous
// gauge value.
func (j *OrderStatsJob) Run(ctx context.Context) {
	snapshot := make([]any, 0, 2*len(order.Statuses()))
	for _, status := range order.Statuses() {
		query, err := queries.NewCountOrdersByStatusQuery(status)
		if err != nil {
			j.logger.ErrorContext(ctx, "Order stats query rejected", "status", string(status), "error", err)
			continue
		}

		resp, err := j.counter.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Order stats job failed", "status", string(status), "error", err)
			continue
		}

		j.gauge.SetOrdersByStatus(string(resp.Status), resp.Count)
		snapshot = append(snapshot, string(resp.Status), resp.Count)
	}

	j.logger.InfoContext(ctx, "Order stats", snapshot...)
}

// Stop stops the job and waits for a running snapshot to finish.
func (j *OrderStatsJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Order stats job stopped")
}
