package jobs

import (
	"context"
	"log/slog"
	"time"

	"cafeteria/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// DefaultReportSchedule runs the report at 18:00 every day. The expression
// has a leading seconds field.
const DefaultReportSchedule = "0 0 18 * * *"

const reportTimeout = 30 * time.Second

// AdminStatsProvider computes the figures the report is made of.
type AdminStatsProvider interface {
	Handle(ctx context.Context) (queries.AdminStats, error)
}

// DailySalesReportJob logs the day's order counts and sales on a schedule.
type DailySalesReportJob struct {
	stats    AdminStatsProvider
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewDailySalesReportJob runs on schedule in loc. An empty schedule uses
// DefaultReportSchedule.
func NewDailySalesReportJob(
	stats AdminStatsProvider,
	schedule string,
	loc *time.Location,
	logger *slog.Logger,
) *DailySalesReportJob {
	if schedule == "" {
		schedule = DefaultReportSchedule
	}
	if loc == nil {
		loc = time.UTC
	}

	return &DailySalesReportJob{
		stats:    stats,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds(), cron.WithLocation(loc)),
		logger:   logger.With("component", "daily_sales_report_job"),
	}
}

func (j *DailySalesReportJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), reportTimeout)
		defer cancel()
		j.Run(ctx)
	}); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Daily sales report job started", "schedule", j.schedule)
	return nil
}

// Stop waits for a running report to finish.
func (j *DailySalesReportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Daily sales report job stopped")
}

// Run produces one report. Failures are logged, never returned, so a bad
// run does not stop the schedule.
func (j *DailySalesReportJob) Run(ctx context.Context) {
	stats, err := j.stats.Handle(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "Daily sales report failed", "error", err)
		return
	}

	j.logger.InfoContext(ctx, "Daily sales report",
		"day", stats.Day.Format(time.DateOnly),
		"total_orders", stats.TotalOrders,
		"pending_orders", stats.PendingOrders,
		"ready_orders", stats.ReadyOrders,
		"delivered_orders", stats.DeliveredOrders,
		"sales_today", stats.SalesToday.StringFixed(2),
		"active_users", stats.ActiveUsers,
	)
}
