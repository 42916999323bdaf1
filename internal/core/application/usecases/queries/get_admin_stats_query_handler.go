package queries

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

// AdminStats summarizes orders and users for the admin dashboard.
type AdminStats struct {
	TotalOrders     int64           `db:"total_orders"`
	PendingOrders   int64           `db:"pending_orders"`
	ReadyOrders     int64           `db:"ready_orders"`
	DeliveredOrders int64           `db:"delivered_orders"`
	SalesToday      decimal.Decimal `db:"sales_today"`
	ActiveUsers     int64           `db:"active_users"`
	Day             time.Time       `db:"-"`
}

// GetAdminStatsQueryHandler computes AdminStats on every call.
//
// "Today" is the calendar day of now() in loc. Cancelled orders never count
// towards sales.
type GetAdminStatsQueryHandler struct {
	db  *sqlx.DB
	loc *time.Location
	now func() time.Time
}

func NewGetAdminStatsQueryHandler(db *sqlx.DB, loc *time.Location, now func() time.Time) GetAdminStatsQueryHandler {
	if loc == nil {
		loc = time.UTC
	}
	if now == nil {
		now = time.Now
	}
	return GetAdminStatsQueryHandler{db: db, loc: loc, now: now}
}

func (h GetAdminStatsQueryHandler) Handle(ctx context.Context) (AdminStats, error) {
	start, end := dayBounds(h.now(), h.loc)

	var stats AdminStats
	err := h.db.GetContext(ctx, &stats, `
		SELECT
			COUNT(*) AS total_orders,
			COUNT(*) FILTER (WHERE status = 'pending') AS pending_orders,
			COUNT(*) FILTER (WHERE status = 'ready') AS ready_orders,
			COUNT(*) FILTER (WHERE status = 'delivered') AS delivered_orders,
			COALESCE(SUM(total) FILTER (
				WHERE status <> 'cancelled' AND created_at >= $1 AND created_at < $2
			), 0) AS sales_today,
			(SELECT COUNT(*) FROM users WHERE active) AS active_users
		FROM orders
	`, start, end)
	if err != nil {
		return AdminStats{}, err
	}

	stats.Day = start
	return stats, nil
}

// dayBounds returns the half-open interval of the calendar day containing t in loc.
func dayBounds(t time.Time, loc *time.Location) (time.Time, time.Time) {
	local := t.In(loc)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 0, 1)
}
