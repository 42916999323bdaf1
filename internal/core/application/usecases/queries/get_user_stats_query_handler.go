package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"cafeteria/internal/core/domain/model/user"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

// UserStats summarizes the orders of a single user.
type UserStats struct {
	OrderCount       int64
	TotalSpent       decimal.Decimal
	FavouriteProduct *FavouriteProduct
	LastOrderAt      *time.Time
}

// FavouriteProduct is the product a user ordered the most units of.
type FavouriteProduct struct {
	ProductID int64  `db:"product_id"`
	Name      string `db:"name"`
	Quantity  int64  `db:"quantity"`
}

// GetUserStatsQueryHandler computes UserStats for the calling user.
// Cancelled orders count towards OrderCount but not towards spending or the
// favourite product.
type GetUserStatsQueryHandler struct {
	db *sqlx.DB
}

func NewGetUserStatsQueryHandler(db *sqlx.DB) GetUserStatsQueryHandler {
	return GetUserStatsQueryHandler{db: db}
}

func (h GetUserStatsQueryHandler) Handle(ctx context.Context, actor user.Actor) (UserStats, error) {
	if err := actor.Validate(); err != nil {
		return UserStats{}, err
	}

	var totals struct {
		OrderCount  int64           `db:"order_count"`
		TotalSpent  decimal.Decimal `db:"total_spent"`
		LastOrderAt sql.NullTime    `db:"last_order_at"`
	}
	if err := h.db.GetContext(ctx, &totals, `
		SELECT
			COUNT(*) AS order_count,
			COALESCE(SUM(total) FILTER (WHERE status <> 'cancelled'), 0) AS total_spent,
			MAX(created_at) AS last_order_at
		FROM orders
		WHERE user_id = $1
	`, actor.ID); err != nil {
		return UserStats{}, err
	}

	stats := UserStats{
		OrderCount: totals.OrderCount,
		TotalSpent: totals.TotalSpent,
	}
	if totals.LastOrderAt.Valid {
		last := totals.LastOrderAt.Time.UTC()
		stats.LastOrderAt = &last
	}

	var favourite FavouriteProduct
	err := h.db.GetContext(ctx, &favourite, `
		SELECT
			p.id AS product_id,
			p.name AS name,
			SUM(l.quantity) AS quantity
		FROM order_lines l
		JOIN orders o ON o.id = l.order_id
		JOIN products p ON p.id = l.product_id
		WHERE o.user_id = $1 AND o.status <> 'cancelled'
		GROUP BY p.id, p.name
		ORDER BY quantity DESC, p.name ASC
		LIMIT 1
	`, actor.ID)
	switch {
	case errors.Is(err, sql.ErrNoRows):
	case err != nil:
		return UserStats{}, err
	default:
		stats.FavouriteProduct = &favourite
	}

	return stats, nil
}
