package queries

import (
	"context"

	"cafeteria/internal/core/domain/model/kernel"
	"cafeteria/internal/core/domain/model/order"
	"cafeteria/internal/core/domain/services"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ListOrdersQueryHandler lists orders newest first. Administrators see every
// order; other actors see only their own, as decided by
// services.OrderAccessPolicy.
type ListOrdersQueryHandler struct {
	db     *gorm.DB
	policy services.OrderAccessPolicy
}

func NewListOrdersQueryHandler(db *gorm.DB, policy services.OrderAccessPolicy) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db, policy: policy}
}

func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	owner, err := h.policy.ListScope(query.Actor())
	if err != nil {
		return nil, err
	}

	sql := `
		SELECT
			o.id,
			o.user_id,
			u.name,
			o.status,
			o.total,
			o.created_at,
			o.updated_at
		FROM orders o
		JOIN users u ON u.id = o.user_id
		WHERE 1 = 1`
	args := make([]any, 0, 2)
	if owner != nil {
		sql += ` AND o.user_id = ?`
		args = append(args, *owner)
	}
	if status, ok := query.Status(); ok {
		sql += ` AND o.status = ?`
		args = append(args, status.String())
	}
	sql += ` ORDER BY o.created_at DESC, o.id`

	views, err := scanOrderHeaders(h.db.WithContext(ctx).Raw(sql, args...))
	if err != nil {
		return nil, err
	}

	if err = attachLines(ctx, h.db, views); err != nil {
		return nil, err
	}

	return views, nil
}

func scanOrderHeaders(stmt *gorm.DB) ([]OrderView, error) {
	rows, err := stmt.Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	views := make([]OrderView, 0)
	for rows.Next() {
		var (
			view   OrderView
			id     uuid.UUID
			status string
		)
		if err = rows.Scan(&id, &view.UserID, &view.UserName, &status,
			&view.Total, &view.CreatedAt, &view.UpdatedAt); err != nil {
			return nil, err
		}

		if view.ID, err = kernel.UUIDFromGoogle(id); err != nil {
			return nil, err
		}
		if view.Status, err = order.ParseStatus(status); err != nil {
			return nil, err
		}
		view.CreatedAt = view.CreatedAt.UTC()
		view.UpdatedAt = view.UpdatedAt.UTC()
		view.Lines = make([]OrderLineView, 0)
		views = append(views, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return views, nil
}

// attachLines loads the lines of every view in one round trip.
func attachLines(ctx context.Context, db *gorm.DB, views []OrderView) error {
	if len(views) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, 0, len(views))
	index := make(map[uuid.UUID]int, len(views))
	for i, v := range views {
		ids = append(ids, v.ID.Google())
		index[v.ID.Google()] = i
	}

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			l.order_id,
			l.id,
			l.product_id,
			p.name,
			l.quantity,
			l.unit_price,
			l.note,
			l.position
		FROM order_lines l
		JOIN products p ON p.id = l.product_id
		WHERE l.order_id IN ?
		ORDER BY l.order_id, l.position
	`, ids).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			line    OrderLineView
			orderID uuid.UUID
			lineID  uuid.UUID
		)
		if err = rows.Scan(&orderID, &lineID, &line.ProductID, &line.ProductName,
			&line.Quantity, &line.UnitPrice, &line.Note, &line.Position); err != nil {
			return err
		}
		if line.ID, err = kernel.UUIDFromGoogle(lineID); err != nil {
			return err
		}
		line.Subtotal = line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity)))

		i := index[orderID]
		views[i].Lines = append(views[i].Lines, line)
	}

	return rows.Err()
}
