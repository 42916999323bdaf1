package queries

import (
	"context"

	"cafeteria/internal/core/domain/services"
	"cafeteria/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler returns a single order with its lines.
type GetOrderQueryHandler struct {
	db     *gorm.DB
	policy services.OrderAccessPolicy
}

func NewGetOrderQueryHandler(db *gorm.DB, policy services.OrderAccessPolicy) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db, policy: policy}
}

// Handle returns *errs.ObjectNotFoundError when the order does not exist and
// *errs.ForbiddenError when it belongs to someone else and the actor is not
// an administrator.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	views, err := scanOrderHeaders(h.db.WithContext(ctx).Raw(`
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
		WHERE o.id = ?
	`, query.OrderID().Google()))
	if err != nil {
		return OrderView{}, err
	}
	if len(views) == 0 {
		return OrderView{}, errs.NewObjectNotFoundError("order", query.OrderID())
	}

	if err = h.policy.AuthorizeViewOwnedBy(query.Actor(), views[0].UserID); err != nil {
		return OrderView{}, err
	}

	if err = attachLines(ctx, h.db, views); err != nil {
		return OrderView{}, err
	}

	return views[0], nil
}
