package queries

import (
	"context"

	"cafeteria/internal/core/domain/model/user"
	"cafeteria/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetUserQueryHandler loads a user view by id. The session middleware uses
// it on every authenticated request to re-check role and activation.
type GetUserQueryHandler struct {
	db *gorm.DB
}

func NewGetUserQueryHandler(db *gorm.DB) GetUserQueryHandler {
	return GetUserQueryHandler{db: db}
}

// Handle returns *errs.ObjectNotFoundError for an unknown id.
func (h GetUserQueryHandler) Handle(ctx context.Context, userID int64) (UserView, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			email,
			role,
			active,
			registered_at
		FROM users
		WHERE id = ?
	`, userID).Rows()
	if err != nil {
		return UserView{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return UserView{}, err
		}
		return UserView{}, errs.NewObjectNotFoundError("user", userID)
	}

	var (
		view UserView
		role string
	)
	if err = rows.Scan(&view.ID, &view.Name, &view.Email, &role, &view.Active, &view.RegisteredAt); err != nil {
		return UserView{}, err
	}
	if view.Role, err = user.ParseRole(role); err != nil {
		return UserView{}, err
	}
	view.RegisteredAt = view.RegisteredAt.UTC()

	return view, nil
}
