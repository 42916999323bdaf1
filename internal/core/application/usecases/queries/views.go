// Package queries contains read-only operations that project stored state
// into view models. Handlers read straight from the database; the domain
// aggregates are used only where a business rule applies.
package queries

import (
	"time"

	"cafeteria/internal/core/domain/model/kernel"
	"cafeteria/internal/core/domain/model/order"
	"cafeteria/internal/core/domain/model/product"
	"cafeteria/internal/core/domain/model/user"

	"github.com/shopspring/decimal"
)

// OrderView is an order joined with its owner and product names.
type OrderView struct {
	ID        kernel.UUID
	UserID    int64
	UserName  string
	Status    order.Status
	Total     decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
	Lines     []OrderLineView
}

// OrderLineView is one line of an OrderView.
type OrderLineView struct {
	ID          kernel.UUID
	ProductID   int64
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
	Subtotal    decimal.Decimal
	Note        string
	Position    int
}

type ProductView struct {
	ID          int64
	Name        string
	Description string
	Price       decimal.Decimal
	Category    product.Category
	Image       string
	Available   bool
	CreatedAt   time.Time
}

// UserView never carries the password hash.
type UserView struct {
	ID           int64
	Name         string
	Email        string
	Role         user.Role
	Active       bool
	RegisteredAt time.Time
}

// Actor returns the authorization identity of the viewed user.
func (v UserView) Actor() user.Actor {
	return user.Actor{ID: v.ID, Role: v.Role}
}
