package queries

import (
	"errors"
	"strings"

	"cafeteria/internal/core/domain/model/product"
	"cafeteria/internal/pkg/guard"
)

var ErrListProductsQueryIsNotConstructed = errors.New(
	"ListProductsQuery must be created via NewListAvailableProductsQuery or NewListAllProductsQuery",
)

// ListProductsQuery lists menu products ordered by category then name.
type ListProductsQuery struct {
	category           *product.Category
	includeUnavailable bool

	guard guard.ConstructorGuard
}

// NewListAvailableProductsQuery lists products that can be ordered. An empty
// category lists every category.
func NewListAvailableProductsQuery(category string) (ListProductsQuery, error) {
	query := ListProductsQuery{guard: guard.NewConstructorGuard()}

	if strings.TrimSpace(category) != "" {
		c, err := product.ParseCategory(category)
		if err != nil {
			return ListProductsQuery{}, err
		}
		query.category = &c
	}

	return query, nil
}

// NewListAllProductsQuery lists every product, including unavailable ones,
// for the admin dashboard.
func NewListAllProductsQuery() ListProductsQuery {
	return ListProductsQuery{includeUnavailable: true, guard: guard.NewConstructorGuard()}
}

func (q ListProductsQuery) Validate() error {
	return q.guard.Validate(ErrListProductsQueryIsNotConstructed)
}

func (q ListProductsQuery) Category() (product.Category, bool) {
	if q.category == nil {
		return product.UnknownCategory, false
	}
	return *q.category, true
}

func (q ListProductsQuery) IncludeUnavailable() bool {
	return q.includeUnavailable
}
