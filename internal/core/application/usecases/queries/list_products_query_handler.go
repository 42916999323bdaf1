package queries

import (
	"context"

	"cafeteria/internal/core/domain/model/product"
	"cafeteria/internal/pkg/errs"

	"gorm.io/gorm"
)

const productColumns = `
	id,
	name,
	description,
	price,
	category,
	image,
	available,
	created_at`

// ListProductsQueryHandler lists menu products.
type ListProductsQueryHandler struct {
	db *gorm.DB
}

func NewListProductsQueryHandler(db *gorm.DB) ListProductsQueryHandler {
	return ListProductsQueryHandler{db: db}
}

func (h ListProductsQueryHandler) Handle(ctx context.Context, query ListProductsQuery) ([]ProductView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `SELECT` + productColumns + ` FROM products WHERE 1 = 1`
	args := make([]any, 0, 1)
	if !query.IncludeUnavailable() {
		sql += ` AND available`
	}
	if category, ok := query.Category(); ok {
		sql += ` AND category = ?`
		args = append(args, category.String())
	}
	sql += ` ORDER BY category, name, id`

	return scanProducts(h.db.WithContext(ctx).Raw(sql, args...))
}

// GetProductQueryHandler returns one product by id.
type GetProductQueryHandler struct {
	db *gorm.DB
}

func NewGetProductQueryHandler(db *gorm.DB) GetProductQueryHandler {
	return GetProductQueryHandler{db: db}
}

// Handle returns *errs.ObjectNotFoundError for an unknown id.
func (h GetProductQueryHandler) Handle(ctx context.Context, productID int64) (ProductView, error) {
	views, err := scanProducts(h.db.WithContext(ctx).Raw(
		`SELECT`+productColumns+` FROM products WHERE id = ?`, productID))
	if err != nil {
		return ProductView{}, err
	}
	if len(views) == 0 {
		return ProductView{}, errs.NewObjectNotFoundError("product", productID)
	}
	return views[0], nil
}

func scanProducts(stmt *gorm.DB) ([]ProductView, error) {
	rows, err := stmt.Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	views := make([]ProductView, 0)
	for rows.Next() {
		var (
			view     ProductView
			category string
		)
		if err = rows.Scan(&view.ID, &view.Name, &view.Description, &view.Price,
			&category, &view.Image, &view.Available, &view.CreatedAt); err != nil {
			return nil, err
		}
		if view.Category, err = product.ParseCategory(category); err != nil {
			return nil, err
		}
		view.CreatedAt = view.CreatedAt.UTC()
		views = append(views, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return views, nil
}
