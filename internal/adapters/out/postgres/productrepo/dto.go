// Package productrepo persists menu products with GORM.
package productrepo

import (
	"time"

	"cafeteria/internal/core/domain/model/kernel"
	"cafeteria/internal/core/domain/model/product"

	"github.com/shopspring/decimal"
)

// ProductDTO is the row of the products table.
type ProductDTO struct {
	ID          int64           `gorm:"primaryKey;autoIncrement"`
	Name        string          `gorm:"type:varchar(100)"`
	Description string
	Price       decimal.Decimal `gorm:"type:numeric(10,2)"`
	Category    string          `gorm:"type:varchar(16)"`
	Image       string
	Available   bool
	CreatedAt   time.Time `gorm:"autoCreateTime:false"`
}

func (ProductDTO) TableName() string {
	return "products"
}

func fromDomain(aggregate *product.Product) ProductDTO {
	return ProductDTO{
		ID:          aggregate.ID(),
		Name:        aggregate.Name(),
		Description: aggregate.Description(),
		Price:       aggregate.Price().Decimal(),
		Category:    aggregate.Category().String(),
		Image:       aggregate.Image(),
		Available:   aggregate.IsAvailable(),
		CreatedAt:   aggregate.CreatedAt(),
	}
}

func toDomain(dto ProductDTO) (*product.Product, error) {
	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	category, err := product.ParseCategory(dto.Category)
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(
		dto.ID,
		dto.Name,
		dto.Description,
		price,
		category,
		dto.Image,
		dto.Available,
		dto.CreatedAt.UTC(),
	)
}
