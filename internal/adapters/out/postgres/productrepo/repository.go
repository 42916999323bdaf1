package productrepo

import (
	"context"
	"errors"
	"fmt"

	"cafeteria/internal/core/domain/model/product"
	"cafeteria/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormProductRepository implements ProductRepository using GORM.
type GormProductRepository struct {
	db *gorm.DB
}

func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// Add inserts a new product and returns it restored with the generated id.
func (r *GormProductRepository) Add(ctx context.Context, aggregate *product.Product) (*product.Product, error) {
	if err := aggregate.Validate(); err != nil {
		return nil, err
	}

	dto := fromDomain(aggregate)
	dto.ID = 0
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return nil, fmt.Errorf("insert product: %w", err)
	}

	stored, err := toDomain(dto)
	if err != nil {
		return nil, err
	}

	return stored, nil
}

// Update overwrites every column of an existing product.
func (r *GormProductRepository) Update(ctx context.Context, aggregate *product.Product) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&ProductDTO{}).
		Where("id = ?", dto.ID).
		Select("name", "description", "price", "category", "image", "available").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("product", dto.ID)
	}

	return nil
}

func (r *GormProductRepository) Get(ctx context.Context, id int64) (*product.Product, error) {
	if id <= 0 {
		return nil, errs.NewObjectNotFoundError("product", id)
	}

	var dto ProductDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("product", id)
		}
		return nil, err
	}

	return toDomain(dto)
}
