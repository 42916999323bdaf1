package orderrepo

import (
	"context"
	"errors"
	"fmt"

	"cafeteria/internal/adapters/out/postgres/pgerr"
	"cafeteria/internal/core/domain/model/kernel"
	"cafeteria/internal/core/domain/model/order"
	"cafeteria/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add inserts the order header and then its lines. It does not open a
// transaction of its own.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	if err := db.Omit(clause.Associations).Create(&dto).Error; err != nil {
		return fmt.Errorf("insert order %s: %w", aggregate.ID(), err)
	}

	if len(dto.Lines) > 0 {
		if err := db.Create(&dto.Lines).Error; err != nil {
			if pgerr.IsForeignKeyViolation(err) {
				return errs.NewObjectIsUnavailableErrorWithCause("product", productIDs(aggregate), err)
			}
			return fmt.Errorf("insert lines of order %s: %w", aggregate.ID(), err)
		}
	}

	return nil
}

// UpdateStatus writes status and updated_at only while the stored status
// still equals expected.
func (r *GormOrderRepository) UpdateStatus(ctx context.Context, aggregate *order.Order, expected order.Status) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	id := aggregate.ID().Google()
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND status = ?", id, expected.String()).
		Updates(map[string]any{
			"status":     aggregate.Status().String(),
			"updated_at": aggregate.UpdatedAt(),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("order", aggregate.ID().String())
		}
		return errs.NewVersionIsInvalidErrorWithCause(
			"order status",
			fmt.Errorf("order %s is no longer %s", aggregate.ID(), expected),
		)
	}

	return nil
}

// Get loads an order and its lines ordered by position.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Lines", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		First(&dto, "id = ?", id.Google()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func productIDs(aggregate *order.Order) []int64 {
	ids := make([]int64, 0, len(aggregate.Lines()))
	for _, line := range aggregate.Lines() {
		ids = append(ids, line.ProductID())
	}
	return ids
}
