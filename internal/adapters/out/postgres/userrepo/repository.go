package userrepo

import (
	"context"
	"errors"
	"fmt"

	"cafeteria/internal/adapters/out/postgres/pgerr"
	"cafeteria/internal/core/domain/model/user"
	"cafeteria/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormUserRepository implements UserRepository using GORM.
type GormUserRepository struct {
	db *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// Add inserts a new user. A duplicate email surfaces as *errs.ConflictError.
func (r *GormUserRepository) Add(ctx context.Context, aggregate *user.User) (*user.User, error) {
	if err := aggregate.Validate(); err != nil {
		return nil, err
	}

	dto := fromDomain(aggregate)
	dto.ID = 0
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if pgerr.IsUniqueViolation(err) {
			return nil, errs.NewConflictErrorWithCause("email", dto.Email, err)
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	stored, err := toDomain(dto)
	if err != nil {
		return nil, err
	}

	return stored, nil
}

// Update writes name, email, role and the active flag. The password hash is
// never changed here.
func (r *GormUserRepository) Update(ctx context.Context, aggregate *user.User) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&UserDTO{}).
		Where("id = ?", dto.ID).
		Select("name", "email", "role", "active").
		Updates(&dto)
	if result.Error != nil {
		if pgerr.IsUniqueViolation(result.Error) {
			return errs.NewConflictErrorWithCause("email", dto.Email, result.Error)
		}
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("user", dto.ID)
	}

	return nil
}

func (r *GormUserRepository) Get(ctx context.Context, id int64) (*user.User, error) {
	if id <= 0 {
		return nil, errs.NewObjectNotFoundError("user", id)
	}

	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("user", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	normalized := user.NormalizeEmail(email)

	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "email = ?", normalized).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("user", normalized)
		}
		return nil, err
	}

	return toDomain(dto)
}
