// Package userrepo persists the user directory with GORM.
package userrepo

import (
	"time"

	"cafeteria/internal/core/domain/model/user"
)

// UserDTO is the row of the users table.
type UserDTO struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Name         string `gorm:"type:varchar(100)"`
	Email        string `gorm:"type:varchar(255);uniqueIndex:users_email_key"`
	PasswordHash string
	Role         string `gorm:"type:varchar(16)"`
	Active       bool
	RegisteredAt time.Time
}

func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(aggregate *user.User) UserDTO {
	return UserDTO{
		ID:           aggregate.ID(),
		Name:         aggregate.Name(),
		Email:        aggregate.Email(),
		PasswordHash: aggregate.PasswordHash(),
		Role:         aggregate.Role().String(),
		Active:       aggregate.IsActive(),
		RegisteredAt: aggregate.RegisteredAt(),
	}
}

func toDomain(dto UserDTO) (*user.User, error) {
	role, err := user.ParseRole(dto.Role)
	if err != nil {
		return nil, err
	}

	return user.RestoreUser(
		dto.ID,
		dto.Name,
		dto.Email,
		dto.PasswordHash,
		role,
		dto.Active,
		dto.RegisteredAt.UTC(),
	)
}
