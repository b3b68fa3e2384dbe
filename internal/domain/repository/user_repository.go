package repository

import (
	"context"

	"taacheck/internal/domain/entity"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetByServiceCode(ctx context.Context, code string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	FindByRole(ctx context.Context, role string, limit, offset int) ([]*entity.User, int64, error)
	SetNotificationFlag(ctx context.Context, id string, value bool) error
}
