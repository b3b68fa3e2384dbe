package repository

import (
	"context"

	"taacheck/internal/domain/entity"
)

type PostRepository interface {
	Create(ctx context.Context, post *entity.Post) error
	GetByID(ctx context.Context, id string) (*entity.Post, error)
	Update(ctx context.Context, post *entity.Post) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*entity.Post, error)
	ListByAuthor(ctx context.Context, userID string) ([]*entity.Post, error)
	HasLike(ctx context.Context, postID, userID string) (bool, error)
	SetLike(ctx context.Context, postID, userID string) error
	RemoveLike(ctx context.Context, postID, userID string) error
	IncrementLikes(ctx context.Context, postID string, delta int) error
}
