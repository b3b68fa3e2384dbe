package usecase

import (
	"context"
	"time"

	"taacheck/internal/domain/entity"
	"taacheck/internal/domain/repository"
	"taacheck/pkg/errors"
)

type PostUseCase struct {
	postRepo repository.PostRepository
}

func NewPostUseCase(postRepo repository.PostRepository) *PostUseCase {
	return &PostUseCase{
		postRepo: postRepo,
	}
}

type PostInput struct {
	Title       string
	Location    string
	Description string
}

type LikeResult struct {
	Liked bool `json:"liked"`
	Likes int  `json:"likes"`
}

// ListFeed returns every post, most-liked first.
func (uc *PostUseCase) ListFeed(ctx context.Context) ([]*entity.Post, error) {
	posts, err := uc.postRepo.List(ctx)
	if err != nil {
		return nil, errors.Internal("Failed to load posts", err)
	}
	return posts, nil
}

func (uc *PostUseCase) ListByAuthor(ctx context.Context, uid string) ([]*entity.Post, error) {
	posts, err := uc.postRepo.ListByAuthor(ctx, uid)
	if err != nil {
		return nil, errors.Internal("Failed to load posts", err)
	}
	return posts, nil
}

func (uc *PostUseCase) Create(ctx context.Context, uid string, input PostInput) (*entity.Post, error) {
	post := &entity.Post{
		UserID:      uid,
		Username:    uid,
		Title:       input.Title,
		Location:    input.Location,
		Description: input.Description,
		Timestamp:   time.Now().UnixMilli(),
	}

	if err := uc.postRepo.Create(ctx, post); err != nil {
		return nil, errors.Internal("Failed to save post", err)
	}

	return post, nil
}

// Update overwrites the whole document; the edit screen resubmits every field.
func (uc *PostUseCase) Update(ctx context.Context, uid, postID string, input PostInput) (*entity.Post, error) {
	post, err := uc.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, errors.NotFound("Post", err)
	}

	if post.UserID != uid {
		return nil, errors.Forbidden("You don't have permission to update this post", nil)
	}

	post.Title = input.Title
	post.Location = input.Location
	post.Description = input.Description
	post.Timestamp = time.Now().UnixMilli()

	if err := uc.postRepo.Update(ctx, post); err != nil {
		return nil, errors.Internal("Failed to update post", err)
	}

	return post, nil
}

func (uc *PostUseCase) Delete(ctx context.Context, uid, postID string) error {
	post, err := uc.postRepo.GetByID(ctx, postID)
	if err != nil {
		return errors.NotFound("Post", err)
	}

	if post.UserID != uid {
		return errors.Forbidden("You don't have permission to delete this post", nil)
	}

	if err := uc.postRepo.Delete(ctx, postID); err != nil {
		return errors.Internal("Failed to delete post", err)
	}

	return nil
}

// ToggleLike flips the (post, viewer) like state. The like record write and
// the counter increment are issued as two independent writes; the returned
// count is the base count adjusted locally.
func (uc *PostUseCase) ToggleLike(ctx context.Context, uid, postID string) (*LikeResult, error) {
	post, err := uc.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, errors.NotFound("Post", err)
	}

	liked, err := uc.postRepo.HasLike(ctx, postID, uid)
	if err != nil {
		return nil, errors.Internal("Failed to check like state", err)
	}

	if !liked {
		if err := uc.postRepo.SetLike(ctx, postID, uid); err != nil {
			return nil, errors.Internal("Failed to save like", err)
		}
		if err := uc.postRepo.IncrementLikes(ctx, postID, 1); err != nil {
			return nil, errors.Internal("Failed to update like count", err)
		}
		return &LikeResult{Liked: true, Likes: post.Likes + 1}, nil
	}

	if err := uc.postRepo.RemoveLike(ctx, postID, uid); err != nil {
		return nil, errors.Internal("Failed to remove like", err)
	}
	if err := uc.postRepo.IncrementLikes(ctx, postID, -1); err != nil {
		return nil, errors.Internal("Failed to update like count", err)
	}
	return &LikeResult{Liked: false, Likes: post.Likes - 1}, nil
}
