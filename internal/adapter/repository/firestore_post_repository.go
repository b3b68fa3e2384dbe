package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"taacheck/internal/domain/entity"
	"taacheck/internal/domain/repository"
)

type firestorePostRepository struct {
	client *firestore.Client
}

func NewFirestorePostRepository(client *firestore.Client) repository.PostRepository {
	return &firestorePostRepository{
		client: client,
	}
}

func (r *firestorePostRepository) Create(ctx context.Context, post *entity.Post) error {
	ref, _, err := r.client.Collection("posts").Add(ctx, post)
	if err != nil {
		return err
	}
	post.ID = ref.ID
	return nil
}

func (r *firestorePostRepository) GetByID(ctx context.Context, id string) (*entity.Post, error) {
	doc, err := r.client.Collection("posts").Doc(id).Get(ctx)
	if err != nil {
		return nil, err
	}

	var post entity.Post
	if err := doc.DataTo(&post); err != nil {
		return nil, err
	}
	post.ID = doc.Ref.ID

	return &post, nil
}

// Update is a full overwrite; edits resubmit the whole document.
func (r *firestorePostRepository) Update(ctx context.Context, post *entity.Post) error {
	_, err := r.client.Collection("posts").Doc(post.ID).Set(ctx, post)
	return err
}

func (r *firestorePostRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("posts").Doc(id).Delete(ctx)
	return err
}

func (r *firestorePostRepository) List(ctx context.Context) ([]*entity.Post, error) {
	query := r.client.Collection("posts").OrderBy("likes", firestore.Desc)
	return r.collectPosts(query.Documents(ctx))
}

func (r *firestorePostRepository) ListByAuthor(ctx context.Context, userID string) ([]*entity.Post, error) {
	query := r.client.Collection("posts").Where("userId", "==", userID)
	return r.collectPosts(query.Documents(ctx))
}

func (r *firestorePostRepository) collectPosts(iter *firestore.DocumentIterator) ([]*entity.Post, error) {
	var posts []*entity.Post
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}

		var post entity.Post
		if err := doc.DataTo(&post); err != nil {
			return nil, err
		}
		post.ID = doc.Ref.ID
		posts = append(posts, &post)
	}
	return posts, nil
}

func (r *firestorePostRepository) HasLike(ctx context.Context, postID, userID string) (bool, error) {
	_, err := r.client.Collection("posts").Doc(postID).Collection("likes").Doc(userID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *firestorePostRepository) SetLike(ctx context.Context, postID, userID string) error {
	_, err := r.client.Collection("posts").Doc(postID).Collection("likes").Doc(userID).Set(ctx, map[string]interface{}{
		"liked": true,
	})
	return err
}

func (r *firestorePostRepository) RemoveLike(ctx context.Context, postID, userID string) error {
	_, err := r.client.Collection("posts").Doc(postID).Collection("likes").Doc(userID).Delete(ctx)
	return err
}

// IncrementLikes issues a server-side delta on the counter field. It is paired
// with SetLike/RemoveLike by the caller; the two writes are independent and
// carry no cross-write guarantee.
func (r *firestorePostRepository) IncrementLikes(ctx context.Context, postID string, delta int) error {
	_, err := r.client.Collection("posts").Doc(postID).Update(ctx, []firestore.Update{
		{Path: "likes", Value: firestore.Increment(delta)},
	})
	return err
}
