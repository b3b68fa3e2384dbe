package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"taacheck/internal/domain/entity"
	"taacheck/internal/domain/repository"
)

type firestoreUserRepository struct {
	client *firestore.Client
}

func NewFirestoreUserRepository(client *firestore.Client) repository.UserRepository {
	return &firestoreUserRepository{
		client: client,
	}
}

func (r *firestoreUserRepository) Create(ctx context.Context, user *entity.User) error {
	_, err := r.client.Collection("users").Doc(user.ID).Set(ctx, user)
	return err
}

func (r *firestoreUserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	doc, err := r.client.Collection("users").Doc(id).Get(ctx)
	if err != nil {
		return nil, err
	}

	var user entity.User
	if err := doc.DataTo(&user); err != nil {
		return nil, err
	}
	user.ID = doc.Ref.ID

	return &user, nil
}

func (r *firestoreUserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := r.client.Collection("users").Where("email", "==", email).Limit(1)
	iter := query.Documents(ctx)
	doc, err := iter.Next()
	if err != nil {
		return nil, err
	}

	var user entity.User
	if err := doc.DataTo(&user); err != nil {
		return nil, err
	}
	user.ID = doc.Ref.ID

	return &user, nil
}

// GetByServiceCode resolves a provider by their issued code. Only documents
// with the serviceProvider role qualify, so a normal user can never be
// matched even if a code collides.
func (r *firestoreUserRepository) GetByServiceCode(ctx context.Context, code string) (*entity.User, error) {
	query := r.client.Collection("users").
		Where("serviceCode", "==", code).
		Where("role", "==", entity.RoleServiceProvider).
		Limit(1)
	iter := query.Documents(ctx)
	doc, err := iter.Next()
	if err != nil {
		return nil, err
	}

	var user entity.User
	if err := doc.DataTo(&user); err != nil {
		return nil, err
	}
	user.ID = doc.Ref.ID

	return &user, nil
}

func (r *firestoreUserRepository) Update(ctx context.Context, user *entity.User) error {
	updateData := map[string]interface{}{
		"fullName":        user.FullName,
		"phoneNumber":     user.PhoneNumber,
		"county":          user.County,
		"gender":          user.Gender,
		"role":            user.Role,
		"profession":      user.Profession,
		"experience":      user.Experience,
		"idNumber":        user.IdNumber,
		"bio":             user.Bio,
		"serviceCode":     user.ServiceCode,
		"profileImageUrl": user.ProfileImageUrl,
		"updatedAt":       time.Now(),
	}

	// Only include non-empty fields so a partial update never wipes
	// existing data.
	cleanUpdateData := make(map[string]interface{})
	for key, value := range updateData {
		if strVal, ok := value.(string); ok && strVal == "" {
			continue
		}
		cleanUpdateData[key] = value
	}

	_, err := r.client.Collection("users").Doc(user.ID).Set(ctx, cleanUpdateData, firestore.MergeAll)
	return err
}

func (r *firestoreUserRepository) FindByRole(ctx context.Context, role string, limit, offset int) ([]*entity.User, int64, error) {
	query := r.client.Collection("users").Where("role", "==", role)

	countDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, err
	}
	total := int64(len(countDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var users []*entity.User

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, err
		}

		var user entity.User
		if err := doc.DataTo(&user); err != nil {
			return nil, 0, err
		}
		user.ID = doc.Ref.ID
		users = append(users, &user)
	}

	return users, total, nil
}

func (r *firestoreUserRepository) SetNotificationFlag(ctx context.Context, id string, value bool) error {
	_, err := r.client.Collection("users").Doc(id).Update(ctx, []firestore.Update{
		{Path: "hasNewNotification", Value: value},
	})
	return err
}
