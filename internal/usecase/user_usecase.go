package usecase

import (
	"context"
	"io"
	"time"

	"taacheck/internal/domain/entity"
	"taacheck/internal/domain/repository"
	"taacheck/pkg/errors"
)

type UserUseCase struct {
	userRepo     repository.UserRepository
	messageRepo  repository.MessageRepository
	imageStorage ImageStorage
}

func NewUserUseCase(userRepo repository.UserRepository, messageRepo repository.MessageRepository, imageStorage ImageStorage) *UserUseCase {
	return &UserUseCase{
		userRepo:     userRepo,
		messageRepo:  messageRepo,
		imageStorage: imageStorage,
	}
}

type UpdateProfileInput struct {
	FullName    string
	PhoneNumber string
	County      string
	Gender      string
	Profession  string
	Experience  string
	Bio         string
}

func (uc *UserUseCase) GetProfile(ctx context.Context, uid string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, uid)
	if err != nil {
		return nil, errors.NotFound("User", err)
	}
	return user, nil
}

func (uc *UserUseCase) UpdateProfile(ctx context.Context, uid string, input UpdateProfileInput) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, uid)
	if err != nil {
		return nil, errors.NotFound("User", err)
	}

	if input.FullName != "" {
		user.FullName = input.FullName
	}
	if input.PhoneNumber != "" {
		user.PhoneNumber = input.PhoneNumber
	}
	if input.County != "" {
		user.County = input.County
	}
	if input.Gender != "" {
		user.Gender = input.Gender
	}
	if input.Profession != "" {
		user.Profession = input.Profession
	}
	if input.Experience != "" {
		user.Experience = input.Experience
	}
	if input.Bio != "" {
		user.Bio = input.Bio
	}
	user.UpdatedAt = time.Now()

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Internal("Failed to update profile", err)
	}

	return user, nil
}

// SwitchRole flips the profile between normal user and service provider. A
// first switch to provider issues the service code and zeroed counters; the
// code is kept on later switches so a returning provider keeps their identity.
func (uc *UserUseCase) SwitchRole(ctx context.Context, uid string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, uid)
	if err != nil {
		return nil, errors.NotFound("User", err)
	}

	if user.IsProvider() {
		user.Role = entity.RoleUser
	} else {
		user.Role = entity.RoleServiceProvider
		if user.ServiceCode == "" {
			user.ServiceCode = newServiceCode()
		}
	}
	user.UpdatedAt = time.Now()

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Internal("Failed to switch role", err)
	}

	return user, nil
}

func (uc *UserUseCase) ListMessages(ctx context.Context, uid string) ([]*entity.Message, error) {
	messages, err := uc.messageRepo.ListByUser(ctx, uid)
	if err != nil {
		return nil, errors.Internal("Failed to load messages", err)
	}
	return messages, nil
}

func (uc *UserUseCase) UploadAvatar(ctx context.Context, uid string, file io.Reader, contentType string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, uid)
	if err != nil {
		return nil, errors.NotFound("User", err)
	}

	url, err := uc.imageStorage.UploadProfileImage(ctx, file, contentType)
	if err != nil {
		return nil, errors.BadRequest("Failed to upload image", err)
	}

	user.ProfileImageUrl = url
	user.UpdatedAt = time.Now()
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Internal("Failed to save profile image", err)
	}

	return user, nil
}
