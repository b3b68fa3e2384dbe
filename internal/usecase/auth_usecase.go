package usecase

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"taacheck/internal/domain/entity"
	"taacheck/internal/domain/repository"
	"taacheck/pkg/errors"
)

type AuthUseCase struct {
	userRepo     repository.UserRepository
	firebaseAuth FirebaseAuthClient
}

func NewAuthUseCase(userRepo repository.UserRepository, firebaseAuth FirebaseAuthClient) *AuthUseCase {
	return &AuthUseCase{
		userRepo:     userRepo,
		firebaseAuth: firebaseAuth,
	}
}

type RegisterInput struct {
	FullName        string
	PhoneNumber     string
	Email           string
	Password        string
	ConfirmPassword string
	County          string
	Gender          string

	// Provider-only fields
	Profession string
	Experience string
	IdNumber   string
	Bio        string
}

type AuthResult struct {
	User  *entity.User
	Token string
}

// Register creates a normal user account: an identity in Firebase Auth and a
// role="user" profile document keyed by the new uid.
func (uc *AuthUseCase) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	if input.Password != input.ConfirmPassword {
		return nil, errors.BadRequest("Passwords do not match", nil)
	}

	existingUser, err := uc.userRepo.GetByEmail(ctx, input.Email)
	if err == nil && existingUser != nil {
		return nil, errors.BadRequest("Email already in use", nil)
	}

	uid, err := uc.firebaseAuth.CreateUser(ctx, input.Email, input.Password, input.FullName)
	if err != nil {
		return nil, errors.Internal("Failed to create user in authentication provider", err)
	}

	now := time.Now()
	user := &entity.User{
		ID:          uid,
		FullName:    input.FullName,
		PhoneNumber: input.PhoneNumber,
		Email:       input.Email,
		County:      input.County,
		Gender:      input.Gender,
		Role:        entity.RoleUser,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, errors.Internal("Failed to create user record", err)
	}

	token, err := uc.firebaseAuth.SignInWithEmailPassword(input.Email, input.Password)
	if err != nil {
		return nil, errors.Internal("Failed to generate authentication token", err)
	}

	return &AuthResult{
		User:  user,
		Token: token,
	}, nil
}

// RegisterProvider creates a service-provider account. The issued service
// code is the shared secret later checked by the acceptance gate.
func (uc *AuthUseCase) RegisterProvider(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	if input.Password != input.ConfirmPassword {
		return nil, errors.BadRequest("Passwords do not match", nil)
	}

	existingUser, err := uc.userRepo.GetByEmail(ctx, input.Email)
	if err == nil && existingUser != nil {
		return nil, errors.BadRequest("Email already in use", nil)
	}

	uid, err := uc.firebaseAuth.CreateUser(ctx, input.Email, input.Password, input.FullName)
	if err != nil {
		return nil, errors.Internal("Failed to create user in authentication provider", err)
	}

	now := time.Now()
	user := &entity.User{
		ID:            uid,
		FullName:      input.FullName,
		PhoneNumber:   input.PhoneNumber,
		Email:         input.Email,
		County:        input.County,
		Gender:        input.Gender,
		Role:          entity.RoleServiceProvider,
		Profession:    input.Profession,
		Experience:    input.Experience,
		IdNumber:      input.IdNumber,
		Bio:           input.Bio,
		Rating:        0,
		CompletedJobs: 0,
		ServiceCode:   newServiceCode(),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, errors.Internal("Failed to create user record", err)
	}

	token, err := uc.firebaseAuth.SignInWithEmailPassword(input.Email, input.Password)
	if err != nil {
		return nil, errors.Internal("Failed to generate authentication token", err)
	}

	return &AuthResult{
		User:  user,
		Token: token,
	}, nil
}

func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	token, err := uc.firebaseAuth.SignInWithEmailPassword(email, password)
	if err != nil {
		log.Printf("Login failed: %v", err)
		return nil, errors.Unauthorized("Invalid credentials", err)
	}

	uid, err := uc.firebaseAuth.VerifyToken(ctx, token)
	if err != nil {
		log.Printf("Token verification failed: %v", err)
		return nil, errors.Internal("Failed to verify token", err)
	}

	user, err := uc.userRepo.GetByID(ctx, uid)
	if err != nil {
		log.Printf("Failed to get user by ID: %v", err)
		return nil, errors.NotFound("User", err)
	}

	return &AuthResult{
		User:  user,
		Token: token,
	}, nil
}

func (uc *AuthUseCase) Logout(ctx context.Context, uid string) error {
	if err := uc.firebaseAuth.SignOut(ctx, uid); err != nil {
		return errors.Internal("Failed to sign out", err)
	}
	return nil
}

// newServiceCode mints the short provider code shared with requesters, the
// first 8 characters of a random UUID.
func newServiceCode() string {
	return uuid.New().String()[:8]
}
