package usecase

import (
	"context"
	"io"
)

type FirebaseAuthClient interface {
	CreateUser(ctx context.Context, email, password, displayName string) (string, error)
	VerifyToken(ctx context.Context, token string) (string, error)
	SignInWithEmailPassword(email, password string) (string, error)
	SignOut(ctx context.Context, uid string) error
	DeleteUser(ctx context.Context, uid string) error
}

// Notifier pushes realtime events to a connected user, best effort.
type Notifier interface {
	NotifyUser(userID string, event interface{})
}

type ImageStorage interface {
	UploadProfileImage(ctx context.Context, file io.Reader, contentType string) (string, error)
}
