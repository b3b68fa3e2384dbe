package usecase

import (
	"context"
	"log"

	"taacheck/internal/domain/repository"
)

// Start destinations for the mobile client's cold-start routing gate.
const (
	DestinationOnboarding = "onboarding"
	DestinationSignup     = "signup"
	DestinationHome       = "home"
)

type SessionUseCase struct {
	userRepo     repository.UserRepository
	firebaseAuth FirebaseAuthClient
}

func NewSessionUseCase(userRepo repository.UserRepository, firebaseAuth FirebaseAuthClient) *SessionUseCase {
	return &SessionUseCase{
		userRepo:     userRepo,
		firebaseAuth: firebaseAuth,
	}
}

// Route evaluates the launch decision tree: onboarding flag first, then the
// identity token, then profile existence. A profile read failure routes the
// same as a missing profile, and in both cases the identity is signed out so
// a stale account cannot loop back to home.
func (uc *SessionUseCase) Route(ctx context.Context, onboardingCompleted bool, idToken string) string {
	if !onboardingCompleted {
		return DestinationOnboarding
	}

	if idToken == "" {
		return DestinationSignup
	}

	uid, err := uc.firebaseAuth.VerifyToken(ctx, idToken)
	if err != nil {
		return DestinationSignup
	}

	if _, err := uc.userRepo.GetByID(ctx, uid); err != nil {
		if err := uc.firebaseAuth.SignOut(ctx, uid); err != nil {
			log.Printf("Failed to sign out %s during routing: %v", uid, err)
		}
		return DestinationSignup
	}

	return DestinationHome
}
