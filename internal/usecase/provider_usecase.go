package usecase

import (
	"context"
	"strings"

	"taacheck/internal/domain/entity"
	"taacheck/internal/domain/repository"
	"taacheck/pkg/errors"
)

type ProviderUseCase struct {
	userRepo repository.UserRepository
}

func NewProviderUseCase(userRepo repository.UserRepository) *ProviderUseCase {
	return &ProviderUseCase{
		userRepo: userRepo,
	}
}

// List returns the provider directory, optionally narrowed by exact
// case-insensitive profession match. Firestore cannot compare
// case-insensitively, so the profession filter must see every provider
// before any page is cut; pagination then applies to the filtered set.
func (uc *ProviderUseCase) List(ctx context.Context, profession string, limit, offset int) ([]*entity.User, int64, error) {
	if profession == "" {
		providers, total, err := uc.userRepo.FindByRole(ctx, entity.RoleServiceProvider, limit, offset)
		if err != nil {
			return nil, 0, errors.Internal("Failed to load service providers", err)
		}
		return providers, total, nil
	}

	providers, _, err := uc.userRepo.FindByRole(ctx, entity.RoleServiceProvider, 0, 0)
	if err != nil {
		return nil, 0, errors.Internal("Failed to load service providers", err)
	}

	filtered := make([]*entity.User, 0, len(providers))
	for _, provider := range providers {
		if strings.EqualFold(provider.Profession, profession) {
			filtered = append(filtered, provider)
		}
	}

	total := int64(len(filtered))
	if offset > 0 {
		if offset >= len(filtered) {
			return []*entity.User{}, total, nil
		}
		filtered = filtered[offset:]
	}
	if limit > 0 && limit < len(filtered) {
		filtered = filtered[:limit]
	}
	return filtered, total, nil
}

func (uc *ProviderUseCase) Get(ctx context.Context, id string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NotFound("Service provider", err)
	}

	if !user.IsProvider() {
		return nil, errors.NotFound("Service provider", nil)
	}

	return user, nil
}
