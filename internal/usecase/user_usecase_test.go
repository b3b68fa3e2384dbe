package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taacheck/internal/domain/entity"
)

func TestSwitchRole(t *testing.T) {
	ctx := context.Background()
	userRepo := newFakeUserRepo()
	uc := NewUserUseCase(userRepo, newFakeMessageRepo(), nil)

	userRepo.users["uid-1"] = &entity.User{ID: "uid-1", Role: entity.RoleUser}

	// First switch to provider issues a service code.
	user, err := uc.SwitchRole(ctx, "uid-1")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleServiceProvider, user.Role)
	require.Len(t, user.ServiceCode, 8)
	issued := user.ServiceCode

	// Switching back keeps the code.
	user, err = uc.SwitchRole(ctx, "uid-1")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, user.Role)
	assert.Equal(t, issued, user.ServiceCode)

	// And a later return to provider reuses it.
	user, err = uc.SwitchRole(ctx, "uid-1")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleServiceProvider, user.Role)
	assert.Equal(t, issued, user.ServiceCode)
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()
	userRepo := newFakeUserRepo()
	uc := NewUserUseCase(userRepo, newFakeMessageRepo(), nil)

	userRepo.users["uid-1"] = &entity.User{
		ID:          "uid-1",
		FullName:    "Jane Wanjiku",
		PhoneNumber: "+254700000001",
		County:      "Nairobi",
	}

	user, err := uc.UpdateProfile(ctx, "uid-1", UpdateProfileInput{County: "Mombasa"})
	require.NoError(t, err)

	// Only the provided field changes.
	assert.Equal(t, "Mombasa", user.County)
	assert.Equal(t, "Jane Wanjiku", user.FullName)
	assert.Equal(t, "+254700000001", user.PhoneNumber)
}
