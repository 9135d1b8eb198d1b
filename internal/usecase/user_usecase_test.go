package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikiasgoitom/carkenya/internal/domain/apperr"
	"github.com/mikiasgoitom/carkenya/internal/domain/entity"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestUserUsecase_ListUsersAdminOnly(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	member, _ := env.register(t, "member@carkenya.com", "Member")

	_, err := env.userUC.ListUsers(ctx, nil)
	assert.Equal(t, apperr.KindUnauthenticated, apperr.KindOf(err))

	_, err = env.userUC.ListUsers(ctx, member)
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))

	users, err := env.userUC.ListUsers(ctx, env.admin)
	require.NoError(t, err)
	assert.Len(t, users, 3)
	assert.Equal(t, SeedAdminID, users[0].ID)
}

func TestUserUsecase_UpdateUser(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice, _ := env.register(t, "alice@carkenya.com", "Alice")
	bob, _ := env.register(t, "bob@carkenya.com", "Bob")

	updated, err := env.userUC.UpdateUser(ctx, alice, alice.ID, entity.UserPatch{
		Bio:            strPtr(""),
		FavoriteBrands: []string{"Subaru"},
	})
	require.NoError(t, err)
	assert.Equal(t, "", updated.Bio)
	assert.Equal(t, []string{"Subaru"}, updated.FavoriteBrands)
	assert.Equal(t, "Alice", updated.Name)

	_, err = env.userUC.UpdateUser(ctx, bob, alice.ID, entity.UserPatch{Name: strPtr("Mallory")})
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))

	// ownership is checked before existence
	_, err = env.userUC.UpdateUser(ctx, bob, "user_missing", entity.UserPatch{Name: strPtr("Ghost")})
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))

	_, err = env.userUC.UpdateUser(ctx, env.admin, "user_missing", entity.UserPatch{Name: strPtr("Ghost")})
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	_, err = env.userUC.UpdateUser(ctx, alice, alice.ID, entity.UserPatch{Name: strPtr("A")})
	assert.Equal(t, apperr.KindInvalidInput, apperr.KindOf(err))

	// activation cannot be self-served through a profile update
	updated, err = env.userUC.UpdateUser(ctx, alice, alice.ID, entity.UserPatch{IsActive: boolPtr(false)})
	require.NoError(t, err)
	assert.True(t, updated.IsActive)
}

func TestUserUsecase_DeleteUserRevokesSessions(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	victim, token := env.register(t, "gone@carkenya.com", "Gone")

	err := env.userUC.DeleteUser(ctx, victim, victim.ID)
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))

	require.NoError(t, env.userUC.DeleteUser(ctx, env.admin, victim.ID))

	resolved, err := env.auth.Authenticate(ctx, token)
	require.NoError(t, err)
	assert.Nil(t, resolved)

	err = env.userUC.DeleteUser(ctx, env.admin, victim.ID)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	// the email is free again
	_, err = env.auth.Register(ctx, "gone@carkenya.com", "secret1", "Back Again")
	assert.NoError(t, err)
}

func TestUserUsecase_ToggleActive(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	member, token := env.register(t, "toggle@carkenya.com", "Toggle")

	updated, err := env.userUC.ToggleActive(ctx, env.admin, member.ID, false)
	require.NoError(t, err)
	assert.False(t, updated.IsActive)

	// the existing session now resolves to a deactivated caller
	caller, err := env.auth.Authenticate(ctx, token)
	require.NoError(t, err)
	_, err = env.blogs.CreateBlog(ctx, caller, blogInput("Blocked", true))
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))

	// public reads still work as anonymous
	_, err = env.blogs.ListBlogs(ctx, caller)
	assert.NoError(t, err)

	_, err = env.userUC.ToggleActive(ctx, env.admin, "user_missing", true)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}
