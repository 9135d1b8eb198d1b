package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikiasgoitom/carkenya/internal/domain/apperr"
	"github.com/mikiasgoitom/carkenya/internal/domain/entity"
)

func TestNotificationUsecase_MarkAsRead(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	owner, _ := env.register(t, "owner@carkenya.com", "Owner")
	other, _ := env.register(t, "other@carkenya.com", "Other")

	env.notifications.Notify(ctx, owner.ID, entity.NotificationTypeAdmin, "Welcome", "Glad you're here", nil)
	notes, err := env.notifications.ListNotifications(ctx, owner)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.False(t, notes[0].IsRead)

	err = env.notifications.MarkAsRead(ctx, other, notes[0].ID)
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))

	require.NoError(t, env.notifications.MarkAsRead(ctx, owner, notes[0].ID))
	notes, err = env.notifications.ListNotifications(ctx, owner)
	require.NoError(t, err)
	assert.True(t, notes[0].IsRead)

	err = env.notifications.MarkAsRead(ctx, owner, "notif_missing")
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	_, err = env.notifications.ListNotifications(ctx, nil)
	assert.Equal(t, apperr.KindUnauthenticated, apperr.KindOf(err))

	empty, err := env.notifications.ListNotifications(ctx, other)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
