package usecasecontract

import (
	"context"

	"github.com/mikiasgoitom/carkenya/internal/domain/entity"
)

type INotificationUseCase interface {
	ListNotifications(ctx context.Context, caller *entity.User) ([]*entity.Notification, error)
	MarkAsRead(ctx context.Context, caller *entity.User, notificationID string) error
	// Notify stores a notification for userID. Failures are logged, not returned.
	Notify(ctx context.Context, userID string, kind entity.NotificationType, title, message string, data map[string]interface{})
}
