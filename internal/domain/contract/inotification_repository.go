package contract

import (
	"context"

	"github.com/mikiasgoitom/carkenya/internal/domain/entity"
)

type INotificationRepository interface {
	CreateNotification(ctx context.Context, n *entity.Notification) (*entity.Notification, error)
	GetNotificationByID(ctx context.Context, id string) (*entity.Notification, error)
	ListNotificationsByUser(ctx context.Context, userID string) ([]*entity.Notification, error)
	MarkNotificationAsRead(ctx context.Context, id string) (bool, error)
}
