package memory

import (
	"context"

	"github.com/mikiasgoitom/carkenya/internal/domain/contract"
	"github.com/mikiasgoitom/carkenya/internal/domain/entity"
)

type NotificationRepository struct {
	store *Store
}

var _ contract.INotificationRepository = (*NotificationRepository)(nil)

func NewNotificationRepository(store *Store) *NotificationRepository {
	return &NotificationRepository{store: store}
}

func cloneNotification(n *entity.Notification) *entity.Notification {
	if n == nil {
		return nil
	}
	c := *n
	if n.Data != nil {
		c.Data = make(map[string]interface{}, len(n.Data))
		for k, v := range n.Data {
			c.Data[k] = v
		}
	}
	return &c
}

func (r *NotificationRepository) CreateNotification(ctx context.Context, n *entity.Notification) (*entity.Notification, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	s.notifications[n.ID] = cloneNotification(n)
	s.notificationOrder.add(n.ID)
	return cloneNotification(n), nil
}

func (r *NotificationRepository) GetNotificationByID(ctx context.Context, id string) (*entity.Notification, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	return cloneNotification(s.notifications[id]), nil
}

func (r *NotificationRepository) ListNotificationsByUser(ctx context.Context, userID string) ([]*entity.Notification, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []*entity.Notification{}
	s.notificationOrder.each(func(id string) bool {
		if n := s.notifications[id]; n.UserID == userID {
			out = append(out, cloneNotification(n))
		}
		return true
	})
	return out, nil
}

func (r *NotificationRepository) MarkNotificationAsRead(ctx context.Context, id string) (bool, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	n, ok := s.notifications[id]
	if !ok {
		return false, nil
	}
	n.IsRead = true
	return true, nil
}
