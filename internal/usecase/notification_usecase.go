package usecase

import (
	"context"

	"github.com/mikiasgoitom/carkenya/internal/domain/apperr"
	"github.com/mikiasgoitom/carkenya/internal/domain/contract"
	"github.com/mikiasgoitom/carkenya/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/carkenya/internal/usecase/contract"
)

const errNotificationNotFound = "notification not found"

type NotificationUsecase struct {
	notificationRepo contract.INotificationRepository
	uuidgen          contract.IUUIDGenerator
	clock            contract.IClock
	logger           usecasecontract.IAppLogger
}

func NewNotificationUsecase(
	notificationRepo contract.INotificationRepository,
	uuidgen contract.IUUIDGenerator,
	clock contract.IClock,
	logger usecasecontract.IAppLogger,
) *NotificationUsecase {
	return &NotificationUsecase{
		notificationRepo: notificationRepo,
		uuidgen:          uuidgen,
		clock:            clock,
		logger:           logger,
	}
}

var _ usecasecontract.INotificationUseCase = (*NotificationUsecase)(nil)

func (uc *NotificationUsecase) ListNotifications(ctx context.Context, caller *entity.User) ([]*entity.Notification, error) {
	if err := requireAuthenticated(caller); err != nil {
		return nil, err
	}
	list, err := uc.notificationRepo.ListNotificationsByUser(ctx, caller.ID)
	if err != nil {
		return nil, internal(uc.logger, "failed to list notifications", err)
	}
	return list, nil
}

func (uc *NotificationUsecase) MarkAsRead(ctx context.Context, caller *entity.User, notificationID string) error {
	if err := requireAuthenticated(caller); err != nil {
		return err
	}
	n, err := uc.notificationRepo.GetNotificationByID(ctx, notificationID)
	if err != nil {
		return internal(uc.logger, "failed to load notification", err)
	}
	if n == nil {
		return apperr.NotFound(errNotificationNotFound)
	}
	if err := requireOwnerOrAdmin(caller, n.UserID, "cannot read other users notifications"); err != nil {
		return err
	}
	if _, err := uc.notificationRepo.MarkNotificationAsRead(ctx, notificationID); err != nil {
		return internal(uc.logger, "failed to update notification", err)
	}
	return nil
}

func (uc *NotificationUsecase) Notify(ctx context.Context, userID string, kind entity.NotificationType, title, message string, data map[string]interface{}) {
	n := &entity.Notification{
		ID:        uc.uuidgen.NewID("notif"),
		UserID:    userID,
		Type:      kind,
		Title:     title,
		Message:   message,
		CreatedAt: uc.clock.Now(),
		Data:      data,
	}
	if _, err := uc.notificationRepo.CreateNotification(ctx, n); err != nil {
		uc.logger.Warnf("failed to store %s notification for %s: %v", kind, userID, err)
	}
}
