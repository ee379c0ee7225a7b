package commands

import (
	"context"

	"hothour/internal/infra"
	"hothour/internal/pkg/errs"
)

var ErrNotificationNotFound = errs.New("notification not found")

type NotificationCommands interface {
	MarkRead(ctx context.Context, id, userID int64) error
	MarkAllRead(ctx context.Context, userID int64) error
	DeleteRead(ctx context.Context, userID int64) (int64, error)
}

type notificationCommandsImpl struct {
	notificationRepo NotificationRepository
}

func NewNotificationCommands(notificationRepo NotificationRepository) NotificationCommands {
	return &notificationCommandsImpl{notificationRepo: notificationRepo}
}

func (n *notificationCommandsImpl) MarkRead(ctx context.Context, id, userID int64) error {
	if err := n.notificationRepo.MarkRead(ctx, id, userID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrNotificationNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (n *notificationCommandsImpl) MarkAllRead(ctx context.Context, userID int64) error {
	if err := n.notificationRepo.MarkAllRead(ctx, userID); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

// DeleteRead clears the already-read part of the inbox and reports how many
// entries were removed.
func (n *notificationCommandsImpl) DeleteRead(ctx context.Context, userID int64) (int64, error) {
	deleted, err := n.notificationRepo.DeleteRead(ctx, userID)
	if err != nil {
		return 0, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return deleted, nil
}
