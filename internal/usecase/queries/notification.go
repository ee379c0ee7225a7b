package queries

import "context"

type NotificationQueries interface {
	List(ctx context.Context, userID int64, unreadOnly bool) ([]*NotificationView, error)
	UnreadCount(ctx context.Context, userID int64) (int64, error)
}

type NotificationViewRepo interface {
	ListByUser(ctx context.Context, userID int64, unreadOnly bool) ([]*NotificationView, error)
	CountUnread(ctx context.Context, userID int64) (int64, error)
}

type notificationQueriesImpl struct {
	repo NotificationViewRepo
}

func NewNotificationQueries(repo NotificationViewRepo) NotificationQueries {
	return &notificationQueriesImpl{repo: repo}
}

func (q *notificationQueriesImpl) List(ctx context.Context, userID int64, unreadOnly bool) ([]*NotificationView, error) {
	return q.repo.ListByUser(ctx, userID, unreadOnly)
}

func (q *notificationQueriesImpl) UnreadCount(ctx context.Context, userID int64) (int64, error) {
	return q.repo.CountUnread(ctx, userID)
}
