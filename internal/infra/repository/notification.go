package repository

import (
	"context"

	"hothour/internal/domain/notification"
	"hothour/internal/infra"
	"hothour/internal/infra/db"
	"hothour/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
)

type NotificationRepository struct {
	db db.DBTX
}

func NewNotificationRepository(pool *pgxpool.Pool) *NotificationRepository {
	return &NotificationRepository{db: pool}
}

func (r *NotificationRepository) CreateBatch(ctx context.Context, items []*notification.Notification) error {
	for _, n := range items {
		_, err := r.db.Exec(ctx, `
			INSERT INTO notifications (user_id, reservation_id, auction_id, type, title, message)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			n.UserID(), n.ReservationID(), n.AuctionID(), n.Type().String(), n.Title(), n.Message())
		if err != nil {
			return infra.WrapRepoErr("failed to create notification", err)
		}
	}
	return nil
}

func (r *NotificationRepository) ListByUser(ctx context.Context, userID int64, unreadOnly bool) ([]*queries.NotificationView, error) {
	query := `
		SELECT id, reservation_id, auction_id, type, title, message, is_read, created_at
		FROM notifications WHERE user_id = $1`
	if unreadOnly {
		query += ` AND is_read = FALSE`
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list notifications", err)
	}
	defer rows.Close()

	var result []*queries.NotificationView
	for rows.Next() {
		var v queries.NotificationView
		if err := rows.Scan(&v.ID, &v.ReservationID, &v.AuctionID, &v.Type, &v.Title, &v.Message, &v.IsRead, &v.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan notification row", err)
		}
		result = append(result, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read notification rows", err)
	}
	return result, nil
}

// MarkRead is scoped by owner so one admin cannot touch another's inbox.
func (r *NotificationRepository) MarkRead(ctx context.Context, id, userID int64) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE notifications SET is_read = TRUE WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return infra.WrapRepoErr("failed to mark notification read", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("notification not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *NotificationRepository) MarkAllRead(ctx context.Context, userID int64) error {
	_, err := r.db.Exec(ctx, `
		UPDATE notifications SET is_read = TRUE WHERE user_id = $1 AND is_read = FALSE`, userID)
	if err != nil {
		return infra.WrapRepoErr("failed to mark notifications read", err)
	}
	return nil
}

func (r *NotificationRepository) DeleteRead(ctx context.Context, userID int64) (int64, error) {
	tag, err := r.db.Exec(ctx, `
		DELETE FROM notifications WHERE user_id = $1 AND is_read = TRUE`, userID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete read notifications", err)
	}
	return tag.RowsAffected(), nil
}

func (r *NotificationRepository) CountUnread(ctx context.Context, userID int64) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `
		SELECT count(*) FROM notifications WHERE user_id = $1 AND is_read = FALSE`, userID).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count unread notifications", err)
	}
	return count, nil
}
