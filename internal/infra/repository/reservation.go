package repository

import (
	"context"
	"time"

	"hothour/internal/domain/money"
	"hothour/internal/domain/reservation"
	"hothour/internal/infra"
	"hothour/internal/infra/db"
	"hothour/internal/pkg/pgconv"
	"hothour/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

const reservationViewQuery = `
	SELECT r.id, r.auction_id, a.title, r.user_id, u.email,
	       r.booking_code, r.locked_price_cents, r.status,
	       r.cancel_source, r.cancelled_at,
	       COALESCE(a.scheduled_at, a.end_time) AS service_time,
	       r.reserved_at
	FROM reservations r
	JOIN auctions a ON a.id = r.auction_id
	JOIN users u ON u.id = r.user_id`

type ReservationRepository struct {
	db db.DBTX
}

func NewReservationRepository(pool *pgxpool.Pool) *ReservationRepository {
	return &ReservationRepository{db: pool}
}

// Create inserts the winning booking inside the caller's transaction. A
// unique violation on auction_id surfaces as KindDuplicateKey: someone else
// already holds this auction.
func (r *ReservationRepository) Create(ctx context.Context, tx db.DBTX, res *reservation.Reservation) (int64, error) {
	var id int64
	err := tx.QueryRow(ctx, `
		INSERT INTO reservations (auction_id, user_id, booking_code, locked_price_cents, status, reserved_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		res.AuctionID(), res.UserID(), res.BookingCode(),
		res.LockedPrice().Cents(), res.Status().String(), res.ReservedAt(),
	).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create reservation", err)
	}
	return id, nil
}

func (r *ReservationRepository) FindByID(ctx context.Context, id int64) (*reservation.Reservation, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, auction_id, user_id, booking_code, locked_price_cents, status, reserved_at
		FROM reservations WHERE id = $1`, id)
	res, err := scanReservation(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation", err)
	}
	return res, nil
}

func (r *ReservationRepository) FindByAuctionID(ctx context.Context, auctionID int64) (*reservation.Reservation, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, auction_id, user_id, booking_code, locked_price_cents, status, reserved_at
		FROM reservations WHERE auction_id = $1`, auctionID)
	res, err := scanReservation(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by auction", err)
	}
	return res, nil
}

func (r *ReservationRepository) Cancel(ctx context.Context, id int64, source reservation.CancelSource, at time.Time) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE reservations
		SET status = 'CANCELLED', cancel_source = $2, cancelled_at = $3, updated_at = now()
		WHERE id = $1`,
		id, string(source), at)
	if err != nil {
		return infra.WrapRepoErr("failed to cancel reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ReservationRepository) Complete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE reservations SET status = 'COMPLETED', updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to complete reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

// ListPendingOverdue returns pending bookings whose service time has already
// passed. The no-show sweeper cancels these.
func (r *ReservationRepository) ListPendingOverdue(ctx context.Context, now time.Time) ([]*reservation.Reservation, error) {
	rows, err := r.db.Query(ctx, `
		SELECT r.id, r.auction_id, r.user_id, r.booking_code, r.locked_price_cents, r.status, r.reserved_at
		FROM reservations r
		JOIN auctions a ON a.id = r.auction_id
		WHERE r.status = 'PENDING_ON_SITE'
		  AND COALESCE(a.scheduled_at, a.end_time) <= $1
		ORDER BY r.id`, now)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list overdue reservations", err)
	}
	defer rows.Close()

	var result []*reservation.Reservation
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation row", err)
		}
		result = append(result, res)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read reservation rows", err)
	}
	return result, nil
}

func (r *ReservationRepository) FindViewByID(ctx context.Context, id int64) (*queries.ReservationView, error) {
	row := r.db.QueryRow(ctx, reservationViewQuery+` WHERE r.id = $1`, id)
	view, err := scanReservationView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation view", err)
	}
	return view, nil
}

func (r *ReservationRepository) FindViewByCode(ctx context.Context, code string) (*queries.ReservationView, error) {
	row := r.db.QueryRow(ctx, reservationViewQuery+` WHERE r.booking_code = $1`, code)
	view, err := scanReservationView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by code", err)
	}
	return view, nil
}

func (r *ReservationRepository) ListViewsByUser(ctx context.Context, userID int64) ([]*queries.ReservationView, error) {
	rows, err := r.db.Query(ctx, reservationViewQuery+` WHERE r.user_id = $1 ORDER BY r.reserved_at DESC`, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations by user", err)
	}
	defer rows.Close()
	return collectReservationViews(rows)
}

func (r *ReservationRepository) ListAllViews(ctx context.Context) ([]*queries.ReservationView, error) {
	rows, err := r.db.Query(ctx, reservationViewQuery+` ORDER BY r.reserved_at DESC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	defer rows.Close()
	return collectReservationViews(rows)
}

func scanReservation(row pgx.Row) (*reservation.Reservation, error) {
	var (
		id, auctionID, userID int64
		bookingCode           string
		lockedCents           int64
		status                string
		reservedAt            time.Time
	)
	if err := row.Scan(&id, &auctionID, &userID, &bookingCode, &lockedCents, &status, &reservedAt); err != nil {
		return nil, err
	}
	return reservation.ReconstructReservation(
		id, auctionID, userID, bookingCode,
		money.FromCents(lockedCents),
		reservation.Status(status),
		reservedAt,
	), nil
}

func scanReservationView(row pgx.Row) (*queries.ReservationView, error) {
	var (
		v            queries.ReservationView
		lockedCents  int64
		cancelSource pgtype.Text
		cancelledAt  pgtype.Timestamptz
	)
	err := row.Scan(
		&v.ID, &v.AuctionID, &v.AuctionTitle, &v.UserID, &v.UserEmail,
		&v.BookingCode, &lockedCents, &v.Status,
		&cancelSource, &cancelledAt, &v.ServiceTime, &v.ReservedAt,
	)
	if err != nil {
		return nil, err
	}
	v.LockedPrice = money.FromCents(lockedCents).String()
	v.CancelSource = pgconv.StringPtrFromPgtype(cancelSource)
	v.CancelledAt = pgconv.TimePtrFromPgtype(cancelledAt)
	return &v, nil
}

func collectReservationViews(rows pgx.Rows) ([]*queries.ReservationView, error) {
	var result []*queries.ReservationView
	for rows.Next() {
		v, err := scanReservationView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation row", err)
		}
		result = append(result, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read reservation rows", err)
	}
	return result, nil
}
