package queries

import (
	"context"

	"hothour/internal/pkg/errs"
)

var ErrViewNotAllowed = errs.New("not allowed to view this reservation")

type ReservationQueries interface {
	GetByID(ctx context.Context, actorID int64, isAdmin bool, id int64) (*ReservationView, error)
	GetByCode(ctx context.Context, code string) (*ReservationView, error)
	ListByUser(ctx context.Context, userID int64) ([]*ReservationView, error)
	ListAll(ctx context.Context) ([]*ReservationView, error)
}

type ReservationViewRepo interface {
	FindViewByID(ctx context.Context, id int64) (*ReservationView, error)
	FindViewByCode(ctx context.Context, code string) (*ReservationView, error)
	ListViewsByUser(ctx context.Context, userID int64) ([]*ReservationView, error)
	ListAllViews(ctx context.Context) ([]*ReservationView, error)
}

type reservationQueriesImpl struct {
	repo ReservationViewRepo
}

func NewReservationQueries(repo ReservationViewRepo) ReservationQueries {
	return &reservationQueriesImpl{repo: repo}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, actorID int64, isAdmin bool, id int64) (*ReservationView, error) {
	view, err := q.repo.FindViewByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !isAdmin && view.UserID != actorID {
		return nil, ErrViewNotAllowed
	}
	return view, nil
}

// GetByCode backs the on-site desk lookup: staff read back the code the
// customer presents.
func (q *reservationQueriesImpl) GetByCode(ctx context.Context, code string) (*ReservationView, error) {
	return q.repo.FindViewByCode(ctx, code)
}

func (q *reservationQueriesImpl) ListByUser(ctx context.Context, userID int64) ([]*ReservationView, error) {
	return q.repo.ListViewsByUser(ctx, userID)
}

func (q *reservationQueriesImpl) ListAll(ctx context.Context) ([]*ReservationView, error) {
	return q.repo.ListAllViews(ctx)
}
