package repository

import (
	"context"
	"time"

	"hothour/internal/domain/auction"
	"hothour/internal/domain/money"
	"hothour/internal/infra"
	"hothour/internal/infra/db"
	"hothour/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

const auctionColumns = `
	id, title, description,
	start_price_cents, floor_price_cents, current_price_cents,
	drop_amount_cents, drop_interval_mins,
	turbo_enabled, turbo_trigger_mins, turbo_interval_mins, turbo_drop_cents,
	turbo_started_at, start_time, end_time, scheduled_at,
	allowed_gender, status, created_at, updated_at`

type AuctionRepository struct {
	db db.DBTX
}

func NewAuctionRepository(pool *pgxpool.Pool) *AuctionRepository {
	return &AuctionRepository{db: pool}
}

func (r *AuctionRepository) Create(ctx context.Context, a *auction.Auction) (int64, error) {
	p := a.Pricing()
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO auctions (
			title, description,
			start_price_cents, floor_price_cents, current_price_cents,
			drop_amount_cents, drop_interval_mins,
			turbo_enabled, turbo_trigger_mins, turbo_interval_mins, turbo_drop_cents,
			start_time, end_time, scheduled_at, allowed_gender, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING id`,
		a.Title(), a.Description(),
		p.StartPrice.Cents(), p.FloorPrice.Cents(), a.CurrentPrice().Cents(),
		p.DropAmount.Cents(), p.DropIntervalMins,
		p.TurboEnabled, p.TurboTriggerMins, p.TurboIntervalMins, p.TurboDropAmount.Cents(),
		p.StartTime, p.EndTime, pgconv.TimePtrToPgtype(a.ScheduledAt()),
		a.AllowedGender().String(), a.Status().String(),
	).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create auction", err)
	}
	return id, nil
}

func (r *AuctionRepository) FindByID(ctx context.Context, id int64) (*auction.Auction, error) {
	row := r.db.QueryRow(ctx, `SELECT `+auctionColumns+` FROM auctions WHERE id = $1`, id)
	a, err := scanAuction(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("auction not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find auction", err)
	}
	return a, nil
}

func (r *AuctionRepository) List(ctx context.Context, status *auction.Status) ([]*auction.Auction, error) {
	query := `SELECT ` + auctionColumns + ` FROM auctions`
	args := []any{}
	if status != nil {
		query += ` WHERE status = $1`
		args = append(args, status.String())
	}
	query += ` ORDER BY end_time ASC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list auctions", err)
	}
	defer rows.Close()
	return collectAuctions(rows)
}

// ListOpen returns the reconciliation working set: every auction that can
// still change state on its own (DRAFT or ACTIVE).
func (r *AuctionRepository) ListOpen(ctx context.Context) ([]*auction.Auction, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+auctionColumns+` FROM auctions
		WHERE status IN ('DRAFT', 'ACTIVE')
		ORDER BY end_time ASC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list open auctions", err)
	}
	defer rows.Close()
	return collectAuctions(rows)
}

func (r *AuctionRepository) UpdateDetails(ctx context.Context, id int64, title, description string, scheduledAt *time.Time, allowedGender auction.AllowedGender) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE auctions
		SET title = $2, description = $3, scheduled_at = $4, allowed_gender = $5, updated_at = now()
		WHERE id = $1`,
		id, title, description, pgconv.TimePtrToPgtype(scheduledAt), allowedGender.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update auction", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("auction not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *AuctionRepository) UpdateCurrentPrice(ctx context.Context, id int64, price money.Money) error {
	_, err := r.db.Exec(ctx, `
		UPDATE auctions SET current_price_cents = $2, updated_at = now() WHERE id = $1`,
		id, price.Cents())
	if err != nil {
		return infra.WrapRepoErr("failed to update auction price", err)
	}
	return nil
}

func (r *AuctionRepository) UpdateStatus(ctx context.Context, id int64, status auction.Status) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE auctions SET status = $2, updated_at = now() WHERE id = $1`,
		id, status.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update auction status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("auction not found", nil, infra.KindNotFound)
	}
	return nil
}

// ActivateTurbo stamps the turbo start exactly once. The NULL guard makes
// concurrent reconciliation ticks race-safe: only the first caller sees a
// row affected and owns the turbo_triggered announcement.
func (r *AuctionRepository) ActivateTurbo(ctx context.Context, id int64, at time.Time) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE auctions SET turbo_started_at = $2, updated_at = now()
		WHERE id = $1 AND turbo_started_at IS NULL`,
		id, at)
	if err != nil {
		return false, infra.WrapRepoErr("failed to activate turbo", err)
	}
	return tag.RowsAffected() > 0, nil
}

// MarkSold flips an ACTIVE auction to SOLD inside the booking transaction
// and pins the final price. Zero rows affected means the auction was no
// longer ACTIVE when the transaction got there.
func (r *AuctionRepository) MarkSold(ctx context.Context, tx db.DBTX, id int64, finalPrice money.Money) (bool, error) {
	tag, err := tx.Exec(ctx, `
		UPDATE auctions SET status = 'SOLD', current_price_cents = $2, updated_at = now()
		WHERE id = $1 AND status = 'ACTIVE'`,
		id, finalPrice.Cents())
	if err != nil {
		return false, infra.WrapRepoErr("failed to mark auction sold", err)
	}
	return tag.RowsAffected() > 0, nil
}

func scanAuction(row pgx.Row) (*auction.Auction, error) {
	var (
		id                                  int64
		title, description                  string
		startCents, floorCents, priceCents  int64
		dropCents                           int64
		dropIntervalMins                    int
		turboEnabled                        bool
		turboTriggerMins, turboIntervalMins int
		turboDropCents                      int64
		turboStartedAt, scheduledAt         pgtype.Timestamptz
		startTime, endTime                  time.Time
		allowedGender, status               string
		createdAt, updatedAt                time.Time
	)

	err := row.Scan(
		&id, &title, &description,
		&startCents, &floorCents, &priceCents,
		&dropCents, &dropIntervalMins,
		&turboEnabled, &turboTriggerMins, &turboIntervalMins, &turboDropCents,
		&turboStartedAt, &startTime, &endTime, &scheduledAt,
		&allowedGender, &status, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	pricing := auction.Pricing{
		StartPrice:        money.FromCents(startCents),
		FloorPrice:        money.FromCents(floorCents),
		DropAmount:        money.FromCents(dropCents),
		DropIntervalMins:  dropIntervalMins,
		TurboEnabled:      turboEnabled,
		TurboTriggerMins:  turboTriggerMins,
		TurboIntervalMins: turboIntervalMins,
		TurboDropAmount:   money.FromCents(turboDropCents),
		StartTime:         startTime,
		EndTime:           endTime,
	}

	return auction.ReconstructAuction(
		id, title, description,
		pricing,
		money.FromCents(priceCents),
		pgconv.TimePtrFromPgtype(turboStartedAt),
		pgconv.TimePtrFromPgtype(scheduledAt),
		auction.AllowedGender(allowedGender),
		auction.Status(status),
		createdAt, updatedAt,
	), nil
}

func collectAuctions(rows pgx.Rows) ([]*auction.Auction, error) {
	var result []*auction.Auction
	for rows.Next() {
		a, err := scanAuction(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan auction row", err)
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read auction rows", err)
	}
	return result, nil
}
