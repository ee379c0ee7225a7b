package repository

import (
	"context"
	"time"

	"hothour/internal/domain/user"
	"hothour/internal/infra"
	"hothour/internal/infra/db"
	"hothour/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	db db.DBTX
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: pool}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO users (email, password_hash, name, gender, role)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		u.Email(), u.HashedPassword(), u.FullName(), u.Gender().String(), u.Role().String(),
	).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create user", err)
	}
	return id, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, email, password_hash, name, role, gender, created_at
		FROM users WHERE email = $1`, email)
	u, err := scanUser(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by email", err)
	}
	return u, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*user.User, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, email, password_hash, name, role, gender, created_at
		FROM users WHERE id = $1`, id)
	u, err := scanUser(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return u, nil
}

// ListAdminIDs feeds the notification fan-out: every admin gets an inbox
// copy of cancellation notices.
func (r *UserRepository) ListAdminIDs(ctx context.Context) ([]int64, error) {
	rows, err := r.db.Query(ctx, `SELECT id FROM users WHERE role = 'ADMIN' ORDER BY id`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list admins", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, infra.WrapRepoErr("failed to scan admin id", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read admin rows", err)
	}
	return ids, nil
}

func scanUser(row pgx.Row) (*user.User, error) {
	var (
		id                        int64
		email, passwordHash, name string
		role, gender              string
		createdAt                 time.Time
	)
	if err := row.Scan(&id, &email, &passwordHash, &name, &role, &gender, &createdAt); err != nil {
		return nil, err
	}
	return user.ReconstructUser(id, email, passwordHash, name, user.Role(role), user.Gender(gender), createdAt), nil
}
