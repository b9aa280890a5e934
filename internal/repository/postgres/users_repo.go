package postgres

import (
	"context"
	"errors"

	"watchparty/internal/models"
	"watchparty/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type usersRepo struct{ pool *pgxpool.Pool }

func NewUsers(pool *pgxpool.Pool) repository.Users {
	return &usersRepo{pool: pool}
}

const userCols = `id, name, password_hash, api_key, created_at, updated_at`

func (r *usersRepo) Create(ctx context.Context, name, passwordHash, apiKey string) (models.User, error) {
	var u models.User
	err := r.pool.QueryRow(ctx,
		`INSERT INTO users(name, password_hash, api_key) VALUES($1,$2,$3)
		 RETURNING `+userCols,
		name, passwordHash, apiKey,
	).Scan(&u.ID, &u.Name, &u.PasswordHash, &u.APIKey, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return models.User{}, mapErr(err)
	}
	return u, nil
}

func (r *usersRepo) GetByID(ctx context.Context, id int64) (models.User, error) {
	var u models.User
	err := r.pool.QueryRow(ctx,
		`SELECT `+userCols+` FROM users WHERE id=$1`, id,
	).Scan(&u.ID, &u.Name, &u.PasswordHash, &u.APIKey, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return models.User{}, mapErr(err)
	}
	return u, nil
}

func (r *usersRepo) GetByAPIKey(ctx context.Context, apiKey string) (models.User, error) {
	var u models.User
	err := r.pool.QueryRow(ctx,
		`SELECT `+userCols+` FROM users WHERE api_key=$1`, apiKey,
	).Scan(&u.ID, &u.Name, &u.PasswordHash, &u.APIKey, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return models.User{}, mapErr(err)
	}
	return u, nil
}

func (r *usersRepo) ListByName(ctx context.Context, name string) ([]models.User, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+userCols+` FROM users WHERE name=$1 ORDER BY id`, name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.User{}
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Name, &u.PasswordHash, &u.APIKey, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r *usersRepo) UpdateName(ctx context.Context, id int64, name string) error {
	// Matching zero rows is not an error: the update surface promises
	// success even when nothing changed.
	_, err := r.pool.Exec(ctx,
		`UPDATE users SET name=$2, updated_at=now() WHERE id=$1`, id, name)
	return err
}

func (r *usersRepo) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE users SET password_hash=$2, updated_at=now() WHERE id=$1`, id, passwordHash)
	return err
}

func mapErr(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return repository.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return repository.ErrConflict
	}
	return err
}
