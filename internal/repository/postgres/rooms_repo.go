package postgres

import (
	"context"

	"watchparty/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type roomsRepo struct{ pool *pgxpool.Pool }

func (r *roomsRepo) Create(ctx context.Context, name string) (models.Room, error) {
	var rm models.Room
	err := r.pool.QueryRow(ctx,
		`INSERT INTO rooms(name) VALUES($1) RETURNING id, name, created_at`,
		name,
	).Scan(&rm.ID, &rm.Name, &rm.CreatedAt)
	if err != nil {
		return models.Room{}, err
	}
	return rm, nil
}

func (r *roomsRepo) GetByID(ctx context.Context, id int64) (models.Room, error) {
	var rm models.Room
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, created_at FROM rooms WHERE id=$1`, id,
	).Scan(&rm.ID, &rm.Name, &rm.CreatedAt)
	if err != nil {
		return models.Room{}, mapErr(err)
	}
	return rm, nil
}

func (r *roomsRepo) List(ctx context.Context) ([]models.Room, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, created_at FROM rooms ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Room{}
	for rows.Next() {
		var rm models.Room
		if err := rows.Scan(&rm.ID, &rm.Name, &rm.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, rm)
	}
	return out, rows.Err()
}

func (r *roomsRepo) Rename(ctx context.Context, id int64, name string) error {
	_, err := r.pool.Exec(ctx, `UPDATE rooms SET name=$2 WHERE id=$1`, id, name)
	return err
}
