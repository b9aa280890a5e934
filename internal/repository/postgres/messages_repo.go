package postgres

import (
	"context"

	"watchparty/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type messagesRepo struct{ pool *pgxpool.Pool }

func (r *messagesRepo) Create(ctx context.Context, roomID, userID int64, body string) (models.Message, error) {
	var m models.Message
	err := r.pool.QueryRow(ctx,
		`INSERT INTO messages(user_id, room_id, body) VALUES($1,$2,$3)
		 RETURNING id, user_id, room_id, body, created_at`,
		userID, roomID, body,
	).Scan(&m.ID, &m.UserID, &m.RoomID, &m.Body, &m.CreatedAt)
	if err != nil {
		return models.Message{}, err
	}
	return m, nil
}

func (r *messagesRepo) ListByRoom(ctx context.Context, roomID int64) ([]models.RoomMessage, error) {
	// LEFT JOIN: a message whose user_id matches no user still lists, with
	// an empty author.
	rows, err := r.pool.Query(ctx,
		`SELECT m.id, COALESCE(u.name, '') AS author, m.body
		   FROM messages m
		   LEFT JOIN users u ON u.id = m.user_id
		  WHERE m.room_id = $1
		  ORDER BY m.id`,
		roomID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.RoomMessage{}
	for rows.Next() {
		var m models.RoomMessage
		if err := rows.Scan(&m.ID, &m.Author, &m.Body); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
