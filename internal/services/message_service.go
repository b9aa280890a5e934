package services

import (
	"context"

	"watchparty/internal/metrics"
	"watchparty/internal/models"
	repo "watchparty/internal/repository"
	"watchparty/internal/worker"
)

type MessageService struct {
	r repo.Messages
	auditor
}

func NewMessageService(r repo.Messages, logs repo.AuditLogs, wp *worker.Pool) *MessageService {
	return &MessageService{r: r, auditor: auditor{logs: logs, wp: wp}}
}

// List returns the room's timeline in insertion order. An unknown room is
// not an error; it reads as an empty room.
func (s *MessageService) List(ctx context.Context, roomID int64) ([]models.RoomMessage, error) {
	return s.r.ListByRoom(ctx, roomID)
}

// Post inserts unconditionally. user_id and room_id are caller-supplied and
// trusted; a dangling reference is accepted.
func (s *MessageService) Post(ctx context.Context, roomID, userID int64, body string) (models.Message, error) {
	m, err := s.r.Create(ctx, roomID, userID, body)
	if err != nil {
		return models.Message{}, err
	}
	metrics.MessagesPostedTotal.Inc()
	s.record("message", m.ID, "posted", "")
	return m, nil
}
