package services

import (
	"context"
	"errors"

	"watchparty/internal/metrics"
	"watchparty/internal/models"
	repo "watchparty/internal/repository"
	"watchparty/internal/worker"
)

type RoomService struct {
	r repo.Rooms
	auditor
}

func NewRoomService(r repo.Rooms, logs repo.AuditLogs, wp *worker.Pool) *RoomService {
	return &RoomService{r: r, auditor: auditor{logs: logs, wp: wp}}
}

func (s *RoomService) Create(ctx context.Context) (models.Room, error) {
	name := "Unnamed Room " + randomDigits(6)
	rm, err := s.r.Create(ctx, name)
	if err != nil {
		return models.Room{}, err
	}
	metrics.RoomsCreatedTotal.Inc()
	s.record("room", rm.ID, "created", "")
	return rm, nil
}

func (s *RoomService) List(ctx context.Context) ([]models.Room, error) {
	return s.r.List(ctx)
}

func (s *RoomService) Get(ctx context.Context, id int64) (models.Room, error) {
	rm, err := s.r.GetByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return models.Room{}, ErrNotFound
	}
	return rm, err
}

// Rename overwrites unconditionally; a nonexistent id is a silent no-op and
// creates nothing. Last write wins.
func (s *RoomService) Rename(ctx context.Context, id int64, newName string) error {
	if err := s.r.Rename(ctx, id, newName); err != nil {
		return err
	}
	s.record("room", id, "renamed", newName)
	return nil
}
