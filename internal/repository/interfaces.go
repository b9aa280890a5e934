package repository

import (
	"context"
	"errors"

	"watchparty/internal/models"
)

var (
	// ErrNotFound is returned when a lookup matches no row.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned when an insert violates a uniqueness constraint
	// (in practice: the api_key unique index).
	ErrConflict = errors.New("conflict")
)

type Users interface {
	Create(ctx context.Context, name, passwordHash, apiKey string) (models.User, error)
	GetByID(ctx context.Context, id int64) (models.User, error)
	GetByAPIKey(ctx context.Context, apiKey string) (models.User, error)
	// ListByName returns every user with the given display name; names are
	// not unique.
	ListByName(ctx context.Context, name string) ([]models.User, error)
	UpdateName(ctx context.Context, id int64, name string) error
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
}

type Rooms interface {
	Create(ctx context.Context, name string) (models.Room, error)
	GetByID(ctx context.Context, id int64) (models.Room, error)
	List(ctx context.Context) ([]models.Room, error)
	// Rename is a blind update: renaming a room that does not exist is a
	// no-op, not an error.
	Rename(ctx context.Context, id int64, name string) error
}

type Messages interface {
	Create(ctx context.Context, roomID, userID int64, body string) (models.Message, error)
	// ListByRoom returns the room's messages joined with the author display
	// name, in insertion order. An unknown room yields an empty list.
	ListByRoom(ctx context.Context, roomID int64) ([]models.RoomMessage, error)
}

type AuditLogs interface {
	Create(ctx context.Context, l models.AuditLog) error
}

type Repositories struct {
	Users     Users
	Rooms     Rooms
	Messages  Messages
	AuditLogs AuditLogs
}
