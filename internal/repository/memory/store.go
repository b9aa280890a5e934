// Package memory implements the repository interfaces on in-process maps.
// It backs STORE=memory dev runs and the test suites; behavior mirrors the
// postgres implementations, including blind updates and the api_key
// uniqueness check.
package memory

import (
	"context"
	"sync"
	"time"

	"watchparty/internal/models"
	repo "watchparty/internal/repository"
)

type store struct {
	mu sync.Mutex

	users      map[int64]models.User
	nextUserID int64

	rooms      map[int64]models.Room
	roomOrder  []int64
	nextRoomID int64

	messages []models.Message
	nextMsgID int64

	audits []models.AuditLog
}

func NewRepositories() repo.Repositories {
	s := &store{
		users: map[int64]models.User{},
		rooms: map[int64]models.Room{},
	}
	return repo.Repositories{
		Users:     (*usersRepo)(s),
		Rooms:     (*roomsRepo)(s),
		Messages:  (*messagesRepo)(s),
		AuditLogs: (*auditLogsRepo)(s),
	}
}

// ---------- users ----------

type usersRepo store

func (r *usersRepo) Create(_ context.Context, name, passwordHash, apiKey string) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.APIKey == apiKey {
			return models.User{}, repo.ErrConflict
		}
	}
	r.nextUserID++
	now := time.Now()
	u := models.User{
		ID:           r.nextUserID,
		Name:         name,
		PasswordHash: passwordHash,
		APIKey:       apiKey,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	r.users[u.ID] = u
	return u, nil
}

func (r *usersRepo) GetByID(_ context.Context, id int64) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return models.User{}, repo.ErrNotFound
	}
	return u, nil
}

func (r *usersRepo) GetByAPIKey(_ context.Context, apiKey string) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.APIKey == apiKey {
			return u, nil
		}
	}
	return models.User{}, repo.ErrNotFound
}

func (r *usersRepo) ListByName(_ context.Context, name string) ([]models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []models.User{}
	for id := int64(1); id <= r.nextUserID; id++ {
		if u, ok := r.users[id]; ok && u.Name == name {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *usersRepo) UpdateName(_ context.Context, id int64, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		u.Name = name
		u.UpdatedAt = time.Now()
		r.users[id] = u
	}
	return nil
}

func (r *usersRepo) UpdatePassword(_ context.Context, id int64, passwordHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		u.PasswordHash = passwordHash
		u.UpdatedAt = time.Now()
		r.users[id] = u
	}
	return nil
}

// ---------- rooms ----------

type roomsRepo store

func (r *roomsRepo) Create(_ context.Context, name string) (models.Room, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextRoomID++
	rm := models.Room{ID: r.nextRoomID, Name: name, CreatedAt: time.Now()}
	r.rooms[rm.ID] = rm
	r.roomOrder = append(r.roomOrder, rm.ID)
	return rm, nil
}

func (r *roomsRepo) GetByID(_ context.Context, id int64) (models.Room, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rm, ok := r.rooms[id]
	if !ok {
		return models.Room{}, repo.ErrNotFound
	}
	return rm, nil
}

func (r *roomsRepo) List(_ context.Context) ([]models.Room, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Room, 0, len(r.roomOrder))
	for _, id := range r.roomOrder {
		out = append(out, r.rooms[id])
	}
	return out, nil
}

func (r *roomsRepo) Rename(_ context.Context, id int64, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	// no row, no-op
	if rm, ok := r.rooms[id]; ok {
		rm.Name = name
		r.rooms[id] = rm
	}
	return nil
}

// ---------- messages ----------

type messagesRepo store

func (r *messagesRepo) Create(_ context.Context, roomID, userID int64, body string) (models.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextMsgID++
	m := models.Message{
		ID:        r.nextMsgID,
		UserID:    userID,
		RoomID:    roomID,
		Body:      body,
		CreatedAt: time.Now(),
	}
	r.messages = append(r.messages, m)
	return m, nil
}

func (r *messagesRepo) ListByRoom(_ context.Context, roomID int64) ([]models.RoomMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []models.RoomMessage{}
	for _, m := range r.messages {
		if m.RoomID != roomID {
			continue
		}
		var author string
		if u, ok := r.users[m.UserID]; ok {
			author = u.Name
		}
		out = append(out, models.RoomMessage{ID: m.ID, Author: author, Body: m.Body})
	}
	return out, nil
}

// ---------- audit logs ----------

type auditLogsRepo store

func (r *auditLogsRepo) Create(_ context.Context, l models.AuditLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.audits = append(r.audits, l)
	return nil
}

// Audits returns a snapshot of recorded audit entries, for tests.
func (r *auditLogsRepo) Audits() []models.AuditLog {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.AuditLog, len(r.audits))
	copy(out, r.audits)
	return out
}
