package services

import (
	"context"
	"strings"
	"testing"

	"watchparty/internal/repository/memory"
	"watchparty/internal/worker"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRoomService(t *testing.T) *RoomService {
	t.Helper()
	repos := memory.NewRepositories()
	wp := worker.NewPool(1)
	t.Cleanup(wp.Stop)
	return NewRoomService(repos.Rooms, repos.AuditLogs, wp)
}

func TestRoomCreateAndList(t *testing.T) {
	svc := newRoomService(t)
	ctx := context.Background()

	rm, err := svc.Create(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), rm.ID)
	assert.True(t, strings.HasPrefix(rm.Name, "Unnamed Room "), "name %q", rm.Name)

	rooms, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, rooms, 1)
	assert.Equal(t, rm.ID, rooms[0].ID)
	assert.Equal(t, rm.Name, rooms[0].Name)
}

func TestRoomGet(t *testing.T) {
	svc := newRoomService(t)
	ctx := context.Background()

	rm, err := svc.Create(ctx)
	require.NoError(t, err)

	got, err := svc.Get(ctx, rm.ID)
	require.NoError(t, err)
	assert.Equal(t, rm.Name, got.Name)

	_, err = svc.Get(ctx, 99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRoomRename(t *testing.T) {
	svc := newRoomService(t)
	ctx := context.Background()

	rm, err := svc.Create(ctx)
	require.NoError(t, err)
	require.NoError(t, svc.Rename(ctx, rm.ID, "movie night"))

	got, err := svc.Get(ctx, rm.ID)
	require.NoError(t, err)
	assert.Equal(t, "movie night", got.Name)
}

func TestRoomRename_MissingRoom(t *testing.T) {
	svc := newRoomService(t)
	ctx := context.Background()

	require.NoError(t, svc.Rename(ctx, 42, "ghost"))

	rooms, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, rooms, "rename must not create a room")
}
