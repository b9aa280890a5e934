package services

import (
	"context"
	"fmt"
	"testing"

	"watchparty/internal/repository/memory"
	"watchparty/internal/worker"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessagePostAndList(t *testing.T) {
	repos := memory.NewRepositories()
	wp := worker.NewPool(1)
	t.Cleanup(wp.Stop)
	users := NewUserService(repos.Users, repos.AuditLogs, wp)
	msgs := NewMessageService(repos.Messages, repos.AuditLogs, wp)
	ctx := context.Background()

	u, err := users.Signup(ctx)
	require.NoError(t, err)

	_, err = msgs.Post(ctx, 1, u.ID, "hi")
	require.NoError(t, err)

	got, err := msgs.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, u.Name, got[0].Author)
	assert.Equal(t, "hi", got[0].Body)
}

func TestMessageOrder_FIFO(t *testing.T) {
	repos := memory.NewRepositories()
	wp := worker.NewPool(1)
	t.Cleanup(wp.Stop)
	msgs := NewMessageService(repos.Messages, repos.AuditLogs, wp)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := msgs.Post(ctx, 1, 1, fmt.Sprintf("msg %d", i))
		require.NoError(t, err)
	}

	got, err := msgs.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, got, 5)
	for i, m := range got {
		assert.Equal(t, fmt.Sprintf("msg %d", i), m.Body)
	}
}

func TestMessageList_UnknownRoom(t *testing.T) {
	repos := memory.NewRepositories()
	wp := worker.NewPool(1)
	t.Cleanup(wp.Stop)
	msgs := NewMessageService(repos.Messages, repos.AuditLogs, wp)

	got, err := msgs.List(context.Background(), 404)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
