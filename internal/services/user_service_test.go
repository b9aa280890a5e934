package services

import (
	"context"
	"strings"
	"testing"

	"watchparty/internal/models"
	"watchparty/internal/repository/memory"
	"watchparty/internal/worker"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserService(t *testing.T) (*UserService, *worker.Pool) {
	t.Helper()
	repos := memory.NewRepositories()
	wp := worker.NewPool(1)
	t.Cleanup(wp.Stop)
	return NewUserService(repos.Users, repos.AuditLogs, wp), wp
}

func TestSignup(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()

	u, err := svc.Signup(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(1), u.ID)
	assert.True(t, strings.HasPrefix(u.Name, "Unnamed User #"), "name %q", u.Name)
	assert.Len(t, u.Name, len("Unnamed User #")+6)
	assert.Len(t, u.APIKey, 40)
	assert.NotEmpty(t, u.PasswordHash)
}

func TestSignup_UniqueAPIKeys(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()

	seen := map[string]bool{}
	for i := 0; i < 25; i++ {
		u, err := svc.Signup(ctx)
		require.NoError(t, err)
		assert.False(t, seen[u.APIKey], "duplicate api key")
		seen[u.APIKey] = true
	}
}

func TestResolveAPIKey(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()

	u, err := svc.Signup(ctx)
	require.NoError(t, err)

	got, err := svc.ResolveAPIKey(ctx, u.APIKey)
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
	assert.Equal(t, u.Name, got.Name)

	_, err = svc.ResolveAPIKey(ctx, "nope")
	assert.ErrorIs(t, err, ErrInvalidKey)
}

func TestLogin(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()

	u, err := svc.Signup(ctx)
	require.NoError(t, err)
	require.NoError(t, svc.UpdatePassword(ctx, u.ID, "hunter2"))

	got, err := svc.Login(ctx, u.Name, "hunter2")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
	assert.Equal(t, u.APIKey, got.APIKey)

	_, err = svc.Login(ctx, u.Name, "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, "no such user", "hunter2")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_DuplicateNames(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()

	u1, err := svc.Signup(ctx)
	require.NoError(t, err)
	u2, err := svc.Signup(ctx)
	require.NoError(t, err)

	// two users sharing a display name with different passwords
	require.NoError(t, svc.UpdateName(ctx, u1.ID, "twin"))
	require.NoError(t, svc.UpdateName(ctx, u2.ID, "twin"))
	require.NoError(t, svc.UpdatePassword(ctx, u1.ID, "first-pass"))
	require.NoError(t, svc.UpdatePassword(ctx, u2.ID, "second-pass"))

	got, err := svc.Login(ctx, "twin", "second-pass")
	require.NoError(t, err)
	assert.Equal(t, u2.ID, got.ID)
}

func TestUpdateName(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()

	u, err := svc.Signup(ctx)
	require.NoError(t, err)
	require.NoError(t, svc.UpdateName(ctx, u.ID, "alice"))

	got, err := svc.ResolveAPIKey(ctx, u.APIKey)
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Name)
}

func TestUpdate_UnknownUserIsSilent(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()

	// zero rows matched still reports success
	assert.NoError(t, svc.UpdateName(ctx, 99, "ghost"))
	assert.NoError(t, svc.UpdatePassword(ctx, 99, "ghost"))
}

func TestSignup_Audited(t *testing.T) {
	repos := memory.NewRepositories()
	wp := worker.NewPool(1)
	svc := NewUserService(repos.Users, repos.AuditLogs, wp)

	_, err := svc.Signup(context.Background())
	require.NoError(t, err)
	wp.Stop() // drain async audit writes

	audits := repos.AuditLogs.(interface{ Audits() []models.AuditLog }).Audits()
	require.Len(t, audits, 1)
	assert.Equal(t, "user", audits[0].EntityType)
	assert.Equal(t, "signup", audits[0].Action)
}
