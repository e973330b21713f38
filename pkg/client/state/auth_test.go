package state

import (
	"context"
	"errors"
	"testing"

	"github.com/dambastudy/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockGateway struct {
	token    string
	validFor string
	user     models.UserResponse
}

func (m *mockGateway) SetToken(token string) {
	m.token = token
}

func (m *mockGateway) Me(ctx context.Context) (*models.UserResponse, error) {
	if m.token == "" || m.token != m.validFor {
		return nil, errors.New("invalid or expired token")
	}
	user := m.user
	return &user, nil
}

func (m *mockGateway) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	if req.Password != "secret1" {
		return nil, errors.New("invalid credentials")
	}
	return &models.AuthResponse{Token: m.validFor, User: m.user}, nil
}

func (m *mockGateway) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	return &models.AuthResponse{Token: m.validFor, User: models.UserResponse{ID: "u-2", Name: req.Name, Email: req.Email}}, nil
}

func TestAuth_LoginPersistsToken(t *testing.T) {
	store := NewStore(t.TempDir())
	gateway := &mockGateway{validFor: "tok-1", user: models.UserResponse{ID: "u-1", Name: "Ann", IsAdmin: true}}
	auth := NewAuth(store, gateway)

	user, err := auth.Login(context.Background(), "ann@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "Ann", user.Name)
	assert.True(t, auth.IsAuthenticated())
	assert.True(t, auth.IsAdmin())
	assert.Equal(t, "tok-1", gateway.token)

	restored := NewAuth(store, &mockGateway{validFor: "tok-1", user: models.UserResponse{ID: "u-1", Name: "Ann"}})
	require.NoError(t, restored.Restore(context.Background()))
	assert.Equal(t, "tok-1", restored.Token())
	require.NotNil(t, restored.User())
	assert.Equal(t, "u-1", restored.User().ID)
}

func TestAuth_LoginFailureKeepsSignedOut(t *testing.T) {
	store := NewStore(t.TempDir())
	auth := NewAuth(store, &mockGateway{validFor: "tok-1"})

	_, err := auth.Login(context.Background(), "ann@example.com", "wrong")
	assert.Error(t, err)
	assert.False(t, auth.IsAuthenticated())

	var token string
	found, err := store.Load(TokenKey, &token)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestAuth_RestoreDropsRejectedToken(t *testing.T) {
	store := NewStore(t.TempDir())
	require.NoError(t, store.Save(TokenKey, "expired"))

	gateway := &mockGateway{validFor: "tok-1"}
	auth := NewAuth(store, gateway)

	require.NoError(t, auth.Restore(context.Background()))
	assert.False(t, auth.IsAuthenticated())
	assert.Nil(t, auth.User())
	assert.Empty(t, gateway.token)

	found, err := store.Load(TokenKey, new(string))
	require.NoError(t, err)
	assert.False(t, found)
}

func TestAuth_RestoreWithoutToken(t *testing.T) {
	auth := NewAuth(NewStore(t.TempDir()), &mockGateway{})

	require.NoError(t, auth.Restore(context.Background()))
	assert.False(t, auth.IsAuthenticated())
}

func TestAuth_RegisterAndLogout(t *testing.T) {
	store := NewStore(t.TempDir())
	gateway := &mockGateway{validFor: "tok-2"}
	auth := NewAuth(store, gateway)

	user, err := auth.Register(context.Background(), "Bob", "bob@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "Bob", user.Name)
	assert.False(t, auth.IsAdmin())

	require.NoError(t, auth.Logout())
	assert.False(t, auth.IsAuthenticated())
	assert.Empty(t, gateway.token)

	found, err := store.Load(TokenKey, new(string))
	require.NoError(t, err)
	assert.False(t, found)
}
