package state

import (
	"context"

	"github.com/dambastudy/backend/internal/models"
)

// Gateway is the part of the API client the auth state needs
type Gateway interface {
	SetToken(token string)
	Me(ctx context.Context) (*models.UserResponse, error)
	Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error)
	Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error)
}

// Auth is the signed-in session of the terminal client
type Auth struct {
	store   *Store
	gateway Gateway
	token   string
	user    *models.UserResponse
}

// NewAuth creates a signed-out session
func NewAuth(store *Store, gateway Gateway) *Auth {
	return &Auth{store: store, gateway: gateway}
}

// Restore loads the saved token and fetches the user it belongs to.
// A token the API rejects is forgotten.
func (a *Auth) Restore(ctx context.Context) error {
	var token string
	found, err := a.store.Load(TokenKey, &token)
	if err != nil {
		return err
	}
	if !found || token == "" {
		return nil
	}

	a.token = token
	a.gateway.SetToken(token)

	user, err := a.gateway.Me(ctx)
	if err != nil {
		return a.Clear()
	}

	a.user = user
	return nil
}

// Login signs in and saves the token
func (a *Auth) Login(ctx context.Context, email, password string) (*models.UserResponse, error) {
	resp, err := a.gateway.Login(ctx, models.LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, err
	}
	return a.signIn(resp)
}

// Register creates an account, signs in and saves the token
func (a *Auth) Register(ctx context.Context, name, email, password string) (*models.UserResponse, error) {
	resp, err := a.gateway.Register(ctx, models.RegisterRequest{Name: name, Email: email, Password: password})
	if err != nil {
		return nil, err
	}
	return a.signIn(resp)
}

func (a *Auth) signIn(resp *models.AuthResponse) (*models.UserResponse, error) {
	a.token = resp.Token
	a.user = &resp.User
	a.gateway.SetToken(resp.Token)

	if err := a.store.Save(TokenKey, resp.Token); err != nil {
		return nil, err
	}
	return a.user, nil
}

// Logout forgets the token and the user
func (a *Auth) Logout() error {
	return a.Clear()
}

// Clear forgets the token and the user without contacting the API
func (a *Auth) Clear() error {
	a.token = ""
	a.user = nil
	a.gateway.SetToken("")
	return a.store.Delete(TokenKey)
}

// Token returns the current token
func (a *Auth) Token() string {
	return a.token
}

// User returns the signed-in user or nil
func (a *Auth) User() *models.UserResponse {
	return a.user
}

// IsAuthenticated reports whether a token is held
func (a *Auth) IsAuthenticated() bool {
	return a.token != ""
}

// IsAdmin reports whether the signed-in user is an admin
func (a *Auth) IsAdmin() bool {
	return a.user != nil && a.user.IsAdmin
}
