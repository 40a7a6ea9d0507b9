// Package services contains the application services of the terminal
// client: authentication against the backend and the candidate store.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/candidatetracker/internal/client/client"
	"github.com/dmitrijs2005/candidatetracker/internal/client/session"
	"github.com/dmitrijs2005/candidatetracker/internal/common"
)

// Messages shown to the user when login or registration fails without a
// server-supplied detail.
const (
	MsgTimeout            = "Request timed out. Server might be sleeping."
	MsgNetwork            = "Network error. Please try again."
	MsgLoginFailed        = "Login failed"
	MsgRegistrationFailed = "Registration failed"
)

// DefaultLoginTimeout bounds a single login request.
const DefaultLoginTimeout = 5 * time.Second

// AuthError is a login or registration failure with a message fit for
// display. Err is the underlying cause.
type AuthError struct {
	Message string
	Err     error
}

func (e *AuthError) Error() string { return e.Message }
func (e *AuthError) Unwrap() error { return e.Err }

// AuthService signs the user in and out.
type AuthService interface {
	Login(ctx context.Context, email string, password []byte) error
	Register(ctx context.Context, email string, password []byte, role string) error
	Logout(ctx context.Context) error
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

type authService struct {
	client       client.Client
	session      *session.Session
	loginTimeout time.Duration
}

// NewAuthService binds the API client and the session. A non-positive
// loginTimeout means DefaultLoginTimeout.
func NewAuthService(c client.Client, s *session.Session, loginTimeout time.Duration) AuthService {
	if loginTimeout <= 0 {
		loginTimeout = DefaultLoginTimeout
	}
	return &authService{client: c, session: s, loginTimeout: loginTimeout}
}

// Login posts the credentials once. On success the user and token are
// stored; failures come back as *AuthError.
func (a *authService) Login(ctx context.Context, email string, password []byte) error {
	ctx, cancel := context.WithTimeout(ctx, a.loginTimeout)
	defer cancel()

	user, token, err := a.client.Login(ctx, email, string(password))
	if err != nil {
		return authFailure(err, MsgLoginFailed)
	}
	if user.Email == "" {
		user.Email = email
	}

	if err := a.session.Save(ctx, user, token); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Register creates an account. An empty role means candidate.
func (a *authService) Register(ctx context.Context, email string, password []byte, role string) error {
	if role == "" {
		role = common.RoleCandidate
	}
	if !common.IsValidRole(role) {
		return &AuthError{Message: fmt.Sprintf("unknown role %q", role)}
	}

	if err := a.client.Register(ctx, email, string(password), role); err != nil {
		return authFailure(err, MsgRegistrationFailed)
	}
	return nil
}

// Logout always signs the session out. A failure to remove the stored
// pair is returned for logging only.
func (a *authService) Logout(ctx context.Context) error {
	return a.session.Clear(ctx)
}

func (a *authService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}

func (a *authService) Close(ctx context.Context) error {
	return a.client.Close()
}

func authFailure(err error, fallback string) error {
	switch {
	case errors.Is(err, client.ErrTimeout):
		return &AuthError{Message: MsgTimeout, Err: err}
	case errors.Is(err, client.ErrUnavailable):
		return &AuthError{Message: MsgNetwork, Err: err}
	}
	if d := client.Detail(err); d != "" {
		return &AuthError{Message: d, Err: err}
	}
	return &AuthError{Message: fallback, Err: err}
}
