// Package session holds the signed-in identity of the terminal client and
// persists it in the local store under the keys "app_user" and "token".
package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/candidatetracker/internal/client/models"
	"github.com/dmitrijs2005/candidatetracker/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/candidatetracker/internal/dbx"
)

const (
	KeyUser  = "app_user"
	KeyToken = "token"
)

// Session is owned by the application and shared by pointer. It is safe for
// concurrent use.
type Session struct {
	db *sql.DB

	mu    sync.RWMutex
	user  *models.User
	token string
}

func New(db *sql.DB) *Session {
	return &Session{db: db}
}

func (s *Session) repo(tx dbx.DBTX) metadata.Repository {
	return metadata.NewSQLiteRepository(tx)
}

// Load restores the persisted identity. A missing or unreadable pair leaves
// the session signed out; an unreadable pair is also removed from disk.
func (s *Session) Load(ctx context.Context) error {
	repo := s.repo(s.db)

	rawUser, okUser, err := repo.Get(ctx, KeyUser)
	if err != nil {
		return err
	}
	token, okToken, err := repo.Get(ctx, KeyToken)
	if err != nil {
		return err
	}

	if !okUser || !okToken || token == "" {
		s.set(nil, "")
		return nil
	}

	var u models.User
	if err := json.Unmarshal([]byte(rawUser), &u); err != nil {
		s.set(nil, "")
		if cerr := repo.Delete(ctx, KeyUser, KeyToken); cerr != nil {
			return cerr
		}
		return fmt.Errorf("stored user is corrupt: %w", err)
	}

	s.set(&u, token)
	return nil
}

// Save persists user and token together, then makes them current.
func (s *Session) Save(ctx context.Context, user models.User, token string) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repo(tx)
		if err := repo.Set(ctx, KeyUser, string(raw)); err != nil {
			return err
		}
		return repo.Set(ctx, KeyToken, token)
	})
	if err != nil {
		return err
	}

	s.set(&user, token)
	return nil
}

// Clear signs out. The in-memory identity is dropped even when removing
// the stored pair fails.
func (s *Session) Clear(ctx context.Context) error {
	s.set(nil, "")
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return s.repo(tx).Delete(ctx, KeyUser, KeyToken)
	})
}

func (s *Session) set(u *models.User, token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = u
	s.token = token
}

// User returns the current identity.
func (s *Session) User() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return models.User{}, false
	}
	return *s.user, true
}

// Token returns the bearer token, or "" when signed out.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Session) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil && s.token != ""
}

// Role returns the current user's role, or "" when signed out.
func (s *Session) Role() string {
	u, _ := s.User()
	return u.Role
}
