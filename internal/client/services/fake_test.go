package services

import (
	"context"
	"database/sql"
	"path/filepath"
	"sync"
	"testing"

	"github.com/dmitrijs2005/candidatetracker/internal/candidate"
	"github.com/dmitrijs2005/candidatetracker/internal/client/client"
	"github.com/dmitrijs2005/candidatetracker/internal/client/models"
	"github.com/dmitrijs2005/candidatetracker/internal/client/session"
	"github.com/stretchr/testify/require"
)

func newSession(t *testing.T) (*session.Session, *sql.DB) {
	t.Helper()
	db, err := client.OpenLocalStore(context.Background(), filepath.Join(t.TempDir(), "client.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return session.New(db), db
}

// fakeClient implements client.Client for service tests.
type fakeClient struct {
	mu sync.Mutex

	LoginUser  models.User
	LoginToken string
	LoginErr   error
	LoginBlock bool

	RegisterErr error
	PingErr     error
	CloseErr    error

	ListRet   []candidate.Candidate
	ListErr   error
	CreateErr error
	MarkErr   error
	DeleteErr error

	UploadURL    string
	UploadURLErr error
	ConfirmErr   error

	LastLoginEmail    string
	LastLoginPassword string
	LastRegisterRole  string
	Created           []candidate.Candidate
	Marked            []string
	Deleted           []string
	Confirmed         []string
	nextID            int
}

var _ client.Client = (*fakeClient)(nil)

func (f *fakeClient) Close() error                   { return f.CloseErr }
func (f *fakeClient) Ping(ctx context.Context) error { return f.PingErr }

func (f *fakeClient) Register(ctx context.Context, email, password, role string) error {
	f.LastRegisterRole = role
	return f.RegisterErr
}

func (f *fakeClient) Login(ctx context.Context, email, password string) (models.User, string, error) {
	f.LastLoginEmail = email
	f.LastLoginPassword = password
	if f.LoginBlock {
		<-ctx.Done()
		return models.User{}, "", &timeoutErr{ctx.Err()}
	}
	return f.LoginUser, f.LoginToken, f.LoginErr
}

type timeoutErr struct{ cause error }

func (e *timeoutErr) Error() string { return "timeout: " + e.cause.Error() }
func (e *timeoutErr) Unwrap() error { return client.ErrTimeout }

func (f *fakeClient) ListCandidates(ctx context.Context) ([]candidate.Candidate, error) {
	return append([]candidate.Candidate(nil), f.ListRet...), f.ListErr
}

func (f *fakeClient) CreateCandidate(ctx context.Context, c candidate.Candidate) (candidate.Candidate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.CreateErr != nil {
		return candidate.Candidate{}, f.CreateErr
	}
	f.nextID++
	c.ID = "id-" + string(rune('0'+f.nextID))
	c.Status = candidate.StatusPending
	f.Created = append(f.Created, c)
	return c, nil
}

func (f *fakeClient) MarkViewed(ctx context.Context, id string) error {
	f.Marked = append(f.Marked, id)
	return f.MarkErr
}

func (f *fakeClient) DeleteCandidate(ctx context.Context, id string) error {
	f.Deleted = append(f.Deleted, id)
	return f.DeleteErr
}

func (f *fakeClient) ResumeUploadURL(ctx context.Context, id string) (string, error) {
	return f.UploadURL, f.UploadURLErr
}

func (f *fakeClient) ConfirmResume(ctx context.Context, id string) error {
	f.Confirmed = append(f.Confirmed, id)
	return f.ConfirmErr
}
