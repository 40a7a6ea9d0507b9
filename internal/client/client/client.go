package client

import (
	"context"

	"github.com/dmitrijs2005/candidatetracker/internal/candidate"
	"github.com/dmitrijs2005/candidatetracker/internal/client/models"
)

// Client is the backend API used by the client services.
type Client interface {
	Close() error
	Ping(ctx context.Context) error

	Register(ctx context.Context, email, password, role string) error
	Login(ctx context.Context, email, password string) (models.User, string, error)

	ListCandidates(ctx context.Context) ([]candidate.Candidate, error)
	CreateCandidate(ctx context.Context, c candidate.Candidate) (candidate.Candidate, error)
	MarkViewed(ctx context.Context, id string) error
	DeleteCandidate(ctx context.Context, id string) error

	ResumeUploadURL(ctx context.Context, id string) (string, error)
	ConfirmResume(ctx context.Context, id string) error
}

// TokenSource supplies the bearer token attached to requests.
type TokenSource interface {
	Token() string
}
