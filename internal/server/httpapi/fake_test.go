package httpapi

import (
	"context"

	"github.com/dmitrijs2005/candidatetracker/internal/candidate"
	"github.com/dmitrijs2005/candidatetracker/internal/common"
	"github.com/dmitrijs2005/candidatetracker/internal/server/auth"
	"github.com/dmitrijs2005/candidatetracker/internal/server/models"
)

const (
	adminToken     = "admin-token"
	candidateToken = "candidate-token"
)

type fakeUsers struct {
	registerErr error
	loginErr    error

	registered credentialsRequest
}

func (f *fakeUsers) Register(_ context.Context, email, password, role string) (*models.User, error) {
	f.registered = credentialsRequest{Email: email, Password: password, Role: role}
	if f.registerErr != nil {
		return nil, f.registerErr
	}
	if role == "" {
		role = common.RoleCandidate
	}
	return &models.User{ID: "u-1", Email: email, Role: role}, nil
}

func (f *fakeUsers) Login(_ context.Context, email, password string) (*models.User, string, error) {
	if f.loginErr != nil {
		return nil, "", f.loginErr
	}
	return &models.User{ID: "u-1", Email: email, Role: common.RoleAdmin}, adminToken, nil
}

func (f *fakeUsers) Authenticate(token string) (*auth.Claims, error) {
	switch token {
	case adminToken:
		return &auth.Claims{UserID: "u-admin", Role: common.RoleAdmin}, nil
	case candidateToken:
		return &auth.Claims{UserID: "u-cand", Role: common.RoleCandidate}, nil
	}
	return nil, common.ErrInvalidToken
}

type fakeCandidates struct {
	list []candidate.Candidate
	err  error

	createdBy string
	lastID    string
	who       *auth.Claims
}

func (f *fakeCandidates) Create(_ context.Context, c candidate.Candidate, submittedBy string) (candidate.Candidate, error) {
	f.createdBy = submittedBy
	if f.err != nil {
		return candidate.Candidate{}, f.err
	}
	c.ID = "c-new"
	c.Status = candidate.StatusPending
	return c, nil
}

func (f *fakeCandidates) List(context.Context) ([]candidate.Candidate, error) {
	return f.list, f.err
}

func (f *fakeCandidates) MarkViewed(_ context.Context, id string) error {
	f.lastID = id
	return f.err
}

func (f *fakeCandidates) Delete(_ context.Context, id string) error {
	f.lastID = id
	return f.err
}

func (f *fakeCandidates) ResumeUploadURL(_ context.Context, id string, who *auth.Claims) (string, error) {
	f.lastID, f.who = id, who
	if f.err != nil {
		return "", f.err
	}
	return "https://s3.test/put/" + id, nil
}

func (f *fakeCandidates) ConfirmResume(_ context.Context, id string, who *auth.Claims) error {
	f.lastID, f.who = id, who
	return f.err
}
