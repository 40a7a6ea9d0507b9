package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"sync"

	"github.com/dmitrijs2005/candidatetracker/internal/candidate"
	"github.com/dmitrijs2005/candidatetracker/internal/client/client"
	"github.com/dmitrijs2005/candidatetracker/internal/common"
	"github.com/dmitrijs2005/candidatetracker/internal/netx"
)

// ErrNoSession is returned by calls that need a signed-in user.
var ErrNoSession = errors.New("not signed in")

// CandidateService keeps the local list of candidates in step with the
// backend. The list changes only after the backend confirms a call.
type CandidateService interface {
	Refresh(ctx context.Context) error
	AddCandidate(ctx context.Context, c candidate.Candidate) (string, error)
	MarkViewed(ctx context.Context, id string) error
	DeleteCandidate(ctx context.Context, id string) error
	AttachResume(ctx context.Context, id, path string) error

	Candidates() []candidate.Candidate
	Get(id string) (candidate.Candidate, bool)
	Reset()
}

// Authenticated reports whether a session exists.
type Authenticated interface {
	IsAuthenticated() bool
}

var uploadFn = netx.UploadToPresignedURL

type candidateService struct {
	client  client.Client
	session Authenticated
	hc      *http.Client

	mu   sync.RWMutex
	list []candidate.Candidate
}

func NewCandidateService(c client.Client, s Authenticated) CandidateService {
	return &candidateService{client: c, session: s}
}

// Refresh replaces local state with the backend list. Without a session
// it does nothing.
func (s *candidateService) Refresh(ctx context.Context) error {
	if !s.session.IsAuthenticated() {
		return nil
	}
	list, err := s.client.ListCandidates(ctx)
	if err != nil {
		return fmt.Errorf("list candidates: %w", err)
	}

	s.mu.Lock()
	s.list = list
	s.mu.Unlock()
	return nil
}

// AddCandidate submits c and prepends the stored record.
func (s *candidateService) AddCandidate(ctx context.Context, c candidate.Candidate) (string, error) {
	created, err := s.client.CreateCandidate(ctx, c)
	if err != nil {
		return "", fmt.Errorf("create candidate: %w", err)
	}

	s.mu.Lock()
	s.list = append([]candidate.Candidate{created}, s.list...)
	s.mu.Unlock()
	return created.ID, nil
}

// MarkViewed flags id as viewed once the backend acknowledges it.
func (s *candidateService) MarkViewed(ctx context.Context, id string) error {
	if err := s.client.MarkViewed(ctx, id); err != nil {
		return fmt.Errorf("mark viewed: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.list {
		if s.list[i].ID == id {
			s.list[i].IsViewed = true
		}
	}
	return nil
}

func (s *candidateService) DeleteCandidate(ctx context.Context, id string) error {
	if err := s.client.DeleteCandidate(ctx, id); err != nil {
		return fmt.Errorf("delete candidate: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.list[:0:0]
	for _, c := range s.list {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	s.list = kept
	return nil
}

// AttachResume uploads the file at path for application id.
func (s *candidateService) AttachResume(ctx context.Context, id, path string) error {
	if !s.session.IsAuthenticated() {
		return ErrNoSession
	}
	if id == "" {
		return common.ErrorNotFound
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open resume: %w", err)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat resume: %w", err)
	}

	url, err := s.client.ResumeUploadURL(ctx, id)
	if err != nil {
		return fmt.Errorf("request upload url: %w", err)
	}
	if err := uploadFn(ctx, s.hc, url, f, fi.Size()); err != nil {
		return err
	}
	if err := s.client.ConfirmResume(ctx, id); err != nil {
		return fmt.Errorf("confirm resume: %w", err)
	}
	return nil
}

// Candidates returns a copy of the local list.
func (s *candidateService) Candidates() []candidate.Candidate {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]candidate.Candidate, len(s.list))
	copy(out, s.list)
	return out
}

func (s *candidateService) Get(id string) (candidate.Candidate, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.list {
		if c.ID == id {
			return c, true
		}
	}
	return candidate.Candidate{}, false
}

// Reset drops local state, e.g. on logout.
func (s *candidateService) Reset() {
	s.mu.Lock()
	s.list = nil
	s.mu.Unlock()
}
