package services

import (
	"context"
	"database/sql"
	"time"

	"github.com/dmitrijs2005/candidatetracker/internal/candidate"
	"github.com/dmitrijs2005/candidatetracker/internal/common"
	"github.com/dmitrijs2005/candidatetracker/internal/logging"
	"github.com/dmitrijs2005/candidatetracker/internal/server/auth"
	"github.com/dmitrijs2005/candidatetracker/internal/server/models"
	"github.com/dmitrijs2005/candidatetracker/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// CandidateService owns the stored applications and their resumes.
type CandidateService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	validator   *candidate.Validator
	storage     ResumeStore
	log         logging.Logger
	now         func() time.Time
}

func NewCandidateService(db *sql.DB, m repomanager.RepositoryManager, v *candidate.Validator, storage ResumeStore, log logging.Logger) *CandidateService {
	return &CandidateService{
		db:          db,
		repomanager: m,
		validator:   v,
		storage:     storage,
		log:         log,
		now:         time.Now,
	}
}

// Create validates c with the form rules and stores it as a new pending,
// unviewed application. Violations are returned as *candidate.ValidationError.
func (s *CandidateService) Create(ctx context.Context, c candidate.Candidate, submittedBy string) (candidate.Candidate, error) {
	c = candidate.Normalize(c)
	if err := s.validator.Validate(c); err != nil {
		return candidate.Candidate{}, err
	}

	c.ID = uuid.NewString()
	c.Status = candidate.StatusPending
	c.SubmittedAt = s.now().UTC()
	c.IsViewed = false
	c.ResumeKey = ""
	c.ResumeLink = ""

	repo := s.repomanager.Candidates(s.db)
	if err := repo.Create(ctx, &models.Application{Candidate: c, SubmittedBy: submittedBy}); err != nil {
		return candidate.Candidate{}, err
	}
	return c, nil
}

// List returns all applications, newest first, with a download link for
// every uploaded resume.
func (s *CandidateService) List(ctx context.Context) ([]candidate.Candidate, error) {
	apps, err := s.repomanager.Candidates(s.db).List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]candidate.Candidate, 0, len(apps))
	for _, a := range apps {
		c := a.Candidate
		if c.ResumeKey != "" {
			link, err := s.storage.PresignGet(ctx, c.ResumeKey)
			if err != nil {
				s.log.Warn(ctx, "presign resume failed", "id", c.ID, "error", err)
			} else {
				c.ResumeLink = link
			}
		}
		out = append(out, c)
	}
	return out, nil
}

// validID filters ids the uuid column would reject.
func validID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return common.ErrorNotFound
	}
	return nil
}

func (s *CandidateService) MarkViewed(ctx context.Context, id string) error {
	if err := validID(id); err != nil {
		return err
	}
	return s.repomanager.Candidates(s.db).MarkViewed(ctx, id)
}

func (s *CandidateService) Delete(ctx context.Context, id string) error {
	if err := validID(id); err != nil {
		return err
	}
	return s.repomanager.Candidates(s.db).Delete(ctx, id)
}

// owned loads an application the caller may attach a resume to: admins
// any, candidates only their own.
func (s *CandidateService) owned(ctx context.Context, id string, who *auth.Claims) (*models.Application, error) {
	if err := validID(id); err != nil {
		return nil, err
	}
	a, err := s.repomanager.Candidates(s.db).Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if who.Role != common.RoleAdmin && a.SubmittedBy != who.UserID {
		return nil, common.ErrorForbidden
	}
	return a, nil
}

// ResumeUploadURL returns a presigned PUT URL for the application's resume.
func (s *CandidateService) ResumeUploadURL(ctx context.Context, id string, who *auth.Claims) (string, error) {
	a, err := s.owned(ctx, id, who)
	if err != nil {
		return "", err
	}
	return s.storage.PresignPut(ctx, ResumeKey(a.Candidate))
}

// ConfirmResume records the uploaded resume once the object exists.
func (s *CandidateService) ConfirmResume(ctx context.Context, id string, who *auth.Claims) error {
	a, err := s.owned(ctx, id, who)
	if err != nil {
		return err
	}

	key := ResumeKey(a.Candidate)
	ok, err := s.storage.Exists(ctx, key)
	if err != nil {
		return err
	}
	if !ok {
		return badRequest("Resume has not been uploaded")
	}
	return s.repomanager.Candidates(s.db).SetResumeKey(ctx, id, key)
}
