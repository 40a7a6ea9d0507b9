package services

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/candidatetracker/internal/candidate"
	"github.com/dmitrijs2005/candidatetracker/internal/common"
	"github.com/dmitrijs2005/candidatetracker/internal/dbx"
	"github.com/dmitrijs2005/candidatetracker/internal/server/models"
	candidatesrepo "github.com/dmitrijs2005/candidatetracker/internal/server/repositories/candidates"
	usersrepo "github.com/dmitrijs2005/candidatetracker/internal/server/repositories/users"
	"golang.org/x/crypto/bcrypt"
)

func init() { bcryptCost = bcrypt.MinCost }

func newSQLMockDB(t *testing.T) *sql.DB {
	t.Helper()
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

type fakeUsersRepo struct {
	byEmail   map[string]*models.User
	createErr error
	getErr    error
}

func newFakeUsersRepo() *fakeUsersRepo {
	return &fakeUsersRepo{byEmail: map[string]*models.User{}}
}

func (f *fakeUsersRepo) Create(_ context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	if _, ok := f.byEmail[u.Email]; ok {
		return nil, common.ErrorAlreadyExists
	}
	u.ID = fmt.Sprintf("u-%d", len(f.byEmail)+1)
	u.CreatedAt = time.Now()
	f.byEmail[u.Email] = u
	return u, nil
}

func (f *fakeUsersRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	u, ok := f.byEmail[email]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return u, nil
}

type fakeCandidatesRepo struct {
	rows []*models.Application

	createErr, listErr error

	resumeKeys map[string]string
}

func (f *fakeCandidatesRepo) find(id string) int {
	for i, a := range f.rows {
		if a.ID == id {
			return i
		}
	}
	return -1
}

func (f *fakeCandidatesRepo) Create(_ context.Context, a *models.Application) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.rows = append([]*models.Application{a}, f.rows...)
	return nil
}

func (f *fakeCandidatesRepo) List(context.Context) ([]*models.Application, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.rows, nil
}

func (f *fakeCandidatesRepo) Get(_ context.Context, id string) (*models.Application, error) {
	i := f.find(id)
	if i < 0 {
		return nil, common.ErrorNotFound
	}
	cp := *f.rows[i]
	return &cp, nil
}

func (f *fakeCandidatesRepo) MarkViewed(_ context.Context, id string) error {
	i := f.find(id)
	if i < 0 {
		return common.ErrorNotFound
	}
	f.rows[i].IsViewed = true
	return nil
}

func (f *fakeCandidatesRepo) SetResumeKey(_ context.Context, id, key string) error {
	i := f.find(id)
	if i < 0 {
		return common.ErrorNotFound
	}
	f.rows[i].ResumeKey = key
	return nil
}

func (f *fakeCandidatesRepo) Delete(_ context.Context, id string) error {
	i := f.find(id)
	if i < 0 {
		return common.ErrorNotFound
	}
	f.rows = append(f.rows[:i], f.rows[i+1:]...)
	return nil
}

type fakeRepoManager struct {
	u *fakeUsersRepo
	c *fakeCandidatesRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error  { return nil }
func (m *fakeRepoManager) Users(dbx.DBTX) usersrepo.Repository           { return m.u }
func (m *fakeRepoManager) Candidates(dbx.DBTX) candidatesrepo.Repository { return m.c }

type fakeStore struct {
	uploaded map[string]bool
	err      error
}

func (f *fakeStore) PresignPut(_ context.Context, key string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return "https://s3.test/put/" + key, nil
}

func (f *fakeStore) PresignGet(_ context.Context, key string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return "https://s3.test/get/" + key, nil
}

func (f *fakeStore) Exists(_ context.Context, key string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.uploaded[key], nil
}

func validCandidate() candidate.Candidate {
	return candidate.Candidate{
		Name:               "  Asha Rao ",
		Email:              "asha@example.com",
		MobileNumber:       "9876543210",
		CurrentLocation:    "Pune",
		PANNumber:          "abcde1234f",
		HighestEducation:   "B.Tech",
		PassedOutYear:      "2018",
		Skill:              "Go",
		IsFresher:          candidate.No,
		TotalExperience:    "4",
		RelevantExperience: "3",
		CurrentCompany:     "Acme",
		PreviousCompanies:  "Initech",
		IsCurrentlyWorking: candidate.Yes,
		CareerGaps:         "None",
		CurrentCTC:         "10",
		ExpectedCTC:        "14",
		NoticePeriod:       "30",
		HasForm16:          candidate.Yes,
		HasPF:              candidate.Yes,
		Overlaps:           "None",
	}
}
