package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/candidatetracker/internal/candidate"
	"github.com/dmitrijs2005/candidatetracker/internal/common"
	"github.com/dmitrijs2005/candidatetracker/internal/logging"
	"github.com/dmitrijs2005/candidatetracker/internal/server/auth"
	"github.com/dmitrijs2005/candidatetracker/internal/server/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 3, 15, 12, 0, 0, 0, time.FixedZone("IST", 5*3600+1800))

func newCandidateService(t *testing.T) (*CandidateService, *fakeCandidatesRepo, *fakeStore) {
	t.Helper()
	repo := &fakeCandidatesRepo{}
	store := &fakeStore{uploaded: map[string]bool{}}
	s := NewCandidateService(newSQLMockDB(t), &fakeRepoManager{c: repo}, candidate.NewValidator(), store, logging.Nop{})
	s.now = func() time.Time { return fixedNow }
	return s, repo, store
}

func stored(repo *fakeCandidatesRepo, submittedBy string) *models.Application {
	c := candidate.Normalize(validCandidate())
	c.ID = uuid.NewString()
	c.Status = candidate.StatusPending
	c.SubmittedAt = fixedNow.UTC()
	a := &models.Application{Candidate: c, SubmittedBy: submittedBy}
	repo.rows = append(repo.rows, a)
	return a
}

func TestCreate_NormalizesAndStamps(t *testing.T) {
	s, repo, _ := newCandidateService(t)

	in := validCandidate()
	in.IsViewed = true
	in.Status = "Hired"
	in.ResumeLink = "http://evil"

	got, err := s.Create(context.Background(), in, "u-7")
	require.NoError(t, err)

	_, perr := uuid.Parse(got.ID)
	assert.NoError(t, perr)
	assert.Equal(t, "Asha Rao", got.Name)
	assert.Equal(t, "ABCDE1234F", got.PANNumber)
	assert.Equal(t, candidate.StatusPending, got.Status)
	assert.False(t, got.IsViewed)
	assert.Empty(t, got.ResumeLink)
	assert.Equal(t, fixedNow.UTC(), got.SubmittedAt)
	assert.Equal(t, time.UTC, got.SubmittedAt.Location())

	require.Len(t, repo.rows, 1)
	assert.Equal(t, "u-7", repo.rows[0].SubmittedBy)
	assert.Equal(t, got, repo.rows[0].Candidate)
}

func TestCreate_FresherDropsExperience(t *testing.T) {
	s, _, _ := newCandidateService(t)

	in := validCandidate()
	in.IsFresher = candidate.Yes
	in.TotalExperience = "abc"

	got, err := s.Create(context.Background(), in, "")
	require.NoError(t, err)
	assert.Empty(t, got.TotalExperience)
	assert.Empty(t, got.CurrentCompany)
}

func TestCreate_Invalid(t *testing.T) {
	s, repo, _ := newCandidateService(t)

	in := validCandidate()
	in.MobileNumber = "123"
	in.PANNumber = ""

	_, err := s.Create(context.Background(), in, "")
	var verr *candidate.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "mobileNumber")
	assert.Contains(t, verr.Fields, "panNumber")
	assert.Empty(t, repo.rows)
}

func TestCreate_RepoError(t *testing.T) {
	s, repo, _ := newCandidateService(t)
	repo.createErr = errors.New("db down")

	_, err := s.Create(context.Background(), validCandidate(), "")
	assert.EqualError(t, err, "db down")
}

func TestList_AddsResumeLinks(t *testing.T) {
	s, repo, store := newCandidateService(t)
	with := stored(repo, "")
	with.ResumeKey = ResumeKey(with.Candidate)
	without := stored(repo, "")

	got, err := s.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "https://s3.test/get/"+with.ResumeKey, got[0].ResumeLink)
	assert.Equal(t, without.ID, got[1].ID)
	assert.Empty(t, got[1].ResumeLink)

	store.err = errors.New("s3 down")
	got, err = s.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got[0].ResumeLink)
}

func TestList_Empty(t *testing.T) {
	s, _, _ := newCandidateService(t)

	got, err := s.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestList_RepoError(t *testing.T) {
	s, repo, _ := newCandidateService(t)
	repo.listErr = errors.New("db down")

	_, err := s.List(context.Background())
	assert.Error(t, err)
}

func TestMarkViewed(t *testing.T) {
	s, repo, _ := newCandidateService(t)
	a := stored(repo, "")
	ctx := context.Background()

	require.NoError(t, s.MarkViewed(ctx, a.ID))
	require.NoError(t, s.MarkViewed(ctx, a.ID))
	assert.True(t, repo.rows[0].IsViewed)

	assert.ErrorIs(t, s.MarkViewed(ctx, uuid.NewString()), common.ErrorNotFound)
	assert.ErrorIs(t, s.MarkViewed(ctx, "not-a-uuid"), common.ErrorNotFound)
}

func TestDelete(t *testing.T) {
	s, repo, _ := newCandidateService(t)
	a := stored(repo, "")
	ctx := context.Background()

	require.NoError(t, s.Delete(ctx, a.ID))
	assert.Empty(t, repo.rows)
	assert.ErrorIs(t, s.Delete(ctx, a.ID), common.ErrorNotFound)
	assert.ErrorIs(t, s.Delete(ctx, "x"), common.ErrorNotFound)
}

func TestResumeUploadURL_Ownership(t *testing.T) {
	s, repo, _ := newCandidateService(t)
	a := stored(repo, "u-1")
	ctx := context.Background()

	owner := &auth.Claims{UserID: "u-1", Role: common.RoleCandidate}
	url, err := s.ResumeUploadURL(ctx, a.ID, owner)
	require.NoError(t, err)
	assert.Equal(t, "https://s3.test/put/"+ResumeKey(a.Candidate), url)

	admin := &auth.Claims{UserID: "u-9", Role: common.RoleAdmin}
	_, err = s.ResumeUploadURL(ctx, a.ID, admin)
	assert.NoError(t, err)

	stranger := &auth.Claims{UserID: "u-2", Role: common.RoleCandidate}
	_, err = s.ResumeUploadURL(ctx, a.ID, stranger)
	assert.ErrorIs(t, err, common.ErrorForbidden)

	_, err = s.ResumeUploadURL(ctx, uuid.NewString(), owner)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestConfirmResume(t *testing.T) {
	s, repo, store := newCandidateService(t)
	a := stored(repo, "u-1")
	owner := &auth.Claims{UserID: "u-1", Role: common.RoleCandidate}
	ctx := context.Background()

	err := s.ConfirmResume(ctx, a.ID, owner)
	var bad *BadRequestError
	require.ErrorAs(t, err, &bad)
	assert.Empty(t, repo.rows[0].ResumeKey)

	key := ResumeKey(a.Candidate)
	store.uploaded[key] = true
	require.NoError(t, s.ConfirmResume(ctx, a.ID, owner))
	assert.Equal(t, key, repo.rows[0].ResumeKey)

	store.err = errors.New("s3 down")
	assert.EqualError(t, s.ConfirmResume(ctx, a.ID, owner), "s3 down")
}

func TestResumeKey(t *testing.T) {
	c := candidate.Candidate{ID: "abc", SubmittedAt: time.Date(2024, 1, 5, 23, 30, 0, 0, time.FixedZone("X", -3600))}
	assert.Equal(t, "resumes/2024/1/6/abc", ResumeKey(c))
}
