package cli

import (
	"bufio"
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/candidatetracker/internal/candidate"
	"github.com/dmitrijs2005/candidatetracker/internal/client/client"
	"github.com/dmitrijs2005/candidatetracker/internal/client/config"
	"github.com/dmitrijs2005/candidatetracker/internal/client/dashboard"
	"github.com/dmitrijs2005/candidatetracker/internal/client/form"
	"github.com/dmitrijs2005/candidatetracker/internal/client/models"
	"github.com/dmitrijs2005/candidatetracker/internal/client/services"
	"github.com/dmitrijs2005/candidatetracker/internal/client/session"
	"github.com/dmitrijs2005/candidatetracker/internal/logging"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

type fakeAuth struct {
	session *session.Session

	loginUser models.User
	loginErr  error
	regErr    error
	pingErr   error
	logoutErr error

	regEmail, regRole string
	regPass           []byte
	loginEmail        string
	loggedOut         bool
}

var _ services.AuthService = (*fakeAuth)(nil)

func (f *fakeAuth) Login(ctx context.Context, email string, password []byte) error {
	f.loginEmail = email
	if f.loginErr != nil {
		return f.loginErr
	}
	return f.session.Save(ctx, f.loginUser, "jwt")
}

func (f *fakeAuth) Register(_ context.Context, email string, password []byte, role string) error {
	f.regEmail, f.regRole = email, role
	f.regPass = append([]byte(nil), password...)
	return f.regErr
}

func (f *fakeAuth) Logout(ctx context.Context) error {
	f.loggedOut = true
	_ = f.session.Clear(ctx)
	return f.logoutErr
}

func (f *fakeAuth) Ping(context.Context) error  { return f.pingErr }
func (f *fakeAuth) Close(context.Context) error { return nil }

type fakeCandidates struct {
	list []candidate.Candidate

	refreshErr, addErr, markErr, deleteErr, attachErr error

	refreshed int
	added     []candidate.Candidate
	marked    []string
	deleted   []string
	attached  []string
}

var _ services.CandidateService = (*fakeCandidates)(nil)

func (f *fakeCandidates) Refresh(context.Context) error {
	f.refreshed++
	return f.refreshErr
}

func (f *fakeCandidates) AddCandidate(_ context.Context, c candidate.Candidate) (string, error) {
	if f.addErr != nil {
		return "", f.addErr
	}
	c.ID = "new-1"
	f.added = append(f.added, c)
	f.list = append([]candidate.Candidate{c}, f.list...)
	return c.ID, nil
}

func (f *fakeCandidates) MarkViewed(_ context.Context, id string) error {
	f.marked = append(f.marked, id)
	if f.markErr != nil {
		return f.markErr
	}
	for i := range f.list {
		if f.list[i].ID == id {
			f.list[i].IsViewed = true
		}
	}
	return nil
}

func (f *fakeCandidates) DeleteCandidate(_ context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	kept := f.list[:0:0]
	for _, c := range f.list {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	f.list = kept
	return nil
}

func (f *fakeCandidates) AttachResume(_ context.Context, id, path string) error {
	f.attached = append(f.attached, id+":"+path)
	return f.attachErr
}

func (f *fakeCandidates) Candidates() []candidate.Candidate {
	return append([]candidate.Candidate(nil), f.list...)
}

func (f *fakeCandidates) Get(id string) (candidate.Candidate, bool) {
	for _, c := range f.list {
		if c.ID == id {
			return c, true
		}
	}
	return candidate.Candidate{}, false
}

func (f *fakeCandidates) Reset() { f.list = nil }

type testApp struct {
	*App
	auth  *fakeAuth
	cands *fakeCandidates
	buf   *bytes.Buffer
}

// newTestApp builds an App over an in-memory session, fakes for both
// services and the given scripted input.
func newTestApp(t *testing.T, input string) *testApp {
	t.Helper()
	ctx := context.Background()

	db, err := client.OpenLocalStore(ctx, filepath.Join(t.TempDir(), "client.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	s := session.New(db)
	fa := &fakeAuth{session: s}
	fc := &fakeCandidates{}
	out := &bytes.Buffer{}

	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.ExportDir = t.TempDir()

	a := &App{
		config:      cfg,
		log:         logging.Nop{},
		session:     s,
		authService: fa,
		candidates:  fc,
		form:        form.New(candidate.NewValidator(candidate.WithClock(func() time.Time { return testNow })), fc),
		filter:      dashboard.DefaultFilter(),
		reader:      bufio.NewReader(strings.NewReader(input)),
		out:         out,
		now:         func() time.Time { return testNow },
		loc:         time.UTC,
	}
	return &testApp{App: a, auth: fa, cands: fc, buf: out}
}

func (ta *testApp) signIn(t *testing.T, role string) {
	t.Helper()
	require.NoError(t, ta.session.Save(context.Background(), models.User{Email: role + "@example.com", Role: role}, "jwt"))
}

func lines(l ...string) string {
	return strings.Join(l, "\n") + "\n"
}

func sample(id, name string, viewed bool) candidate.Candidate {
	return candidate.Candidate{
		ID:                 id,
		Name:               name,
		Email:              strings.ToLower(name) + "@example.com",
		MobileNumber:       "9876543210",
		CurrentLocation:    "Pune",
		PANNumber:          "ABCDE1234F",
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
		Status:             candidate.StatusPending,
		SubmittedAt:        testNow.Add(-time.Hour),
		IsViewed:           viewed,
	}
}
