package form

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/candidatetracker/internal/candidate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCreator struct {
	calls []candidate.Candidate
	err   error
}

func (f *fakeCreator) AddCandidate(ctx context.Context, c candidate.Candidate) (string, error) {
	f.calls = append(f.calls, c)
	if f.err != nil {
		return "", f.err
	}
	return "new-id", nil
}

func newForm(c Creator) *Form {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	return New(candidate.NewValidator(candidate.WithClock(func() time.Time { return now })), c)
}

var filled = map[string]string{
	"name":               "Asha Rao",
	"email":              "asha@example.com",
	"mobileNumber":       "9876543210",
	"currentLocation":    "Pune",
	"panNumber":          "abcde1234f",
	"highestEducation":   "MCA",
	"passedOutYear":      "2019",
	"skill":              "Go",
	"totalExperience":    "4",
	"relevantExperience": "3",
	"currentCompany":     "Acme",
	"previousCompanies":  "Initech",
	"careerGaps":         "None",
	"currentCTC":         "10",
	"expectedCTC":        "12",
	"noticePeriod":       "60 days",
	"overlaps":           "None",
}

func fill(t *testing.T, f *Form, except string) {
	t.Helper()
	for k, v := range filled {
		if k == except {
			continue
		}
		require.NoError(t, f.Set(k, v))
	}
}

func TestNew_InitialValues(t *testing.T) {
	f := newForm(&fakeCreator{})
	assert.Equal(t, Editing, f.State())
	assert.Equal(t, candidate.Initial(), f.Values())
	assert.Empty(t, f.Errors())
}

func TestSubmit_Valid(t *testing.T) {
	fc := &fakeCreator{}
	f := newForm(fc)
	fill(t, f, "")

	id, err := f.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "new-id", id)
	assert.Equal(t, Submitted, f.State())
	assert.Equal(t, "new-id", f.LastID())

	require.Len(t, fc.calls, 1)
	assert.Equal(t, "ABCDE1234F", fc.calls[0].PANNumber)
	assert.Equal(t, candidate.Initial(), f.Values(), "form resets after success")
}

func TestSubmit_EmptyFieldBlocksCreate(t *testing.T) {
	for field := range filled {
		t.Run(field, func(t *testing.T) {
			fc := &fakeCreator{}
			f := newForm(fc)
			fill(t, f, field)

			_, err := f.Submit(context.Background())
			var verr *candidate.ValidationError
			require.ErrorAs(t, err, &verr)

			errs := f.Errors()
			assert.Len(t, errs, 1)
			assert.NotEmpty(t, errs[field])
			assert.Empty(t, fc.calls)
			assert.Equal(t, Editing, f.State())
		})
	}
}

func TestSet_ClearsOnlyThatFieldError(t *testing.T) {
	f := newForm(&fakeCreator{})

	_, err := f.Submit(context.Background())
	require.Error(t, err)
	require.NotEmpty(t, f.Error("name"))
	require.NotEmpty(t, f.Error("email"))

	require.NoError(t, f.Set("name", "A"))
	assert.Empty(t, f.Error("name"), "cleared on edit, not revalidated")
	assert.NotEmpty(t, f.Error("email"))
}

func TestSet_UnknownField(t *testing.T) {
	f := newForm(&fakeCreator{})
	assert.ErrorIs(t, f.Set("status", "Viewed"), ErrUnknownField)
}

func TestSubmit_CreateFailureReturnsToEditing(t *testing.T) {
	fc := &fakeCreator{err: errors.New("network")}
	f := newForm(fc)
	fill(t, f, "")

	_, err := f.Submit(context.Background())
	require.Error(t, err)
	assert.Equal(t, Editing, f.State())
	assert.Equal(t, "Asha Rao", f.Value("name"), "values kept for retry")
	assert.Empty(t, f.Errors())
}

func TestSubmit_FresherSkipsExperience(t *testing.T) {
	fc := &fakeCreator{}
	f := newForm(fc)
	fill(t, f, "")
	require.NoError(t, f.Set("isFresher", candidate.Yes))
	require.NoError(t, f.Set("currentCompany", ""))

	assert.False(t, f.Visible("currentCompany"))
	assert.True(t, f.Visible("skill"))

	_, err := f.Submit(context.Background())
	require.NoError(t, err)
	assert.Empty(t, fc.calls[0].TotalExperience)
	assert.Empty(t, fc.calls[0].PreviousCompanies)
}

func TestSet_AfterSubmittedStartsOver(t *testing.T) {
	f := newForm(&fakeCreator{})
	fill(t, f, "")
	_, err := f.Submit(context.Background())
	require.NoError(t, err)

	require.NoError(t, f.Set("name", "Next Person"))
	assert.Equal(t, Editing, f.State())
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "submitting", Submitting.String())
	assert.Equal(t, "State(9)", State(9).String())
}
