// Package form drives the application form: field edits, validation on
// submit, and hand-off to the candidate store.
package form

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/candidatetracker/internal/candidate"
)

type State int

const (
	Editing State = iota
	Validating
	Submitting
	Submitted
)

func (s State) String() string {
	switch s {
	case Editing:
		return "editing"
	case Validating:
		return "validating"
	case Submitting:
		return "submitting"
	case Submitted:
		return "submitted"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

var (
	ErrUnknownField = errors.New("unknown field")
	ErrBusy         = errors.New("submission in progress")
)

// Creator stores a validated application and returns its id.
type Creator interface {
	AddCandidate(ctx context.Context, c candidate.Candidate) (string, error)
}

// Form holds the values being edited and the errors of the last submit.
type Form struct {
	validator *candidate.Validator
	creator   Creator

	mu     sync.Mutex
	values candidate.Candidate
	errs   map[string]string
	state  State
	lastID string
}

func New(v *candidate.Validator, c Creator) *Form {
	f := &Form{validator: v, creator: c}
	f.Reset()
	return f
}

// Reset restores the initial values and clears errors.
func (f *Form) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values = candidate.Initial()
	f.errs = map[string]string{}
	f.state = Editing
}

// Set edits one field and clears that field's error. Editing a submitted
// form starts a new application.
func (f *Form) Set(field, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state == Validating || f.state == Submitting {
		return ErrBusy
	}
	p := f.values.Field(field)
	if p == nil {
		return fmt.Errorf("%w: %s", ErrUnknownField, field)
	}
	*p = value
	delete(f.errs, field)
	f.state = Editing
	return nil
}

// Submit validates every field and, when all pass, creates the record. A
// *candidate.ValidationError means nothing was sent; the per-field messages
// are also available from Errors. Any other error is a failed create and
// leaves the values in place for another attempt.
func (f *Form) Submit(ctx context.Context) (string, error) {
	f.mu.Lock()
	if f.state == Validating || f.state == Submitting {
		f.mu.Unlock()
		return "", ErrBusy
	}
	f.state = Validating
	values := f.values

	if err := f.validator.Validate(values); err != nil {
		var verr *candidate.ValidationError
		if errors.As(err, &verr) {
			f.errs = make(map[string]string, len(verr.Fields))
			for k, v := range verr.Fields {
				f.errs[k] = v
			}
		}
		f.state = Editing
		f.mu.Unlock()
		return "", err
	}
	f.errs = map[string]string{}
	f.state = Submitting
	f.mu.Unlock()

	id, err := f.creator.AddCandidate(ctx, candidate.Normalize(values))

	f.mu.Lock()
	defer f.mu.Unlock()
	if err != nil {
		f.state = Editing
		return "", err
	}
	f.values = candidate.Initial()
	f.state = Submitted
	f.lastID = id
	return id, nil
}

func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

func (f *Form) Values() candidate.Candidate {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.values
}

// Value returns the current value of field.
func (f *Form) Value(field string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if p := f.values.Field(field); p != nil {
		return *p
	}
	return ""
}

// Errors returns a copy of the field errors from the last submit.
func (f *Form) Errors() map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(map[string]string, len(f.errs))
	for k, v := range f.errs {
		out[k] = v
	}
	return out
}

// Error returns the message for field, or "".
func (f *Form) Error(field string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.errs[field]
}

// Visible reports whether field is shown for the current answers;
// experience-only fields are hidden for freshers.
func (f *Form) Visible(field string) bool {
	info, ok := candidate.LookupField(field)
	if !ok {
		return false
	}
	if !info.ExperienceOnly {
		return true
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return !f.values.Fresher()
}

// LastID is the id of the most recent successful submission.
func (f *Form) LastID() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastID
}
