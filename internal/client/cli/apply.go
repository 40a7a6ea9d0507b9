package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/candidatetracker/internal/candidate"
)

// askField prompts for one form field and stores the answer. An empty
// answer keeps a non-empty current value.
func (a *App) askField(info candidate.FieldInfo) error {
	current := a.form.Value(info.Name)

	var answer string
	var err error
	if len(info.Options) > 0 {
		def := current
		if def == "" {
			def = info.Options[0]
		}
		answer, err = getChoice(a.reader, info.Label, info.Options, def, a.out)
	} else {
		prompt := info.Label
		if info.Optional {
			prompt += " (optional)"
		}
		if current != "" {
			prompt += fmt.Sprintf(" [%s]", current)
		}
		answer, err = getSimpleText(a.reader, prompt, a.out)
		if answer == "" {
			answer = current
		}
	}
	if err != nil {
		return err
	}
	return a.form.Set(info.Name, answer)
}

// pending returns the fields to ask for: every field on the first pass,
// afterwards only those that failed validation.
func (a *App) pending(first bool) []candidate.FieldInfo {
	errs := a.form.Errors()
	var out []candidate.FieldInfo
	for _, f := range candidate.Fields {
		if first || errs[f.Name] != "" {
			out = append(out, f)
		}
	}
	return out
}

// Apply walks the applicant through the form. After a failed validation
// every message is shown and only the offending fields are asked again.
func (a *App) Apply(ctx context.Context) error {
	a.form.Reset()
	first := true

	for {
		asked := 0
		for _, f := range a.pending(first) {
			// Visibility follows the answers given so far.
			if !a.form.Visible(f.Name) {
				continue
			}
			if msg := a.form.Error(f.Name); msg != "" {
				a.notice("%s: %s", f.Label, msg)
			}
			if err := a.askField(f); err != nil {
				return err
			}
			asked++
		}
		if !first && asked == 0 {
			return errors.New("nothing left to correct")
		}
		first = false

		id, err := a.form.Submit(ctx)
		if err == nil {
			a.success("Application Submitted!")
			fmt.Fprintln(a.out, "Thank you for providing your details. Your profile has been successfully recorded.")
			fmt.Fprintf(a.out, "Application id: %s (use 'attach <file>' to upload your resume)\n", id)
			return nil
		}

		var verr *candidate.ValidationError
		if !errors.As(err, &verr) {
			a.alert("Failed to submit application. Please try again.")
			a.log.Error(ctx, "submit failed", "error", err)
			return err
		}
		a.alert("Please correct %d field(s):", len(verr.Fields))
	}
}

// Attach uploads a resume for the most recent application of this session.
func (a *App) Attach(ctx context.Context, args []string) error {
	id := a.form.LastID()
	if id == "" {
		a.alert("Submit an application first")
		return errors.New("no application submitted")
	}

	path := strings.Join(args, " ")
	if path == "" {
		var err error
		if path, err = getSimpleText(a.reader, "Enter resume file path", a.out); err != nil {
			return err
		}
	}

	if err := a.candidates.AttachResume(ctx, id, path); err != nil {
		a.alert("Resume upload failed: %s", err)
		return err
	}
	a.success("Resume uploaded")
	return nil
}
