package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/candidatetracker/internal/candidate"
	"github.com/dmitrijs2005/candidatetracker/internal/common"
)

var confirm = Confirm

func (a *App) recordID(args []string, prompt string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	return getSimpleText(a.reader, prompt, a.out)
}

type item struct {
	label, value string
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func suffixed(s, unit string) string {
	if s == "" {
		return "-"
	}
	return s + " " + unit
}

func (a *App) section(title string, items ...item) {
	fmt.Fprintf(a.out, "\n== %s ==\n", title)
	for _, it := range items {
		fmt.Fprintf(a.out, "  %-22s %s\n", it.label+":", orDash(it.value))
	}
}

func (a *App) printCandidate(c candidate.Candidate) {
	fmt.Fprintln(a.out, c.Name)
	fmt.Fprintln(a.out, strings.Join([]string{c.Email, c.MobileNumber, c.CurrentLocation}, " | "))
	applied := "-"
	if !c.SubmittedAt.IsZero() {
		applied = c.SubmittedAt.In(a.loc).Format("02/01/2006")
	}
	fmt.Fprintf(a.out, "Applied On: %s    Status: %s\n", applied, statusCell(c))

	professional := []item{
		{"Primary Skills", c.Skill},
		{"Fresher Status", c.IsFresher},
	}
	if !c.Fresher() {
		professional = append(professional,
			item{"Total Experience", suffixed(c.TotalExperience, "Years")},
			item{"Relevant Experience", suffixed(c.RelevantExperience, "Years")},
			item{"Current Company", c.CurrentCompany},
			item{"Currently Working", c.IsCurrentlyWorking},
			item{"Previous Companies", c.PreviousCompanies},
		)
	}
	a.section("Professional Profile", professional...)

	if !c.Fresher() {
		a.section("Compensation & Notice",
			item{"Current CTC", suffixed(c.CurrentCTC, "LPA")},
			item{"Expected CTC", suffixed(c.ExpectedCTC, "LPA")},
			item{"Notice Period", suffixed(c.NoticePeriod, "Days")},
			item{"PF Account", c.HasPF},
			item{"Form 16", c.HasForm16},
		)
	}

	education := []item{
		{"Highest Education", c.HighestEducation},
		{"Passed Out Year", c.PassedOutYear},
		{"PAN Number", c.PANNumber},
	}
	if !c.Fresher() {
		education = append(education, item{"Career Gaps", c.CareerGaps})
	}
	a.section("Education & Compliance", education...)

	other := []item{}
	if c.Overlaps != "" {
		other = append(other, item{"Overlaps / Notes", c.Overlaps})
	}
	if c.ReferredBy != "" {
		other = append(other, item{"Referred By", c.ReferredBy})
	}
	if c.ResumeLink != "" {
		other = append(other, item{"Resume", c.ResumeLink})
	}
	if len(other) > 0 {
		a.section("Additional Info", other...)
	}
}

// Show prints one candidate and flags it as viewed the first time.
func (a *App) Show(ctx context.Context, args []string) error {
	id, err := a.recordID(args, "Enter candidate id")
	if err != nil {
		return err
	}

	c, ok := a.candidates.Get(id)
	if !ok {
		a.alert("Candidate Not Found")
		return common.ErrorNotFound
	}
	a.printCandidate(c)

	if !c.IsViewed {
		if err := a.candidates.MarkViewed(ctx, id); err != nil {
			a.log.Warn(ctx, "mark viewed failed", "id", id, "error", err)
		}
	}
	return nil
}

// Delete removes a candidate after confirmation. The local list changes
// only when the backend confirms.
func (a *App) Delete(ctx context.Context, args []string) error {
	id, err := a.recordID(args, "Enter candidate id to delete")
	if err != nil {
		return err
	}

	c, ok := a.candidates.Get(id)
	if !ok {
		a.alert("Candidate Not Found")
		return common.ErrorNotFound
	}

	yes, err := confirm(a.reader, fmt.Sprintf("Are you sure you want to delete the application for %s? This action cannot be undone.", c.Name), a.out)
	if err != nil {
		return err
	}
	if !yes {
		return nil
	}

	if err := a.candidates.DeleteCandidate(ctx, id); err != nil {
		a.alert("Failed to delete candidate. Please try again.")
		a.log.Error(ctx, "delete failed", "id", id, "error", err)
		return err
	}
	a.success("Deleted %s", c.Name)
	return nil
}
