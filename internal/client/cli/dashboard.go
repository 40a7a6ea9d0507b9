package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/candidatetracker/internal/candidate"
	"github.com/dmitrijs2005/candidatetracker/internal/client/dashboard"
	"github.com/dmitrijs2005/candidatetracker/internal/common"
	"github.com/olekukonko/tablewriter"
)

var listHeader = []string{"ID", "Name", "Email", "Mobile", "Skills", "Experience", "Location", "Status", "Submitted"}

func (a *App) filtered() (shown, all []candidate.Candidate) {
	all = a.candidates.Candidates()
	return dashboard.Apply(all, a.filter, a.now()), all
}

func experienceCell(c candidate.Candidate) string {
	if c.Fresher() {
		return "Fresher"
	}
	if c.TotalExperience == "" {
		return "-"
	}
	return c.TotalExperience + " Years"
}

func statusCell(c candidate.Candidate) string {
	if c.IsViewed {
		return "Viewed"
	}
	return "Pending Review"
}

// List prints the filtered candidates as a table.
func (a *App) List(ctx context.Context) error {
	shown, all := a.filtered()
	if len(shown) == 0 {
		a.notice("No candidates found matching your filters.")
		return nil
	}

	table := tablewriter.NewWriter(a.out)
	table.SetHeader(listHeader)
	table.SetAutoWrapText(false)
	for _, c := range shown {
		submitted := ""
		if !c.SubmittedAt.IsZero() {
			submitted = c.SubmittedAt.In(a.loc).Format("02/01/2006")
		}
		table.Append([]string{
			c.ID, c.Name, c.Email, c.MobileNumber, c.Skill,
			experienceCell(c), c.CurrentLocation, statusCell(c), submitted,
		})
	}
	table.Render()

	fmt.Fprintf(a.out, "Showing %d of %d candidates\n", len(shown), len(all))
	return nil
}

// parseFilterArgs reads key=value pairs. A token without '=' continues the
// previous value, so "location=New Delhi" works unquoted.
func parseFilterArgs(f dashboard.Filter, args []string) (dashboard.Filter, error) {
	var target *string
	for _, tok := range args {
		key, value, ok := strings.Cut(tok, "=")
		if !ok {
			if target == nil {
				return f, fmt.Errorf("expected key=value, got %q", tok)
			}
			*target = strings.TrimSpace(*target + " " + tok)
			continue
		}
		switch strings.ToLower(key) {
		case "search", "q":
			target = &f.Search
		case "status":
			target = &f.Status
		case "experience", "exp":
			target = &f.Experience
		case "date":
			target = &f.Date
		case "location", "loc":
			target = &f.Location
		default:
			return f, fmt.Errorf("unknown filter %q", key)
		}
		*target = value
	}
	return f, f.Validate()
}

// promptFilter asks for every predicate, keeping the current value on an
// empty answer.
func (a *App) promptFilter() (dashboard.Filter, error) {
	f := a.filter
	search, err := getSimpleText(a.reader, fmt.Sprintf("Search name, skill or mobile [%s]", f.Search), a.out)
	if err != nil {
		return f, err
	}
	if search != "" {
		f.Search = search
	}

	choices := []struct {
		label string
		opts  []string
		dst   *string
	}{
		{"Status", dashboard.StatusOptions, &f.Status},
		{"Experience", dashboard.ExperienceOptions, &f.Experience},
		{"Date", dashboard.DateOptions, &f.Date},
		{"Location", dashboard.Locations(a.candidates.Candidates()), &f.Location},
	}
	for _, c := range choices {
		def := *c.dst
		if def == "" {
			def = dashboard.All
		}
		v, err := getChoice(a.reader, c.label, c.opts, def, a.out)
		if err != nil {
			return f, err
		}
		*c.dst = v
	}
	return f, f.Validate()
}

// SetFilter updates the dashboard predicates from key=value arguments, or
// interactively when none are given. An invalid filter is not applied.
func (a *App) SetFilter(ctx context.Context, args []string) error {
	var (
		f   dashboard.Filter
		err error
	)
	if len(args) == 0 {
		f, err = a.promptFilter()
	} else {
		f, err = parseFilterArgs(a.filter, args)
	}
	if err != nil {
		a.alert("%s", err)
		return err
	}
	a.filter = f
	return a.List(ctx)
}

// ResetFilter clears every predicate.
func (a *App) ResetFilter(ctx context.Context) error {
	a.filter.Reset()
	a.notice("Filters cleared")
	return a.List(ctx)
}

// Locations prints the distinct locations of the loaded candidates.
func (a *App) Locations(ctx context.Context) error {
	locs := dashboard.Locations(a.candidates.Candidates())[1:]
	if len(locs) == 0 {
		a.notice("No locations")
		return nil
	}
	for _, l := range locs {
		fmt.Fprintln(a.out, l)
	}
	return nil
}

func (a *App) Stats(ctx context.Context) error {
	s := dashboard.Summarize(a.candidates.Candidates(), a.now())

	table := tablewriter.NewWriter(a.out)
	table.SetHeader([]string{"Total Candidates", "Today", "Viewed", "Pending Review"})
	table.Append([]string{
		fmt.Sprint(s.Total), fmt.Sprint(s.Today), fmt.Sprint(s.Viewed), fmt.Sprint(s.Pending),
	})
	table.Render()
	return nil
}

// Refresh reloads the list from the backend.
func (a *App) Refresh(ctx context.Context) error {
	if err := a.candidates.Refresh(ctx); err != nil {
		a.alert("Could not load candidates: %s", err)
		return err
	}
	a.success("Loaded %d candidates", len(a.candidates.Candidates()))
	return nil
}

// Export writes the filtered list to a CSV file in the export directory.
func (a *App) Export(ctx context.Context) error {
	shown, _ := a.filtered()
	path, err := dashboard.ExportFile(a.config.ExportDir, shown, a.now())
	if errors.Is(err, common.ErrNothingToExport) {
		a.notice("No data to export")
		return nil
	}
	if err != nil {
		a.alert("Export failed: %s", err)
		return err
	}
	a.success("Exported %d candidates to %s", len(shown), path)
	return nil
}
