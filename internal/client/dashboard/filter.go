// Package dashboard filters, summarises and exports the candidate list
// shown to administrators. Everything here is a pure function of its
// inputs.
package dashboard

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/candidatetracker/internal/candidate"
	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
)

const All = "all"

const (
	StatusViewed  = "viewed"
	StatusPending = "pending"
)

const (
	ExpFresher = "fresher"
	Exp1To3    = "1-3"
	Exp3To5    = "3-5"
	ExpAbove5  = "5+"
)

const (
	DateToday  = "today"
	DateLast7  = "last7"
	DateLast30 = "last30"
)

const day = 24 * time.Hour

// Option values accepted by each filter, in display order.
var (
	StatusOptions     = []string{All, StatusViewed, StatusPending}
	ExperienceOptions = []string{All, ExpFresher, Exp1To3, Exp3To5, ExpAbove5}
	DateOptions       = []string{All, DateToday, DateLast7, DateLast30}
)

// Filter is the set of dashboard predicates, combined with AND. The zero
// value and "all" both mean no restriction.
type Filter struct {
	Search     string
	Status     string
	Experience string
	Date       string
	Location   string
}

// DefaultFilter matches every record.
func DefaultFilter() Filter {
	return Filter{Status: All, Experience: All, Date: All, Location: All}
}

// Reset restores the defaults.
func (f *Filter) Reset() {
	*f = DefaultFilter()
}

// Validate rejects option values the dashboard does not know.
func (f Filter) Validate() error {
	if !allowed(f.Status, StatusOptions) {
		return fmt.Errorf("unknown status filter %q", f.Status)
	}
	if !allowed(f.Experience, ExperienceOptions) {
		return fmt.Errorf("unknown experience filter %q", f.Experience)
	}
	if !allowed(f.Date, DateOptions) {
		return fmt.Errorf("unknown date filter %q", f.Date)
	}
	return nil
}

func allowed(v string, opts []string) bool {
	if v == "" {
		return true
	}
	for _, o := range opts {
		if v == o {
			return true
		}
	}
	return false
}

func unset(v string) bool { return v == "" || v == All }

// Apply returns the records of list matching f, in list order. now is the
// reference time for the date predicate; its location defines "today".
func Apply(list []candidate.Candidate, f Filter, now time.Time) []candidate.Candidate {
	fold := cases.Fold()
	term := fold.String(f.Search)

	out := make([]candidate.Candidate, 0, len(list))
	for _, c := range list {
		if matchSearch(fold, c, f.Search, term) &&
			matchStatus(c, f.Status) &&
			matchExperience(c, f.Experience) &&
			matchDate(c, f.Date, now) &&
			matchLocation(c, f.Location) {
			out = append(out, c)
		}
	}
	return out
}

func matchSearch(fold cases.Caser, c candidate.Candidate, raw, term string) bool {
	if raw == "" {
		return true
	}
	return strings.Contains(fold.String(c.Name), term) ||
		strings.Contains(fold.String(c.Skill), term) ||
		strings.Contains(c.MobileNumber, raw)
}

func matchStatus(c candidate.Candidate, status string) bool {
	switch status {
	case StatusViewed:
		return c.IsViewed
	case StatusPending:
		return !c.IsViewed
	}
	return true
}

func matchExperience(c candidate.Candidate, bucket string) bool {
	if unset(bucket) {
		return true
	}
	if bucket == ExpFresher {
		return c.IsFresher == candidate.Yes
	}
	if c.IsFresher != candidate.No {
		return false
	}

	years, ok := totalYears(c)
	if !ok {
		return false
	}
	one, three, five := decimal.NewFromInt(1), decimal.NewFromInt(3), decimal.NewFromInt(5)

	switch bucket {
	case Exp1To3:
		return years.GreaterThanOrEqual(one) && years.LessThanOrEqual(three)
	case Exp3To5:
		return years.GreaterThan(three) && years.LessThanOrEqual(five)
	case ExpAbove5:
		return years.GreaterThan(five)
	}
	return false
}

// totalYears parses total experience; an empty value counts as zero.
func totalYears(c candidate.Candidate) (decimal.Decimal, bool) {
	raw := strings.TrimSpace(c.TotalExperience)
	if raw == "" {
		return decimal.Zero, true
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

func matchDate(c candidate.Candidate, window string, now time.Time) bool {
	if unset(window) {
		return true
	}
	if window == DateToday {
		return sameDay(c.SubmittedAt.In(now.Location()), now)
	}

	days := ageInDays(c.SubmittedAt, now)
	switch window {
	case DateLast7:
		return days <= 7
	case DateLast30:
		return days <= 30
	}
	return true
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// ageInDays rounds the absolute distance between t and now up to whole days.
func ageInDays(t, now time.Time) int64 {
	diff := now.Sub(t)
	if diff < 0 {
		diff = -diff
	}
	days := int64(diff / day)
	if diff%day != 0 {
		days++
	}
	return days
}

func matchLocation(c candidate.Candidate, loc string) bool {
	return unset(loc) || c.CurrentLocation == loc
}

// Locations lists the distinct non-empty locations of list in first-seen
// order, preceded by "all".
func Locations(list []candidate.Candidate) []string {
	seen := map[string]bool{}
	out := []string{All}
	for _, c := range list {
		if c.CurrentLocation == "" || seen[c.CurrentLocation] {
			continue
		}
		seen[c.CurrentLocation] = true
		out = append(out, c.CurrentLocation)
	}
	return out
}
