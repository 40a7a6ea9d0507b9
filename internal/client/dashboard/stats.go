package dashboard

import (
	"time"

	"github.com/dmitrijs2005/candidatetracker/internal/candidate"
)

// Stats are the headline counters over the full list.
type Stats struct {
	Total   int
	Today   int
	Viewed  int
	Pending int
}

func Summarize(list []candidate.Candidate, now time.Time) Stats {
	var s Stats
	for _, c := range list {
		s.Total++
		if sameDay(c.SubmittedAt.In(now.Location()), now) {
			s.Today++
		}
		if c.IsViewed {
			s.Viewed++
		} else {
			s.Pending++
		}
	}
	return s
}
