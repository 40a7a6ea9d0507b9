package models

import "github.com/dmitrijs2005/candidatetracker/internal/candidate"

// Application is a stored candidate record together with the account that
// submitted it. SubmittedBy is empty for records whose submitter was removed.
type Application struct {
	candidate.Candidate
	SubmittedBy string
}
