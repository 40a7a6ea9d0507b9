// Package candidate defines the candidate application record shared by the
// terminal client and the backend, together with its normalisation and
// validation rules.
package candidate

import (
	"strings"
	"time"
)

const (
	Yes = "Yes"
	No  = "No"

	StatusPending = "Pending"
)

// Candidate is one submitted application. Form values are kept as the
// strings the applicant typed.
type Candidate struct {
	ID string `json:"id"`

	Name            string `json:"name" validate:"nonblank,mintrimmed=3"`
	Email           string `json:"email" validate:"required,emailaddr"`
	MobileNumber    string `json:"mobileNumber" validate:"required,mobile"`
	CurrentLocation string `json:"currentLocation" validate:"nonblank"`
	PANNumber       string `json:"panNumber" validate:"required,pan"`

	HighestEducation string `json:"highestEducation" validate:"nonblank"`
	PassedOutYear    string `json:"passedOutYear" validate:"required,passyear"`
	Skill            string `json:"skill" validate:"nonblank"`

	IsFresher          string `json:"isFresher" validate:"oneof=Yes No"`
	TotalExperience    string `json:"totalExperience" validate:"required_if=IsFresher No,omitempty,numeric"`
	RelevantExperience string `json:"relevantExperience" validate:"required_if=IsFresher No,omitempty,numeric,notabove=TotalExperience"`
	CurrentCompany     string `json:"currentCompany" validate:"expnonblank"`
	PreviousCompanies  string `json:"previousCompanies" validate:"expnonblank"`
	IsCurrentlyWorking string `json:"isCurrentlyWorking" validate:"omitempty,oneof=Yes No"`
	CareerGaps         string `json:"careerGaps" validate:"expnonblank"`

	CurrentCTC   string `json:"currentCTC" validate:"required,numeric,nonnegative"`
	ExpectedCTC  string `json:"expectedCTC" validate:"required,numeric,nonnegative"`
	NoticePeriod string `json:"noticePeriod" validate:"required"`

	HasForm16  string `json:"hasForm16" validate:"omitempty,oneof=Yes No"`
	HasPF      string `json:"hasPF" validate:"omitempty,oneof=Yes No"`
	Overlaps   string `json:"overlaps" validate:"nonblank"`
	ReferredBy string `json:"referredBy"`

	Status      string    `json:"status"`
	SubmittedAt time.Time `json:"submittedAt"`
	IsViewed    bool      `json:"isViewed"`
	ResumeLink  string    `json:"resumeLink,omitempty"`

	// ResumeKey is the object-storage key of an uploaded resume. Server only.
	ResumeKey string `json:"-"`
}

// Initial returns the values a fresh application form starts with.
func Initial() Candidate {
	return Candidate{
		IsFresher:          No,
		IsCurrentlyWorking: Yes,
		HasForm16:          Yes,
		HasPF:              Yes,
	}
}

// Fresher reports whether the applicant declared no prior experience.
func (c Candidate) Fresher() bool {
	return c.IsFresher == Yes
}

// Normalize trims every form field, upper-cases the PAN and clears the
// experience-only fields of a fresher.
func Normalize(c Candidate) Candidate {
	for _, f := range Fields {
		p := c.Field(f.Name)
		*p = strings.TrimSpace(*p)
	}
	c.PANNumber = strings.ToUpper(c.PANNumber)

	if c.Fresher() {
		for _, f := range Fields {
			if f.ExperienceOnly {
				*c.Field(f.Name) = ""
			}
		}
	}
	return c
}
