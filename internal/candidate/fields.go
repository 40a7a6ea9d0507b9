package candidate

// FieldInfo describes one form field in display order.
type FieldInfo struct {
	Name  string
	Label string
	// ExperienceOnly fields are asked for and kept only when the applicant
	// is not a fresher.
	ExperienceOnly bool
	// Options lists the allowed answers of a choice field.
	Options []string
	// Optional fields may be left empty.
	Optional bool
}

var yesNo = []string{Yes, No}

// Fields lists every form field in the order the form presents them.
var Fields = []FieldInfo{
	{Name: "name", Label: "Full Name"},
	{Name: "email", Label: "Email"},
	{Name: "mobileNumber", Label: "Mobile Number"},
	{Name: "currentLocation", Label: "Current Location"},
	{Name: "panNumber", Label: "PAN Number"},
	{Name: "highestEducation", Label: "Highest Education"},
	{Name: "passedOutYear", Label: "Passed Out Year"},
	{Name: "skill", Label: "Primary Skills"},
	{Name: "isFresher", Label: "Are you a Fresher?", Options: yesNo},
	{Name: "totalExperience", Label: "Total Experience (Years)", ExperienceOnly: true},
	{Name: "relevantExperience", Label: "Relevant Experience (Years)", ExperienceOnly: true},
	{Name: "currentCompany", Label: "Current Company", ExperienceOnly: true},
	{Name: "previousCompanies", Label: "Previous Companies", ExperienceOnly: true},
	{Name: "isCurrentlyWorking", Label: "Currently Working?", ExperienceOnly: true, Options: yesNo},
	{Name: "careerGaps", Label: "Career Gaps", ExperienceOnly: true},
	{Name: "currentCTC", Label: "Current CTC"},
	{Name: "expectedCTC", Label: "Expected CTC"},
	{Name: "noticePeriod", Label: "Notice Period"},
	{Name: "hasForm16", Label: "Form 16 Available?", Options: yesNo},
	{Name: "hasPF", Label: "PF Account?", Options: yesNo},
	{Name: "overlaps", Label: "Overlaps / Other Info"},
	{Name: "referredBy", Label: "Referred By", Optional: true},
}

// LookupField returns the description of the named field.
func LookupField(name string) (FieldInfo, bool) {
	for _, f := range Fields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldInfo{}, false
}

// Field returns a pointer to the named form field, or nil for an unknown
// name. Field names are the JSON names.
func (c *Candidate) Field(name string) *string {
	switch name {
	case "name":
		return &c.Name
	case "email":
		return &c.Email
	case "mobileNumber":
		return &c.MobileNumber
	case "currentLocation":
		return &c.CurrentLocation
	case "panNumber":
		return &c.PANNumber
	case "highestEducation":
		return &c.HighestEducation
	case "passedOutYear":
		return &c.PassedOutYear
	case "skill":
		return &c.Skill
	case "isFresher":
		return &c.IsFresher
	case "totalExperience":
		return &c.TotalExperience
	case "relevantExperience":
		return &c.RelevantExperience
	case "currentCompany":
		return &c.CurrentCompany
	case "previousCompanies":
		return &c.PreviousCompanies
	case "isCurrentlyWorking":
		return &c.IsCurrentlyWorking
	case "careerGaps":
		return &c.CareerGaps
	case "currentCTC":
		return &c.CurrentCTC
	case "expectedCTC":
		return &c.ExpectedCTC
	case "noticePeriod":
		return &c.NoticePeriod
	case "hasForm16":
		return &c.HasForm16
	case "hasPF":
		return &c.HasPF
	case "overlaps":
		return &c.Overlaps
	case "referredBy":
		return &c.ReferredBy
	}
	return nil
}
