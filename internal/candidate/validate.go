package candidate

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var (
	emailRe  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	mobileRe = regexp.MustCompile(`^[0-9]{10}$`)
	panRe    = regexp.MustCompile(`(?i)^[A-Z]{5}[0-9]{4}[A-Z]$`)
)

// MinPassedOutYear is the earliest accepted graduation year.
const MinPassedOutYear = 1980

// messages maps "<field>.<tag>" to the text shown next to the field.
var messages = map[string]string{
	"name.nonblank":                  "Full Name is required",
	"name.mintrimmed":                "Name must be at least 3 characters",
	"email.required":                 "Email is required",
	"email.emailaddr":                "Invalid email format",
	"mobileNumber.required":          "Mobile Number is required",
	"mobileNumber.mobile":            "Mobile number must be exactly 10 digits",
	"currentLocation.nonblank":       "Location is required",
	"panNumber.required":             "PAN Number is required",
	"panNumber.pan":                  "Invalid PAN format (e.g. ABCDE1234F)",
	"highestEducation.nonblank":      "Highest Education is required",
	"passedOutYear.required":         "Year is required",
	"passedOutYear.passyear":         "Enter a valid passing year",
	"skill.nonblank":                 "Primary Skills are required",
	"isFresher.oneof":                "Select whether you are a fresher",
	"totalExperience.required_if":    "Total Experience is required",
	"totalExperience.numeric":        "Experience must be a number",
	"relevantExperience.required_if": "Relevant Experience is required",
	"relevantExperience.numeric":     "Experience must be a number",
	"relevantExperience.notabove":    "Relevant experience cannot be greater than total experience",
	"currentCompany.expnonblank":     "Current Company is required",
	"previousCompanies.expnonblank":  "Previous Companies are required",
	"isCurrentlyWorking.oneof":       "Select Yes or No",
	"careerGaps.expnonblank":         "Career Gaps info is required (enter 'None' if applicable)",
	"currentCTC.required":            "Current CTC is required",
	"currentCTC.numeric":             "CTC must be a number",
	"currentCTC.nonnegative":         "CTC cannot be negative",
	"expectedCTC.required":           "Expected CTC is required",
	"expectedCTC.numeric":            "CTC must be a number",
	"expectedCTC.nonnegative":        "CTC cannot be negative",
	"noticePeriod.required":          "Notice Period is required",
	"hasForm16.oneof":                "Select Yes or No",
	"hasPF.oneof":                    "Select Yes or No",
	"overlaps.nonblank":              "Overlaps/Other info is required (enter 'None' if applicable)",
}

// ValidationError carries every violated rule, keyed by JSON field name.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for n := range e.Fields {
		names = append(names, n)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, n := range names {
		parts = append(parts, n+": "+e.Fields[n])
	}
	return "invalid application: " + strings.Join(parts, "; ")
}

// Validator checks candidate records. It is safe for concurrent use.
type Validator struct {
	v   *validator.Validate
	now func() time.Time
}

type Option func(*Validator)

// WithClock overrides the clock used for the passing-year window.
func WithClock(now func() time.Time) Option {
	return func(v *Validator) { v.now = now }
}

func NewValidator(opts ...Option) *Validator {
	val := &Validator{now: time.Now}
	for _, o := range opts {
		o(val)
	}

	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	must := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(fmt.Sprintf("register %s: %v", tag, err))
		}
	}
	must("nonblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	must("mintrimmed", func(fl validator.FieldLevel) bool {
		n, err := strconv.Atoi(fl.Param())
		if err != nil {
			return false
		}
		return utf8.RuneCountInString(strings.TrimSpace(fl.Field().String())) >= n
	})
	must("emailaddr", matches(emailRe))
	must("mobile", matches(mobileRe))
	must("pan", matches(panRe))
	must("passyear", func(fl validator.FieldLevel) bool {
		year, err := strconv.Atoi(strings.TrimSpace(fl.Field().String()))
		if err != nil {
			return false
		}
		return year >= MinPassedOutYear && year <= val.now().Year()+1
	})
	must("expnonblank", func(fl validator.FieldLevel) bool {
		if !experienced(fl) {
			return true
		}
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	must("notabove", func(fl validator.FieldLevel) bool {
		if !experienced(fl) {
			return true
		}
		limit := reflect.Indirect(fl.Parent()).FieldByName(fl.Param())
		if !limit.IsValid() {
			return true
		}
		x, err1 := decimal.NewFromString(strings.TrimSpace(fl.Field().String()))
		y, err2 := decimal.NewFromString(strings.TrimSpace(limit.String()))
		if err1 != nil || err2 != nil {
			return true
		}
		return x.LessThanOrEqual(y)
	})
	must("nonnegative", func(fl validator.FieldLevel) bool {
		d, err := decimal.NewFromString(strings.TrimSpace(fl.Field().String()))
		if err != nil {
			return true
		}
		return !d.IsNegative()
	})

	val.v = v
	return val
}

func matches(re *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return re.MatchString(fl.Field().String())
	}
}

func experienced(fl validator.FieldLevel) bool {
	f := reflect.Indirect(fl.Parent()).FieldByName("IsFresher")
	return f.IsValid() && f.String() == No
}

// Validate checks the normalised form of c and returns a *ValidationError
// listing every violation, or nil.
func (v *Validator) Validate(c Candidate) error {
	n := Normalize(c)
	err := v.v.Struct(&n)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	out := &ValidationError{Fields: make(map[string]string, len(verrs))}
	for _, fe := range verrs {
		out.Fields[fe.Field()] = message(fe)
	}
	return out
}

func message(fe validator.FieldError) string {
	if m, ok := messages[fe.Field()+"."+fe.Tag()]; ok {
		return m
	}
	if f, ok := LookupField(fe.Field()); ok {
		return f.Label + " is invalid"
	}
	return "Invalid value"
}
