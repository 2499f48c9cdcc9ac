package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/unicode/norm"

	"github.com/maxviazov/user-directory/internal/model"
)

const maxNameLength = 100

// userFields is the normalized shape validated by struct tags.
// The birth date is checked by hand since "in the past" depends on the service clock.
type userFields struct {
	LastName  string `json:"last_name" validate:"required,max=100"`
	FirstName string `json:"first_name" validate:"required,max=100"`
	Email     string `json:"email" validate:"required,email"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report json names so field errors line up with form inputs and API payloads.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// normalizeText trims surrounding whitespace and folds to NFC so visually equal
// names compare equal.
func normalizeText(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

func normalizeInput(in UserInput) UserInput {
	return UserInput{
		LastName:  normalizeText(in.LastName),
		FirstName: normalizeText(in.FirstName),
		Email:     strings.ToLower(normalizeText(in.Email)),
		BirthDate: strings.TrimSpace(in.BirthDate),
	}
}

// validateUser checks normalized input and builds the user to store.
// It returns every violated field at once rather than stopping at the first.
func validateUser(in UserInput, now time.Time) (model.User, []FieldError) {
	var ferrs []FieldError

	err := validate.Struct(userFields{LastName: in.LastName, FirstName: in.FirstName, Email: in.Email})
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			ferrs = append(ferrs, FieldError{Field: fe.Field(), Message: tagMessage(fe)})
		}
	} else if err != nil {
		ferrs = append(ferrs, FieldError{Field: "user", Message: err.Error()})
	}

	birth, msg := parseBirthDate(in.BirthDate, now)
	if msg != "" {
		ferrs = append(ferrs, FieldError{Field: "birth_date", Message: msg})
	}

	return model.User{
		LastName:  in.LastName,
		FirstName: in.FirstName,
		Email:     in.Email,
		BirthDate: birth,
	}, ferrs
}

func tagMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "must not be empty"
	case "email":
		return "must be a valid email address"
	case "max":
		return fmt.Sprintf("length must be <= %d", maxNameLength)
	default:
		return "is invalid"
	}
}

// parseBirthDate accepts YYYY-MM-DD strictly before the calendar day of now.
func parseBirthDate(s string, now time.Time) (time.Time, string) {
	if s == "" {
		return time.Time{}, "must not be empty"
	}
	d, err := time.Parse(model.BirthDateLayout, s)
	if err != nil {
		return time.Time{}, "invalid format, expected YYYY-MM-DD"
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if !d.Before(today) {
		return time.Time{}, "must be in the past"
	}
	return d, ""
}

// IsValidEmail reports whether s passes the same email check as user input.
func IsValidEmail(s string) bool {
	return validate.Var(strings.TrimSpace(s), "required,email") == nil
}
