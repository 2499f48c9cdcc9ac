// Package service holds business logic orchestration between the store and handlers.
// Kept intentionally lean: only use-case coordination, validation and domain error shaping.
package service

import (
	"context"
	"errors"

	"github.com/maxviazov/user-directory/internal/model"
	"github.com/maxviazov/user-directory/internal/repository"
)

// ErrInvalidInput is the marker error for aggregated validation failures (maps to HTTP 400).
// Field-level details are retrieved via FieldErrors(err).
var ErrInvalidInput = errors.New("invalid input")

// FieldError describes a single invalid field in a client request.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// invalidInputError aggregates multiple FieldError instances and unwraps to ErrInvalidInput.
type invalidInputError struct {
	fields []FieldError
}

func (e *invalidInputError) Error() string        { return ErrInvalidInput.Error() }
func (e *invalidInputError) Unwrap() error        { return ErrInvalidInput }
func (e *invalidInputError) Fields() []FieldError { return e.fields }

// NewInvalidInputError builds an aggregated validation error; nil when fe is empty.
// Handlers use it for transport-level problems such as a malformed path ID.
func NewInvalidInputError(fe []FieldError) error {
	if len(fe) == 0 {
		return nil
	}
	return &invalidInputError{fields: fe}
}

// FieldErrors extracts field errors from an aggregated validation error.
func FieldErrors(err error) []FieldError {
	if err == nil {
		return nil
	}
	var v interface{ Fields() []FieldError }
	if errors.As(err, &v) && errors.Is(err, ErrInvalidInput) {
		return v.Fields()
	}
	return nil
}

// FieldErrorMap indexes field errors by field name, first message wins.
// Templates use it to print a message next to each input.
func FieldErrorMap(err error) map[string]string {
	fe := FieldErrors(err)
	if len(fe) == 0 {
		return nil
	}
	out := make(map[string]string, len(fe))
	for _, f := range fe {
		if _, ok := out[f.Field]; !ok {
			out[f.Field] = f.Message
		}
	}
	return out
}

// UserInput carries raw, unvalidated user fields as they arrive from a form or JSON body.
type UserInput struct {
	LastName  string `json:"last_name" form:"last_name" yaml:"last_name"`
	FirstName string `json:"first_name" form:"first_name" yaml:"first_name"`
	Email     string `json:"email" form:"email" yaml:"email"`
	BirthDate string `json:"birth_date" form:"birth_date" yaml:"birth_date"`
}

// InputFromUser turns a stored user back into form values, used to prefill the edit page.
func InputFromUser(u model.User) UserInput {
	return UserInput{
		LastName:  u.LastName,
		FirstName: u.FirstName,
		Email:     u.Email,
		BirthDate: u.BirthDateString(),
	}
}

// UserService defines user-oriented use cases.
type UserService interface {
	ListUsers(ctx context.Context, page, size int) (repository.PageResult[model.User], error)
	GetUser(ctx context.Context, id int64) (model.User, error)
	CreateUser(ctx context.Context, in UserInput) (model.User, error)
	UpdateUser(ctx context.Context, id int64, in UserInput) (model.User, error)
	// DeleteUser returns repository.ErrNotFound when nothing was removed.
	DeleteUser(ctx context.Context, id int64) error
	CountUsers(ctx context.Context) (int, error)
}
