// Package model contains domain entities and DTOs used across layers.
// I keep it lean and focused on data shapes without behavior.
package model

import "time"

// BirthDateLayout is the wire and form format of User.BirthDate.
const BirthDateLayout = "2006-01-02"

// User represents a single person kept in the directory.
// ID is zero until the store assigns one; after that it never changes.
type User struct {
	ID        int64     `json:"id"`
	LastName  string    `json:"last_name"`
	FirstName string    `json:"first_name"`
	Email     string    `json:"email"`
	BirthDate time.Time `json:"birth_date"`
}

// Persisted reports whether the store has assigned an identifier.
func (u User) Persisted() bool { return u.ID > 0 }

// BirthDateString renders the birth date in form layout, empty for the zero time.
func (u User) BirthDateString() string {
	if u.BirthDate.IsZero() {
		return ""
	}
	return u.BirthDate.Format(BirthDateLayout)
}
