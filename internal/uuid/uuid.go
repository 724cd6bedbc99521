// Package uuid generates time-ordered identifiers for database
// primary keys.
package uuid

import googleuuid "github.com/google/uuid"

// New returns a new UUIDv7 string. UUIDv7 is time-ordered, which keeps
// primary-key indexes append-mostly. Falls back to UUIDv4 if the
// system's entropy source fails.
func New() string {
	id, err := googleuuid.NewV7()
	if err != nil {
		return googleuuid.New().String()
	}
	return id.String()
}

// IsValid reports whether s is a well-formed UUID.
func IsValid(s string) bool {
	_, err := googleuuid.Parse(s)
	return err == nil
}
