// Package uuid generates row identifiers.
package uuid

import (
	googleuuid "github.com/google/uuid"
)

// New returns a UUIDv7 string. Version 7 ids sort by creation time, which
// keeps catalogue rows in insertion order on primary-key scans. Falls back
// to a random v4 id if the v7 generator fails.
func New() string {
	id, err := googleuuid.NewV7()
	if err != nil {
		return googleuuid.New().String()
	}
	return id.String()
}

// IsValid checks if a string is a valid UUID
func IsValid(s string) bool {
	_, err := googleuuid.Parse(s)
	return err == nil
}

// Version returns the version nibble of a UUID string, or 0 if it does not parse.
func Version(s string) int {
	id, err := googleuuid.Parse(s)
	if err != nil {
		return 0
	}
	return int(id.Version())
}
