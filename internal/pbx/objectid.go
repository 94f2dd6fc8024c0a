package pbx

import (
	"encoding/hex"
	"strings"

	"github.com/google/uuid"
)

// objectIDLen is the length of a pbxproj object identifier: 96 bits of
// entropy rendered as uppercase hex.
const objectIDLen = 24

// NewObjectID generates a fresh 24-digit uppercase hex identifier suitable
// for use as a pbxproj object ID. The digits come from a random UUID, so
// collisions within a project are not a practical concern.
func NewObjectID() string {
	u := uuid.New()
	return strings.ToUpper(hex.EncodeToString(u[:]))[:objectIDLen]
}

// IsObjectID reports whether s has the shape of a pbxproj object
// identifier: exactly 24 hex digits.
func IsObjectID(s string) bool {
	if len(s) != objectIDLen {
		return false
	}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'A' && r <= 'F':
		case r >= 'a' && r <= 'f':
		default:
			return false
		}
	}
	return true
}
