package utils

import (
	"strings"

	"github.com/google/uuid"
)

// ParseUUID parses a string into a UUID
func ParseUUID(s string) (uuid.UUID, error) {
	return uuid.Parse(strings.TrimSpace(s))
}

// ShortRef renders the first block of an id in upper case, e.g. for
// receipt numbers: "VND-1A2B3C4D".
func ShortRef(prefix string, id uuid.UUID) string {
	return prefix + "-" + strings.ToUpper(id.String()[:8])
}
