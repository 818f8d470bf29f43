package shared

import (
	"strings"

	"github.com/google/uuid"
)

// NewID creates an opaque entity identifier with a readable kind prefix.
// Format: {kind}-{8charHexUUID}
//
// Example:
//   - Input: kind="artefact"
//   - Output: "artefact-a3f8e2b1"
//
// Uniqueness is guaranteed structurally by the UUID suffix rather than
// probabilistically by timestamps.
func NewID(kind string) string {
	return kind + "-" + shortUUID()
}

// shortUUID creates an 8-character hex string from a UUID.
// This provides sufficient uniqueness while keeping IDs compact.
func shortUUID() string {
	id := uuid.New()
	return strings.ReplaceAll(id.String(), "-", "")[:8]
}
