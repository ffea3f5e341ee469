package service

import (
	"encoding/hex"

	"github.com/google/uuid"
)

// NewUserID builds an id like "stud_1f3a9c02": the role prefix plus the first
// eight hex characters of a random 128-bit UUID. Collisions are not checked.
func NewUserID(prefix string) string {
	id := uuid.New()
	return prefix + "_" + hex.EncodeToString(id[:4])
}
