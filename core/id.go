package core

import "github.com/google/uuid"

// NewTaskID mints a fresh identifier for a TaskSpec when the host does not
// supply its own, mirroring the uuid-based entity IDs minted elsewhere in
// this ecosystem (tutu, wingthing, cartographus).
func NewTaskID() string {
	return uuid.NewString()
}
