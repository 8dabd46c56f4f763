package entity

import "time"

// ModelArtifact is the serialized learned model stored under a fixed name.
type ModelArtifact struct {
	Name      string
	Payload   []byte
	UpdatedAt time.Time
}
