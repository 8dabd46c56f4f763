package repository

import (
	"context"

	"routecast/internal/domain/entity"
	"routecast/internal/errors"
)

// ErrArtifactNotFound is returned when no artifact has been stored under a name.
// It is the normal state on first run.
var ErrArtifactNotFound = errors.New("model artifact not found")

// ModelArtifactRepository stores named serialized models.
type ModelArtifactRepository interface {
	// SaveArtifact inserts or replaces the artifact with the same name.
	SaveArtifact(ctx context.Context, artifact *entity.ModelArtifact) error

	// FindArtifact returns the artifact stored under name or ErrArtifactNotFound.
	FindArtifact(ctx context.Context, name string) (*entity.ModelArtifact, error)
}
