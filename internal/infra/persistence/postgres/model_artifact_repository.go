package postgres

import (
	"context"

	"routecast/internal/domain/entity"
	"routecast/internal/domain/repository"
	"routecast/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// modelArtifactRepository stores serialized models as bytea rows keyed by name.
type modelArtifactRepository struct {
	db *gorm.DB
}

// NewModelArtifactRepository is the constructor for modelArtifactRepository.
func NewModelArtifactRepository(db *gorm.DB) repository.ModelArtifactRepository {
	return &modelArtifactRepository{db: db}
}

// SaveArtifact replaces the payload stored under the artifact name.
func (repo *modelArtifactRepository) SaveArtifact(ctx context.Context, artifact *entity.ModelArtifact) error {
	artifactM := &model.ModelArtifactModel{
		Name:      artifact.Name,
		Payload:   artifact.Payload,
		UpdatedAt: artifact.UpdatedAt,
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
		}).
		Create(artifactM).Error
	if err != nil {
		return errors.Wrapf(err, "failed to save model artifact %q", artifact.Name)
	}

	return nil
}

// FindArtifact loads the artifact stored under name.
func (repo *modelArtifactRepository) FindArtifact(ctx context.Context, name string) (*entity.ModelArtifact, error) {
	var artifactM model.ModelArtifactModel
	if err := repo.db.WithContext(ctx).Where("name = ?", name).First(&artifactM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrArtifactNotFound
		}

		return nil, errors.Wrapf(err, "failed to find model artifact %q", name)
	}

	return &entity.ModelArtifact{
		Name:      artifactM.Name,
		Payload:   artifactM.Payload,
		UpdatedAt: artifactM.UpdatedAt,
	}, nil
}
