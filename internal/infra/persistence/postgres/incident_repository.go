package postgres

import (
	"context"
	"time"

	"routecast/internal/domain/entity"
	"routecast/internal/domain/repository"
	"routecast/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// incidentRepository implements the domain.IncidentRepository interface.
type incidentRepository struct {
	db *gorm.DB
}

// NewIncidentRepository is the constructor for incidentRepository.
func NewIncidentRepository(db *gorm.DB) repository.IncidentRepository {
	return &incidentRepository{db: db}
}

// CreateIncident persists a new incident report.
func (repo *incidentRepository) CreateIncident(ctx context.Context, incident *entity.Incident) error {
	if err := repo.db.WithContext(ctx).Create(fromIncidentDomain(incident)).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return errors.Wrap(err, "missing required incident information")
		}

		return errors.Wrap(err, "failed to create incident")
	}

	return nil
}

// FindIncidentByID retrieves an incident by its unique ID.
func (repo *incidentRepository) FindIncidentByID(ctx context.Context, id uuid.UUID) (*entity.Incident, error) {
	var incidentM model.IncidentModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&incidentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrIncidentNotFound
		}

		return nil, errors.Wrap(err, "failed to find incident by ID")
	}

	return toIncidentDomain(&incidentM), nil
}

// FindActiveIncidents returns live incidents, newest first.
func (repo *incidentRepository) FindActiveIncidents(ctx context.Context, now time.Time) ([]*entity.Incident, error) {
	var incidentModels []*model.IncidentModel
	err := repo.db.WithContext(ctx).
		Where("is_active = ? AND expires_at > ?", true, now).
		Order("created_at DESC").
		Find(&incidentModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find active incidents")
	}

	incidents := make([]*entity.Incident, 0, len(incidentModels))
	for _, incidentM := range incidentModels {
		incidents = append(incidents, toIncidentDomain(incidentM))
	}

	return incidents, nil
}

// ConfirmIncident increments the confirmation count and moves the expiry in one statement.
func (repo *incidentRepository) ConfirmIncident(ctx context.Context, id uuid.UUID, expiresAt time.Time) (*entity.Incident, error) {
	var incidentM model.IncidentModel
	result := repo.db.WithContext(ctx).
		Model(&incidentM).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"confirmations": gorm.Expr("confirmations + 1"),
			"expires_at":    expiresAt,
		})
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to confirm incident")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrIncidentNotFound
	}

	return toIncidentDomain(&incidentM), nil
}

// DeactivateIncident marks an incident inactive.
func (repo *incidentRepository) DeactivateIncident(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.IncidentModel{}).
		Where("id = ?", id).
		Update("is_active", false)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to deactivate incident")
	}

	// If no rows were affected, it means the incident was not found.
	if result.RowsAffected == 0 {
		return repository.ErrIncidentNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toIncidentDomain converts a GORM IncidentModel to a domain Incident entity.
func toIncidentDomain(data *model.IncidentModel) *entity.Incident {
	if data == nil {
		return nil
	}

	return &entity.Incident{
		ID:            data.ID,
		Location:      entity.GeoPoint{Lat: data.Latitude, Lng: data.Longitude},
		Type:          entity.IncidentType(data.Type),
		Severity:      entity.Severity(data.Severity),
		Description:   data.Description,
		CreatedAt:     data.CreatedAt,
		ExpiresAt:     data.ExpiresAt,
		Confirmations: data.Confirmations,
		IsActive:      data.IsActive,
	}
}

// fromIncidentDomain converts a domain Incident entity to a GORM IncidentModel.
func fromIncidentDomain(data *entity.Incident) *model.IncidentModel {
	if data == nil {
		return nil
	}

	return &model.IncidentModel{
		ID:            data.ID,
		Latitude:      data.Location.Lat,
		Longitude:     data.Location.Lng,
		Type:          string(data.Type),
		Severity:      string(data.Severity),
		Description:   data.Description,
		Confirmations: data.Confirmations,
		IsActive:      data.IsActive,
		ExpiresAt:     data.ExpiresAt,
		CreatedAt:     data.CreatedAt,
	}
}
