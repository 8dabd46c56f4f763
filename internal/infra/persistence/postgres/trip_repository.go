package postgres

import (
	"context"

	"routecast/internal/domain/entity"
	"routecast/internal/domain/repository"
	"routecast/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// tripRepository implements the domain.TripRepository interface.
type tripRepository struct {
	db *gorm.DB
}

// NewTripRepository is the constructor for tripRepository.
func NewTripRepository(db *gorm.DB) repository.TripRepository {
	return &tripRepository{db: db}
}

// CreateTrip appends a completed trip.
func (repo *tripRepository) CreateTrip(ctx context.Context, trip *entity.Trip) error {
	if err := repo.db.WithContext(ctx).Create(fromTripDomain(trip)).Error; err != nil {
		return errors.Wrap(err, "failed to create trip")
	}

	return nil
}

// ListTrips returns up to limit trips, newest first.
func (repo *tripRepository) ListTrips(ctx context.Context, limit int) ([]*entity.Trip, error) {
	var tripModels []*model.TripModel
	if err := repo.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&tripModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list trips")
	}

	trips := make([]*entity.Trip, 0, len(tripModels))
	for _, tripM := range tripModels {
		trips = append(trips, toTripDomain(tripM))
	}

	return trips, nil
}

// CountTrips returns the number of stored trips.
func (repo *tripRepository) CountTrips(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.TripModel{}).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count trips")
	}

	return count, nil
}

// --- Mapper Functions ---

// toTripDomain converts a GORM TripModel to a domain Trip entity.
func toTripDomain(data *model.TripModel) *entity.Trip {
	if data == nil {
		return nil
	}

	incidentTypes := []string(data.IncidentTypes)
	if incidentTypes == nil {
		incidentTypes = []string{}
	}

	return &entity.Trip{
		ID:                data.ID,
		Start:             entity.GeoPoint{Lat: data.StartLat, Lng: data.StartLng},
		End:               entity.GeoPoint{Lat: data.EndLat, Lng: data.EndLng},
		StartName:         data.StartName,
		EndName:           data.EndName,
		Distance:          data.Distance,
		EstimatedDuration: data.EstimatedDuration,
		ActualDuration:    data.ActualDuration,
		Hour:              data.Hour,
		DayOfWeek:         data.DayOfWeek,
		IsWeekend:         data.IsWeekend,
		IsHoliday:         data.IsHoliday,
		WeatherCondition:  data.WeatherCondition,
		Temperature:       data.Temperature,
		HadIncidents:      data.HadIncidents,
		IncidentTypes:     incidentTypes,
		TrafficIntensity:  data.TrafficIntensity,
		CreatedAt:         data.CreatedAt,
	}
}

// fromTripDomain converts a domain Trip entity to a GORM TripModel.
func fromTripDomain(data *entity.Trip) *model.TripModel {
	if data == nil {
		return nil
	}

	return &model.TripModel{
		ID:                data.ID,
		StartLat:          data.Start.Lat,
		StartLng:          data.Start.Lng,
		EndLat:            data.End.Lat,
		EndLng:            data.End.Lng,
		StartName:         data.StartName,
		EndName:           data.EndName,
		Distance:          data.Distance,
		EstimatedDuration: data.EstimatedDuration,
		ActualDuration:    data.ActualDuration,
		Hour:              data.Hour,
		DayOfWeek:         data.DayOfWeek,
		IsWeekend:         data.IsWeekend,
		IsHoliday:         data.IsHoliday,
		WeatherCondition:  data.WeatherCondition,
		Temperature:       data.Temperature,
		HadIncidents:      data.HadIncidents,
		IncidentTypes:     datatypes.NewJSONSlice(data.IncidentTypes),
		TrafficIntensity:  data.TrafficIntensity,
		CreatedAt:         data.CreatedAt,
	}
}
