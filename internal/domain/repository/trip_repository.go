package repository

import (
	"context"

	"routecast/internal/domain/entity"
)

// TripRepository defines the interface for trip history persistence.
// Trips are append-only.
type TripRepository interface {
	// CreateTrip appends a completed trip.
	CreateTrip(ctx context.Context, trip *entity.Trip) error

	// ListTrips returns up to limit trips, newest first.
	ListTrips(ctx context.Context, limit int) ([]*entity.Trip, error)

	// CountTrips returns the number of stored trips.
	CountTrips(ctx context.Context) (int64, error)
}
