package impl

import (
	"context"
	"testing"
	"time"

	"routecast/internal/domain/entity"
	domainerrors "routecast/internal/domain/errors"
	"routecast/internal/domain/repository"
	"routecast/internal/domain/service"
	"routecast/internal/errors"
	mockRepo "routecast/internal/mocks/repository"
	mockService "routecast/internal/mocks/service"
	"routecast/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var incidentTestNow = time.Date(2026, 10, 16, 17, 30, 0, 0, time.UTC)

type incidentServiceFixtures struct {
	service      *incidentService
	incidentRepo *mockRepo.MockIncidentRepository
	publisher    *mockService.MockEventPublisher
}

func createTestIncidentService(t *testing.T) incidentServiceFixtures {
	incidentRepo := mockRepo.NewMockIncidentRepository(t)
	publisher := mockService.NewMockEventPublisher(t)

	srv := NewIncidentService(IncidentServiceParams{
		IncidentRepo: incidentRepo,
		Publisher:    publisher,
		Config:       testConfig(),
		Logger:       testLogger(),
	}).(*incidentService)
	srv.now = fixedClock(incidentTestNow)

	return incidentServiceFixtures{
		service:      srv,
		incidentRepo: incidentRepo,
		publisher:    publisher,
	}
}

func eventOfType(eventType string) any {
	return mock.MatchedBy(func(e *service.DomainEvent) bool { return e.Type == eventType })
}

func TestIncidentService_ReportIncident_Defaults(t *testing.T) {
	fx := createTestIncidentService(t)
	ctx := context.Background()

	fx.incidentRepo.EXPECT().CreateIncident(ctx, mock.AnythingOfType("*entity.Incident")).Return(nil)
	fx.publisher.EXPECT().Publish(ctx, eventOfType(service.EventIncidentReported)).Return(nil)

	incident, err := fx.service.ReportIncident(ctx, &usecase.ReportIncidentInput{
		Location: entity.GeoPoint{Lat: 8.98, Lng: -79.52},
		Type:     entity.IncidentTypeAccident,
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, incident.ID)
	assert.Equal(t, entity.SeverityMedium, incident.Severity)
	assert.Equal(t, 1, incident.Confirmations)
	assert.True(t, incident.IsActive)
	assert.Equal(t, incidentTestNow, incident.CreatedAt)
	assert.Equal(t, incidentTestNow.Add(time.Hour), incident.ExpiresAt)
}

func TestIncidentService_ReportIncident_CustomExpiry(t *testing.T) {
	fx := createTestIncidentService(t)
	ctx := context.Background()

	fx.incidentRepo.EXPECT().CreateIncident(ctx, mock.AnythingOfType("*entity.Incident")).Return(nil)
	// Publish failures are logged, not returned.
	fx.publisher.EXPECT().Publish(ctx, mock.Anything).Return(errors.New("broker down"))

	incident, err := fx.service.ReportIncident(ctx, &usecase.ReportIncidentInput{
		Location:         entity.GeoPoint{Lat: 8.98, Lng: -79.52},
		Type:             entity.IncidentTypeFlood,
		Severity:         entity.SeverityCritical,
		ExpiresInMinutes: 240,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.SeverityCritical, incident.Severity)
	assert.Equal(t, incidentTestNow.Add(4*time.Hour), incident.ExpiresAt)
}

func TestIncidentService_ReportIncident_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		input    *usecase.ReportIncidentInput
		expected error
	}{
		{
			name:     "bad coordinate",
			input:    &usecase.ReportIncidentInput{Location: entity.GeoPoint{Lat: 91}, Type: entity.IncidentTypeHazard},
			expected: domainerrors.ErrInvalidCoordinate,
		},
		{
			name:     "unknown type",
			input:    &usecase.ReportIncidentInput{Location: entity.GeoPoint{Lat: 9, Lng: -79}, Type: "meteor"},
			expected: domainerrors.ErrInvalidIncidentType,
		},
		{
			name: "unknown severity",
			input: &usecase.ReportIncidentInput{
				Location: entity.GeoPoint{Lat: 9, Lng: -79},
				Type:     entity.IncidentTypeHazard,
				Severity: "apocalyptic",
			},
			expected: domainerrors.ErrInvalidSeverity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestIncidentService(t)

			_, err := fx.service.ReportIncident(context.Background(), tt.input)

			assert.True(t, errors.Is(err, tt.expected), "got %v", err)
		})
	}
}

func TestIncidentService_ConfirmIncident_ResetsExpiry(t *testing.T) {
	fx := createTestIncidentService(t)
	ctx := context.Background()
	id := uuid.New()
	confirmed := &entity.Incident{ID: id, Confirmations: 2, ExpiresAt: incidentTestNow.Add(30 * time.Minute)}

	fx.incidentRepo.EXPECT().ConfirmIncident(ctx, id, incidentTestNow.Add(30*time.Minute)).Return(confirmed, nil)
	fx.publisher.EXPECT().Publish(ctx, eventOfType(service.EventIncidentConfirmed)).Return(nil)

	incident, err := fx.service.ConfirmIncident(ctx, id)

	require.NoError(t, err)
	assert.Same(t, confirmed, incident)
}

func TestIncidentService_ConfirmIncident_NotFound(t *testing.T) {
	fx := createTestIncidentService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.incidentRepo.EXPECT().ConfirmIncident(ctx, id, mock.Anything).Return(nil, repository.ErrIncidentNotFound)

	_, err := fx.service.ConfirmIncident(ctx, id)

	assert.True(t, errors.Is(err, domainerrors.ErrIncidentNotFound))
}

func TestIncidentService_DismissIncident(t *testing.T) {
	fx := createTestIncidentService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.incidentRepo.EXPECT().DeactivateIncident(ctx, id).Return(nil)
	fx.publisher.EXPECT().Publish(ctx, eventOfType(service.EventIncidentDismissed)).Return(nil)

	require.NoError(t, fx.service.DismissIncident(ctx, id))
}

func TestIncidentService_DismissIncident_Errors(t *testing.T) {
	fx := createTestIncidentService(t)
	ctx := context.Background()
	missing, broken := uuid.New(), uuid.New()

	fx.incidentRepo.EXPECT().DeactivateIncident(ctx, missing).Return(repository.ErrIncidentNotFound)
	fx.incidentRepo.EXPECT().DeactivateIncident(ctx, broken).Return(errors.New("timeout"))

	assert.True(t, errors.Is(fx.service.DismissIncident(ctx, missing), domainerrors.ErrIncidentNotFound))

	var appErr domainerrors.AppError
	require.True(t, errors.As(fx.service.DismissIncident(ctx, broken), &appErr))
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", appErr.ErrorCode())
}

func TestIncidentService_ActiveIncidents_RadiusFilter(t *testing.T) {
	fx := createTestIncidentService(t)
	ctx := context.Background()
	near := &entity.Incident{ID: uuid.New(), Location: entity.GeoPoint{Lat: 9.0, Lng: -79.5}}
	far := &entity.Incident{ID: uuid.New(), Location: entity.GeoPoint{Lat: 9.5, Lng: -79.5}}

	fx.incidentRepo.EXPECT().FindActiveIncidents(ctx, incidentTestNow).Return([]*entity.Incident{near, far}, nil)

	center := entity.GeoPoint{Lat: 9.01, Lng: -79.5}
	incidents, err := fx.service.ActiveIncidents(ctx, incidentTestNow, &center, 10)

	require.NoError(t, err)
	assert.Equal(t, []*entity.Incident{near}, incidents)
}

func TestIncidentService_ActiveIncidents_NoCenter(t *testing.T) {
	fx := createTestIncidentService(t)
	ctx := context.Background()
	all := []*entity.Incident{{ID: uuid.New()}, {ID: uuid.New()}}

	fx.incidentRepo.EXPECT().FindActiveIncidents(ctx, incidentTestNow).Return(all, nil)

	incidents, err := fx.service.ActiveIncidents(ctx, incidentTestNow, nil, 0)

	require.NoError(t, err)
	assert.Equal(t, all, incidents)
}

// eastboundRoute runs along latitude 9.0 with vertices about 220 m apart.
func eastboundRoute(vertices int) *entity.RoutePolyline {
	path := make(orb.LineString, vertices)
	for i := range path {
		path[i] = orb.Point{-79.5 + float64(i)*0.002, 9.0}
	}

	return &entity.RoutePolyline{Path: path}
}

func TestIncidentService_IncidentsOnRoute(t *testing.T) {
	fx := createTestIncidentService(t)
	ctx := context.Background()

	// ~110 m north of vertex 10, which is sampled.
	nearSampled := &entity.Incident{ID: uuid.New(), Location: entity.GeoPoint{Lat: 9.001, Lng: -79.48}}
	// On vertex 5: more than 1 km from vertices 0 and 10, so sampling misses it.
	betweenSamples := &entity.Incident{ID: uuid.New(), Location: entity.GeoPoint{Lat: 9.0, Lng: -79.49}}
	// Exactly on vertex 20.
	onVertex := &entity.Incident{ID: uuid.New(), Location: entity.GeoPoint{Lat: 9.0, Lng: -79.46}}
	farAway := &entity.Incident{ID: uuid.New(), Location: entity.GeoPoint{Lat: 9.1, Lng: -79.48}}

	fx.incidentRepo.EXPECT().FindActiveIncidents(ctx, incidentTestNow).
		Return([]*entity.Incident{onVertex, nearSampled, betweenSamples, farAway}, nil)

	incidents, err := fx.service.IncidentsOnRoute(ctx, eastboundRoute(30), 0)

	require.NoError(t, err)
	assert.Equal(t, []*entity.Incident{onVertex, nearSampled}, incidents)
}

func TestIncidentService_IncidentsOnRoute_CustomThreshold(t *testing.T) {
	fx := createTestIncidentService(t)
	ctx := context.Background()
	betweenSamples := &entity.Incident{ID: uuid.New(), Location: entity.GeoPoint{Lat: 9.0, Lng: -79.49}}

	fx.incidentRepo.EXPECT().FindActiveIncidents(ctx, incidentTestNow).Return([]*entity.Incident{betweenSamples}, nil)

	incidents, err := fx.service.IncidentsOnRoute(ctx, eastboundRoute(30), 1.5)

	require.NoError(t, err)
	assert.Len(t, incidents, 1)
}

func TestIncidentService_IncidentsOnRoute_WrapsAntimeridianAndPoles(t *testing.T) {
	tests := []struct {
		name     string
		path     orb.LineString
		incident entity.GeoPoint
	}{
		{
			name:     "across the antimeridian",
			path:     orb.LineString{{179.998, 10}, {179.9995, 10}},
			incident: entity.GeoPoint{Lat: 10, Lng: -179.9995},
		},
		{
			name:     "near the pole",
			path:     orb.LineString{{0, 89.999}, {0.5, 89.999}},
			incident: entity.GeoPoint{Lat: 89.999, Lng: 90},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestIncidentService(t)
			ctx := context.Background()
			incident := &entity.Incident{ID: uuid.New(), Location: tt.incident}

			fx.incidentRepo.EXPECT().FindActiveIncidents(ctx, incidentTestNow).Return([]*entity.Incident{incident}, nil)

			incidents, err := fx.service.IncidentsOnRoute(ctx, &entity.RoutePolyline{Path: tt.path}, 0)

			require.NoError(t, err)
			assert.Equal(t, []*entity.Incident{incident}, incidents)
		})
	}
}

func TestIncidentService_IncidentsOnRoute_EmptyPath(t *testing.T) {
	fx := createTestIncidentService(t)
	ctx := context.Background()

	fx.incidentRepo.EXPECT().FindActiveIncidents(ctx, incidentTestNow).
		Return([]*entity.Incident{{ID: uuid.New()}}, nil)

	incidents, err := fx.service.IncidentsOnRoute(ctx, &entity.RoutePolyline{}, 0)

	require.NoError(t, err)
	assert.NotNil(t, incidents)
	assert.Empty(t, incidents)
}

func TestIncidentService_IncidentTypes(t *testing.T) {
	fx := createTestIncidentService(t)

	types := fx.service.IncidentTypes()

	require.Len(t, types, 9)
	assert.Equal(t, entity.IncidentTypeAccident, types[0].Value)
}
