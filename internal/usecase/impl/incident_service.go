package impl

import (
	"context"
	"log/slog"
	"time"

	"routecast/config"
	deliverycontext "routecast/internal/delivery/context"
	"routecast/internal/domain/entity"
	domainerrors "routecast/internal/domain/errors"
	"routecast/internal/domain/repository"
	"routecast/internal/domain/service"
	"routecast/internal/errors"
	"routecast/internal/geo"
	"routecast/internal/metrics"
	"routecast/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// routeSampleStep is the vertex stride used when matching incidents to a route.
// Incidents lying between two sampled vertices can be missed; matches are never
// farther than the threshold from a sampled vertex.
const routeSampleStep = 10

// incidentService implements the IncidentUsecase interface.
type incidentService struct {
	incidentRepo     repository.IncidentRepository
	publisher        service.EventPublisher
	defaultExpiry    time.Duration
	confirmExtension time.Duration
	routeThresholdKm float64
	now              func() time.Time
	logger           *slog.Logger
}

// IncidentServiceParams holds dependencies for IncidentService, injected by Fx.
type IncidentServiceParams struct {
	fx.In

	IncidentRepo repository.IncidentRepository
	Publisher    service.EventPublisher
	Config       *config.Config
	Logger       *slog.Logger
}

// NewIncidentService is the constructor for incidentService.
func NewIncidentService(params IncidentServiceParams) usecase.IncidentUsecase {
	cfg := params.Config.Incidents

	return &incidentService{
		incidentRepo:     params.IncidentRepo,
		publisher:        params.Publisher,
		defaultExpiry:    time.Duration(cfg.DefaultExpiryMinutes) * time.Minute,
		confirmExtension: time.Duration(cfg.ConfirmExtensionMinutes) * time.Minute,
		routeThresholdKm: cfg.RouteThresholdKm,
		now:              time.Now,
		logger:           params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *incidentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ReportIncident stores a new active incident with one confirmation.
func (srv *incidentService) ReportIncident(ctx context.Context, input *usecase.ReportIncidentInput) (*entity.Incident, error) {
	if !input.Location.IsValid() {
		return nil, domainerrors.ErrInvalidCoordinate
	}
	if !input.Type.IsValid() {
		return nil, domainerrors.ErrInvalidIncidentType.WithDetails(string(input.Type))
	}

	severity := input.Severity
	if severity == "" {
		severity = entity.SeverityMedium
	}
	if !severity.IsValid() {
		return nil, domainerrors.ErrInvalidSeverity.WithDetails(string(severity))
	}

	expiry := srv.defaultExpiry
	if input.ExpiresInMinutes > 0 {
		expiry = time.Duration(input.ExpiresInMinutes) * time.Minute
	}

	now := srv.now().UTC()
	incident := &entity.Incident{
		ID:            uuid.New(),
		Location:      input.Location,
		Type:          input.Type,
		Severity:      severity,
		Description:   input.Description,
		CreatedAt:     now,
		ExpiresAt:     now.Add(expiry),
		Confirmations: 1,
		IsActive:      true,
	}

	if err := srv.incidentRepo.CreateIncident(ctx, incident); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "create incident")
	}

	metrics.IncidentEvents.WithLabelValues("reported").Inc()
	srv.log(ctx).Info("Incident reported",
		slog.String("incident_id", incident.ID.String()),
		slog.String("type", string(incident.Type)),
		slog.String("severity", string(incident.Severity)),
	)
	publishEvent(ctx, srv.publisher, srv.log(ctx), service.EventIncidentReported, incident.ID.String(), map[string]any{
		"type":     incident.Type,
		"severity": incident.Severity,
		"lat":      incident.Location.Lat,
		"lng":      incident.Location.Lng,
	})

	return incident, nil
}

// ConfirmIncident adds a confirmation and resets the expiry to now plus the confirm window.
func (srv *incidentService) ConfirmIncident(ctx context.Context, id uuid.UUID) (*entity.Incident, error) {
	expiresAt := srv.now().UTC().Add(srv.confirmExtension)

	incident, err := srv.incidentRepo.ConfirmIncident(ctx, id, expiresAt)
	if err != nil {
		if errors.Is(err, repository.ErrIncidentNotFound) {
			return nil, domainerrors.ErrIncidentNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "confirm incident")
	}

	metrics.IncidentEvents.WithLabelValues("confirmed").Inc()
	publishEvent(ctx, srv.publisher, srv.log(ctx), service.EventIncidentConfirmed, id.String(), map[string]any{
		"confirmations": incident.Confirmations,
		"expires_at":    incident.ExpiresAt,
	})

	return incident, nil
}

// DismissIncident deactivates an incident.
func (srv *incidentService) DismissIncident(ctx context.Context, id uuid.UUID) error {
	if err := srv.incidentRepo.DeactivateIncident(ctx, id); err != nil {
		if errors.Is(err, repository.ErrIncidentNotFound) {
			return domainerrors.ErrIncidentNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "dismiss incident")
	}

	metrics.IncidentEvents.WithLabelValues("dismissed").Inc()
	publishEvent(ctx, srv.publisher, srv.log(ctx), service.EventIncidentDismissed, id.String(), nil)

	return nil
}

// ActiveIncidents returns live incidents newest first, optionally limited to radiusKm around center.
func (srv *incidentService) ActiveIncidents(ctx context.Context, now time.Time, center *entity.GeoPoint, radiusKm float64) ([]*entity.Incident, error) {
	incidents, err := srv.incidentRepo.FindActiveIncidents(ctx, now)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "find active incidents")
	}

	if center == nil {
		return incidents, nil
	}

	nearby := make([]*entity.Incident, 0, len(incidents))
	for _, incident := range incidents {
		if geo.Within(*center, incident.Location, radiusKm) {
			nearby = append(nearby, incident)
		}
	}

	return nearby, nil
}

// IncidentsOnRoute matches live incidents against every tenth route vertex.
func (srv *incidentService) IncidentsOnRoute(ctx context.Context, route *entity.RoutePolyline, thresholdKm float64) ([]*entity.Incident, error) {
	if thresholdKm <= 0 {
		thresholdKm = srv.routeThresholdKm
	}

	incidents, err := srv.ActiveIncidents(ctx, srv.now(), nil, 0)
	if err != nil {
		return nil, err
	}

	if route == nil || len(route.Path) == 0 || len(incidents) == 0 {
		return []*entity.Incident{}, nil
	}

	sampled := geo.SampleVertices(route.Path, routeSampleStep)
	bound := geo.Bounds(sampled, thresholdKm)
	prefilter := geo.PlanarBound(bound)

	onRoute := make([]*entity.Incident, 0)
	for _, incident := range incidents {
		point := incident.Location.Point()
		if prefilter && !bound.Contains(point) {
			continue
		}
		if geo.NearAnyVertex(point, sampled, thresholdKm) {
			onRoute = append(onRoute, incident)
		}
	}

	return onRoute, nil
}

// IncidentTypes returns the category catalogue.
func (srv *incidentService) IncidentTypes() []entity.IncidentTypeInfo {
	return entity.IncidentTypeCatalog
}
