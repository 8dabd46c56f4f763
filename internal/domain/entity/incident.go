package entity

import (
	"time"

	"github.com/google/uuid"
)

// IncidentType is the category of a reported road incident.
type IncidentType string

const (
	IncidentTypeAccident    IncidentType = "accident"
	IncidentTypeRoadWork    IncidentType = "road_work"
	IncidentTypeHazard      IncidentType = "hazard"
	IncidentTypeAnimal      IncidentType = "animal"
	IncidentTypePolice      IncidentType = "police"
	IncidentTypeFlood       IncidentType = "flood"
	IncidentTypeClosedRoad  IncidentType = "closed_road"
	IncidentTypeSlowTraffic IncidentType = "slow_traffic"
	IncidentTypeOther       IncidentType = "other"
)

// IncidentTypeInfo describes an incident type for client pickers.
type IncidentTypeInfo struct {
	Value IncidentType `json:"value"`
	Label string       `json:"label"`
	Icon  string       `json:"icon"`
}

// IncidentTypeCatalog lists every incident type in display order.
var IncidentTypeCatalog = []IncidentTypeInfo{
	{Value: IncidentTypeAccident, Label: "🚗 Accidente", Icon: "car-crash"},
	{Value: IncidentTypeRoadWork, Label: "🚧 Trabajos en vía", Icon: "construct"},
	{Value: IncidentTypeHazard, Label: "⚠️ Peligro", Icon: "warning"},
	{Value: IncidentTypeAnimal, Label: "🐕 Animal en vía", Icon: "paw"},
	{Value: IncidentTypePolice, Label: "👮 Control policial", Icon: "shield"},
	{Value: IncidentTypeFlood, Label: "🌊 Inundación", Icon: "water"},
	{Value: IncidentTypeClosedRoad, Label: "🚫 Vía cerrada", Icon: "close-circle"},
	{Value: IncidentTypeSlowTraffic, Label: "🐌 Tráfico lento", Icon: "speedometer"},
	{Value: IncidentTypeOther, Label: "📍 Otro", Icon: "location"},
}

// IsValid checks if the IncidentType is a known value.
func (t IncidentType) IsValid() bool {
	for _, info := range IncidentTypeCatalog {
		if info.Value == t {
			return true
		}
	}

	return false
}

// Severity grades how strongly an incident slows traffic.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// IsValid checks if the Severity is a known value.
func (s Severity) IsValid() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return true
	default:
		return false
	}
}

// Incident is a point report of something slowing traffic.
// ExpiresAt is always after CreatedAt.
type Incident struct {
	ID            uuid.UUID    `json:"id"`
	Location      GeoPoint     `json:"location"`
	Type          IncidentType `json:"type"`
	Severity      Severity     `json:"severity"`
	Description   string       `json:"description,omitempty"`
	CreatedAt     time.Time    `json:"created_at"`
	ExpiresAt     time.Time    `json:"expires_at"`
	Confirmations int          `json:"confirmations"`
	IsActive      bool         `json:"is_active"`
}

// IsLive reports whether the incident still counts at the given instant.
func (i *Incident) IsLive(now time.Time) bool {
	return i.IsActive && i.ExpiresAt.After(now)
}
