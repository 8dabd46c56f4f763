package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// TripModel is the GORM-specific struct for the 'trips' table.
type TripModel struct {
	ID                uuid.UUID                   `gorm:"type:uuid;primary_key"`
	StartLat          float64                     `gorm:"type:decimal(10,8);not null"`
	StartLng          float64                     `gorm:"type:decimal(11,8);not null"`
	EndLat            float64                     `gorm:"type:decimal(10,8);not null"`
	EndLng            float64                     `gorm:"type:decimal(11,8);not null"`
	StartName         string                      `gorm:"type:varchar(255)"`
	EndName           string                      `gorm:"type:varchar(255)"`
	Distance          float64                     `gorm:"not null"`
	EstimatedDuration float64                     `gorm:"not null"`
	ActualDuration    float64                     `gorm:"not null"`
	Hour              int                         `gorm:"not null"`
	DayOfWeek         int                         `gorm:"not null"`
	IsWeekend         bool                        `gorm:"not null;default:false"`
	IsHoliday         bool                        `gorm:"not null;default:false"`
	WeatherCondition  *string                     `gorm:"type:varchar(32)"`
	Temperature       *float64
	HadIncidents      bool                        `gorm:"not null;default:false"`
	IncidentTypes     datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	TrafficIntensity  float64                     `gorm:"not null"`
	CreatedAt         time.Time                   `gorm:"not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (TripModel) TableName() string {
	return "trips"
}
