package model

import (
	"time"

	"github.com/google/uuid"
)

// IncidentModel is the GORM-specific struct for the 'incidents' table.
type IncidentModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key"`
	Latitude      float64   `gorm:"type:decimal(10,8);not null"`
	Longitude     float64   `gorm:"type:decimal(11,8);not null"`
	Type          string    `gorm:"type:varchar(32);not null"`
	Severity      string    `gorm:"type:varchar(16);not null;default:'medium'"`
	Description   string    `gorm:"type:text"`
	Confirmations int       `gorm:"not null;default:1"`
	IsActive      bool      `gorm:"not null;default:true;index:idx_incidents_live,priority:1"`
	ExpiresAt     time.Time `gorm:"not null;index:idx_incidents_live,priority:2"`
	CreatedAt     time.Time `gorm:"not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (IncidentModel) TableName() string {
	return "incidents"
}
