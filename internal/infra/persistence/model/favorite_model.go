package model

import (
	"time"

	"github.com/google/uuid"
)

// FavoriteModel is the GORM-specific struct for the 'favorite_places' table.
type FavoriteModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	Name      string    `gorm:"type:varchar(100);not null"`
	Latitude  float64   `gorm:"type:decimal(10,8);not null"`
	Longitude float64   `gorm:"type:decimal(11,8);not null"`
	Type      string    `gorm:"type:varchar(16);not null;default:'favorite';index"`
	Address   string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (FavoriteModel) TableName() string {
	return "favorite_places"
}
