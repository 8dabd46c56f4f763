package model

import "time"

// ModelArtifactModel is the GORM-specific struct for the 'model_artifacts' table.
type ModelArtifactModel struct {
	Name      string    `gorm:"type:varchar(100);primary_key"`
	Payload   []byte    `gorm:"type:bytea;not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (ModelArtifactModel) TableName() string {
	return "model_artifacts"
}
