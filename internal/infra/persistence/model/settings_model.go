package model

import "time"

// SettingsSingletonID is the primary key of the only settings row.
const SettingsSingletonID = 1

// SettingsModel is the GORM-specific struct for the 'user_settings' table.
type SettingsModel struct {
	ID        int    `gorm:"primary_key"`
	VoiceMode string `gorm:"type:varchar(16);not null;default:'all'"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (SettingsModel) TableName() string {
	return "user_settings"
}
