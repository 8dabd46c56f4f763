package entity

// VoiceMode controls spoken navigation prompts.
type VoiceMode string

const (
	VoiceModeAll    VoiceMode = "all"
	VoiceModeAlerts VoiceMode = "alerts"
	VoiceModeMute   VoiceMode = "mute"
)

// IsValid checks if the VoiceMode is a known value.
func (v VoiceMode) IsValid() bool {
	switch v {
	case VoiceModeAll, VoiceModeAlerts, VoiceModeMute:
		return true
	default:
		return false
	}
}

// UserSettings is the process-wide settings singleton.
type UserSettings struct {
	VoiceMode VoiceMode `json:"voice_mode"`
}

// DefaultUserSettings returns the settings used before anything is saved.
func DefaultUserSettings() *UserSettings {
	return &UserSettings{VoiceMode: VoiceModeAll}
}
