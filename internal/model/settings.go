package model

// onset sound modes
const (
	OnsetSoundFullCall    = "full-call"
	OnsetSoundShortSignal = "short-signal"
)

// Settings is the persisted user configuration (single row).
type Settings struct {
	ID int `db:"id"`

	// selected location
	SubareaID    string `db:"subarea_id"`
	SubareaName  string `db:"subarea_name"`
	LocalityName string `db:"locality_name"`
	RegionName   string `db:"region_name"`

	WarningMinutes int    `db:"warning_minutes"`
	AudioEnabled   bool   `db:"audio_enabled"`
	OnsetSound     string `db:"onset_sound"`
	SignalSeconds  int    `db:"signal_seconds"`
}

// DefaultSettings mirrors the defaults applied before the user configures
// anything: no location, 15 minute warning, audio on, full call at onset,
// 15 second short signal.
func DefaultSettings() Settings {
	return Settings{
		WarningMinutes: 15,
		AudioEnabled:   true,
		OnsetSound:     OnsetSoundFullCall,
		SignalSeconds:  15,
	}
}

// Normalize clamps out-of-range values back to usable ones.
func (s *Settings) Normalize() {
	if s.WarningMinutes <= 0 {
		s.WarningMinutes = 15
	}
	if s.OnsetSound != OnsetSoundFullCall && s.OnsetSound != OnsetSoundShortSignal {
		s.OnsetSound = OnsetSoundFullCall
	}
	if s.SignalSeconds < 5 {
		s.SignalSeconds = 5
	}
	if s.SignalSeconds > 60 {
		s.SignalSeconds = 60
	}
}

// HasLocation reports whether a subarea has been selected yet.
func (s *Settings) HasLocation() bool {
	return s.SubareaID != ""
}
