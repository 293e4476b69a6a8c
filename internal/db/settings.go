package db

import (
	"database/sql"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/tvardar/vakitd/internal/model"
)

// GetSettings loads the single configuration row; defaults are returned when
// nothing has been saved yet.
func GetSettings() (model.Settings, error) {
	var s model.Settings
	const q = `
	SELECT id, subarea_id, subarea_name, locality_name, region_name,
	       warning_minutes, audio_enabled, onset_sound, signal_seconds
	  FROM settings
	 WHERE id = 1;`
	if err := DB.Get(&s, q); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.DefaultSettings(), nil
		}
		log.Error().Err(err).Msg("GetSettings failed")
		return model.Settings{}, err
	}
	s.Normalize()
	return s, nil
}

// UpdateSettings stores the notification preferences.
func UpdateSettings(s model.Settings) error {
	const q = `
	UPDATE settings
	   SET warning_minutes = $1,
	       audio_enabled   = $2,
	       onset_sound     = $3,
	       signal_seconds  = $4,
	       updated_at      = now()
	 WHERE id = 1;`
	_, err := DB.Exec(q, s.WarningMinutes, s.AudioEnabled, s.OnsetSound, s.SignalSeconds)
	if err != nil {
		log.Error().Err(err).Msg("UpdateSettings failed")
	}
	return err
}

// UpdateLocation stores the selected subarea and its parent names.
func UpdateLocation(subareaID, subareaName, localityName, regionName string) error {
	const q = `
	UPDATE settings
	   SET subarea_id    = $1,
	       subarea_name  = $2,
	       locality_name = $3,
	       region_name   = $4,
	       updated_at    = now()
	 WHERE id = 1;`
	_, err := DB.Exec(q, subareaID, subareaName, localityName, regionName)
	if err != nil {
		log.Error().Err(err).Str("subarea_id", subareaID).Msg("UpdateLocation failed")
	}
	return err
}
