package endpoints

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/tvardar/vakitd/internal/db"
	"github.com/tvardar/vakitd/internal/http/api"
	"github.com/tvardar/vakitd/internal/http/api/admin/control/packets"
	"github.com/tvardar/vakitd/internal/model"
)

// Engine is the running scheduler; settings changes are pushed into it so
// they take effect on the next tick.
type Engine interface {
	ApplySettings(model.Settings)
}

type SettingsController struct {
	store  db.Store
	engine Engine
}

func NewSettingsController(store db.Store, engine Engine) *SettingsController {
	return &SettingsController{store: store, engine: engine}
}

func SettingsModule(store db.Store, engine Engine) api.Module {
	ctl := NewSettingsController(store, engine)
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/settings", ctl.getSettings)
		c.PUT("/settings", ctl.updateSettings)
		c.PUT("/settings/location", ctl.updateLocation)
	})
}

func (s *SettingsController) getSettings(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	settings, err := s.store.GetSettings()
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "failed to load settings"}
	}
	return settingsResponse(settings), nil
}

func (s *SettingsController) updateSettings(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.UpdateSettingsRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	settings, err := s.store.GetSettings()
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "failed to load settings"}
	}

	if request.WarningMinutes != nil {
		settings.WarningMinutes = *request.WarningMinutes
	}
	if request.AudioEnabled != nil {
		settings.AudioEnabled = *request.AudioEnabled
	}
	if request.OnsetSound != nil {
		settings.OnsetSound = *request.OnsetSound
	}
	if request.SignalSeconds != nil {
		settings.SignalSeconds = *request.SignalSeconds
	}
	settings.Normalize()

	if err := s.store.UpdateSettings(settings); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not save settings"}
	}
	s.engine.ApplySettings(settings)

	return settingsResponse(settings), nil
}

func (s *SettingsController) updateLocation(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.UpdateLocationRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	if err := s.store.UpdateLocation(request.SubareaID, request.SubareaName,
		request.LocalityName, request.RegionName); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not save location"}
	}

	settings, err := s.store.GetSettings()
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "failed to reload settings"}
	}
	s.engine.ApplySettings(settings)

	log.Info().
		Str("subarea", request.SubareaName).
		Str("locality", request.LocalityName).
		Msg("tracked location updated")

	return settingsResponse(settings), nil
}

func settingsResponse(s model.Settings) packets.SettingsResponse {
	return packets.SettingsResponse{
		SubareaID:      s.SubareaID,
		SubareaName:    s.SubareaName,
		LocalityName:   s.LocalityName,
		RegionName:     s.RegionName,
		WarningMinutes: s.WarningMinutes,
		AudioEnabled:   s.AudioEnabled,
		OnsetSound:     s.OnsetSound,
		SignalSeconds:  s.SignalSeconds,
	}
}
