package endpoints

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/tvardar/vakitd/internal/http/api"
	"github.com/tvardar/vakitd/internal/model"
)

// LocationSource is the provider's location hierarchy.
type LocationSource interface {
	Regions() ([]model.Region, error)
	Localities(regionID string) ([]model.Locality, error)
	Subareas(localityID string) ([]model.Subarea, error)
}

type LocationController struct {
	source LocationSource
}

func NewLocationController(source LocationSource) *LocationController {
	return &LocationController{source: source}
}

func LocationModule(source LocationSource) api.Module {
	ctl := NewLocationController(source)
	return api.ModuleFunc(func(c *api.Controller) {
		c.PUBLIC_GET("/locations/regions", ctl.listRegions)
		c.PUBLIC_GET("/locations/regions/:id/localities", ctl.listLocalities)
		c.PUBLIC_GET("/locations/localities/:id/subareas", ctl.listSubareas)
	})
}

// Provider failures surface as an empty list plus an error message rather
// than an HTTP error; the HUD shows the message and keeps its state.

func (l *LocationController) listRegions(ctx *gin.Context) (any, *api.APIError) {
	regions, err := l.source.Regions()
	if err != nil {
		log.Warn().Err(err).Msg("region lookup failed")
		return gin.H{"regions": []model.Region{}, "error": err.Error()}, nil
	}
	return gin.H{"regions": regions}, nil
}

func (l *LocationController) listLocalities(ctx *gin.Context) (any, *api.APIError) {
	localities, err := l.source.Localities(ctx.Param("id"))
	if err != nil {
		log.Warn().Err(err).Str("region", ctx.Param("id")).Msg("locality lookup failed")
		return gin.H{"localities": []model.Locality{}, "error": err.Error()}, nil
	}
	return gin.H{"localities": localities}, nil
}

func (l *LocationController) listSubareas(ctx *gin.Context) (any, *api.APIError) {
	subareas, err := l.source.Subareas(ctx.Param("id"))
	if err != nil {
		log.Warn().Err(err).Str("locality", ctx.Param("id")).Msg("subarea lookup failed")
		return gin.H{"subareas": []model.Subarea{}, "error": err.Error()}, nil
	}
	return gin.H{"subareas": subareas}, nil
}
