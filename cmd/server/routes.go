package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/tvardar/vakitd/internal/db"
	"github.com/tvardar/vakitd/internal/http/api"
	authapi "github.com/tvardar/vakitd/internal/http/api/admin/auth/endpoints"
	adminapi "github.com/tvardar/vakitd/internal/http/api/admin/control/endpoints"
	hudapi "github.com/tvardar/vakitd/internal/http/api/hud/endpoints"
	"github.com/tvardar/vakitd/internal/scheduler"
)

// RegisterRoutes sets up all application routes
func RegisterRoutes(r *gin.Engine, env Environment, store db.Store, engine *scheduler.Scheduler, locations hudapi.LocationSource) {
	// CORS
	r.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool { return true },
		AllowMethods: []string{
			"GET",
			"POST",
			"PUT",
			"PATCH",
			"DELETE",
			"OPTIONS",
			"HEAD",
		},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Authorization",
			"Accept",
		},
		AllowCredentials: false,
	}))

	api.MountGroup(r, api.GroupConfig{
		Prefix: "/api/admin",
		Auth:   false,
	},
		authapi.AuthPublicModule(env.SecretKey, store),
	)

	api.MountGroup(r, api.GroupConfig{
		Prefix:    "/api/admin",
		Auth:      true,
		SecretKey: env.SecretKey,
	},
		adminapi.SettingsModule(store, engine),
		// session endpoints that require auth
		authapi.AuthSessionModule(env.SecretKey, store),
	)

	api.MountGroup(r, api.GroupConfig{
		Prefix: "/api/hud",
	},
		hudapi.LocationModule(locations),
		hudapi.TimesModule(engine),
	)
}
