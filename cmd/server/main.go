package main

import (
	"context"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/tvardar/vakitd/internal/db"
	"github.com/tvardar/vakitd/internal/notify"
	"github.com/tvardar/vakitd/internal/provider"
	"github.com/tvardar/vakitd/internal/scheduler"
	"github.com/tvardar/vakitd/internal/timetable"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()
	env := LoadEnvironment()

	if env.Environment != "production" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	// initialize PostgreSQL
	if err := db.Init(env.DatabaseURL); err != nil {
		log.Fatal().Err(err).Msg("db init")
	}

	// run pending migrations
	if err := db.RunMigrations(env.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("db migrate")
	}
	store := db.NewStore()

	// provider, cache and the resolver on top of them
	client := provider.NewClient(env.ProviderBaseURL)
	resolver := timetable.NewResolver(client, InitCache(env))

	// notification fan-out over MQTT
	dispatcher, err := notify.NewMQTTDispatcher(env.MQTTBrokerURL, "vakitd-server")
	if err != nil {
		log.Fatal().Err(err).Msg("mqtt init")
	}
	defer dispatcher.Close()

	settings, err := store.GetSettings()
	if err != nil {
		log.Fatal().Err(err).Msg("load settings")
	}
	if !settings.HasLocation() {
		log.Warn().Msg("no subarea selected yet; tracking starts after location setup")
	}

	// the tick loop owns all tracking state from here on
	engine := scheduler.New(resolver, dispatcher, settings)
	go engine.Run(context.Background())

	// set up gin router
	if env.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	RegisterRoutes(r, env, store, engine, client)

	log.Info().Str("address", env.ServerAddress).Msg("listening")
	if err := r.Run(env.ServerAddress); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}
