package main

import (
	"log"
	"os"
)

type Environment struct {
	Environment    string
	ServerAddress  string
	SecretKey      string
	DatabaseURL    string
	MigrationsPath string

	ProviderBaseURL string
	MQTTBrokerURL   string

	CacheBackend  string // "file" or "redis"
	CacheFilePath string
	RedisAddress  string
	RedisUsername string
	RedisPassword string
}

// LoadEnvironment reads and validates env vars
func LoadEnvironment() Environment {
	env := Environment{
		Environment:    os.Getenv("APP_ENV"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		SecretKey:      os.Getenv("JWT_SECRET"),
		ServerAddress:  os.Getenv("SERVER_ADDRESS"),
		MigrationsPath: os.Getenv("MIGRATIONS_PATH"),

		ProviderBaseURL: os.Getenv("PROVIDER_BASE_URL"),
		MQTTBrokerURL:   os.Getenv("MQTT_BROKER_URL"),

		CacheBackend:  os.Getenv("CACHE_BACKEND"),
		CacheFilePath: os.Getenv("CACHE_FILE_PATH"),
		RedisAddress:  os.Getenv("REDIS_ADDRESS"),
		RedisUsername: os.Getenv("REDIS_USERNAME"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
	}

	// Basic validation
	if env.DatabaseURL == "" || env.SecretKey == "" || env.ProviderBaseURL == "" {
		log.Fatal("Missing required environment variables")
	}
	if env.ServerAddress == "" {
		env.ServerAddress = ":8080"
	}
	if env.MigrationsPath == "" {
		env.MigrationsPath = "./migrations"
	}
	if env.MQTTBrokerURL == "" {
		env.MQTTBrokerURL = "tcp://127.0.0.1:1883"
	}
	if env.CacheFilePath == "" {
		env.CacheFilePath = "./times_cache.json"
	}

	return env
}
