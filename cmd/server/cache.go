package main

import (
	"log"

	"github.com/tvardar/vakitd/internal/cache"
)

// InitCache selects and returns the configured batch cache backend
func InitCache(env Environment) cache.Cache {
	if env.CacheBackend == "redis" {
		if env.RedisAddress == "" {
			log.Fatal("CACHE_BACKEND=redis requires REDIS_ADDRESS")
		}
		log.Printf("Using Redis batch cache at %s", env.RedisAddress)
		return cache.NewRedisCache(env.RedisAddress, env.RedisUsername, env.RedisPassword)
	}

	log.Printf("Using file batch cache at %s", env.CacheFilePath)
	return cache.NewFileCache(env.CacheFilePath)
}
