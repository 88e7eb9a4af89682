package config

import (
	"os"
	"time"
)

func Addr() string {
	if addr, ok := os.LookupEnv("APP_ADDR"); ok {
		return addr
	}
	return ":8080"
}

func BasePath() string {
	return os.Getenv("APP_BASE_PATH")
}

// SessionTTL controls how long an untouched game survives before the
// registry sweeps it.
func SessionTTL() time.Duration {
	if raw, ok := os.LookupEnv("APP_SESSION_TTL"); ok {
		if ttl, err := time.ParseDuration(raw); err == nil {
			return ttl
		}
	}
	return 24 * time.Hour
}
