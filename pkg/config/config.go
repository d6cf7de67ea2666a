package config

import (
	"errors"
	"log"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// ErrInvalid marks a configuration value that failed validation.
var ErrInvalid = errors.New("config: invalid value")

// DotEnvFile is read from the working directory when present. Real
// environment variables always take precedence over it.
const DotEnvFile = ".env"

var (
	sourceOnce sync.Once
	source     *viper.Viper
)

func env() *viper.Viper {
	sourceOnce.Do(func() {
		source = newSource(DotEnvFile)
	})
	return source
}

func newSource(dotEnv string) *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()
	if dotEnv == "" {
		return v
	}
	if _, err := os.Stat(dotEnv); err != nil {
		return v
	}
	v.SetConfigFile(dotEnv)
	v.SetConfigType("env")
	if err := v.ReadInConfig(); err != nil {
		log.Printf("ignoring %s: %v", dotEnv, err)
	}
	return v
}

func lookup(key string) (string, bool) {
	if value, ok := os.LookupEnv(key); ok {
		return value, strings.TrimSpace(value) != ""
	}
	v := env()
	if !v.IsSet(key) {
		return "", false
	}
	value := v.GetString(key)
	return value, strings.TrimSpace(value) != ""
}

// GetString retrieves a setting or returns a fallback when unset or empty.
func GetString(key, fallback string) string {
	if value, ok := lookup(key); ok {
		return value
	}
	return fallback
}

// GetInt retrieves a setting as integer or returns fallback.
func GetInt(key string, fallback int) int {
	if value, ok := lookup(key); ok {
		parsed, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			log.Printf("invalid value for %s: %v", key, err)
			return fallback
		}
		return parsed
	}
	return fallback
}

// GetInt64 retrieves a setting as a 64-bit integer or returns fallback.
func GetInt64(key string, fallback int64) int64 {
	if value, ok := lookup(key); ok {
		parsed, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
		if err != nil {
			log.Printf("invalid value for %s: %v", key, err)
			return fallback
		}
		return parsed
	}
	return fallback
}

// GetBool retrieves a setting as bool or returns fallback. Besides the
// strconv forms it accepts yes/no, y/n and on/off.
func GetBool(key string, fallback bool) bool {
	if value, ok := lookup(key); ok {
		switch strings.ToLower(strings.TrimSpace(value)) {
		case "yes", "y", "on":
			return true
		case "no", "n", "off":
			return false
		}
		parsed, err := strconv.ParseBool(strings.TrimSpace(value))
		if err != nil {
			log.Printf("invalid value for %s: %v", key, err)
			return fallback
		}
		return parsed
	}
	return fallback
}
