package config

import (
	"os"
	"strconv"
	"strings"
)

const (
	defaultDSN           = "root:@tcp(127.0.0.1:3306)/car_rental"
	defaultSessionSecret = "dev-session-secret-change-me"
)

type Env struct {
	AppAddr       string
	GinMode       string
	DatabaseDSN   string
	SessionSecret string
	LogLevel      string
	LogFormat     string
	CORSOrigins   []string
	SeedData      bool
	SecureCookie  bool
}

// UsingDefaultSecret reports whether SESSION_SECRET was left unset.
func (e Env) UsingDefaultSecret() bool {
	return e.SessionSecret == defaultSessionSecret
}

func LoadEnv() Env {
	return Env{
		AppAddr:       getenv("APP_ADDR", ":8080"),
		GinMode:       getenv("GIN_MODE", ""),
		DatabaseDSN:   getenv("DATABASE_DSN", defaultDSN),
		SessionSecret: getenv("SESSION_SECRET", defaultSessionSecret),
		LogLevel:      getenv("LOG_LEVEL", "info"),
		LogFormat:     getenv("LOG_FORMAT", "text"),
		CORSOrigins:   splitList(getenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")),
		SeedData:      getbool("SEED_DATA", true),
		SecureCookie:  getbool("SECURE_COOKIE", false),
	}
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getbool(key string, fallback bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func splitList(raw string) []string {
	out := []string{}
	for _, o := range strings.Split(raw, ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			out = append(out, o)
		}
	}
	return out
}
