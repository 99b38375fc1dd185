// Package config provides functionality for loading and managing application configuration.
// Configuration is sourced entirely from environment variables (optionally loaded from a
// local .env file via godotenv), following the flat env-var layout the auth core requires.
package config

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/madome/auth-core/internal/utils"
)

// Config represents the main application configuration structure, populated from
// environment variables at process start and shared immutably by every request task.
type Config struct {
	Name           string // Application name
	ApiPrefix      string // Prefix for the health and metrics routes (e.g., /api/v1)
	RequestTimeout string // Maximum request timeout duration (e.g., "15s")
	Port           int    // HTTP listen port

	DatabaseURL string // Postgres connection string
	RedisURL    string // Redis connection string

	JWTSecret     string // Process-wide HS256 signing secret
	CookieDomain  string // Domain attribute applied to every cookie this service sets
	WebauthnRPID  string // WebAuthn relying-party ID (usually the bare domain)
	WebauthnOrigin string // WebAuthn relying-party origin (scheme + domain [+ port])

	UsersGRPCURL string // Address of the external users directory gRPC service
}

// NewConfig loads configuration from the process environment. The connection,
// secret, cookie, WebAuthn and port values map to the environment variables
// named in the spec's External Interfaces section; APP_NAME, API_PREFIX and
// REQUEST_TIMEOUT are additional, optional settings. AUTH_PORT defaults to
// 3112 when unset.
func NewConfig() (*Config, error) {
	port, err := strconv.Atoi(utils.GetEnv("AUTH_PORT", "3112"))
	if err != nil {
		return nil, fmt.Errorf("AUTH_PORT must be an integer: %w", err)
	}

	cfg := &Config{
		Name:           utils.GetEnv("APP_NAME", "madome-auth-core"),
		ApiPrefix:      utils.GetEnv("API_PREFIX", "/api/v1"),
		RequestTimeout: utils.GetEnv("REQUEST_TIMEOUT", "15s"),
		Port:           port,

		DatabaseURL: utils.GetEnv("DATABASE_URL", ""),
		RedisURL:    utils.GetEnv("REDIS_URL", ""),

		JWTSecret:      utils.GetEnv("JWT_SECRET", ""),
		CookieDomain:   utils.GetEnv("COOKIE_DOMAIN", ""),
		WebauthnRPID:   utils.GetEnv("WEBAUTHN_RP_ID", ""),
		WebauthnOrigin: utils.GetEnv("WEBAUTHN_ORIGIN", ""),

		UsersGRPCURL: utils.GetEnv("USERS_GRPC_URL", ""),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}

// PrettyPrint outputs the provided value as formatted JSON to standard output.
// This is useful for debugging and displaying configuration values at startup.
func PrettyPrint(v any) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(string(b))
}
