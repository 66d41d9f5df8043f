package main

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config contains application-wide settings sourced from the INI config
// file, with the environment taking precedence for deployment overrides.
type Config struct {
	DatabaseURL    string
	PlacesAPIKey   string
	Addr           string
	LogLevel       string
	LogFormat      string
	AllowedOrigins []string
}

func loadConfig() (Config, error) {
	_ = godotenv.Load("config/local.env")

	path := envOrDefault("CONTACTBOOK_CONFIG", "config/contactbook.ini")

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("ini")
	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	dsn, err := databaseURL(v)
	if err != nil {
		return Config{}, err
	}
	if override := os.Getenv("DATABASE_URL"); override != "" {
		dsn = override
	}

	apiKey := v.GetString("googleplaces.apikey")
	if override := os.Getenv("GOOGLE_PLACES_API_KEY"); override != "" {
		apiKey = override
	}
	if apiKey == "" {
		return Config{}, fmt.Errorf("missing googleplaces.apikey in %s", path)
	}

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.loglevel", "info")
	v.SetDefault("server.logformat", "json")
	v.SetDefault("server.origins", "http://localhost:5173")

	return Config{
		DatabaseURL:    dsn,
		PlacesAPIKey:   apiKey,
		Addr:           v.GetString("server.addr"),
		LogLevel:       v.GetString("server.loglevel"),
		LogFormat:      v.GetString("server.logformat"),
		AllowedOrigins: parseAllowedOrigins(v.GetString("server.origins")),
	}, nil
}

// databaseURL builds a postgres DSN from the [postgresql] section. Host,
// user, password, and dbname are required; port and sslmode default.
func databaseURL(v *viper.Viper) (string, error) {
	v.SetDefault("postgresql.port", 5432)
	v.SetDefault("postgresql.sslmode", "disable")

	for _, key := range []string{"postgresql.host", "postgresql.user", "postgresql.password", "postgresql.dbname"} {
		if v.GetString(key) == "" {
			return "", fmt.Errorf("missing %s in config", key)
		}
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		url.QueryEscape(v.GetString("postgresql.user")),
		url.QueryEscape(v.GetString("postgresql.password")),
		v.GetString("postgresql.host"),
		v.GetInt("postgresql.port"),
		v.GetString("postgresql.dbname"),
		v.GetString("postgresql.sslmode"),
	), nil
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func parseAllowedOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	var origins []string
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
