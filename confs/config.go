package confs

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"starwars-api/logging"
)

const defaultJWTSecret = "super-secret-key"

// Config holds every externally configurable setting of the API.
type Config struct {
	Port         string
	DatabaseURL  string
	SQLitePath   string
	JWTSecret    string
	JWTTTL       time.Duration
	LogLevel     string
	GinMode      string
	ServiceName  string
	OTLPEndpoint string
	AllowOrigins []string
}

// UsesDefaultSecret reports whether tokens are signed with the built-in key.
func (c *Config) UsesDefaultSecret() bool {
	return c.JWTSecret == defaultJWTSecret
}

// LoadConfig loads environment variables from a .env file if present
// and resolves the typed configuration with defaults applied.
func LoadConfig() (*Config, error) {
	// Load .env if it exists; ignore error if file not found
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			logging.Logger().Warnf("could not load .env: %v", err)
		}
	}

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "3000")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("SQLITE_PATH", "/tmp/test.db")
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("JWT_TTL", "24h")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("OTEL_SERVICE_NAME", "starwars-api")
	v.SetDefault("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	v.SetDefault("CORS_ALLOW_ORIGINS", "*")

	ttl := v.GetDuration("JWT_TTL")
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	return &Config{
		Port:         v.GetString("PORT"),
		DatabaseURL:  v.GetString("DATABASE_URL"),
		SQLitePath:   v.GetString("SQLITE_PATH"),
		JWTSecret:    v.GetString("JWT_SECRET"),
		JWTTTL:       ttl,
		LogLevel:     v.GetString("LOG_LEVEL"),
		GinMode:      v.GetString("GIN_MODE"),
		ServiceName:  v.GetString("OTEL_SERVICE_NAME"),
		OTLPEndpoint: v.GetString("OTEL_EXPORTER_OTLP_ENDPOINT"),
		AllowOrigins: splitList(v.GetString("CORS_ALLOW_ORIGINS")),
	}, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
