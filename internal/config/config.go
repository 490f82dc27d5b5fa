package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int    `env:"PORT" validate:"min=1,max=65535"`
	Environment string `env:"ENVIRONMENT" validate:"required"`
	ServiceName string `env:"SERVICE_NAME"`
	Version     string `env:"VERSION"`
	LogLevel    string `env:"LOG_LEVEL" validate:"oneof=debug info warn warning error DEBUG INFO WARN WARNING ERROR"`
	LogFormat   string `env:"LOG_FORMAT" validate:"oneof=json text"`
	LogDir      string `env:"LOG_DIR"`

	// Bungie application credentials
	ClientID     string `env:"CLIENT_ID" validate:"required"`
	ClientSecret string `env:"CLIENT_SECRET" validate:"required"`
	APIKey       string `env:"API_KEY" validate:"required"`
	RedirectURI  string `env:"REDIRECT_URI" validate:"required,url"`

	BungieBaseURL   string        `env:"BUNGIE_BASE_URL" validate:"required,url"`
	UpstreamTimeout time.Duration `env:"UPSTREAM_TIMEOUT" validate:"gte=0"`
	ManifestPath    string        `env:"MANIFEST_PATH" validate:"required"`

	DefaultMembershipType int    `env:"DEFAULT_MEMBERSHIP_TYPE" validate:"gte=0"`
	DefaultMembershipID   string `env:"DEFAULT_MEMBERSHIP_ID"`

	// Session handling
	SecretKey        string        `env:"SECRET_KEY" validate:"required"`
	SessionStore     string        `env:"SESSION_STORE" validate:"oneof=memory postgres"`
	SessionTTL       time.Duration `env:"SESSION_TTL" validate:"gt=0"`
	SessionCacheSize int           `env:"SESSION_CACHE_SIZE" validate:"min=1"`

	DBUser     string `env:"DB_USER" validate:"required_if=SessionStore postgres"`
	DBPassword string `env:"DB_PASSWORD"`
	DBHost     string `env:"DB_HOST" validate:"required_if=SessionStore postgres"`
	DBPort     string `env:"DB_PORT" validate:"required_if=SessionStore postgres"`
	DBName     string `env:"DB_NAME" validate:"required_if=SessionStore postgres"`
	DBMaxConns int    `env:"DB_MAX_CONNS" validate:"min=1"`

	DebugRoutes    bool     `env:"DEBUG_ROUTES"`
	TrustedProxies []string `env:"TRUSTED_PROXIES"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		Environment: getEnv("ENVIRONMENT", DefaultEnvironment),
		ServiceName: getEnv("SERVICE_NAME", DefaultServiceName),
		Version:     getEnv("VERSION", "dev"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "text"),
		LogDir:      getEnv("LOG_DIR", "logs"),

		ClientID:     getEnv("CLIENT_ID", ""),
		ClientSecret: getEnv("CLIENT_SECRET", ""),
		APIKey:       getEnv("API_KEY", ""),
		RedirectURI:  getEnv("REDIRECT_URI", ""),

		BungieBaseURL: strings.TrimRight(getEnv("BUNGIE_BASE_URL", DefaultBungieBaseURL), "/"),
		ManifestPath:  getEnv("MANIFEST_PATH", DefaultManifestPath),

		DefaultMembershipType: getEnvAsInt("DEFAULT_MEMBERSHIP_TYPE", DefaultMembershipType),
		DefaultMembershipID:   getEnv("DEFAULT_MEMBERSHIP_ID", DefaultMembershipID),

		SecretKey:        getEnv("SECRET_KEY", ""),
		SessionStore:     strings.ToLower(getEnv("SESSION_STORE", SessionStoreMemory)),
		SessionCacheSize: getEnvAsInt("SESSION_CACHE_SIZE", DefaultSessionCacheSize),

		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBName:     getEnv("DB_NAME", "gudguns"),
		DBMaxConns: getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),

		DebugRoutes:    getEnvAsBool("DEBUG_ROUTES", false),
		TrustedProxies: getEnvAsList("TRUSTED_PROXIES"),
	}

	portStr := getEnv("PORT", strconv.Itoa(DefaultPort))
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	if cfg.UpstreamTimeout, err = getEnvAsDuration("UPSTREAM_TIMEOUT", DefaultUpstreamTimeout); err != nil {
		return nil, err
	}
	if cfg.SessionTTL, err = getEnvAsDuration("SESSION_TTL", DefaultSessionTTL); err != nil {
		return nil, err
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// IsDevelopment reports whether the app runs in a development environment
func (c *Config) IsDevelopment() bool {
	return c.Environment == EnvironmentDev || c.Environment == "development"
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return defaultValue
	}
	return n
}

func getEnvAsBool(key string, defaultValue bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	b, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return defaultValue
	}
	return b
}

func getEnvAsDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return d, nil
}

// getEnvAsList splits a comma separated variable, dropping blanks
func getEnvAsList(key string) []string {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
