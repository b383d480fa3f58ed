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
	Port        int
	LogLevel    string
	LogFormat   string
	Environment string
	ServiceName string
	Version     string
	// LogDir enables session log files alongside stdout when set
	LogDir string

	// Catalog storage
	CatalogBackend string
	DBUser         string
	DBPassword     string
	DBHost         string
	DBPort         string
	DBName         string
	DBMaxConns     int
	DBMaxIdleTime  time.Duration
	DBMaxConnLife  time.Duration
	SQLitePath     string
	DataDir        string
	// SeedOnStart reloads DATA_DIR into a database backend at startup
	SeedOnStart bool

	// Read-through cache in front of the catalog store. Size 0 disables it.
	CacheSize int
	CacheTTL  time.Duration

	TrustedProxies  []string
	ShutdownTimeout time.Duration

	// Client-side state (planner, favorites)
	StateBackend  string
	StateDir      string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	APIURL        string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "text"),
		Environment: getEnv("ENVIRONMENT", "dev"),
		ServiceName: getEnv("SERVICE_NAME", "valley-companion"),
		Version:     getEnv("VERSION", "dev"),
		LogDir:      getEnv("LOG_DIR", ""),

		CatalogBackend: strings.ToLower(getEnv("CATALOG_BACKEND", BackendMemory)),
		DBUser:         getEnv("DB_USER", "postgres"),
		DBPassword:     getEnv("DB_PASSWORD", "postgres"),
		DBHost:         getEnv("DB_HOST", "localhost"),
		DBPort:         getEnv("DB_PORT", "5432"),
		DBName:         getEnv("DB_NAME", "companion"),
		DBMaxConns:     getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
		DBMaxIdleTime:  getEnvAsDuration("DB_MAX_IDLE_TIME", 5*time.Minute),
		DBMaxConnLife:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
		SQLitePath:     getEnv("SQLITE_PATH", DefaultSQLitePath),
		DataDir:        getEnv("DATA_DIR", DefaultDataDir),
		SeedOnStart:    getEnvAsBool("SEED_ON_START", false),

		CacheSize: getEnvAsInt("CACHE_SIZE", DefaultCacheSize),
		CacheTTL:  getEnvAsDuration("CACHE_TTL", 10*time.Minute),

		TrustedProxies:  getEnvAsSlice("TRUSTED_PROXIES", nil),
		ShutdownTimeout: getEnvAsDuration("SHUTDOWN_TIMEOUT", 10*time.Second),

		StateBackend:  strings.ToLower(getEnv("STATE_BACKEND", StateBackendFile)),
		StateDir:      getEnv("STATE_DIR", DefaultStateDir),
		RedisAddr:     getEnv("REDIS_ADDR", DefaultRedisAddr),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvAsInt("REDIS_DB", 0),
		APIURL:        getEnv("API_URL", DefaultAPIURL),
	}

	portStr := getEnv("PORT", strconv.Itoa(DefaultPort))
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	switch cfg.CatalogBackend {
	case BackendPostgres, BackendSQLite, BackendMemory:
	default:
		return nil, fmt.Errorf("invalid CATALOG_BACKEND %q: must be one of %s, %s, %s",
			cfg.CatalogBackend, BackendPostgres, BackendSQLite, BackendMemory)
	}

	switch cfg.StateBackend {
	case StateBackendFile, StateBackendRedis, StateBackendMemory:
	default:
		return nil, fmt.Errorf("invalid STATE_BACKEND %q: must be one of %s, %s, %s",
			cfg.StateBackend, StateBackendFile, StateBackendRedis, StateBackendMemory)
	}

	if cfg.CacheSize < 0 {
		return nil, fmt.Errorf("invalid CACHE_SIZE %d: must not be negative", cfg.CacheSize)
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an integer environment variable, falling back to the
// default when unset or unparsable
func getEnvAsInt(key string, defaultValue int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

// getEnvAsBool accepts the strconv.ParseBool spellings ("1", "true", "FALSE")
func getEnvAsBool(key string, defaultValue bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return b
}

// getEnvAsDuration parses a Go duration string ("30s", "5m")
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return d
}

// getEnvAsSlice splits a comma separated variable, dropping empty entries
func getEnvAsSlice(key string, defaultValue []string) []string {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
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

// IsDevelopment reports whether the environment is a development one
func (c *Config) IsDevelopment() bool {
	return c.Environment == "dev" || c.Environment == "development"
}
