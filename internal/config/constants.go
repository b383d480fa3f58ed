package config

// Catalog backends
const (
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
	BackendMemory   = "memory"
)

// Client-side state backends used by the companion CLI
const (
	StateBackendFile   = "file"
	StateBackendRedis  = "redis"
	StateBackendMemory = "memory"
)

// Data file names inside DATA_DIR
const (
	DataFileCrops   = "crops.json"
	DataFileFish    = "fish.json"
	DataFileNPCs    = "npcs.json"
	DataFileRecipes = "recipes.json"
	DataFileMining  = "mining.json"
	DataFileBundles = "bundles.json"
)

// Defaults
const (
	DefaultPort            = 8080
	DefaultDataDir         = "data"
	DefaultSQLitePath      = "companion.db"
	DefaultCacheSize       = 256
	DefaultDBMaxConns      = 10
	DefaultAPIURL          = "http://localhost:8080"
	DefaultRedisAddr       = "localhost:6379"
	DefaultStateDir        = ".companion"
	DefaultExampleDBSecret = "change_this_secure_password"
)
