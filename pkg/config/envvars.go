package config

// EnvPrefix is passed to envconfig; individual fields carry explicit names.
const EnvPrefix = "SHUTTLE"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "production"
)

const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
	BackendSQLite = "sqlite"
)

const (
	EnvAppEnv         = "SHUTTLE_APP_ENV"
	EnvLogLevel       = "SHUTTLE_LOG_LEVEL"
	EnvMenuPath       = "SHUTTLE_CATALOG_MENU_PATH"
	EnvCategoriesPath = "SHUTTLE_CATALOG_CATEGORIES_PATH"
	EnvStorageBackend = "SHUTTLE_STORAGE_BACKEND"
	EnvStorageCartKey = "SHUTTLE_STORAGE_CART_KEY"
	EnvRedisURL       = "SHUTTLE_REDIS_URL"
	EnvSQLitePath     = "SHUTTLE_SQLITE_PATH"
)
