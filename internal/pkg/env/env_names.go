package env

const (
	EnvHttpPort = "HTTP_PORT"

	EnvDatabaseURL      = "DATABASE_URL"
	EnvDatabaseHost     = "DB_HOST"
	EnvDatabasePort     = "DB_PORT"
	EnvDatabaseUser     = "DB_USER"
	EnvDatabasePassword = "DB_PASSWORD"
	EnvDatabaseName     = "DB_NAME"
	EnvDatabaseSSL      = "DB_SSL"
	EnvMigrateOnStart   = "MIGRATE_ON_START"

	EnvJwtSecret   = "JWT_SECRET"
	EnvAuthEnabled = "AUTH_ENABLED"

	EnvCorsAllowedOrigins = "CORS_ALLOWED_ORIGINS"
	EnvShutdownTimeout    = "SHUTDOWN_TIMEOUT"
)
