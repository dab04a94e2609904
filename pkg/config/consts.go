package config

// EnvPrefix scopes every environment variable read by envconfig.
const EnvPrefix = "VELORA"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "production"
)

const (
	EnvAppEnv     = "VELORA_APP_ENV"
	EnvPort       = "VELORA_APP_PORT"
	EnvDBDSN      = "VELORA_DB_DSN"
	EnvDBHost     = "VELORA_DB_HOST"
	EnvDBUser     = "VELORA_DB_USER"
	EnvDBName     = "VELORA_DB_NAME"
	EnvRedisURL   = "VELORA_REDIS_URL"
	EnvJWTSecret  = "VELORA_JWT_SECRET"
	EnvJWTIssuer  = "VELORA_JWT_ISSUER"
	EnvJWTExpMins = "VELORA_JWT_EXPIRATION_MINUTES"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
