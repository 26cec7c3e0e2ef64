package common

const (
	EnvKeyGoEnv string = "GO_ENV"

	EnvKeyRunIntegrationTests string = "RUN_INTEGRATION_TESTS"

	EnvKeyDBType     string = "CATTLE_DB_TYPE"
	EnvKeyDbPath     string = "CATTLE_DB_PATH"
	EnvKeyDBHost     string = "CATTLE_DB_HOST"
	EnvKeyDBPort     string = "CATTLE_DB_PORT"
	EnvKeyDBUser     string = "CATTLE_DB_USER"
	EnvKeyDBPassword string = "CATTLE_DB_PASSWORD"
	EnvKeyDBName     string = "CATTLE_DB_NAME"

	EnvKeyHttpHostPort string = "CATTLE_HTTP_HOST_PORT"
	EnvKeyGrpcHostPort string = "CATTLE_GRPC_HOST_PORT"

	EnvKeyJWTSecret string = "CATTLE_JWT_SECRET"
	EnvKeyJWTExpiry string = "CATTLE_JWT_EXPIRY"

	EnvKeyDefaultRate  string = "CATTLE_DEFAULT_RATE"
	EnvKeyDefaultBurst string = "CATTLE_DEFAULT_BURST"

	EnvKeyRequestTimeout string = "CATTLE_REQUEST_TIMEOUT"
	EnvKeyCorsOrigins    string = "CATTLE_CORS_ORIGINS"

	EnvKeyTemperatureStaleAfter string = "CATTLE_TEMPERATURE_STALE_AFTER"
	EnvKeyActivityStaleAfter    string = "CATTLE_ACTIVITY_STALE_AFTER"
	EnvKeyOfflineSweepSchedule  string = "CATTLE_OFFLINE_SWEEP_SCHEDULE"

	LoggerNameCattleCore     string = "cattle_core"
	LoggerNameRestfulServer  string = "restful_server"
	LoggerNameGrpcServer     string = "grpc_server"
	LoggerNameDatabase       string = "database"
	LoggerNameScheduler      string = "scheduler"
	LoggerFieldCategory      string = "category"
	LoggerCategoryReading    string = "reading"
	LoggerCategoryCow        string = "cow"
	LoggerCategoryUser       string = "user"
	LoggerCategoryNotify     string = "notification"
	LoggerCategoryOfflineJob string = "offline_sweep"
)
