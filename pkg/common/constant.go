package common

const (
	EnvKeyGoEnv string = "GO_ENV"

	EnvKeyRunIntegrationTests string = "RUN_INTEGRATION_TESTS"

	EnvKeyTrafficDBType string = "TRAFFIC_DB_TYPE"
	EnvKeyTrafficDbPath string = "TRAFFIC_DB_PATH"

	EnvKeyTrafficHttpHostPort string = "TRAFFIC_HTTP_HOST_PORT"

	EnvKeyTrafficLogPath string = "TRAFFIC_LOG_PATH"

	EnvKeyTrafficMediaRoot    string = "TRAFFIC_MEDIA_ROOT"
	EnvKeyTrafficTokenSecret  string = "TRAFFIC_TOKEN_SECRET"
	EnvKeyTrafficTokenTTLHour string = "TRAFFIC_TOKEN_TTL_HOURS"

	EnvKeyTrafficDefaultRate  string = "TRAFFIC_DEFAULT_RATE"
	EnvKeyTrafficDefaultBurst string = "TRAFFIC_DEFAULT_BURST"

	LoggerNameTrafficCore   string = "traffic_core"
	LoggerNameRestfulServer string = "restful_server"

	LoggerFieldTrafficCategory  string = "category"
	LoggerCategoryAccount       string = "account"
	LoggerCategoryDevice        string = "device"
	LoggerCategoryValue         string = "value"
	LoggerCategoryLatest        string = "latest"
	LoggerCategoryTodo          string = "todo"
	LoggerCategoryBlob          string = "blob"
)

// ValuePageSize is the fixed page size for device value listings.
const ValuePageSize = 10

const (
	OrderDirectionLast  string = "last"
	OrderDirectionFirst string = "first"
)
