package common

const (
	EnvKeyGoEnv string = "GO_ENV"

	EnvKeyRunIntegrationTests string = "RUN_INTEGRATION_TESTS"

	EnvKeyMonDBType string = "MON_DB_TYPE"
	EnvKeyMonDbPath string = "MON_DB_PATH"

	EnvKeyMonHttpHostPort string = "MON_HTTP_HOST_PORT"

	EnvKeyMonDefaultRate  string = "MON_DEFAULT_RATE"
	EnvKeyMonDefaultBurst string = "MON_DEFAULT_BURST"

	EnvKeyMonClockSkewTolerance string = "MON_CLOCK_SKEW_TOLERANCE"
	EnvKeyMonDedupePings        string = "MON_DEDUPE_PINGS"
	EnvKeyMonDeliveryRetries    string = "MON_DELIVERY_RETRIES"

	LoggerNameMonitorCore   string = "monitor_core"
	LoggerNameNotify        string = "notify"
	LoggerNameRestfulServer string = "restful_server"

	LoggerFieldCategory    string = "category"
	LoggerCategoryPing     string = "ping"
	LoggerCategoryMetric   string = "metric"
	LoggerCategoryStatus   string = "status"
	LoggerCategorySeries   string = "series"
	LoggerCategoryAdmin    string = "admin"
	LoggerCategoryDelivery string = "delivery"
)
