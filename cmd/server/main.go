package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"watchpost.dev/monitor-status-service/pkg/common"
	"watchpost.dev/monitor-status-service/pkg/db"
	monHttp "watchpost.dev/monitor-status-service/pkg/http"
	"watchpost.dev/monitor-status-service/pkg/models"
	"watchpost.dev/monitor-status-service/pkg/monitor"
	"watchpost.dev/monitor-status-service/pkg/notify"
)

func main() {
	var err error

	err = godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file, copy .env.example to .env first if in development")
	}

	var dbInstance *db.DB
	monDbType := os.Getenv(common.EnvKeyMonDBType)
	switch monDbType {
	case "file":
		dbInstance = db.GetInstance(db.UseSqliteDialector())
	case "memory":
		dbInstance = db.GetInstance(db.UseMemorySqliteDialector())
	default:
		log.Fatal("Unknown MON_DB_TYPE: " + monDbType)
	}

	httpHostPort := strings.TrimSpace(os.Getenv(common.EnvKeyMonHttpHostPort))

	var defaultRate float64
	var defaultBurst int64

	if defaultRate, err = strconv.ParseFloat(os.Getenv(common.EnvKeyMonDefaultRate), 64); err != nil {
		log.Fatal("Invalid MON_DEFAULT_RATE, or not set in .env, should be a float64 value")
	}

	if defaultBurst, err = strconv.ParseInt(os.Getenv(common.EnvKeyMonDefaultBurst), 10, 64); err != nil {
		log.Fatal("Invalid MON_DEFAULT_BURST, or not set in .env, should be an int value")
	}

	logger := common.GetLogger()

	dispatcher := notify.NewDispatcher().
		Register(models.ChannelKindTelegram, notify.NewTelegramDeliverer()).
		Register(models.ChannelKindWebhook, notify.NewWebhookDeliverer())

	if raw := os.Getenv(common.EnvKeyMonDeliveryRetries); raw != "" {
		retries, err := strconv.Atoi(raw)
		if err != nil {
			log.Fatal("Invalid MON_DELIVERY_RETRIES, should be an int value")
		}
		dispatcher.Retries = retries
	}

	coreOpts := monitor.CoreOpts{}
	if raw := os.Getenv(common.EnvKeyMonClockSkewTolerance); raw != "" {
		skew, err := time.ParseDuration(raw)
		if err != nil {
			log.Fatal("Invalid MON_CLOCK_SKEW_TOLERANCE, should be a duration like 5m")
		}
		coreOpts.ClockSkewTolerance = skew
	}
	coreOpts.DedupePings = os.Getenv(common.EnvKeyMonDedupePings) == "true"

	core := monitor.Core{
		Db:     *dbInstance,
		Opts:   coreOpts,
		Alerts: dispatcher,
	}
	core.WithServices(monitor.ServiceOpts{
		Ping:     core.GetIPing(),
		Metric:   core.GetIMetric(),
		Dispatch: core.GetIDispatch(),
		Series:   core.GetISeries(),
		Admin:    core.GetIAdmin(),
	})

	if httpHostPort == "" {
		// fallback to default http port
		httpHostPort = ":1080"
	}

	logger.Info("Starting HTTP server on port " + httpHostPort)
	rs := &monHttp.RestfulServer{
		Server:           gin.Default(),
		Core:             &core,
		RateLimiterStore: monitor.NewRateLimiterStore(rate.Limit(defaultRate), int(defaultBurst)),
	}
	rs.Setup()

	logger.Info("http server created with:",
		zap.String("default_limiter",
			fmt.Sprintf("{\"default_rate\": %v, \"default_burst\": %v}", defaultRate, defaultBurst)))

	logger.Info("Starting HTTP server on: " + httpHostPort)
	if err := rs.Server.Run(httpHostPort); err != nil {
		log.Fatalf("http server failed to serve: %v", err)
	}
}
