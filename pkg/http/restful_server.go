package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"
	"watchpost.dev/monitor-status-service/pkg/monitor"
)

type RestfulServer struct {
	Server           *gin.Engine
	Core             *monitor.Core
	RateLimiterStore *monitor.RateLimiterStore
}

func (rs *RestfulServer) GetLimiter(monitorID string) *rate.Limiter {
	if rs.RateLimiterStore == nil {
		return nil
	} else {
		return rs.RateLimiterStore.GetLimiter(monitorID)
	}
}

func (rs *RestfulServer) CheckLimiter(key string) bool {
	limiter := rs.GetLimiter(key)
	if limiter == nil {
		return true
	}
	return limiter.Allow()
}

func (rs *RestfulServer) SetLimiter(monitorID string, monitorRate float64, monitorBurst int) {
	if rs.RateLimiterStore == nil {
		return
	}
	rs.RateLimiterStore.SetLimiter(monitorID, rate.Limit(monitorRate), monitorBurst)
}

func (rs *RestfulServer) Setup() {
	rs.Server.GET("/healthz", rs.HealthCheck)
	rs.Server.GET("/metricsz", gin.WrapH(promhttp.Handler()))

	rs.Server.POST("/monitors", rs.CreateMonitor)
	monitors := rs.Server.Group("/monitors/:monitor_id")
	{
		monitors.DELETE("", rs.DeleteMonitor)
		monitors.POST("/pings", rs.PostPing)
		monitors.GET("/pings", rs.GetRecentPings)
		monitors.GET("/buckets", rs.GetPingBuckets)
		monitors.POST("/limiter", rs.PostLimiter)
		monitors.POST("/channels/:channel_id", rs.AttachChannel)
	}

	rs.Server.POST("/channels", rs.UpsertChannel)

	rs.Server.POST("/entries", rs.RegisterEntry)
	entries := rs.Server.Group("/entries/:entry_id")
	{
		entries.POST("/samples", rs.PostSample)
		entries.GET("/buckets", rs.GetMetricBuckets)
	}

	rs.Server.POST("/series", rs.PostSeries)
	rs.Server.GET("/public/status/:project_id", rs.GetPublicStatus)
}
