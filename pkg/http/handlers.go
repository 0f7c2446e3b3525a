package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"gorm.io/gorm"
	"watchpost.dev/monitor-status-service/pkg/models"
	"watchpost.dev/monitor-status-service/pkg/monitor"
	"watchpost.dev/monitor-status-service/pkg/telemetry"

	"github.com/gin-gonic/gin"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"
)

func (rs *RestfulServer) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ---- monitors ----

type MonitorRequest struct {
	Name      string `json:"name"`
	URL       string `json:"url"`
	ProjectID string `json:"project_id"`
	Mode      string `json:"mode"`
}

var monitorRequestSchema = z.Struct(z.Shape{
	"URL":       z.String().Required(),
	"ProjectID": z.String().Required(),
	"Name":      z.String(),
	"Mode":      z.String(),
})

func (rs *RestfulServer) CreateMonitor(c *gin.Context) {
	var req MonitorRequest
	if err := monitorRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	mon, err := rs.Core.Admin.CreateMonitor(&models.Monitor{
		Name:      req.Name,
		URL:       req.URL,
		ProjectID: req.ProjectID,
		Mode:      models.MonitorMode(req.Mode),
	})
	if err != nil {
		rs.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, mon)
}

func (rs *RestfulServer) DeleteMonitor(c *gin.Context) {
	monitorID := c.Param("monitor_id")

	if err := rs.Core.Admin.DeleteMonitor(monitorID); err != nil {
		rs.renderError(c, err)
		return
	}

	c.Status(http.StatusOK)
}

// ---- ping ingestion ----

type PingRequest struct {
	PingID         string    `json:"ping_id"`
	StatusCode     int       `json:"status_code"`
	ResponseTimeMs float64   `json:"response_time_ms"`
	Message        string    `json:"message"`
	Timestamp      time.Time `json:"timestamp"`
}

var pingRequestSchema = z.Struct(z.Shape{
	"StatusCode":     z.Int().Required(),
	"ResponseTimeMs": z.Float64().Required(),
	"Timestamp":      z.Time().Required(),
	"PingID":         z.String(),
	"Message":        z.String(),
})

func (rs *RestfulServer) PostPing(c *gin.Context) {
	monitorID := c.Param("monitor_id")

	if !rs.CheckLimiter(monitorID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	var req PingRequest
	if err := pingRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	err := rs.Core.Ping.RecordPing(monitorID, &models.PingRecord{
		ID:             req.PingID,
		StatusCode:     req.StatusCode,
		ResponseTimeMs: req.ResponseTimeMs,
		Message:        req.Message,
		Timestamp:      req.Timestamp,
	})
	if err != nil {
		rs.renderError(c, err)
		return
	}

	if err := rs.Core.Dispatch.OnPingRecorded(monitorID); err != nil {
		rs.renderError(c, err)
		return
	}

	c.Status(http.StatusOK)
}

func (rs *RestfulServer) GetRecentPings(c *gin.Context) {
	monitorID := c.Param("monitor_id")

	if !rs.CheckLimiter(monitorID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		var err error
		if limit, err = strconv.Atoi(raw); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be an integer"})
			return
		}
	}

	pings, err := rs.Core.Ping.RecentPings(monitorID, limit)
	if err != nil {
		rs.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, pings)
}

func (rs *RestfulServer) GetPingBuckets(c *gin.Context) {
	monitorID := c.Param("monitor_id")

	g, from, to, err := parseRangeQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	buckets, err := rs.Core.Ping.BucketsInRange(monitorID, g, from, to)
	if err != nil {
		rs.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, buckets)
}

// ---- limiter ----

type LimiterRequest struct {
	Rate  float64 `json:"rate"`
	Burst int     `json:"burst"`
}

var limiterRequestSchema = z.Struct(z.Shape{
	"rate":  z.Float64().Required(),
	"burst": z.Int().Required(),
})

func (rs *RestfulServer) PostLimiter(c *gin.Context) {
	monitorID := c.Param("monitor_id")

	var req LimiterRequest
	if err := limiterRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	rs.SetLimiter(monitorID, req.Rate, req.Burst)

	c.Status(http.StatusOK)
}

// ---- channels ----

type ChannelRequest struct {
	ID        string          `json:"id"`
	ProjectID string          `json:"project_id"`
	Kind      string          `json:"kind"`
	Options   json.RawMessage `json:"options"`
}

func (rs *RestfulServer) UpsertChannel(c *gin.Context) {
	var req ChannelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := rs.Core.Admin.UpsertChannel(&models.NotificationChannel{
		ID:        req.ID,
		ProjectID: req.ProjectID,
		Kind:      models.ChannelKind(req.Kind),
		Options:   string(req.Options),
	})
	if err != nil {
		rs.renderError(c, err)
		return
	}

	c.Status(http.StatusOK)
}

func (rs *RestfulServer) AttachChannel(c *gin.Context) {
	monitorID := c.Param("monitor_id")
	channelID := c.Param("channel_id")

	if err := rs.Core.Admin.AttachChannel(monitorID, channelID); err != nil {
		rs.renderError(c, err)
		return
	}

	c.Status(http.StatusOK)
}

// ---- metric entries & samples ----

type EntryRequest struct {
	ID        string `json:"id"`
	ProjectID string `json:"project_id"`
	Name      string `json:"name"`
	Kind      string `json:"kind"`
}

var entryRequestSchema = z.Struct(z.Shape{
	"ProjectID": z.String().Required(),
	"Name":      z.String().Required(),
	"ID":        z.String(),
	"Kind":      z.String(),
})

func (rs *RestfulServer) RegisterEntry(c *gin.Context) {
	var req EntryRequest
	if err := entryRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	err := rs.Core.Admin.RegisterMetricEntry(&models.MetricEntry{
		ID:        req.ID,
		ProjectID: req.ProjectID,
		Name:      req.Name,
		Kind:      models.MetricKind(req.Kind),
	})
	if err != nil {
		rs.renderError(c, err)
		return
	}

	c.Status(http.StatusOK)
}

type SampleRequest struct {
	Timestamp time.Time `json:"timestamp"`
	Value     float64   `json:"value"`
}

var sampleRequestSchema = z.Struct(z.Shape{
	"Timestamp": z.Time().Required(),
	"Value":     z.Float64().Required(),
})

func (rs *RestfulServer) PostSample(c *gin.Context) {
	entryID := c.Param("entry_id")

	if !rs.CheckLimiter(entryID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	var req SampleRequest
	if err := sampleRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	if err := rs.Core.Metric.RecordSample(entryID, req.Timestamp, req.Value); err != nil {
		rs.renderError(c, err)
		return
	}

	c.Status(http.StatusOK)
}

func (rs *RestfulServer) GetMetricBuckets(c *gin.Context) {
	entryID := c.Param("entry_id")

	g, from, to, err := parseRangeQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	buckets, err := rs.Core.Metric.BucketsInRange(entryID, g, from, to)
	if err != nil {
		rs.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, buckets)
}

// ---- series ----

type SeriesRequest struct {
	MonitorIDs  []string `json:"monitor_ids"`
	Granularity string   `json:"granularity"`
	From        string   `json:"from"`
	To          string   `json:"to"`
}

func (rs *RestfulServer) PostSeries(c *gin.Context) {
	var req SeriesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	g, err := parseGranularity(req.Granularity)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	from, to, err := parseTimeRange(req.From, req.To)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	series, err := rs.Core.Series.BuildSeries(req.MonitorIDs, g, from, to)
	if err != nil {
		rs.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, series)
}

// GetPublicStatus serves the anonymous status page: no auth resolved, so
// the response carries only the stripped public series.
func (rs *RestfulServer) GetPublicStatus(c *gin.Context) {
	projectID := c.Param("project_id")

	g, from, to, err := parseRangeQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	series, err := rs.Core.Series.BuildPublicSeries(projectID, g, from, to)
	if err != nil {
		rs.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, series)
}

// ---- helpers ----

func (rs *RestfulServer) renderError(c *gin.Context, err error) {
	if monitor.IsValidation(err) {
		telemetry.ValidationRejected.Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, err)
}

func parseGranularity(raw string) (models.Granularity, error) {
	if raw == "" {
		return models.GranularityMinute, nil
	}
	g := models.Granularity(raw)
	for _, known := range models.AllGranularities {
		if g == known {
			return g, nil
		}
	}
	return "", errors.New("unknown granularity: " + raw)
}

func parseTimeRange(fromRaw, toRaw string) (time.Time, time.Time, error) {
	now := time.Now().UTC()
	from := now.Add(-time.Hour)
	to := now

	var err error
	if fromRaw != "" {
		if from, err = time.Parse(time.RFC3339, fromRaw); err != nil {
			return time.Time{}, time.Time{}, errors.New("from must be RFC3339")
		}
	}
	if toRaw != "" {
		if to, err = time.Parse(time.RFC3339, toRaw); err != nil {
			return time.Time{}, time.Time{}, errors.New("to must be RFC3339")
		}
	}
	if to.Before(from) {
		return time.Time{}, time.Time{}, errors.New("to must not precede from")
	}
	return from, to, nil
}

func parseRangeQuery(c *gin.Context) (models.Granularity, time.Time, time.Time, error) {
	g, err := parseGranularity(c.Query("granularity"))
	if err != nil {
		return "", time.Time{}, time.Time{}, err
	}
	from, to, err := parseTimeRange(c.Query("from"), c.Query("to"))
	if err != nil {
		return "", time.Time{}, time.Time{}, err
	}
	return g, from, to, nil
}
