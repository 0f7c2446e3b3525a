package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"watchpost.dev/monitor-status-service/pkg/monitor/mocks"
	_ "watchpost.dev/monitor-status-service/pkg/testing"

	"watchpost.dev/monitor-status-service/pkg/common"
	"watchpost.dev/monitor-status-service/pkg/db"
	"watchpost.dev/monitor-status-service/pkg/models"
	"watchpost.dev/monitor-status-service/pkg/monitor"
)

func setupTestServer() *RestfulServer {
	core := &monitor.Core{
		Db: *db.GetInstance(db.UseMemorySqliteDialector()),
	}
	core.WithServices(monitor.ServiceOpts{
		Ping:     core.GetIPing(),
		Metric:   core.GetIMetric(),
		Dispatch: core.GetIDispatch(),
		Series:   core.GetISeries(),
		Admin:    core.GetIAdmin(),
	})

	rs := &RestfulServer{
		Server: gin.Default(),
		Core:   core,
		// default we use no limiter, if need, later assign it rs.RateLimiterStore = monitor.NewRateLimiterStore(...)
	}

	rs.Setup()

	return rs
}

func createMonitorViaAPI(t *testing.T, rs *RestfulServer, projectID string) string {
	t.Helper()

	body, _ := json.Marshal(map[string]any{
		"name":       "api-" + uuid.NewString(),
		"url":        "https://example.com/" + uuid.NewString(),
		"project_id": projectID,
	})
	req := httptest.NewRequest("POST", "/monitors", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	rs.Server.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var mon models.Monitor
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &mon))
	require.NotEmpty(t, mon.ID)
	return mon.ID
}

func postPing(rs *RestfulServer, monitorID string, statusCode int, ts time.Time) *httptest.ResponseRecorder {
	body, _ := json.Marshal(map[string]any{
		"status_code":      statusCode,
		"response_time_ms": 42.0,
		"timestamp":        ts.Format(time.RFC3339),
	})
	req := httptest.NewRequest("POST", fmt.Sprintf("/monitors/%s/pings", monitorID), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	rs.Server.ServeHTTP(w, req)
	return w
}

func TestHealthCheck(t *testing.T) {
	rs := setupTestServer()

	req := httptest.NewRequest("GET", "/healthz", nil)
	w := httptest.NewRecorder()

	rs.Server.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestPostPingAndGetRecent(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()
	monitorID := createMonitorViaAPI(t, rs, uuid.NewString())

	w := postPing(rs, monitorID, 200, time.Now().UTC())
	assert.Equal(t, http.StatusOK, w.Code)

	req := httptest.NewRequest("GET", fmt.Sprintf("/monitors/%s/pings", monitorID), nil)
	w = httptest.NewRecorder()
	rs.Server.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var pings []models.PingRecord
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &pings))
	require.Len(t, pings, 1)
	assert.Equal(t, 200, pings[0].StatusCode)
}

func TestPostPingUpdatesMonitorStatus(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()
	monitorID := createMonitorViaAPI(t, rs, uuid.NewString())

	w := postPing(rs, monitorID, 503, time.Now().UTC())
	assert.Equal(t, http.StatusOK, w.Code)

	var mon models.Monitor
	require.NoError(t, rs.Core.Db.Conn.First(&mon, "id = ?", monitorID).Error)
	assert.Equal(t, models.StatusDown, mon.Status)
	assert.Equal(t, 503, mon.LastStatusCode)
}

func TestPostPingValidationRejected(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()
	monitorID := createMonitorViaAPI(t, rs, uuid.NewString())

	// missing required fields
	req := httptest.NewRequest("POST", fmt.Sprintf("/monitors/%s/pings", monitorID), bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	rs.Server.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// negative latency rejected by the core
	body, _ := json.Marshal(map[string]any{
		"status_code":      200,
		"response_time_ms": -1.0,
		"timestamp":        time.Now().UTC().Format(time.RFC3339),
	})
	req = httptest.NewRequest("POST", fmt.Sprintf("/monitors/%s/pings", monitorID), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	rs.Server.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPostPingWithRateLimiter(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()
	rs.RateLimiterStore = monitor.NewRateLimiterStore(1, 1)

	monitorID := createMonitorViaAPI(t, rs, uuid.NewString())

	// set a tiny limiter for this monitor: burst of 2, then exhausted
	body, _ := json.Marshal(map[string]any{"rate": 0.001, "burst": 2})
	req := httptest.NewRequest("POST", fmt.Sprintf("/monitors/%s/limiter", monitorID), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	rs.Server.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	now := time.Now().UTC()
	assert.Equal(t, http.StatusOK, postPing(rs, monitorID, 200, now).Code)
	assert.Equal(t, http.StatusOK, postPing(rs, monitorID, 200, now).Code)
	assert.Equal(t, http.StatusTooManyRequests, postPing(rs, monitorID, 200, now).Code)
}

func TestGetPingBuckets(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()
	monitorID := createMonitorViaAPI(t, rs, uuid.NewString())

	now := time.Now().UTC().Truncate(time.Minute)
	require.Equal(t, http.StatusOK, postPing(rs, monitorID, 200, now).Code)

	url := fmt.Sprintf("/monitors/%s/buckets?granularity=minute&from=%s&to=%s",
		monitorID,
		now.Format(time.RFC3339),
		now.Add(time.Minute).Format(time.RFC3339),
	)
	req := httptest.NewRequest("GET", url, nil)
	w := httptest.NewRecorder()
	rs.Server.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var slots []*models.PingBucket
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &slots))
	require.Len(t, slots, 2)
	require.NotNil(t, slots[0])
	assert.Equal(t, 1, slots[0].SuccessCount)
	assert.Nil(t, slots[1], "empty slot must serialize as null")
}

func TestGetPingBucketsBadRange(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()
	monitorID := createMonitorViaAPI(t, rs, uuid.NewString())

	req := httptest.NewRequest("GET", fmt.Sprintf("/monitors/%s/buckets?granularity=fortnight", monitorID), nil)
	w := httptest.NewRecorder()
	rs.Server.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	req = httptest.NewRequest("GET", fmt.Sprintf("/monitors/%s/buckets?from=2026-01-02T00:00:00Z&to=2026-01-01T00:00:00Z", monitorID), nil)
	w = httptest.NewRecorder()
	rs.Server.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpsertChannelAndAttach(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()
	projectID := uuid.NewString()
	monitorID := createMonitorViaAPI(t, rs, projectID)
	channelID := uuid.NewString()

	body, _ := json.Marshal(map[string]any{
		"id":         channelID,
		"project_id": projectID,
		"kind":       "webhook",
		"options":    map[string]any{"url": "https://hooks.example.com/x"},
	})
	req := httptest.NewRequest("POST", "/channels", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	rs.Server.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	req = httptest.NewRequest("POST", fmt.Sprintf("/monitors/%s/channels/%s", monitorID, channelID), nil)
	w = httptest.NewRecorder()
	rs.Server.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var mon models.Monitor
	require.NoError(t, rs.Core.Db.Conn.Preload("Channels").First(&mon, "id = ?", monitorID).Error)
	require.Len(t, mon.Channels, 1)
	assert.Equal(t, channelID, mon.Channels[0].ID)
}

func TestUpsertChannelBadOptions(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()

	body, _ := json.Marshal(map[string]any{
		"project_id": uuid.NewString(),
		"kind":       "telegram",
		"options":    map[string]any{"token": "123:abc"},
	})
	req := httptest.NewRequest("POST", "/channels", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	rs.Server.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAttachChannelUnknownMonitorNotFound(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()

	req := httptest.NewRequest("POST", fmt.Sprintf("/monitors/%s/channels/%s", uuid.NewString(), uuid.NewString()), nil)
	w := httptest.NewRecorder()
	rs.Server.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRegisterEntryAndPostSample(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()
	entryID := uuid.NewString()

	body, _ := json.Marshal(map[string]any{
		"id":         entryID,
		"project_id": uuid.NewString(),
		"name":       "queue-depth",
		"kind":       "counter",
	})
	req := httptest.NewRequest("POST", "/entries", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	rs.Server.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	now := time.Now().UTC().Truncate(time.Minute)
	for _, v := range []float64{3, 4} {
		body, _ = json.Marshal(map[string]any{
			"timestamp": now.Format(time.RFC3339),
			"value":     v,
		})
		req = httptest.NewRequest("POST", fmt.Sprintf("/entries/%s/samples", entryID), bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w = httptest.NewRecorder()
		rs.Server.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
	}

	url := fmt.Sprintf("/entries/%s/buckets?granularity=minute&from=%s&to=%s",
		entryID, now.Format(time.RFC3339), now.Format(time.RFC3339))
	req = httptest.NewRequest("GET", url, nil)
	w = httptest.NewRecorder()
	rs.Server.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var slots []*models.MetricBucket
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &slots))
	require.Len(t, slots, 1)
	require.NotNil(t, slots[0])
	assert.Equal(t, 7.0, slots[0].Value)
}

func TestPostSeries(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()
	monitorID := createMonitorViaAPI(t, rs, uuid.NewString())

	now := time.Now().UTC().Truncate(time.Minute)
	require.Equal(t, http.StatusOK, postPing(rs, monitorID, 200, now).Code)

	body, _ := json.Marshal(map[string]any{
		"monitor_ids": []string{monitorID},
		"granularity": "minute",
		"from":        now.Format(time.RFC3339),
		"to":          now.Add(time.Minute).Format(time.RFC3339),
	})
	req := httptest.NewRequest("POST", "/series", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	rs.Server.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var series []models.MonitorSeries
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &series))
	require.Len(t, series, 1)
	assert.Equal(t, monitorID, series[0].MonitorID)
	assert.Len(t, series[0].Buckets, 2)
	assert.Len(t, series[0].RecentPings, 1)
}

func TestGetPublicStatusStripsFields(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()
	projectID := uuid.NewString()
	monitorID := createMonitorViaAPI(t, rs, projectID)

	now := time.Now().UTC().Truncate(time.Minute)
	require.Equal(t, http.StatusOK, postPing(rs, monitorID, 200, now).Code)

	url := fmt.Sprintf("/public/status/%s?granularity=minute&from=%s&to=%s",
		projectID, now.Format(time.RFC3339), now.Format(time.RFC3339))
	req := httptest.NewRequest("GET", url, nil)
	w := httptest.NewRecorder()
	rs.Server.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var series []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &series))
	require.Len(t, series, 1)

	pings, ok := series[0]["recentPings"].([]any)
	require.True(t, ok)
	require.Len(t, pings, 1)
	ping := pings[0].(map[string]any)
	assert.Len(t, ping, 3, "public ping carries only code, latency and timestamp")
	assert.Contains(t, ping, "statusCode")
	assert.Contains(t, ping, "responseTimeMs")
	assert.Contains(t, ping, "timestamp")
}

func TestPostPingWithMockedDispatch(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rs := setupTestServer()
	monitorID := createMonitorViaAPI(t, rs, uuid.NewString())

	mockDispatch := mocks.NewMockIDispatch(ctrl)
	mockDispatch.EXPECT().OnPingRecorded(monitorID).Return(nil).Times(1)
	rs.Core.WithServices(monitor.ServiceOpts{Dispatch: mockDispatch})

	w := postPing(rs, monitorID, 200, time.Now().UTC())
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDeleteMonitor(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()
	monitorID := createMonitorViaAPI(t, rs, uuid.NewString())

	req := httptest.NewRequest("DELETE", "/monitors/"+monitorID, nil)
	w := httptest.NewRecorder()
	rs.Server.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	// late pings after deletion are accepted and dropped
	w2 := postPing(rs, monitorID, 200, time.Now().UTC())
	assert.Equal(t, http.StatusOK, w2.Code)

	var count int64
	require.NoError(t, rs.Core.Db.Conn.Model(&models.PingRecord{}).
		Where("monitor_id = ?", monitorID).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}
