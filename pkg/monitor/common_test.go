package monitor

import (
	"bufio"
	"encoding/json"
	"io"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"watchpost.dev/monitor-status-service/pkg/db"
	"watchpost.dev/monitor-status-service/pkg/models"
	"watchpost.dev/monitor-status-service/pkg/monitor/mocks"
)

func GetMockCoreWithMemorySqliteDialector(t *testing.T, useMockPing, useMockDispatch, useMockAlerts bool) (
	*gomock.Controller,
	*Core,
	*mocks.MockIPing,
	*mocks.MockIDispatch,
	*mocks.MockAlertSender,
) {
	ctrl := gomock.NewController(t)

	mockIPing := mocks.NewMockIPing(ctrl)
	mockIDispatch := mocks.NewMockIDispatch(ctrl)
	mockAlerts := mocks.NewMockAlertSender(ctrl)
	dialector := db.UseMemorySqliteDialector()
	dbInstance := db.GetInstance(dialector) // ensure migrations
	coreInstance := &Core{Db: *dbInstance}

	pingService := coreInstance.GetIPing()
	if useMockPing {
		pingService = mockIPing
	}

	dispatchService := coreInstance.GetIDispatch()
	if useMockDispatch {
		dispatchService = mockIDispatch
	}

	if useMockAlerts {
		coreInstance.Alerts = mockAlerts
	}

	coreInstance.WithServices(ServiceOpts{
		Ping:     pingService,
		Metric:   coreInstance.GetIMetric(),
		Dispatch: dispatchService,
		Series:   coreInstance.GetISeries(),
		Admin:    coreInstance.GetIAdmin(),
	})

	return ctrl, coreInstance, mockIPing, mockIDispatch, mockAlerts
}

func createTestMonitor(t *testing.T, core *Core) *models.Monitor {
	t.Helper()

	mon, err := core.Admin.CreateMonitor(&models.Monitor{
		Name:      "test-" + uuid.NewString(),
		URL:       "https://example.com/" + uuid.NewString(),
		ProjectID: uuid.NewString(),
	})
	require.NoError(t, err)
	return mon
}

func createTestChannel(t *testing.T, core *Core, projectID string) *models.NotificationChannel {
	t.Helper()

	channel := &models.NotificationChannel{
		ID:        uuid.NewString(),
		ProjectID: projectID,
		Kind:      models.ChannelKindWebhook,
		Options:   `{"url":"https://hooks.example.com/` + uuid.NewString() + `"}`,
	}
	require.NoError(t, core.Admin.UpsertChannel(channel))
	return channel
}

func pingAt(ts time.Time, statusCode int, latency float64) *models.PingRecord {
	return &models.PingRecord{
		StatusCode:     statusCode,
		ResponseTimeMs: latency,
		Timestamp:      ts,
	}
}

func ParseLogs(r io.Reader) []any {
	scanner := bufio.NewScanner(r)
	var logs []any

	for scanner.Scan() {
		line := scanner.Text()
		var j any
		if err := json.Unmarshal([]byte(line), &j); err == nil {
			logs = append(logs, j)
		}
	}
	return logs
}
