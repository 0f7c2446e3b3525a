package monitor

import (
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"watchpost.dev/monitor-status-service/pkg/common"
	"watchpost.dev/monitor-status-service/pkg/models"
	"watchpost.dev/monitor-status-service/pkg/telemetry"
)

// onPingRecorded is the trigger a poller or webhook receiver invokes after
// each physical ping. The whole read-evaluate-persist-dispatch sequence is
// serialized per monitor, and the status write is a compare-and-swap, so a
// transition alerts at most once however pings race.
func (c *Core) onPingRecorded(monitorID string) error {
	logger := common.GetLoggerWith(
		common.LoggerNameMonitorCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryStatus),
	)

	lock := c.lockStore().Get(monitorID)
	lock.Lock()
	defer lock.Unlock()

	var mon models.Monitor
	err := c.Db.Conn.Preload("Channels").First(&mon, "id = ?", monitorID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// monitor removed mid-flight; evaluation completes as a no-op
		return nil
	}
	if err != nil {
		return err
	}

	pings, err := c.Ping.RecentPings(monitorID, c.opts().StatusWindow)
	if err != nil {
		return err
	}

	newStatus := EvaluateStatus(pings)
	if newStatus == mon.Status {
		return nil
	}

	lastCode := 0
	lastMessage := ""
	if len(pings) > 0 {
		lastCode = pings[0].StatusCode
		lastMessage = pings[0].Message
	}

	res := c.Db.Conn.Model(&models.Monitor{}).
		Where("id = ? AND status = ?", monitorID, mon.Status).
		Updates(map[string]interface{}{
			"status":           newStatus,
			"last_status_code": lastCode,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		// lost the compare-and-swap; the winning evaluation owns this transition
		return nil
	}

	telemetry.TransitionsDetected.WithLabelValues(string(newStatus)).Inc()
	logger.Info("Status transition",
		zap.String("monitor_id", monitorID),
		zap.String("prev_status", string(mon.Status)),
		zap.String("new_status", string(newStatus)),
		zap.Int("status_code", lastCode),
	)

	if c.Alerts == nil || len(mon.Channels) == 0 {
		return nil
	}

	ev := models.AlertEvent{
		MonitorID:    mon.ID,
		MonitorName:  mon.Name,
		MonitorURL:   mon.URL,
		PrevStatus:   mon.Status,
		NewStatus:    newStatus,
		StatusCode:   lastCode,
		ErrorMessage: lastMessage,
		Timestamp:    time.Now().UTC(),
	}

	// delivery is the sender's problem; ingestion never waits on it
	c.Alerts.Send(ev, mon.Channels)
	return nil
}

type IDispatchImpl struct {
	core *Core
}

func (id *IDispatchImpl) OnPingRecorded(monitorID string) error {
	return id.core.onPingRecorded(monitorID)
}

func (c *Core) GetIDispatch() IDispatch {
	return &IDispatchImpl{core: c}
}
