package monitor

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm/clause"
	"watchpost.dev/monitor-status-service/pkg/common"
	"watchpost.dev/monitor-status-service/pkg/models"
	"watchpost.dev/monitor-status-service/pkg/notify"
)

func (c *Core) createMonitor(input *models.Monitor) (*models.Monitor, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameMonitorCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryAdmin),
	)

	if input.URL == "" {
		return nil, &ValidationError{Field: "url", Reason: "missing"}
	}
	if input.ProjectID == "" {
		return nil, &ValidationError{Field: "project_id", Reason: "missing"}
	}

	mon := models.Monitor{
		ID:        input.ID,
		Name:      input.Name,
		URL:       input.URL,
		ProjectID: input.ProjectID,
		Mode:      input.Mode,
		Status:    models.StatusUnknown,
	}
	if mon.ID == "" {
		mon.ID = uuid.NewString()
	}
	if mon.Name == "" {
		mon.Name = mon.URL
	}
	if mon.Mode == "" {
		mon.Mode = models.MonitorModeActive
	}

	if err := c.Db.Conn.Create(&mon).Error; err != nil {
		return nil, err
	}

	logger.Info("Created monitor", zap.Reflect("monitor", mon))
	return &mon, nil
}

// deleteMonitor removes the monitor record. History rows become orphans and
// are left for garbage collection; late writes against the id are dropped
// by the ingest path. Deleting an absent monitor is a no-op success.
func (c *Core) deleteMonitor(monitorID string) error {
	logger := common.GetLoggerWith(
		common.LoggerNameMonitorCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryAdmin),
	)

	mon := models.Monitor{ID: monitorID}
	if err := c.Db.Conn.Model(&mon).Association("Channels").Clear(); err != nil {
		return err
	}
	if err := c.Db.Conn.Delete(&models.Monitor{}, "id = ?", monitorID).Error; err != nil {
		return err
	}

	logger.Info("Deleted monitor", zap.String("monitor_id", monitorID))
	return nil
}

func (c *Core) upsertChannel(input *models.NotificationChannel) error {
	logger := common.GetLoggerWith(
		common.LoggerNameMonitorCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryAdmin),
	)

	if input.ProjectID == "" {
		return &ValidationError{Field: "project_id", Reason: "missing"}
	}

	channel := models.NotificationChannel{
		ID:        input.ID,
		ProjectID: input.ProjectID,
		Kind:      input.Kind,
		Options:   input.Options,
	}
	if channel.ID == "" {
		channel.ID = uuid.NewString()
	}

	// a channel that cannot be decoded must fail at setup, not at delivery
	if _, err := notify.DecodeChannelOptions(channel); err != nil {
		return &ValidationError{Field: "options", Reason: err.Error()}
	}

	err := c.Db.Conn.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&channel).Error

	if err == nil {
		logger.Info("Upserted notification channel", zap.Reflect("channel", channel))
	}
	return err
}

func (c *Core) attachChannel(monitorID, channelID string) error {
	var mon models.Monitor
	if err := c.Db.Conn.First(&mon, "id = ?", monitorID).Error; err != nil {
		return err
	}

	var channel models.NotificationChannel
	if err := c.Db.Conn.First(&channel, "id = ?", channelID).Error; err != nil {
		return err
	}

	return c.Db.Conn.Model(&mon).Association("Channels").Append(&channel)
}

func (c *Core) registerMetricEntry(input *models.MetricEntry) error {
	logger := common.GetLoggerWith(
		common.LoggerNameMonitorCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryAdmin),
	)

	if input.ProjectID == "" {
		return &ValidationError{Field: "project_id", Reason: "missing"}
	}

	entry := models.MetricEntry{
		ID:        input.ID,
		ProjectID: input.ProjectID,
		Name:      input.Name,
		Kind:      input.Kind,
	}
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.Kind == "" {
		// point-in-time gauge is the safe default for unspecified semantics
		entry.Kind = models.MetricKindGauge
	}

	err := c.Db.Conn.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&entry).Error

	if err == nil {
		logger.Info("Registered metric entry", zap.Reflect("entry", entry))
	}
	return err
}

type IAdminImpl struct {
	core *Core
}

func (ia *IAdminImpl) CreateMonitor(input *models.Monitor) (*models.Monitor, error) {
	return ia.core.createMonitor(input)
}

func (ia *IAdminImpl) DeleteMonitor(monitorID string) error {
	return ia.core.deleteMonitor(monitorID)
}

func (ia *IAdminImpl) UpsertChannel(input *models.NotificationChannel) error {
	return ia.core.upsertChannel(input)
}

func (ia *IAdminImpl) AttachChannel(monitorID, channelID string) error {
	return ia.core.attachChannel(monitorID, channelID)
}

func (ia *IAdminImpl) RegisterMetricEntry(input *models.MetricEntry) error {
	return ia.core.registerMetricEntry(input)
}

func (c *Core) GetIAdmin() IAdmin {
	return &IAdminImpl{core: c}
}
