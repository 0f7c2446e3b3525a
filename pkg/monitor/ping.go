package monitor

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"watchpost.dev/monitor-status-service/pkg/common"
	"watchpost.dev/monitor-status-service/pkg/models"
	"watchpost.dev/monitor-status-service/pkg/telemetry"
)

func (c *Core) recordPing(monitorID string, input *models.PingRecord) error {
	logger := common.GetLoggerWith(
		common.LoggerNameMonitorCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryPing),
	)
	opts := c.opts()

	if monitorID == "" {
		return &ValidationError{Field: "monitor_id", Reason: "missing"}
	}
	if input.ResponseTimeMs < 0 {
		return &ValidationError{Field: "response_time_ms", Reason: "negative"}
	}

	ts := input.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	ts = ts.UTC()
	if ts.After(time.Now().Add(opts.ClockSkewTolerance)) {
		return &ValidationError{Field: "timestamp", Reason: "beyond clock-skew tolerance"}
	}

	// Writes racing a monitor deletion are dropped silently; nothing may
	// resurrect a removed monitor.
	var monitorCount int64
	if err := c.Db.Conn.Model(&models.Monitor{}).Where("id = ?", monitorID).Count(&monitorCount).Error; err != nil {
		return err
	}
	if monitorCount == 0 {
		logger.Debug("Dropping ping for unknown monitor", zap.String("monitor_id", monitorID))
		return nil
	}

	record := models.PingRecord{
		ID:             input.ID,
		MonitorID:      monitorID,
		StatusCode:     input.StatusCode,
		ResponseTimeMs: input.ResponseTimeMs,
		Message:        input.Message,
		Timestamp:      ts,
	}

	logger.Info("Received ping for monitor", zap.Reflect("ping", record))

	if opts.DedupePings && record.ID != "" {
		res := c.Db.Conn.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoNothing: true,
		}).Create(&record)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// re-delivered by an at-least-once poller; buckets already counted it
			telemetry.PingsDeduped.Inc()
			logger.Info("Dropped duplicate ping", zap.String("ping_id", record.ID))
			return nil
		}
	} else {
		if record.ID == "" {
			record.ID = uuid.NewString()
		}
		if err := c.Db.Conn.Create(&record).Error; err != nil {
			return err
		}
	}

	telemetry.PingsIngested.Inc()

	for _, g := range models.AllGranularities {
		if err := c.upsertPingBucket(monitorID, g, &record); err != nil {
			return err
		}
	}

	return c.trimRecentWindow(monitorID, opts.RecentWindowCap)
}

// upsertPingBucket lands one ping in one granularity bucket as a single
// insert-or-update. The running mean is computed against the pre-update
// counters inside the statement, so concurrent writers and arrival order
// cannot skew it.
func (c *Core) upsertPingBucket(monitorID string, g models.Granularity, record *models.PingRecord) error {
	succ, fail := 0, 1
	if healthyStatusCode(record.StatusCode) {
		succ, fail = 1, 0
	}

	bucket := models.PingBucket{
		MonitorID:        monitorID,
		Granularity:      g,
		TimeBucket:       ResolveBucket(record.Timestamp, g),
		SuccessCount:     succ,
		FailureCount:     fail,
		AverageLatencyMs: record.ResponseTimeMs,
	}

	return c.Db.Conn.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "monitor_id"}, {Name: "granularity"}, {Name: "time_bucket"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"average_latency_ms": gorm.Expr(
				"(average_latency_ms * (success_count + failure_count) + ?) / (success_count + failure_count + 1)",
				record.ResponseTimeMs,
			),
			"success_count": gorm.Expr("success_count + ?", succ),
			"failure_count": gorm.Expr("failure_count + ?", fail),
		}),
	}).Create(&bucket).Error
}

func (c *Core) trimRecentWindow(monitorID string, keep int) error {
	return c.Db.Conn.Exec(
		`DELETE FROM ping_records WHERE monitor_id = ? AND id NOT IN (
			SELECT id FROM ping_records WHERE monitor_id = ? ORDER BY timestamp DESC LIMIT ?
		)`,
		monitorID, monitorID, keep,
	).Error
}

func (c *Core) recentPings(monitorID string, limit int) ([]models.PingRecord, error) {
	opts := c.opts()
	if limit <= 0 || limit > opts.RecentWindowCap {
		limit = opts.RecentWindowCap
	}

	var pings []models.PingRecord
	err := c.Db.Conn.
		Where("monitor_id = ?", monitorID).
		Order("timestamp desc").
		Limit(limit).
		Find(&pings).Error
	return pings, err
}

func (c *Core) pingBucketsInRange(monitorID string, g models.Granularity, from, to time.Time) ([]*models.PingBucket, error) {
	boundaries := BucketBoundaries(from, to, g)

	var rows []models.PingBucket
	err := c.Db.Conn.
		Where("monitor_id = ? AND granularity = ? AND time_bucket >= ? AND time_bucket <= ?",
			monitorID, g, boundaries[0], boundaries[len(boundaries)-1]).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	byStart := make(map[int64]*models.PingBucket, len(rows))
	for i := range rows {
		byStart[rows[i].TimeBucket.UTC().Unix()] = &rows[i]
	}

	// one slot per expected boundary, nil where no ping ever landed
	slots := make([]*models.PingBucket, len(boundaries))
	for i, b := range boundaries {
		slots[i] = byStart[b.Unix()]
	}
	return slots, nil
}

type IPingImpl struct {
	core *Core
}

func (ip *IPingImpl) RecordPing(monitorID string, input *models.PingRecord) error {
	return ip.core.recordPing(monitorID, input)
}

func (ip *IPingImpl) RecentPings(monitorID string, limit int) ([]models.PingRecord, error) {
	return ip.core.recentPings(monitorID, limit)
}

func (ip *IPingImpl) BucketsInRange(monitorID string, g models.Granularity, from, to time.Time) ([]*models.PingBucket, error) {
	return ip.core.pingBucketsInRange(monitorID, g, from, to)
}

func (c *Core) GetIPing() IPing {
	return &IPingImpl{core: c}
}
