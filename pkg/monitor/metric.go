package monitor

import (
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"watchpost.dev/monitor-status-service/pkg/common"
	"watchpost.dev/monitor-status-service/pkg/models"
	"watchpost.dev/monitor-status-service/pkg/telemetry"
)

func (c *Core) recordSample(entryID string, timestamp time.Time, value float64) error {
	logger := common.GetLoggerWith(
		common.LoggerNameMonitorCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryMetric),
	)
	opts := c.opts()

	if entryID == "" {
		return &ValidationError{Field: "entry_id", Reason: "missing"}
	}

	ts := timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	ts = ts.UTC()
	if ts.After(time.Now().Add(opts.ClockSkewTolerance)) {
		return &ValidationError{Field: "timestamp", Reason: "beyond clock-skew tolerance"}
	}

	var entry models.MetricEntry
	if err := c.Db.Conn.First(&entry, "id = ?", entryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// samples arriving after entry deletion are dropped, not resurrected
			logger.Debug("Dropping sample for unknown metric entry", zap.String("entry_id", entryID))
			return nil
		}
		return err
	}

	sample := models.MetricSample{
		EntryID:   entryID,
		Timestamp: ts,
		Value:     value,
	}

	logger.Info("Received sample for metric entry", zap.Reflect("sample", sample))

	if err := c.Db.Conn.Create(&sample).Error; err != nil {
		return err
	}

	telemetry.SamplesIngested.Inc()

	for _, g := range models.AllGranularities {
		if err := c.upsertMetricBucket(&entry, g, ts, value); err != nil {
			return err
		}
	}
	return nil
}

// upsertMetricBucket applies the entry's reducer as a single
// insert-or-update against the unique (entry, granularity, bucket) index.
// Counters sum; gauges keep whichever value carries the newest source
// timestamp, so arrival order never decides a last-write-wins race.
func (c *Core) upsertMetricBucket(entry *models.MetricEntry, g models.Granularity, ts time.Time, value float64) error {
	sourceMs := ts.UnixMilli()

	bucket := models.MetricBucket{
		EntryID:          entry.ID,
		Granularity:      g,
		TimeBucket:       ResolveBucket(ts, g),
		Value:            value,
		Count:            1,
		LastSourceUnixMs: sourceMs,
	}

	var updates map[string]interface{}
	switch entry.Kind {
	case models.MetricKindCounter:
		updates = map[string]interface{}{
			"value":               gorm.Expr("value + ?", value),
			"count":               gorm.Expr("count + 1"),
			"last_source_unix_ms": gorm.Expr("max(last_source_unix_ms, ?)", sourceMs),
		}
	default:
		updates = map[string]interface{}{
			"value":               gorm.Expr("CASE WHEN ? >= last_source_unix_ms THEN ? ELSE value END", sourceMs, value),
			"count":               gorm.Expr("count + 1"),
			"last_source_unix_ms": gorm.Expr("max(last_source_unix_ms, ?)", sourceMs),
		}
	}

	return c.Db.Conn.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "entry_id"}, {Name: "granularity"}, {Name: "time_bucket"}},
		DoUpdates: clause.Assignments(updates),
	}).Create(&bucket).Error
}

func (c *Core) metricBucketsInRange(entryID string, g models.Granularity, from, to time.Time) ([]*models.MetricBucket, error) {
	boundaries := BucketBoundaries(from, to, g)

	var rows []models.MetricBucket
	err := c.Db.Conn.
		Where("entry_id = ? AND granularity = ? AND time_bucket >= ? AND time_bucket <= ?",
			entryID, g, boundaries[0], boundaries[len(boundaries)-1]).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	byStart := make(map[int64]*models.MetricBucket, len(rows))
	for i := range rows {
		byStart[rows[i].TimeBucket.UTC().Unix()] = &rows[i]
	}

	slots := make([]*models.MetricBucket, len(boundaries))
	for i, b := range boundaries {
		slots[i] = byStart[b.Unix()]
	}
	return slots, nil
}

type IMetricImpl struct {
	core *Core
}

func (im *IMetricImpl) RecordSample(entryID string, timestamp time.Time, value float64) error {
	return im.core.recordSample(entryID, timestamp, value)
}

func (im *IMetricImpl) BucketsInRange(entryID string, g models.Granularity, from, to time.Time) ([]*models.MetricBucket, error) {
	return im.core.metricBucketsInRange(entryID, g, from, to)
}

func (c *Core) GetIMetric() IMetric {
	return &IMetricImpl{core: c}
}
