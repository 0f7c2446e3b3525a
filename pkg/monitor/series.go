package monitor

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"watchpost.dev/monitor-status-service/pkg/common"
	"watchpost.dev/monitor-status-service/pkg/models"
)

// seriesRecentLimit bounds the raw points a dashboard chart shows next to
// its buckets.
const seriesRecentLimit = 25

// buildSeries assembles gap-filled bucket sequences plus recent raw points
// for each monitor. All monitors of one call share the same from/to and
// granularity, so bucket slots stay aligned across a dashboard. Monitors
// with no history yield empty series, never errors; unknown monitor ids are
// skipped.
func (c *Core) buildSeries(monitorIDs []string, g models.Granularity, from, to time.Time) ([]models.MonitorSeries, error) {
	out := make([]models.MonitorSeries, 0, len(monitorIDs))
	for _, id := range monitorIDs {
		var mon models.Monitor
		err := c.Db.Conn.First(&mon, "id = ?", id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}

		buckets, err := c.pingBucketsInRange(id, g, from, to)
		if err != nil {
			return nil, err
		}

		pings, err := c.recentPings(id, seriesRecentLimit)
		if err != nil {
			return nil, err
		}

		out = append(out, models.MonitorSeries{
			MonitorID:   mon.ID,
			Name:        mon.Name,
			Status:      mon.Status,
			Buckets:     buckets,
			RecentPings: pings,
		})
	}
	return out, nil
}

func (c *Core) buildPublicSeries(projectID string, g models.Granularity, from, to time.Time) ([]models.PublicMonitorSeries, error) {
	var monitors []models.Monitor
	if err := c.Db.Conn.Where("project_id = ?", projectID).Find(&monitors).Error; err != nil {
		return nil, err
	}

	out := make([]models.PublicMonitorSeries, 0, len(monitors))
	for _, mon := range monitors {
		buckets, err := c.pingBucketsInRange(mon.ID, g, from, to)
		if err != nil {
			return nil, err
		}

		pings, err := c.recentPings(mon.ID, seriesRecentLimit)
		if err != nil {
			return nil, err
		}

		out = append(out, models.PublicMonitorSeries{
			Name:    mon.Name,
			URL:     mon.URL,
			Status:  mon.Status,
			Buckets: buckets,
			RecentPings: common.Mapper(pings, func(p models.PingRecord) models.PublicPing {
				return models.PublicPing{
					StatusCode:     p.StatusCode,
					ResponseTimeMs: p.ResponseTimeMs,
					Timestamp:      p.Timestamp,
				}
			}),
		})
	}
	return out, nil
}

type ISeriesImpl struct {
	core *Core
}

func (is *ISeriesImpl) BuildSeries(monitorIDs []string, g models.Granularity, from, to time.Time) ([]models.MonitorSeries, error) {
	return is.core.buildSeries(monitorIDs, g, from, to)
}

func (is *ISeriesImpl) BuildPublicSeries(projectID string, g models.Granularity, from, to time.Time) ([]models.PublicMonitorSeries, error) {
	return is.core.buildPublicSeries(projectID, g, from, to)
}

func (c *Core) GetISeries() ISeries {
	return &ISeriesImpl{core: c}
}
