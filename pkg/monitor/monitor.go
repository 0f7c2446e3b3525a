package monitor

import (
	"sync"
	"time"

	"watchpost.dev/monitor-status-service/pkg/db"
	"watchpost.dev/monitor-status-service/pkg/models"
)

type IPing interface {
	RecordPing(monitorID string, input *models.PingRecord) error
	RecentPings(monitorID string, limit int) ([]models.PingRecord, error)
	BucketsInRange(monitorID string, g models.Granularity, from, to time.Time) ([]*models.PingBucket, error)
}

type IMetric interface {
	RecordSample(entryID string, timestamp time.Time, value float64) error
	BucketsInRange(entryID string, g models.Granularity, from, to time.Time) ([]*models.MetricBucket, error)
}

type IDispatch interface {
	OnPingRecorded(monitorID string) error
}

type ISeries interface {
	BuildSeries(monitorIDs []string, g models.Granularity, from, to time.Time) ([]models.MonitorSeries, error)
	BuildPublicSeries(projectID string, g models.Granularity, from, to time.Time) ([]models.PublicMonitorSeries, error)
}

type IAdmin interface {
	CreateMonitor(input *models.Monitor) (*models.Monitor, error)
	DeleteMonitor(monitorID string) error
	UpsertChannel(input *models.NotificationChannel) error
	AttachChannel(monitorID, channelID string) error
	RegisterMetricEntry(input *models.MetricEntry) error
}

// AlertSender is the delivery collaborator. Send must not block the caller
// beyond handing the event off; delivery happens on the sender's own
// goroutines.
type AlertSender interface {
	Send(ev models.AlertEvent, channels []models.NotificationChannel)
}

type CoreOpts struct {
	// RecentWindowCap bounds the raw pings retained per monitor.
	RecentWindowCap int
	// StatusWindow is how many recent pings the evaluator inspects.
	StatusWindow int
	// ClockSkewTolerance is how far in the future an ingest timestamp may be.
	ClockSkewTolerance time.Duration
	// DedupePings drops re-delivered pings that carry an already-seen id.
	DedupePings bool
}

const (
	DefaultRecentWindowCap    = 160
	DefaultStatusWindow       = 10
	DefaultClockSkewTolerance = 5 * time.Minute
)

func (o CoreOpts) withDefaults() CoreOpts {
	if o.RecentWindowCap <= 0 {
		o.RecentWindowCap = DefaultRecentWindowCap
	}
	if o.StatusWindow <= 0 {
		o.StatusWindow = DefaultStatusWindow
	}
	if o.ClockSkewTolerance <= 0 {
		o.ClockSkewTolerance = DefaultClockSkewTolerance
	}
	return o
}

type Core struct {
	Db     db.DB
	Opts   CoreOpts
	Alerts AlertSender

	Ping     IPing
	Metric   IMetric
	Dispatch IDispatch
	Series   ISeries
	Admin    IAdmin

	locks     *MonitorLockStore
	locksOnce sync.Once
}

type ServiceOpts struct {
	Ping     IPing
	Metric   IMetric
	Dispatch IDispatch
	Series   ISeries
	Admin    IAdmin
}

func (c *Core) WithServices(opts ServiceOpts) *Core {
	if opts.Ping != nil {
		c.Ping = opts.Ping
	}
	if opts.Metric != nil {
		c.Metric = opts.Metric
	}
	if opts.Dispatch != nil {
		c.Dispatch = opts.Dispatch
	}
	if opts.Series != nil {
		c.Series = opts.Series
	}
	if opts.Admin != nil {
		c.Admin = opts.Admin
	}
	return c
}

func (c *Core) opts() CoreOpts {
	return c.Opts.withDefaults()
}

func (c *Core) lockStore() *MonitorLockStore {
	c.locksOnce.Do(func() {
		c.locks = NewMonitorLockStore()
	})
	return c.locks
}
