package models

import "time"

type Status string

const (
	StatusUp       Status = "up"
	StatusDown     Status = "down"
	StatusDegraded Status = "degraded"
	StatusUnknown  Status = "unknown"
)

type Granularity string

const (
	GranularityMinute  Granularity = "minute"
	GranularityHour    Granularity = "hour"
	GranularityDay     Granularity = "day"
	GranularityAllTime Granularity = "all_time"
)

// AllGranularities is the set every ingest write rolls up into.
var AllGranularities = []Granularity{
	GranularityMinute,
	GranularityHour,
	GranularityDay,
	GranularityAllTime,
}

type MonitorMode string

const (
	MonitorModeActive  MonitorMode = "active"  // polled by us
	MonitorModePassive MonitorMode = "passive" // results pushed to us
)

type ChannelKind string

const (
	ChannelKindTelegram ChannelKind = "telegram"
	ChannelKindWebhook  ChannelKind = "webhook"
)

type MetricKind string

const (
	MetricKindGauge   MetricKind = "gauge"   // last-write-wins by source timestamp
	MetricKindCounter MetricKind = "counter" // sum
)

type Monitor struct {
	ID             string `gorm:"primaryKey"`
	Name           string
	URL            string
	ProjectID      string      `gorm:"index"`
	Mode           MonitorMode `gorm:"type:varchar(10);check:mode IN ('active','passive')"`
	Status         Status      `gorm:"type:varchar(10)"`
	LastStatusCode int

	Channels []NotificationChannel `gorm:"many2many:monitor_channels"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

type PingRecord struct {
	ID             string `gorm:"primaryKey"`
	MonitorID      string `gorm:"index:idx_ping_monitor_time"`
	StatusCode     int
	ResponseTimeMs float64
	Message        string
	Timestamp      time.Time `gorm:"index:idx_ping_monitor_time"`
}

// PingBucket is the rollup of raw pings for one granularity-aligned window.
// The unique index is the one-row-per-logical-bucket invariant; all writers
// go through an insert-or-update against it.
type PingBucket struct {
	ID               uint        `gorm:"primaryKey"`
	MonitorID        string      `gorm:"uniqueIndex:idx_ping_bucket;index:idx_ping_bucket_gran"`
	Granularity      Granularity `gorm:"uniqueIndex:idx_ping_bucket;index:idx_ping_bucket_gran"`
	TimeBucket       time.Time   `gorm:"uniqueIndex:idx_ping_bucket"`
	SuccessCount     int
	FailureCount     int
	AverageLatencyMs float64
}

// MetricEntry is the logical metric a sample belongs to; its kind picks
// the bucket reducer.
type MetricEntry struct {
	ID        string `gorm:"primaryKey"`
	ProjectID string `gorm:"index"`
	Name      string
	Kind      MetricKind `gorm:"type:varchar(10);check:kind IN ('gauge','counter')"`
}

type MetricSample struct {
	ID        uint   `gorm:"primaryKey"`
	EntryID   string `gorm:"index"`
	Timestamp time.Time
	Value     float64
}

type MetricBucket struct {
	ID          uint        `gorm:"primaryKey"`
	EntryID     string      `gorm:"uniqueIndex:idx_metric_bucket;index:idx_metric_bucket_gran"`
	Granularity Granularity `gorm:"uniqueIndex:idx_metric_bucket;index:idx_metric_bucket_gran"`
	TimeBucket  time.Time   `gorm:"uniqueIndex:idx_metric_bucket"`
	Value       float64
	Count       int64
	// LastSourceUnixMs is the source timestamp of the value currently held,
	// used to resolve last-write-wins without depending on arrival order.
	LastSourceUnixMs int64
}

type NotificationChannel struct {
	ID        string `gorm:"primaryKey"`
	ProjectID string `gorm:"index"`
	Kind      ChannelKind `gorm:"type:varchar(10);check:kind IN ('telegram','webhook')"`
	// Options is the kind-specific delivery payload, stored as JSON and
	// decoded through DecodeChannelOptions.
	Options   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// MonitorSeries is the dashboard view of one monitor: gap-filled bucket
// slots plus the latest raw points. Nil bucket slots mark windows without
// any ping.
type MonitorSeries struct {
	MonitorID   string        `json:"monitorId"`
	Name        string        `json:"name"`
	Status      Status        `json:"status"`
	Buckets     []*PingBucket `json:"buckets"`
	RecentPings []PingRecord  `json:"recentPings"`
}

// PublicPing is the anonymous-consumption view of a raw ping: no record id,
// no message.
type PublicPing struct {
	StatusCode     int       `json:"statusCode"`
	ResponseTimeMs float64   `json:"responseTimeMs"`
	Timestamp      time.Time `json:"timestamp"`
}

type PublicMonitorSeries struct {
	Name        string        `json:"name"`
	URL         string        `json:"url"`
	Status      Status        `json:"status"`
	Buckets     []*PingBucket `json:"buckets"`
	RecentPings []PublicPing  `json:"recentPings"`
}

// AlertEvent is ephemeral: produced once per detected transition, handed to
// the dispatcher, never persisted.
type AlertEvent struct {
	MonitorID    string
	MonitorName  string
	MonitorURL   string
	PrevStatus   Status
	NewStatus    Status
	StatusCode   int
	ErrorMessage string
	Timestamp    time.Time
}
