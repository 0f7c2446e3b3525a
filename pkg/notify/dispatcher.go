package notify

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"watchpost.dev/monitor-status-service/pkg/common"
	"watchpost.dev/monitor-status-service/pkg/models"
	"watchpost.dev/monitor-status-service/pkg/telemetry"
)

// Deliverer pushes one alert event to one channel. Implementations own
// their transport timeouts.
type Deliverer interface {
	Deliver(ctx context.Context, channel models.NotificationChannel, ev models.AlertEvent) error
}

const (
	DefaultRetries        = 3
	DefaultRetryBackoff   = 300 * time.Millisecond
	DefaultDeliverTimeout = 15 * time.Second
)

// Dispatcher fans one alert event out to its channels, each on its own
// goroutine with a bounded retry budget. One channel failing never blocks
// another, and the ingestion path never waits on any of them.
type Dispatcher struct {
	deliverers map[models.ChannelKind]Deliverer

	Retries        int
	RetryBackoff   time.Duration
	DeliverTimeout time.Duration

	wg sync.WaitGroup
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		deliverers:     make(map[models.ChannelKind]Deliverer),
		Retries:        DefaultRetries,
		RetryBackoff:   DefaultRetryBackoff,
		DeliverTimeout: DefaultDeliverTimeout,
	}
}

func (d *Dispatcher) Register(kind models.ChannelKind, deliverer Deliverer) *Dispatcher {
	d.deliverers[kind] = deliverer
	return d
}

// Send implements monitor.AlertSender. It returns as soon as the deliveries
// are handed off.
func (d *Dispatcher) Send(ev models.AlertEvent, channels []models.NotificationChannel) {
	for _, channel := range channels {
		d.wg.Add(1)
		telemetry.PendingDeliveries.Inc()
		go func(ch models.NotificationChannel) {
			defer d.wg.Done()
			defer telemetry.PendingDeliveries.Dec()
			d.deliver(ch, ev)
		}(channel)
	}
}

// Wait blocks until every handed-off delivery has finished; used on
// shutdown and in tests.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

func (d *Dispatcher) deliver(channel models.NotificationChannel, ev models.AlertEvent) {
	logger := common.GetLoggerWith(
		common.LoggerNameNotify,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryDelivery),
	)

	deliverer, ok := d.deliverers[channel.Kind]
	if !ok {
		telemetry.AlertDeliveries.WithLabelValues(string(channel.Kind), "failed").Inc()
		logger.Warn("No deliverer registered for channel kind",
			zap.String("channel_id", channel.ID),
			zap.String("kind", string(channel.Kind)),
		)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), d.DeliverTimeout)
	defer cancel()

	var err error
	for attempt := 1; attempt <= d.Retries; attempt++ {
		if attempt > 1 {
			telemetry.DeliveryRetries.Inc()
			time.Sleep(time.Duration(attempt-1) * d.RetryBackoff)
		}
		if err = deliverer.Deliver(ctx, channel, ev); err == nil {
			telemetry.AlertDeliveries.WithLabelValues(string(channel.Kind), "sent").Inc()
			logger.Info("Alert delivered",
				zap.String("channel_id", channel.ID),
				zap.String("monitor_id", ev.MonitorID),
				zap.String("new_status", string(ev.NewStatus)),
				zap.Int("attempts", attempt),
			)
			return
		}
	}

	// retry budget exhausted; counted and logged, never propagated
	telemetry.AlertDeliveries.WithLabelValues(string(channel.Kind), "failed").Inc()
	logger.Warn("Alert delivery failed",
		zap.String("channel_id", channel.ID),
		zap.String("monitor_id", ev.MonitorID),
		zap.Error(err),
	)
}
