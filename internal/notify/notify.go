// Package notify delivers committed ledger events to an outbound webhook.
package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/bonusledger/internal/domain"
	"github.com/GlebRadaev/bonusledger/internal/metrics"
	"github.com/GlebRadaev/bonusledger/pkg/clients"
	"github.com/GlebRadaev/bonusledger/pkg/workerpool"
)

const (
	maxRetries    = 3
	retryInterval = time.Second
	maxRetryAfter = 30 * time.Second
	queueSize     = 1000
)

var (
	errRateLimited = errors.New("rate limited")
	errStopped     = errors.New("dispatcher stopped")
)

// Dispatcher is fire-and-forget: Notify never blocks the caller and a
// delivery failure never reaches the ledger.
type Dispatcher struct {
	url           string
	client        clients.HTTPClientI
	pool          workerpool.WorkerPoolI
	retryInterval time.Duration

	stop     chan struct{}
	stopOnce sync.Once
}

func New(url string, client clients.HTTPClientI, workers int) *Dispatcher {
	return &Dispatcher{
		url:           url,
		client:        client,
		pool:          workerpool.New("notify", workers, queueSize),
		retryInterval: retryInterval,
		stop:          make(chan struct{}),
	}
}

func (d *Dispatcher) Notify(ctx context.Context, event domain.Event) {
	if d.url == "" {
		zap.L().Debug("notification delivery disabled",
			zap.String("event_id", event.ID.String()),
			zap.String("type", string(event.Type)),
			zap.Int("user_id", event.UserID),
		)
		return
	}

	err := d.pool.TryAddTask(func() error {
		return d.deliver(ctx, event)
	})
	if err != nil {
		metrics.Notifications.WithLabelValues("dropped").Inc()
		zap.L().Warn("notification dropped",
			zap.String("event_id", event.ID.String()),
			zap.Int("user_id", event.UserID),
			zap.Error(err),
		)
	}
}

// Close drains queued events. Pending retries are abandoned.
func (d *Dispatcher) Close() {
	d.stopOnce.Do(func() { close(d.stop) })
	d.pool.Close()
}

func (d *Dispatcher) deliver(ctx context.Context, event domain.Event) error {
	body, err := json.Marshal(event)
	if err != nil {
		metrics.Notifications.WithLabelValues("failed").Inc()
		return fmt.Errorf("failed to encode event %s: %w", event.ID, err)
	}
	headers := http.Header{
		"Content-Type": []string{"application/json"},
		"X-Event-Id":   []string{event.ID.String()},
	}

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		statusCode, _, respHeaders, err := d.client.Post(d.url, headers, body)
		wait := d.retryInterval * time.Duration(attempt)

		switch {
		case err != nil:
			lastErr = err
		case statusCode >= http.StatusOK && statusCode < http.StatusMultipleChoices:
			metrics.Notifications.WithLabelValues("delivered").Inc()
			zap.L().Debug("notification delivered", zap.String("event_id", event.ID.String()), zap.Int("attempt", attempt))
			return nil
		case statusCode == http.StatusTooManyRequests:
			lastErr = errRateLimited
			wait = retryAfter(respHeaders, wait)
			zap.L().Warn("rate limit detected, retrying",
				zap.String("event_id", event.ID.String()),
				zap.Int("attempt", attempt),
				zap.Duration("retryAfter", wait),
			)
		case statusCode >= http.StatusInternalServerError:
			lastErr = fmt.Errorf("unexpected status code %d", statusCode)
		default:
			metrics.Notifications.WithLabelValues("failed").Inc()
			return fmt.Errorf("webhook rejected event %s with status %d", event.ID, statusCode)
		}

		if attempt == maxRetries {
			break
		}
		if err := d.sleep(ctx, wait); err != nil {
			lastErr = err
			break
		}
	}

	metrics.Notifications.WithLabelValues("failed").Inc()
	return fmt.Errorf("failed to deliver event %s after %d attempts: %w", event.ID, maxRetries, lastErr)
}

func (d *Dispatcher) sleep(ctx context.Context, wait time.Duration) error {
	timer := time.NewTimer(wait)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-d.stop:
		return errStopped
	case <-timer.C:
		return nil
	}
}

// retryAfter reads the Retry-After header in either of its forms.
func retryAfter(headers http.Header, fallback time.Duration) time.Duration {
	value := headers.Get("Retry-After")
	if value == "" {
		return fallback
	}

	wait := fallback
	if seconds, err := strconv.Atoi(value); err == nil && seconds >= 0 {
		wait = time.Duration(seconds) * time.Second
	} else if at, err := http.ParseTime(value); err == nil {
		wait = time.Until(at)
	}

	switch {
	case wait < 0:
		return 0
	case wait > maxRetryAfter:
		return maxRetryAfter
	}
	return wait
}
