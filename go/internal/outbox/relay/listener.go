package relay

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/mcdev12/tipster/go/internal/apperrors"
	"github.com/rs/zerolog/log"
)

type ListenerConfig struct {
	DatabaseURL      string        // Postgres DSN for LISTEN/NOTIFY
	NotifyChannel    string        // Channel name to LISTEN on
	FallbackInterval time.Duration // How often to poll for missed events
	MaxRetries       int
	RetryDelay       time.Duration // Multiplied by the attempt number
	PingInterval     time.Duration
	BatchSize        int32 // Max events to fetch per sweep
}

func DefaultListenerConfig() ListenerConfig {
	return ListenerConfig{
		NotifyChannel:    "tipster_outbox_events",
		FallbackInterval: 30 * time.Second,
		MaxRetries:       5,
		RetryDelay:       200 * time.Millisecond,
		PingInterval:     90 * time.Second,
		BatchSize:        100,
	}
}

// Store is the outbox table as the listener sees it
type Store interface {
	FetchByID(ctx context.Context, id uuid.UUID) (*Event, error)
	FetchUnsent(ctx context.Context, limit int32) ([]Event, error)
	MarkSent(ctx context.Context, id uuid.UUID) error
}

// Notifier delivers pg_notify payloads. *pq.Listener satisfies it.
type Notifier interface {
	NotificationChannel() <-chan *pq.Notification
	Ping() error
	Close() error
}

// NewPQNotifier opens a LISTEN connection on cfg.NotifyChannel
func NewPQNotifier(cfg ListenerConfig) (*pq.Listener, error) {
	l := pq.NewListener(
		cfg.DatabaseURL,
		10*time.Second,
		time.Minute,
		func(ev pq.ListenerEventType, err error) {
			if err != nil {
				log.Error().Err(err).Msg("listener event")
			}
		},
	)
	if err := l.Listen(cfg.NotifyChannel); err != nil {
		_ = l.Close()
		return nil, fmt.Errorf("failed to listen to channel: %w", err)
	}

	log.Info().
		Str("channel", cfg.NotifyChannel).
		Msg("listening for notifications")
	return l, nil
}

// Listener publishes each outbox row once its insert is announced, and sweeps
// rows whose announcement was missed
type Listener struct {
	notifier  Notifier
	store     Store
	publisher Publisher
	metrics   MetricsCollector
	cfg       ListenerConfig

	processed atomic.Uint64
	lastEvent atomic.Int64
	running   atomic.Bool
}

func NewListener(notifier Notifier, store Store, publisher Publisher, metrics MetricsCollector, cfg ListenerConfig) *Listener {
	if metrics == nil {
		metrics = &NoOpMetricsCollector{}
	}
	return &Listener{
		notifier:  notifier,
		store:     store,
		publisher: publisher,
		metrics:   metrics,
		cfg:       cfg,
	}
}

// Start runs until ctx is cancelled. Rows left unsent while the relay was
// down are swept first.
func (l *Listener) Start(ctx context.Context) error {
	log.Info().
		Str("channel", l.cfg.NotifyChannel).
		Dur("ping_interval", l.cfg.PingInterval).
		Dur("fallback_interval", l.cfg.FallbackInterval).
		Msg("listener started")

	l.running.Store(true)
	defer l.running.Store(false)

	if err := l.processUnsent(ctx); err != nil {
		log.Error().Err(err).Msg("failed to process unsent events")
	}

	pingTicker := time.NewTicker(l.cfg.PingInterval)
	fallbackTicker := time.NewTicker(l.cfg.FallbackInterval)
	defer pingTicker.Stop()
	defer fallbackTicker.Stop()

	notifications := l.notifier.NotificationChannel()
	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("listener shutting down")
			return l.notifier.Close()
		case note := <-notifications:
			if note == nil {
				// the connection was re-established; notifications may have been lost
				if err := l.processUnsent(ctx); err != nil {
					log.Error().Err(err).Msg("failed to process unsent events")
				}
				continue
			}
			if err := l.handleNotification(ctx, note.Extra); err != nil {
				log.Error().Err(err).Msg("failed to handle notification")
			}
		case <-fallbackTicker.C:
			if err := l.processUnsent(ctx); err != nil {
				log.Error().Err(err).Msg("failed to process unsent events")
			}
		case <-pingTicker.C:
			if err := l.notifier.Ping(); err != nil {
				log.Error().Err(err).Msg("failed to ping listener")
			}
		}
	}
}

// Stats reports how many events were published and when the last one went out
func (l *Listener) Stats() (uint64, time.Time) {
	var last time.Time
	if ns := l.lastEvent.Load(); ns > 0 {
		last = time.Unix(0, ns)
	}
	return l.processed.Load(), last
}

// Active reports whether Start is running
func (l *Listener) Active() bool {
	return l.running.Load()
}

// handleNotification handles a pg notification whose payload is an outbox row id
func (l *Listener) handleNotification(ctx context.Context, extra string) error {
	id, err := uuid.Parse(extra)
	if err != nil {
		return fmt.Errorf("invalid event ID in notification: %w", err)
	}

	event, err := l.store.FetchByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			log.Debug().Str("event_id", id.String()).Msg("outbox event already sent")
			return nil
		}
		return err
	}
	return l.deliver(ctx, *event)
}

// processUnsent publishes a batch of unsent rows. A row that fails stays
// unsent for the next sweep.
func (l *Listener) processUnsent(ctx context.Context) error {
	start := time.Now()
	unsent, err := l.store.FetchUnsent(ctx, l.cfg.BatchSize)
	if err != nil {
		return err
	}
	l.metrics.RecordOutboxLag(len(unsent))

	delivered := 0
	for _, event := range unsent {
		if err := l.deliver(ctx, event); err != nil {
			log.Error().Err(err).Str("event_id", event.ID.String()).Msg("failed to deliver event")
			continue
		}
		delivered++
	}

	if len(unsent) > 0 {
		l.metrics.RecordBatchProcessed(delivered, time.Since(start))
		log.Info().Int("fetched", len(unsent)).Int("delivered", delivered).Msg("processed unsent outbox events")
	}
	return nil
}

func (l *Listener) deliver(ctx context.Context, event Event) error {
	start := time.Now()
	err := l.publishWithRetry(ctx, event)
	l.metrics.RecordEventProcessed(event.EventType, err == nil, time.Since(start))
	if err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	if err := l.store.MarkSent(ctx, event.ID); err != nil {
		return err
	}

	l.processed.Add(1)
	l.lastEvent.Store(time.Now().UnixNano())
	log.Info().Str("event_id", event.ID.String()).Str("event_type", event.EventType).Msg("published and marked event as sent")
	return nil
}

// publishWithRetry publishes with a linearly growing delay between attempts
func (l *Listener) publishWithRetry(ctx context.Context, event Event) error {
	var lastErr error

	for attempt := 0; attempt <= l.cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			delay := l.cfg.RetryDelay * time.Duration(attempt)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}

		err := l.publisher.Publish(ctx, event)
		l.metrics.RecordPublishAttempt(event.EventType, attempt+1, err == nil)
		if err != nil {
			lastErr = err
			log.Error().
				Err(err).
				Int("attempt", attempt+1).
				Str("event_id", event.ID.String()).
				Msg("failed to publish, retrying")
			continue
		}

		if attempt > 0 {
			log.Info().
				Int("attempt", attempt+1).
				Str("event_id", event.ID.String()).
				Msg("publish succeeded after retry")
		}
		return nil
	}

	return fmt.Errorf("publish failed after %d attempts: %w", l.cfg.MaxRetries+1, lastErr)
}
