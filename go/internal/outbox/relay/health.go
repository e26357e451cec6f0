package relay

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// pendingAlert is the backlog above which the relay reports itself degraded
const pendingAlert = 1000

type HealthStatus struct {
	Healthy           bool      `json:"healthy"`
	LastEventTime     time.Time `json:"last_event_time"`
	EventsProcessed   uint64    `json:"events_processed"`
	PendingEvents     int       `json:"pending_events"`
	DatabaseConnected bool      `json:"database_connected"`
	NATSConnected     bool      `json:"nats_connected"`
	ListenerActive    bool      `json:"listener_active"`
	Errors            []string  `json:"errors"`
}

// Pinger is a database handle, such as *sql.DB
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Connection reports broker connectivity. *nats.Conn satisfies it.
type Connection interface {
	IsConnected() bool
}

// Counter counts unsent rows
type Counter interface {
	CountUnsent(ctx context.Context) (int, error)
}

type HealthChecker struct {
	listener  *Listener
	db        Pinger
	conn      Connection
	pending   Counter
	threshold time.Duration // How long a backlog may sit without progress
}

func NewHealthChecker(listener *Listener, db Pinger, conn Connection, pending Counter, threshold time.Duration) *HealthChecker {
	return &HealthChecker{
		listener:  listener,
		db:        db,
		conn:      conn,
		pending:   pending,
		threshold: threshold,
	}
}

func (h *HealthChecker) Check(ctx context.Context) HealthStatus {
	status := HealthStatus{
		Healthy: true,
		Errors:  []string{},
	}

	status.EventsProcessed, status.LastEventTime = h.listener.Stats()

	if err := h.db.PingContext(ctx); err != nil {
		status.Healthy = false
		status.Errors = append(status.Errors, fmt.Sprintf("database ping failed: %v", err))
	} else {
		status.DatabaseConnected = true
	}

	if h.conn != nil {
		status.NATSConnected = h.conn.IsConnected()
		if !status.NATSConnected {
			status.Healthy = false
			status.Errors = append(status.Errors, "NATS disconnected")
		}
	}

	status.ListenerActive = h.listener.Active()
	if !status.ListenerActive {
		status.Healthy = false
		status.Errors = append(status.Errors, "listener not active")
	}

	if status.DatabaseConnected {
		pending, err := h.pending.CountUnsent(ctx)
		if err != nil {
			status.Errors = append(status.Errors, fmt.Sprintf("failed to count pending events: %v", err))
		} else {
			status.PendingEvents = pending
			if pending > pendingAlert {
				status.Errors = append(status.Errors, fmt.Sprintf("high pending event count: %d", pending))
			}
		}
	}

	if status.PendingEvents > 0 && !status.LastEventTime.IsZero() {
		if since := time.Since(status.LastEventTime); since > h.threshold {
			status.Healthy = false
			status.Errors = append(status.Errors, fmt.Sprintf("no events processed for %s", since.Round(time.Second)))
		}
	}

	return status
}

func (h *HealthChecker) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	status := h.Check(ctx)

	w.Header().Set("Content-Type", "application/json")
	if !status.Healthy {
		w.WriteHeader(http.StatusServiceUnavailable)
	}
	_ = json.NewEncoder(w).Encode(status)
}
