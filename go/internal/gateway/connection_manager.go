package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

// ConnectionManager manages websocket connections grouped by league
type ConnectionManager struct {
	leagueConnections map[uuid.UUID]map[*Connection]bool
	mu                sync.RWMutex

	upgrader websocket.Upgrader
	config   ConnectionConfig

	broadcastCh chan BroadcastMessage
}

// Connection is one websocket client watching a league
type Connection struct {
	ID       string
	UserID   uuid.UUID
	LeagueID uuid.UUID
	Conn     *websocket.Conn
	Send     chan []byte
	Manager  *ConnectionManager

	ConnectedAt time.Time

	// done is closed when the connection leaves the manager; Send stays open.
	done      chan struct{}
	closeOnce sync.Once
}

func newConnection(conn *websocket.Conn, cm *ConnectionManager, userID, leagueID uuid.UUID) *Connection {
	return &Connection{
		ID:          uuid.New().String(),
		UserID:      userID,
		LeagueID:    leagueID,
		Conn:        conn,
		Send:        make(chan []byte, 256),
		Manager:     cm,
		ConnectedAt: time.Now(),
		done:        make(chan struct{}),
	}
}

func (c *Connection) close() {
	c.closeOnce.Do(func() { close(c.done) })
}

type ConnectionConfig struct {
	WriteTimeout    time.Duration
	ReadTimeout     time.Duration
	PingInterval    time.Duration
	MaxMessageSize  int64
	ReadBufferSize  int
	WriteBufferSize int
	CheckOrigin     func(r *http.Request) bool
}

func DefaultConnectionConfig() ConnectionConfig {
	return ConnectionConfig{
		WriteTimeout:    10 * time.Second,
		ReadTimeout:     60 * time.Second,
		PingInterval:    30 * time.Second,
		MaxMessageSize:  1024,
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
	}
}

func NewConnectionManager(config ConnectionConfig) *ConnectionManager {
	return &ConnectionManager{
		leagueConnections: make(map[uuid.UUID]map[*Connection]bool),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  config.ReadBufferSize,
			WriteBufferSize: config.WriteBufferSize,
			CheckOrigin:     config.CheckOrigin,
		},
		config:      config,
		broadcastCh: make(chan BroadcastMessage, 1000),
	}
}

// Start processes broadcasts until ctx is done
func (cm *ConnectionManager) Start(ctx context.Context) {
	log.Info().Msg("connection manager started")

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("connection manager shutting down")
			cm.closeAll()
			return
		case message := <-cm.broadcastCh:
			cm.handleBroadcast(message)
		}
	}
}

// UpgradeConnection upgrades the request and starts the connection pumps
func (cm *ConnectionManager) UpgradeConnection(w http.ResponseWriter, r *http.Request, userID, leagueID uuid.UUID) error {
	conn, err := cm.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return fmt.Errorf("failed to upgrade connection: %w", err)
	}

	connection := newConnection(conn, cm, userID, leagueID)

	cm.registerConnection(connection)

	go connection.writePump()
	go connection.readPump()

	log.Info().
		Str("connection_id", connection.ID).
		Str("user_id", userID.String()).
		Str("league_id", leagueID.String()).
		Msg("websocket connection established")

	return nil
}

func (cm *ConnectionManager) registerConnection(conn *Connection) {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if cm.leagueConnections[conn.LeagueID] == nil {
		cm.leagueConnections[conn.LeagueID] = make(map[*Connection]bool)
	}
	cm.leagueConnections[conn.LeagueID][conn] = true

	log.Debug().
		Str("connection_id", conn.ID).
		Str("league_id", conn.LeagueID.String()).
		Int("total_connections", len(cm.leagueConnections[conn.LeagueID])).
		Msg("connection registered")
}

// unregisterConnection is safe to call more than once per connection
func (cm *ConnectionManager) unregisterConnection(conn *Connection) {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	connections, ok := cm.leagueConnections[conn.LeagueID]
	if !ok {
		return
	}
	if _, ok := connections[conn]; !ok {
		return
	}
	delete(connections, conn)
	conn.close()
	if len(connections) == 0 {
		delete(cm.leagueConnections, conn.LeagueID)
	}

	log.Info().
		Str("connection_id", conn.ID).
		Str("user_id", conn.UserID.String()).
		Str("league_id", conn.LeagueID.String()).
		Msg("connection unregistered")
}

func (cm *ConnectionManager) closeAll() {
	cm.mu.RLock()
	var all []*Connection
	for _, connections := range cm.leagueConnections {
		for conn := range connections {
			all = append(all, conn)
		}
	}
	cm.mu.RUnlock()

	for _, conn := range all {
		cm.unregisterConnection(conn)
	}
}

// Broadcast queues a message without blocking. Messages are dropped when the
// queue is full.
func (cm *ConnectionManager) Broadcast(message BroadcastMessage) {
	select {
	case cm.broadcastCh <- message:
	default:
		log.Warn().
			Str("league_id", message.LeagueID.String()).
			Str("event_type", message.Event.Type).
			Msg("broadcast channel full, dropping message")
	}
}

// targets snapshots the connections a message is addressed to
func (cm *ConnectionManager) targets(message BroadcastMessage) []*Connection {
	cm.mu.RLock()
	defer cm.mu.RUnlock()

	var out []*Connection
	collect := func(connections map[*Connection]bool) {
		for conn := range connections {
			if message.wants(conn.UserID) {
				out = append(out, conn)
			}
		}
	}

	if message.LeagueID != uuid.Nil {
		collect(cm.leagueConnections[message.LeagueID])
		return out
	}
	if len(message.UserIDs) == 0 {
		return nil
	}
	for _, connections := range cm.leagueConnections {
		collect(connections)
	}
	return out
}

func (cm *ConnectionManager) handleBroadcast(message BroadcastMessage) {
	targets := cm.targets(message)
	if len(targets) == 0 {
		return
	}

	data, err := json.Marshal(message.Event)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal event for broadcast")
		return
	}

	for _, conn := range targets {
		select {
		case <-conn.done:
			continue
		default:
		}
		select {
		case conn.Send <- data:
		default:
			log.Warn().
				Str("connection_id", conn.ID).
				Str("user_id", conn.UserID.String()).
				Msg("connection send buffer full, closing connection")
			cm.unregisterConnection(conn)
		}
	}

	log.Debug().
		Str("event_type", message.Event.Type).
		Str("league_id", message.LeagueID.String()).
		Int("connections", len(targets)).
		Msg("event broadcasted")
}

type ConnectionStats struct {
	TotalConnections  int            `json:"total_connections"`
	ActiveLeagues     int            `json:"active_leagues"`
	LeagueConnections map[string]int `json:"league_connections"`
}

func (cm *ConnectionManager) Stats() ConnectionStats {
	cm.mu.RLock()
	defer cm.mu.RUnlock()

	stats := ConnectionStats{
		ActiveLeagues:     len(cm.leagueConnections),
		LeagueConnections: make(map[string]int, len(cm.leagueConnections)),
	}
	for leagueID, connections := range cm.leagueConnections {
		stats.TotalConnections += len(connections)
		stats.LeagueConnections[leagueID.String()] = len(connections)
	}
	return stats
}

func (c *Connection) writePump() {
	ticker := time.NewTicker(c.Manager.config.PingInterval)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case <-c.done:
			_ = c.Conn.SetWriteDeadline(time.Now().Add(c.Manager.config.WriteTimeout))
			_ = c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
			return

		case message := <-c.Send:
			_ = c.Conn.SetWriteDeadline(time.Now().Add(c.Manager.config.WriteTimeout))
			if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
				log.Error().
					Err(err).
					Str("connection_id", c.ID).
					Msg("failed to write message to websocket")
				c.Manager.unregisterConnection(c)
				return
			}

		case <-ticker.C:
			_ = c.Conn.SetWriteDeadline(time.Now().Add(c.Manager.config.WriteTimeout))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				log.Error().
					Err(err).
					Str("connection_id", c.ID).
					Msg("failed to send ping")
				c.Manager.unregisterConnection(c)
				return
			}
		}
	}
}

// readPump drains client frames so pongs and close frames are processed.
// Clients have nothing to say; their frames are discarded.
func (c *Connection) readPump() {
	defer c.Manager.unregisterConnection(c)

	c.Conn.SetReadLimit(c.Manager.config.MaxMessageSize)
	_ = c.Conn.SetReadDeadline(time.Now().Add(c.Manager.config.ReadTimeout))
	c.Conn.SetPongHandler(func(string) error {
		return c.Conn.SetReadDeadline(time.Now().Add(c.Manager.config.ReadTimeout))
	})

	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Error().
					Err(err).
					Str("connection_id", c.ID).
					Msg("unexpected websocket close error")
			}
			return
		}
		_ = c.Conn.SetReadDeadline(time.Now().Add(c.Manager.config.ReadTimeout))
	}
}
