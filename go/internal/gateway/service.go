package gateway

import (
	"context"
	"fmt"

	"github.com/go-chi/chi/v5"
	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"
)

// Service ties the connection manager, websocket routes and stream consumer
type Service struct {
	connectionManager *ConnectionManager
	wsHandler         *WebSocketHandler
	eventConsumer     *EventConsumer
}

type Config struct {
	ConnectionConfig ConnectionConfig
	JetStreamConfig  JetStreamConsumerConfig
}

func DefaultConfig() Config {
	return Config{
		ConnectionConfig: DefaultConnectionConfig(),
		JetStreamConfig:  DefaultJetStreamConsumerConfig(),
	}
}

func NewService(ctx context.Context, config Config, tokens TokenVerifier, members MembershipChecker) (*Service, error) {
	connectionManager := NewConnectionManager(config.ConnectionConfig)

	eventConsumer, err := NewEventConsumer(ctx, connectionManager, config.JetStreamConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create event consumer: %w", err)
	}

	return &Service{
		connectionManager: connectionManager,
		wsHandler:         NewWebSocketHandler(connectionManager, tokens, members),
		eventConsumer:     eventConsumer,
	}, nil
}

// Start runs the connection manager and the consumer until ctx is done
func (s *Service) Start(ctx context.Context) error {
	log.Info().Msg("starting gateway service")

	go s.connectionManager.Start(ctx)

	err := s.eventConsumer.Start(ctx)
	if stopErr := s.eventConsumer.Stop(); stopErr != nil {
		log.Error().Err(stopErr).Msg("failed to stop event consumer")
	}
	log.Info().Msg("gateway service stopped")
	return err
}

func (s *Service) RegisterRoutes(r chi.Router) {
	s.wsHandler.RegisterRoutes(r)
}

// NATSConnected reports whether the consumer's connection is up
func (s *Service) NATSConnected() bool {
	return s.eventConsumer.Conn().Status() == nats.CONNECTED
}

func (s *Service) Stats() ConnectionStats {
	return s.connectionManager.Stats()
}
