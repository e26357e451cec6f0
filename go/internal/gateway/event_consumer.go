package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mcdev12/tipster/go/internal/outbox"
	"github.com/mcdev12/tipster/go/internal/outbox/relay"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/rs/zerolog/log"
)

type JetStreamConsumerConfig struct {
	URL           string
	StreamName    string
	ConsumerName  string
	SubjectFilter string        // e.g. "tipster.events.>"
	MaxDeliver    int           // Max delivery attempts
	AckWait       time.Duration // How long to wait for ack
	MaxAckPending int           // Max messages pending ack
	MaxReconnects int
	ReconnectWait time.Duration
}

func DefaultJetStreamConsumerConfig() JetStreamConsumerConfig {
	stream := relay.DefaultJetStreamConfig()
	return JetStreamConsumerConfig{
		URL:           nats.DefaultURL,
		StreamName:    stream.StreamName,
		ConsumerName:  "tipster-gateway",
		SubjectFilter: stream.SubjectPrefix + ".>",
		MaxDeliver:    5,
		AckWait:       30 * time.Second,
		MaxAckPending: 100,
		MaxReconnects: -1, // Infinite
		ReconnectWait: 2 * time.Second,
	}
}

// Broadcaster receives decoded events
type Broadcaster interface {
	Broadcast(message BroadcastMessage)
}

// EventConsumer reads the relayed event stream and hands league events to
// the connection manager
type EventConsumer struct {
	broadcaster Broadcaster
	nc          *nats.Conn
	js          jetstream.JetStream
	consumer    jetstream.Consumer
	config      JetStreamConsumerConfig
}

func NewEventConsumer(ctx context.Context, broadcaster Broadcaster, config JetStreamConsumerConfig) (*EventConsumer, error) {
	opts := []nats.Option{
		nats.Name("tipster-gateway"),
		nats.MaxReconnects(config.MaxReconnects),
		nats.ReconnectWait(config.ReconnectWait),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			log.Error().Err(err).Msg("NATS disconnected")
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			log.Info().Str("url", nc.ConnectedUrl()).Msg("NATS reconnected")
		}),
		nats.ErrorHandler(func(nc *nats.Conn, sub *nats.Subscription, err error) {
			log.Error().Err(err).Msg("NATS error")
		}),
	}

	nc, err := nats.Connect(config.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("connect to NATS: %w", err)
	}

	js, err := jetstream.New(nc)
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("create JetStream context: %w", err)
	}

	ec := &EventConsumer{
		broadcaster: broadcaster,
		nc:          nc,
		js:          js,
		config:      config,
	}

	if err := ec.ensureConsumer(ctx); err != nil {
		nc.Close()
		return nil, fmt.Errorf("ensure consumer: %w", err)
	}

	return ec, nil
}

func (ec *EventConsumer) ensureConsumer(ctx context.Context) error {
	consumer, err := ec.js.CreateOrUpdateConsumer(ctx, ec.config.StreamName, jetstream.ConsumerConfig{
		Durable:       ec.config.ConsumerName,
		Description:   "Tipster websocket gateway",
		FilterSubject: ec.config.SubjectFilter,
		DeliverPolicy: jetstream.DeliverNewPolicy,
		AckPolicy:     jetstream.AckExplicitPolicy,
		MaxDeliver:    ec.config.MaxDeliver,
		AckWait:       ec.config.AckWait,
		MaxAckPending: ec.config.MaxAckPending,
		ReplayPolicy:  jetstream.ReplayInstantPolicy,
	})
	if err != nil {
		return fmt.Errorf("create consumer: %w", err)
	}

	log.Info().
		Str("consumer", ec.config.ConsumerName).
		Str("stream", ec.config.StreamName).
		Msg("using JetStream consumer")

	ec.consumer = consumer
	return nil
}

// Start consumes until ctx is done
func (ec *EventConsumer) Start(ctx context.Context) error {
	log.Info().
		Str("consumer", ec.config.ConsumerName).
		Str("stream", ec.config.StreamName).
		Msg("starting JetStream event consumer")

	consumeCtx, err := ec.consumer.Consume(func(msg jetstream.Msg) {
		if err := ec.processMessage(msg.Subject(), msg.Headers(), msg.Data()); err != nil {
			log.Error().
				Err(err).
				Str("subject", msg.Subject()).
				Msg("failed to process message")
			// malformed messages never become valid
			if termErr := msg.Term(); termErr != nil {
				log.Error().Err(termErr).Msg("failed to terminate message")
			}
			return
		}
		if ackErr := msg.Ack(); ackErr != nil {
			log.Error().Err(ackErr).Msg("failed to ACK message")
		}
	})
	if err != nil {
		return fmt.Errorf("start consumer: %w", err)
	}
	defer consumeCtx.Stop()

	<-ctx.Done()
	log.Info().Msg("event consumer shutting down")
	return nil
}

// processMessage decodes one relayed message and queues its broadcast
func (ec *EventConsumer) processMessage(subject string, header nats.Header, data []byte) error {
	var envelope relay.Envelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		return fmt.Errorf("unmarshal event envelope: %w", err)
	}

	message := BroadcastMessage{
		Event: &LeagueEvent{
			ID:        envelope.EventID,
			Type:      envelope.EventType,
			Timestamp: envelope.Timestamp,
			Data:      envelope.Payload,
		},
	}

	if raw := header.Get(outbox.HeaderLeagueID); raw != "" {
		leagueID, err := uuid.Parse(raw)
		if err != nil {
			return fmt.Errorf("parse league ID: %w", err)
		}
		message.LeagueID = leagueID
		message.Event.LeagueID = raw
	}

	users, err := audience(envelope.EventType, envelope.Payload)
	if err != nil {
		return err
	}
	message.UserIDs = users

	if message.LeagueID == uuid.Nil && len(message.UserIDs) == 0 {
		log.Debug().
			Str("subject", subject).
			Str("event_id", envelope.EventID).
			Msg("event has no audience, skipping")
		return nil
	}

	ec.broadcaster.Broadcast(message)

	log.Debug().
		Str("event_id", envelope.EventID).
		Str("league_id", message.LeagueID.String()).
		Str("event_type", envelope.EventType).
		Msg("event queued for websocket clients")
	return nil
}

// audience returns the users a personal event is meant for, or nil for an
// event every league member should see
func audience(eventType string, payload json.RawMessage) ([]uuid.UUID, error) {
	switch eventType {
	case outbox.EventNotificationsCreated:
		var p outbox.NotificationsCreatedPayload
		if err := json.Unmarshal(payload, &p); err != nil {
			return nil, fmt.Errorf("unmarshal %s payload: %w", eventType, err)
		}
		return p.UserIDs, nil
	case outbox.EventAchievementAwarded:
		var p outbox.AchievementAwardedPayload
		if err := json.Unmarshal(payload, &p); err != nil {
			return nil, fmt.Errorf("unmarshal %s payload: %w", eventType, err)
		}
		return []uuid.UUID{p.UserID}, nil
	default:
		return nil, nil
	}
}

// Conn exposes the NATS connection for health checks
func (ec *EventConsumer) Conn() *nats.Conn {
	return ec.nc
}

func (ec *EventConsumer) Stop() error {
	log.Info().Msg("stopping event consumer")
	if ec.nc != nil {
		ec.nc.Close()
	}
	return nil
}
