// Package events publishes booking lifecycle notifications to Kafka. The
// publisher is optional: a nil *Publisher is safe to call and does nothing,
// so the service layer never branches on whether messaging is configured.
package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"travelbook/pkg/logger"
	"travelbook/pkg/model"
)

const (
	TypeBookingCreated  = "booking.created"
	TypeBookingDeleted  = "booking.deleted"
	TypeBookingsExpired = "bookings.expired"

	headerEventID   = "event-id"
	headerEventType = "event-type"
	headerSource    = "source"
)

type Event struct {
	ID           string         `json:"id"`
	Type         string         `json:"type"`
	OccurredAt   time.Time      `json:"occurred_at"`
	Booking      *model.Booking `json:"booking,omitempty"`
	BookingID    string         `json:"booking_id,omitempty"`
	DeletedCount int64          `json:"deleted_count,omitempty"`
}

type Publisher struct {
	writer *kafka.Writer
	source string
	log    *logger.Logger
}

// NewPublisher returns nil when no brokers are configured.
func NewPublisher(brokers []string, topic, source string, log *logger.Logger) *Publisher {
	if len(brokers) == 0 {
		return nil
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{}, // key by booking id for per-booking ordering
		RequiredAcks: kafka.RequireOne,
		BatchTimeout: 50 * time.Millisecond,
		Logger:       kafka.LoggerFunc(func(msg string, args ...any) {}),
		ErrorLogger: kafka.LoggerFunc(func(msg string, args ...any) {
			log.Error("kafka writer error", "detail", msg)
		}),
	}

	return &Publisher{writer: writer, source: source, log: log}
}

func (p *Publisher) BookingCreated(ctx context.Context, booking *model.Booking) {
	if p == nil {
		return
	}
	p.publish(ctx, booking.ID, Event{
		Type:    TypeBookingCreated,
		Booking: booking,
	})
}

func (p *Publisher) BookingDeleted(ctx context.Context, id string) {
	if p == nil {
		return
	}
	p.publish(ctx, id, Event{
		Type:      TypeBookingDeleted,
		BookingID: id,
	})
}

func (p *Publisher) BookingsExpired(ctx context.Context, deletedCount int64) {
	if p == nil {
		return
	}
	p.publish(ctx, TypeBookingsExpired, Event{
		Type:         TypeBookingsExpired,
		DeletedCount: deletedCount,
	})
}

// publish is best-effort: a broker failure is logged and dropped, it never
// fails the request that triggered the event.
func (p *Publisher) publish(ctx context.Context, key string, event Event) {
	event.ID = uuid.NewString()
	event.OccurredAt = time.Now().UTC()

	value, err := json.Marshal(event)
	if err != nil {
		p.log.Error("Failed to encode event", "type", event.Type, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(key),
		Value: value,
		Time:  event.OccurredAt,
		Headers: []kafka.Header{
			{Key: headerEventID, Value: []byte(event.ID)},
			{Key: headerEventType, Value: []byte(event.Type)},
			{Key: headerSource, Value: []byte(p.source)},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.log.Error("Failed to publish event", "type", event.Type, "error", err)
	}
}

func (p *Publisher) Close() error {
	if p == nil {
		return nil
	}
	return p.writer.Close()
}
