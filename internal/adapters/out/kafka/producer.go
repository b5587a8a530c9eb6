// Package kafka publishes committed order changes to a Kafka topic.
package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"

	"ordermanager/internal/core/domain/model/order"

	"github.com/segmentio/kafka-go"
)

var ErrNoBrokers = errors.New("kafka: no brokers configured")

// writeBatchTimeout bounds how long a synchronous write waits for a batch to
// fill. Publishing happens after commit while the request is still open.
const writeBatchTimeout = 10 * time.Millisecond

// messageWriter is the part of *kafka.Writer the producer needs.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// OrderChangedProducer writes one message per order change. Messages are
// keyed by order id so changes of one order stay ordered within a partition.
type OrderChangedProducer struct {
	writer messageWriter
}

// ParseBrokers splits a comma separated broker list, dropping blanks.
func ParseBrokers(csv string) []string {
	brokers := []string{}
	for _, b := range strings.Split(csv, ",") {
		b = strings.TrimSpace(b)
		if b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

// NewOrderChangedProducer creates a producer for topic on brokers.
func NewOrderChangedProducer(brokers []string, topic string) (*OrderChangedProducer, error) {
	if len(brokers) == 0 {
		return nil, ErrNoBrokers
	}

	return newOrderChangedProducer(&kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		BatchTimeout:           writeBatchTimeout,
		AllowAutoTopicCreation: true,
	}), nil
}

func newOrderChangedProducer(writer messageWriter) *OrderChangedProducer {
	return &OrderChangedProducer{writer: writer}
}

// Publish implements ports.OrderEventPublisher.
func (p *OrderChangedProducer) Publish(ctx context.Context, events ...order.ChangedEvent) error {
	if len(events) == 0 {
		return nil
	}

	msgs := make([]kafka.Message, 0, len(events))
	for _, e := range events {
		value, err := json.Marshal(newOrderChangedMessage(e))
		if err != nil {
			return err
		}

		msgs = append(msgs, kafka.Message{
			Key:   []byte(strconv.FormatInt(e.OrderID, 10)),
			Value: value,
			Time:  time.Now().UTC(),
			Headers: []kafka.Header{
				{Key: "event-type", Value: []byte(e.Type)},
			},
		})
	}

	return p.writer.WriteMessages(ctx, msgs...)
}

// Close flushes pending messages and releases the writer.
func (p *OrderChangedProducer) Close() error {
	return p.writer.Close()
}

// orderChangedMessage is the wire form of order.ChangedEvent.
type orderChangedMessage struct {
	EventID        string      `json:"eventId"`
	Type           string      `json:"type"`
	OrderID        int64       `json:"orderId"`
	CustomerEmail  string      `json:"customerEmail"`
	Status         string      `json:"status"`
	PreviousStatus string      `json:"previousStatus,omitempty"`
	TotalAmount    json.Number `json:"totalAmount"`
	OccurredAt     time.Time   `json:"occurredAt"`
}

func newOrderChangedMessage(e order.ChangedEvent) orderChangedMessage {
	return orderChangedMessage{
		EventID:        e.EventID,
		Type:           string(e.Type),
		OrderID:        e.OrderID,
		CustomerEmail:  e.CustomerEmail,
		Status:         string(e.Status),
		PreviousStatus: string(e.PreviousStatus),
		TotalAmount:    json.Number(e.TotalAmount.StringFixed(2)),
		OccurredAt:     e.OccurredAt,
	}
}
