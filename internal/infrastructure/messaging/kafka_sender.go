package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"mecanica_workorders/internal/domain/entities"
	"mecanica_workorders/internal/usecase/interfaces"

	"github.com/segmentio/kafka-go"
	"github.com/sony/gobreaker/v2"
)

const (
	DefaultNotificationTopic = "work-order-status-changed"
	EventTypeStatusChanged   = "work_order.status_changed"

	breakerName             = "notification-kafka"
	breakerFailureThreshold = 5
	breakerOpenTimeout      = 30 * time.Second
	breakerCountInterval    = time.Minute
)

var ErrNotificationCircuitOpen = errors.New("notification circuit open")

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaNotificationSender publishes status change notifications to a Kafka topic,
// keyed by work order id so events of one order stay ordered.
//
// Writes go through a circuit breaker: after breakerFailureThreshold consecutive
// failures the sender fails fast for breakerOpenTimeout instead of waiting on the broker.
type KafkaNotificationSender struct {
	writer  messageWriter
	breaker *gobreaker.CircuitBreaker[any]
}

var _ interfaces.INotificationSender = (*KafkaNotificationSender)(nil)

func NewKafkaNotificationSender(topic string, brokers ...string) *KafkaNotificationSender {
	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		AllowAutoTopicCreation: true,
	}
	log.Printf("[workorder][kafka] writer initialized topic=%s brokers=%v", topic, brokers)
	return newKafkaNotificationSender(w)
}

func newKafkaNotificationSender(w messageWriter) *KafkaNotificationSender {
	return &KafkaNotificationSender{
		writer:  w,
		breaker: gobreaker.NewCircuitBreaker[any](breakerSettings()),
	}
}

func breakerSettings() gobreaker.Settings {
	return gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: 1,
		Interval:    breakerCountInterval,
		Timeout:     breakerOpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= breakerFailureThreshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Printf("[workorder][kafka] breaker state change name=%s from=%s to=%s", name, from, to)
		},
	}
}

func (s *KafkaNotificationSender) SendStatusChangeNotification(ctx context.Context, n entities.WorkOrderStatusNotification) error {
	payload, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}
	msg := kafka.Message{
		Key:   []byte(n.WorkOrderID),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(EventTypeStatusChanged)},
			{Key: "status", Value: []byte(n.Status)},
		},
	}

	_, err = s.breaker.Execute(func() (any, error) {
		return nil, s.writer.WriteMessages(ctx, msg)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return fmt.Errorf("%w: %v", ErrNotificationCircuitOpen, err)
	}
	if err != nil {
		return fmt.Errorf("kafka write failed: %w", err)
	}
	return nil
}

func (s *KafkaNotificationSender) Close() error {
	return s.writer.Close()
}
