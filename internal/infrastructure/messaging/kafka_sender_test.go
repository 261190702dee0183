package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"mecanica_workorders/internal/domain/entities"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	err      error
	messages []kafka.Message
	calls    int
	closed   bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	w.calls++
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func testNotification() entities.WorkOrderStatusNotification {
	return entities.WorkOrderStatusNotification{
		WorkOrderID:   "wo-1",
		CustomerEmail: "ana@example.com",
		Status:        entities.WorkOrderStatusCompleted,
		TotalValue:    300,
	}
}

func TestKafkaNotificationSender_Send(t *testing.T) {
	w := &fakeWriter{}
	s := newKafkaNotificationSender(w)

	require.NoError(t, s.SendStatusChangeNotification(context.Background(), testNotification()))
	require.Len(t, w.messages, 1)

	msg := w.messages[0]
	assert.Equal(t, "wo-1", string(msg.Key))
	assert.Contains(t, msg.Headers, kafka.Header{Key: "event_type", Value: []byte(EventTypeStatusChanged)})

	var got entities.WorkOrderStatusNotification
	require.NoError(t, json.Unmarshal(msg.Value, &got))
	assert.Equal(t, entities.WorkOrderStatusCompleted, got.Status)
	assert.Equal(t, 300.0, got.TotalValue)

	require.NoError(t, s.Close())
	assert.True(t, w.closed)
}

func TestKafkaNotificationSender_BreakerOpens(t *testing.T) {
	w := &fakeWriter{err: errors.New("broker unavailable")}
	s := newKafkaNotificationSender(w)
	ctx := context.Background()

	for i := 0; i < breakerFailureThreshold; i++ {
		err := s.SendStatusChangeNotification(ctx, testNotification())
		require.Error(t, err)
		assert.ErrorIs(t, err, w.err)
	}

	err := s.SendStatusChangeNotification(ctx, testNotification())
	require.ErrorIs(t, err, ErrNotificationCircuitOpen)
	assert.Equal(t, breakerFailureThreshold, w.calls)
}

func TestNewNotificationSenderFromEnv(t *testing.T) {
	t.Run("mock flag", func(t *testing.T) {
		t.Setenv("NOTIFICATION_MOCK", "true")
		t.Setenv("KAFKA_BROKERS", "kafka:9092")
		assert.IsType(t, LogNotificationSender{}, NewNotificationSenderFromEnv())
	})

	t.Run("no brokers", func(t *testing.T) {
		t.Setenv("NOTIFICATION_MOCK", "")
		t.Setenv("KAFKA_BROKERS", " , ")
		assert.IsType(t, LogNotificationSender{}, NewNotificationSenderFromEnv())
	})

	t.Run("kafka", func(t *testing.T) {
		t.Setenv("NOTIFICATION_MOCK", "")
		t.Setenv("KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092")
		t.Setenv("NOTIFICATION_TOPIC", "")
		s, ok := NewNotificationSenderFromEnv().(*KafkaNotificationSender)
		require.True(t, ok)
		kw, ok := s.writer.(*kafka.Writer)
		require.True(t, ok)
		assert.Equal(t, DefaultNotificationTopic, kw.Topic)
	})
}

func TestLogNotificationSender(t *testing.T) {
	assert.NoError(t, LogNotificationSender{}.SendStatusChangeNotification(context.Background(), testNotification()))
}
