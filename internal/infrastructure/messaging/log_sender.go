package messaging

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"strings"

	"mecanica_workorders/internal/domain/entities"
	"mecanica_workorders/internal/usecase/interfaces"
)

// LogNotificationSender writes notifications to the application log. It is used for
// local runs and whenever no Kafka broker is configured.
type LogNotificationSender struct{}

var _ interfaces.INotificationSender = LogNotificationSender{}

func (LogNotificationSender) SendStatusChangeNotification(_ context.Context, n entities.WorkOrderStatusNotification) error {
	payload, err := json.Marshal(n)
	if err != nil {
		return err
	}
	log.Printf("[workorder][notification] mock send work_order_id=%s status=%s payload=%s", n.WorkOrderID, n.Status, payload)
	return nil
}

// NewNotificationSenderFromEnv picks the sender from KAFKA_BROKERS, NOTIFICATION_TOPIC
// and NOTIFICATION_MOCK.
func NewNotificationSenderFromEnv() interfaces.INotificationSender {
	if isNotificationMockEnabled() {
		log.Printf("[workorder][notification] mock mode enabled")
		return LogNotificationSender{}
	}
	brokers := splitBrokers(os.Getenv("KAFKA_BROKERS"))
	if len(brokers) == 0 {
		log.Printf("[workorder][notification] KAFKA_BROKERS not set, using log sender")
		return LogNotificationSender{}
	}
	topic := strings.TrimSpace(os.Getenv("NOTIFICATION_TOPIC"))
	if topic == "" {
		topic = DefaultNotificationTopic
	}
	return NewKafkaNotificationSender(topic, brokers...)
}

func splitBrokers(v string) []string {
	var out []string
	for _, b := range strings.Split(v, ",") {
		if b = strings.TrimSpace(b); b != "" {
			out = append(out, b)
		}
	}
	return out
}

func isNotificationMockEnabled() bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("NOTIFICATION_MOCK"))) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
