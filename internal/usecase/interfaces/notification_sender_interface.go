package interfaces

import (
	"context"

	"mecanica_workorders/internal/domain/entities"
)

// INotificationSender delivers status change notifications to the customer channel
// (Kafka topic in production, log output in local mode).
type INotificationSender interface {
	SendStatusChangeNotification(ctx context.Context, n entities.WorkOrderStatusNotification) error
}

// INotificationMetrics records the outcome of each notification attempt.
type INotificationMetrics interface {
	RecordNotification(ctx context.Context, outcome string)
}
