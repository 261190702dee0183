package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	"mecanica_workorders/internal/domain/entities"
	"mecanica_workorders/internal/usecase/interfaces"
)

const DefaultNotificationTimeout = 5 * time.Second

// Notification outcomes reported to INotificationMetrics.
const (
	NotificationSent    = "sent"
	NotificationSkipped = "skipped"
	NotificationFailed  = "failed"
)

// IWorkOrderNotificationUseCase tells the customer that a work order changed status.
//
// It is best-effort: the status change has already been persisted when it runs, so
// every failure is logged and swallowed.

type IWorkOrderNotificationUseCase interface {
	NotifyStatusChange(ctx context.Context, wo *entities.WorkOrder)
}

type WorkOrderNotificationUseCase struct {
	customers interfaces.ICustomerReader
	vehicles  interfaces.IVehicleReader
	sender    interfaces.INotificationSender
	metrics   interfaces.INotificationMetrics
	timeout   time.Duration
}

var _ IWorkOrderNotificationUseCase = (*WorkOrderNotificationUseCase)(nil)

// NewWorkOrderNotificationUseCase wires the read ports and the sender. metrics may be nil;
// a non-positive timeout falls back to DefaultNotificationTimeout.
func NewWorkOrderNotificationUseCase(
	customers interfaces.ICustomerReader,
	vehicles interfaces.IVehicleReader,
	sender interfaces.INotificationSender,
	metrics interfaces.INotificationMetrics,
	timeout time.Duration,
) *WorkOrderNotificationUseCase {
	if timeout <= 0 {
		timeout = DefaultNotificationTimeout
	}
	return &WorkOrderNotificationUseCase{
		customers: customers,
		vehicles:  vehicles,
		sender:    sender,
		metrics:   metrics,
		timeout:   timeout,
	}
}

// NotifyStatusChange runs detached from the caller's cancellation, bounded by the
// configured timeout.
func (u *WorkOrderNotificationUseCase) NotifyStatusChange(ctx context.Context, wo *entities.WorkOrder) {
	if wo == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), u.timeout)
	defer cancel()

	outcome := NotificationFailed
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[workorder][notification] panic recovered work_order_id=%s err=%v", wo.ID(), r)
			outcome = NotificationFailed
		}
		u.record(ctx, outcome)
	}()

	outcome = u.notify(ctx, wo)
}

func (u *WorkOrderNotificationUseCase) notify(ctx context.Context, wo *entities.WorkOrder) string {
	if u.sender == nil || u.customers == nil || u.vehicles == nil {
		log.Printf("[workorder][notification] skipped work_order_id=%s reason=not-configured", wo.ID())
		return NotificationSkipped
	}

	customer, err := u.customers.FindByID(ctx, wo.CustomerID())
	if err != nil {
		log.Printf("[workorder][notification] customer lookup failed work_order_id=%s customer_id=%s err=%v", wo.ID(), wo.CustomerID(), err)
		return NotificationFailed
	}
	if customer == nil {
		log.Printf("[workorder][notification] skipped work_order_id=%s customer_id=%s reason=customer-not-found", wo.ID(), wo.CustomerID())
		return NotificationSkipped
	}
	if strings.TrimSpace(customer.Email) == "" {
		log.Printf("[workorder][notification] skipped work_order_id=%s customer_id=%s reason=customer-without-email", wo.ID(), wo.CustomerID())
		return NotificationSkipped
	}

	vehicle, err := u.vehicles.FindByID(ctx, wo.VehicleID())
	if err != nil {
		log.Printf("[workorder][notification] vehicle lookup failed work_order_id=%s vehicle_id=%s err=%v", wo.ID(), wo.VehicleID(), err)
		return NotificationFailed
	}
	if vehicle == nil {
		log.Printf("[workorder][notification] skipped work_order_id=%s vehicle_id=%s reason=vehicle-not-found", wo.ID(), wo.VehicleID())
		return NotificationSkipped
	}

	n := entities.NewWorkOrderStatusNotification(wo, *customer, *vehicle)
	if err := u.sender.SendStatusChangeNotification(ctx, n); err != nil {
		log.Printf("[workorder][notification] send failed work_order_id=%s status=%s err=%v", wo.ID(), n.Status, err)
		return NotificationFailed
	}
	log.Printf("[workorder][notification] sent work_order_id=%s status=%s", wo.ID(), n.Status)
	return NotificationSent
}

func (u *WorkOrderNotificationUseCase) record(ctx context.Context, outcome string) {
	if u.metrics != nil {
		u.metrics.RecordNotification(ctx, outcome)
	}
}
