package entities

// WorkOrderStatus represents the lifecycle of a work order (ordem de serviço).
//
// Domain notes:
//   - A new work order starts as PENDING.
//   - CANCELLED and DELIVERED are terminal.
//   - APPROVED is normally reached through the customer approval, not a plain status update.
type WorkOrderStatus string

const (
	WorkOrderStatusReceived     WorkOrderStatus = "RECEIVED"
	WorkOrderStatusDiagnosis    WorkOrderStatus = "DIAGNOSIS"
	WorkOrderStatusPending      WorkOrderStatus = "PENDING"
	WorkOrderStatusApproved     WorkOrderStatus = "APPROVED"
	WorkOrderStatusInProgress   WorkOrderStatus = "IN_PROGRESS"
	WorkOrderStatusWaitingParts WorkOrderStatus = "WAITING_PARTS"
	WorkOrderStatusCompleted    WorkOrderStatus = "COMPLETED"
	WorkOrderStatusCancelled    WorkOrderStatus = "CANCELLED"
	WorkOrderStatusDelivered    WorkOrderStatus = "DELIVERED"
)

var workOrderStatusTransitions = map[WorkOrderStatus][]WorkOrderStatus{
	WorkOrderStatusReceived:     {WorkOrderStatusApproved, WorkOrderStatusCancelled},
	WorkOrderStatusApproved:     {WorkOrderStatusInProgress, WorkOrderStatusCancelled},
	WorkOrderStatusInProgress:   {WorkOrderStatusWaitingParts, WorkOrderStatusPending, WorkOrderStatusCompleted, WorkOrderStatusCancelled},
	WorkOrderStatusWaitingParts: {WorkOrderStatusInProgress, WorkOrderStatusCancelled},
	WorkOrderStatusPending:      {WorkOrderStatusInProgress, WorkOrderStatusCancelled},
	WorkOrderStatusDiagnosis:    {WorkOrderStatusPending},
	WorkOrderStatusCompleted:    {WorkOrderStatusDelivered},
}

// AllWorkOrderStatuses lists every status in lifecycle order.
func AllWorkOrderStatuses() []WorkOrderStatus {
	return []WorkOrderStatus{
		WorkOrderStatusReceived,
		WorkOrderStatusDiagnosis,
		WorkOrderStatusPending,
		WorkOrderStatusApproved,
		WorkOrderStatusInProgress,
		WorkOrderStatusWaitingParts,
		WorkOrderStatusCompleted,
		WorkOrderStatusCancelled,
		WorkOrderStatusDelivered,
	}
}

func (s WorkOrderStatus) IsValid() bool {
	switch s {
	case WorkOrderStatusReceived, WorkOrderStatusDiagnosis, WorkOrderStatusPending,
		WorkOrderStatusApproved, WorkOrderStatusInProgress, WorkOrderStatusWaitingParts,
		WorkOrderStatusCompleted, WorkOrderStatusCancelled, WorkOrderStatusDelivered:
		return true
	}
	return false
}

func (s WorkOrderStatus) IsTerminal() bool {
	return s == WorkOrderStatusCancelled || s == WorkOrderStatusDelivered
}

// IsStatusTransitionAllowed reports whether a work order may move from one status to another.
func IsStatusTransitionAllowed(from, to WorkOrderStatus) bool {
	for _, allowed := range workOrderStatusTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// AllowedStatusTransitions returns a copy of the targets reachable from a status.
func AllowedStatusTransitions(from WorkOrderStatus) []WorkOrderStatus {
	targets := workOrderStatusTransitions[from]
	out := make([]WorkOrderStatus, len(targets))
	copy(out, targets)
	return out
}

// StatusMessage is the customer-facing sentence sent along with status notifications.
func StatusMessage(s WorkOrderStatus) string {
	switch s {
	case WorkOrderStatusReceived:
		return "Your vehicle has been received by our workshop."
	case WorkOrderStatusDiagnosis:
		return "Your vehicle is being diagnosed."
	case WorkOrderStatusPending:
		return "Your work order is waiting for approval."
	case WorkOrderStatusApproved:
		return "Your work order has been approved and will start soon."
	case WorkOrderStatusInProgress:
		return "Repairs on your vehicle are in progress."
	case WorkOrderStatusWaitingParts:
		return "We are waiting for parts to continue the repair."
	case WorkOrderStatusCompleted:
		return "Repairs are complete. Your vehicle is ready for pickup."
	case WorkOrderStatusCancelled:
		return "Your work order has been cancelled."
	case WorkOrderStatusDelivered:
		return "Your vehicle has been delivered. Thank you!"
	}
	return ""
}
