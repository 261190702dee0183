package entities

import "time"

// WorkOrderStatusNotification is the flat payload sent to the customer when a work
// order changes status.
type WorkOrderStatusNotification struct {
	WorkOrderID             string          `json:"work_order_id"`
	CustomerName            string          `json:"customer_name"`
	CustomerEmail           string          `json:"customer_email"`
	VehicleBrand            string          `json:"vehicle_brand"`
	VehicleModel            string          `json:"vehicle_model"`
	VehiclePlate            string          `json:"vehicle_plate"`
	Status                  WorkOrderStatus `json:"status"`
	CreatedAt               time.Time       `json:"created_at"`
	UpdatedAt               time.Time       `json:"updated_at"`
	EstimatedCompletionDate *time.Time      `json:"estimated_completion_date,omitempty"`
	TotalValue              float64         `json:"total_value"`
	StatusMessage           string          `json:"status_message,omitempty"`
}

// NewWorkOrderStatusNotification assembles the payload for the order's current status.
// The total is the actual cost when known, the estimate otherwise.
func NewWorkOrderStatusNotification(wo *WorkOrder, customer Customer, vehicle Vehicle) WorkOrderStatusNotification {
	total := wo.EstimatedCost()
	if actual := wo.ActualCost(); actual != nil {
		total = *actual
	}
	return WorkOrderStatusNotification{
		WorkOrderID:             wo.ID(),
		CustomerName:            customer.Name,
		CustomerEmail:           customer.Email,
		VehicleBrand:            vehicle.Brand,
		VehicleModel:            vehicle.Model,
		VehiclePlate:            vehicle.Plate,
		Status:                  wo.Status(),
		CreatedAt:               wo.CreatedAt(),
		UpdatedAt:               wo.UpdatedAt(),
		EstimatedCompletionDate: wo.EstimatedCompletionDate(),
		TotalValue:              total.Float64(),
		StatusMessage:           StatusMessage(wo.Status()),
	}
}
