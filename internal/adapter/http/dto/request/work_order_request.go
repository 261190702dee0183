package request

import (
	"strings"
	"time"

	"mecanica_workorders/internal/domain/entities"
	"mecanica_workorders/internal/usecase"
)

type CreateWorkOrderRequest struct {
	CustomerID              string     `json:"customer_id" binding:"required"`
	VehicleID               string     `json:"vehicle_id" binding:"required"`
	Description             string     `json:"description" binding:"required"`
	EstimatedCost           float64    `json:"estimated_cost"`
	EstimatedCompletionDate *time.Time `json:"estimated_completion_date"`
}

func (r CreateWorkOrderRequest) ToInput() usecase.CreateWorkOrderInput {
	return usecase.CreateWorkOrderInput{
		CustomerID:              strings.TrimSpace(r.CustomerID),
		VehicleID:               strings.TrimSpace(r.VehicleID),
		Description:             r.Description,
		EstimatedCost:           r.EstimatedCost,
		EstimatedCompletionDate: r.EstimatedCompletionDate,
	}
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ResolveStatus accepts the status in any letter case.
func (r UpdateStatusRequest) ResolveStatus() entities.WorkOrderStatus {
	return entities.WorkOrderStatus(strings.ToUpper(strings.TrimSpace(r.Status)))
}

type UpdateDescriptionRequest struct {
	Description string `json:"description" binding:"required"`
}

type DiagnosisRequest struct {
	Diagnosis string `json:"diagnosis" binding:"required"`
}

type TechnicianNotesRequest struct {
	Notes string `json:"notes" binding:"required"`
}

type EstimatedCompletionDateRequest struct {
	EstimatedCompletionDate time.Time `json:"estimated_completion_date" binding:"required"`
}

type EstimatedCostRequest struct {
	EstimatedCost *float64 `json:"estimated_cost" binding:"required"`
}

type AddServiceRequest struct {
	ServiceID          string  `json:"service_id" binding:"required"`
	ServiceName        string  `json:"service_name" binding:"required"`
	ServiceDescription string  `json:"service_description"`
	Quantity           int     `json:"quantity" binding:"required"`
	UnitPrice          float64 `json:"unit_price"`
	EstimatedDuration  int     `json:"estimated_duration"`
}

func (r AddServiceRequest) ToProps() entities.WorkOrderServiceProps {
	return entities.WorkOrderServiceProps{
		ServiceID:          r.ServiceID,
		ServiceName:        r.ServiceName,
		ServiceDescription: r.ServiceDescription,
		Quantity:           r.Quantity,
		UnitPrice:          r.UnitPrice,
		EstimatedDuration:  r.EstimatedDuration,
	}
}

// UpdateServiceRequest is a partial update; omitted fields keep their current value.
type UpdateServiceRequest struct {
	Quantity  *int     `json:"quantity"`
	UnitPrice *float64 `json:"unit_price"`
	Notes     *string  `json:"notes"`
}

func (r UpdateServiceRequest) IsEmpty() bool {
	return r.Quantity == nil && r.UnitPrice == nil && r.Notes == nil
}

func (r UpdateServiceRequest) ToInput() entities.UpdateServiceInput {
	return entities.UpdateServiceInput{Quantity: r.Quantity, UnitPrice: r.UnitPrice, Notes: r.Notes}
}

type CompleteServiceRequest struct {
	Notes string `json:"notes"`
}

type AddPartRequest struct {
	PartID          string  `json:"part_id" binding:"required"`
	PartName        string  `json:"part_name" binding:"required"`
	PartDescription string  `json:"part_description"`
	PartNumber      string  `json:"part_number"`
	Quantity        int     `json:"quantity" binding:"required"`
	UnitPrice       float64 `json:"unit_price"`
	Notes           string  `json:"notes"`
}

func (r AddPartRequest) ToProps() entities.WorkOrderPartProps {
	return entities.WorkOrderPartProps{
		PartID:          r.PartID,
		PartName:        r.PartName,
		PartDescription: r.PartDescription,
		PartNumber:      r.PartNumber,
		Quantity:        r.Quantity,
		UnitPrice:       r.UnitPrice,
		Notes:           r.Notes,
	}
}

// UpdatePartQuantityRequest accepts zero, which removes the part.
type UpdatePartQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}
