package response

import (
	"time"

	"mecanica_workorders/internal/domain/entities"
)

type WorkOrderServiceResponse struct {
	ServiceID          string     `json:"service_id"`
	ServiceName        string     `json:"service_name"`
	ServiceDescription string     `json:"service_description"`
	Quantity           int        `json:"quantity"`
	UnitPrice          float64    `json:"unit_price"`
	TotalPrice         float64    `json:"total_price"`
	EstimatedDuration  int        `json:"estimated_duration"`
	Status             string     `json:"status"`
	StartedAt          *time.Time `json:"started_at,omitempty"`
	CompletedAt        *time.Time `json:"completed_at,omitempty"`
	TechnicianNotes    string     `json:"technician_notes,omitempty"`
}

type WorkOrderPartResponse struct {
	PartID          string     `json:"part_id"`
	PartName        string     `json:"part_name"`
	PartDescription string     `json:"part_description"`
	PartNumber      string     `json:"part_number"`
	Quantity        int        `json:"quantity"`
	UnitPrice       float64    `json:"unit_price"`
	TotalPrice      float64    `json:"total_price"`
	Notes           string     `json:"notes,omitempty"`
	IsApproved      bool       `json:"is_approved"`
	AppliedAt       *time.Time `json:"applied_at,omitempty"`
}

type WorkOrderResponse struct {
	ID                      string                     `json:"id"`
	CustomerID              string                     `json:"customer_id"`
	VehicleID               string                     `json:"vehicle_id"`
	Description             string                     `json:"description"`
	Status                  string                     `json:"status"`
	StatusMessage           string                     `json:"status_message"`
	AllowedTransitions      []string                   `json:"allowed_transitions"`
	EstimatedCost           float64                    `json:"estimated_cost"`
	ActualCost              *float64                   `json:"actual_cost,omitempty"`
	LaborCost               float64                    `json:"labor_cost"`
	PartsCost               float64                    `json:"parts_cost"`
	TotalServicesCost       float64                    `json:"total_services_cost"`
	TotalPartsCost          float64                    `json:"total_parts_cost"`
	AppliedPartsCost        float64                    `json:"applied_parts_cost"`
	Diagnosis               string                     `json:"diagnosis,omitempty"`
	TechnicianNotes         string                     `json:"technician_notes,omitempty"`
	CustomerApproval        bool                       `json:"customer_approval"`
	CompletionPercentage    int                        `json:"completion_percentage"`
	EstimatedHours          int                        `json:"estimated_hours"`
	IsReadyToStart          bool                       `json:"is_ready_to_start"`
	IsCompleted             bool                       `json:"is_completed"`
	AllServicesCompleted    bool                       `json:"all_services_completed"`
	AllPartsApproved        bool                       `json:"all_parts_approved"`
	EstimatedCompletionDate *time.Time                 `json:"estimated_completion_date,omitempty"`
	CompletedAt             *time.Time                 `json:"completed_at,omitempty"`
	CreatedAt               time.Time                  `json:"created_at"`
	UpdatedAt               time.Time                  `json:"updated_at"`
	Services                []WorkOrderServiceResponse `json:"services"`
	Parts                   []WorkOrderPartResponse    `json:"parts"`
}

func FromWorkOrder(wo *entities.WorkOrder) WorkOrderResponse {
	res := WorkOrderResponse{
		ID:                      wo.ID(),
		CustomerID:              wo.CustomerID(),
		VehicleID:               wo.VehicleID(),
		Description:             wo.Description(),
		Status:                  string(wo.Status()),
		StatusMessage:           entities.StatusMessage(wo.Status()),
		AllowedTransitions:      []string{},
		EstimatedCost:           wo.EstimatedCost().Float64(),
		LaborCost:               wo.LaborCost().Float64(),
		PartsCost:               wo.PartsCost().Float64(),
		TotalServicesCost:       wo.TotalServicesCost().Float64(),
		TotalPartsCost:          wo.TotalPartsCost().Float64(),
		AppliedPartsCost:        wo.AppliedPartsCost().Float64(),
		Diagnosis:               wo.Diagnosis(),
		TechnicianNotes:         wo.TechnicianNotes(),
		CustomerApproval:        wo.CustomerApproval(),
		CompletionPercentage:    wo.CompletionPercentage(),
		EstimatedHours:          wo.EstimatedHours(),
		IsReadyToStart:          wo.IsReadyToStart(),
		IsCompleted:             wo.IsCompleted(),
		AllServicesCompleted:    wo.AreAllServicesCompleted(),
		AllPartsApproved:        wo.AreAllPartsApproved(),
		EstimatedCompletionDate: wo.EstimatedCompletionDate(),
		CompletedAt:             wo.CompletedAt(),
		CreatedAt:               wo.CreatedAt(),
		UpdatedAt:               wo.UpdatedAt(),
		Services:                []WorkOrderServiceResponse{},
		Parts:                   []WorkOrderPartResponse{},
	}
	if actual := wo.ActualCost(); actual != nil {
		v := actual.Float64()
		res.ActualCost = &v
	}
	for _, s := range entities.AllowedStatusTransitions(wo.Status()) {
		res.AllowedTransitions = append(res.AllowedTransitions, string(s))
	}
	for _, s := range wo.Services() {
		res.Services = append(res.Services, WorkOrderServiceResponse{
			ServiceID:          s.ServiceID(),
			ServiceName:        s.ServiceName(),
			ServiceDescription: s.ServiceDescription(),
			Quantity:           s.Quantity(),
			UnitPrice:          s.UnitPrice().Float64(),
			TotalPrice:         s.TotalPrice().Float64(),
			EstimatedDuration:  s.EstimatedDuration(),
			Status:             string(s.Status()),
			StartedAt:          s.StartedAt(),
			CompletedAt:        s.CompletedAt(),
			TechnicianNotes:    s.TechnicianNotes(),
		})
	}
	for _, p := range wo.Parts() {
		res.Parts = append(res.Parts, WorkOrderPartResponse{
			PartID:          p.PartID(),
			PartName:        p.PartName(),
			PartDescription: p.PartDescription(),
			PartNumber:      p.PartNumber(),
			Quantity:        p.Quantity(),
			UnitPrice:       p.UnitPrice().Float64(),
			TotalPrice:      p.TotalPrice().Float64(),
			Notes:           p.Notes(),
			IsApproved:      p.IsApproved(),
			AppliedAt:       p.AppliedAt(),
		})
	}
	return res
}
