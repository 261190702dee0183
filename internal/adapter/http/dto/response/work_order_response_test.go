package response

import (
	"testing"

	"mecanica_workorders/internal/domain/entities"
)

func newTestWorkOrderWithItems(t *testing.T) *entities.WorkOrder {
	t.Helper()
	wo, err := entities.NewWorkOrder(entities.WorkOrderProps{
		ID:          "wo-1",
		CustomerID:  "cust-1",
		VehicleID:   "veh-1",
		Description: "Brake noise",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	svc, err := entities.NewWorkOrderService(entities.WorkOrderServiceProps{
		ServiceID:         "svc-1",
		ServiceName:       "Brake inspection",
		Quantity:          1,
		UnitPrice:         150,
		EstimatedDuration: 90,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := wo.AddService(svc); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	part, err := entities.NewWorkOrderPart(entities.WorkOrderPartProps{PartID: "p-1", PartName: "Pad", Quantity: 2, UnitPrice: 40})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := wo.AddPart(part); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return wo
}

func TestFromWorkOrder(t *testing.T) {
	res := FromWorkOrder(newTestWorkOrderWithItems(t))

	if res.ID != "wo-1" || res.CustomerID != "cust-1" || res.VehicleID != "veh-1" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.Status != "PENDING" || res.StatusMessage == "" {
		t.Fatalf("unexpected status fields: %+v", res)
	}
	if len(res.AllowedTransitions) != 2 {
		t.Fatalf("expected 2 allowed transitions, got %v", res.AllowedTransitions)
	}
	if res.EstimatedCost != 230 || res.TotalServicesCost != 150 || res.TotalPartsCost != 80 {
		t.Fatalf("unexpected estimate: %+v", res)
	}
	if res.LaborCost != 0 || res.PartsCost != 0 || res.AppliedPartsCost != 0 {
		t.Fatalf("expected no labor or parts cost before completion: %+v", res)
	}
	if res.ActualCost != nil {
		t.Fatalf("expected no actual cost, got %v", *res.ActualCost)
	}
	if res.IsCompleted || res.AllServicesCompleted || res.AllPartsApproved {
		t.Fatalf("unexpected completion flags: %+v", res)
	}
	if res.EstimatedHours != 2 {
		t.Fatalf("expected 2 estimated hours, got %d", res.EstimatedHours)
	}
	if len(res.Services) != 1 || res.Services[0].Status != "PENDING" || res.Services[0].TotalPrice != 150 {
		t.Fatalf("unexpected services: %+v", res.Services)
	}
	if len(res.Parts) != 1 || res.Parts[0].TotalPrice != 80 || res.Parts[0].IsApproved {
		t.Fatalf("unexpected parts: %+v", res.Parts)
	}
}

func TestFromWorkOrder_CompletedServiceAndAppliedPart(t *testing.T) {
	wo := newTestWorkOrderWithItems(t)
	if err := wo.ApprovePart("p-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := wo.ApplyPart("p-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := wo.StartService("svc-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := wo.CompleteService("svc-1", "pads replaced"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	res := FromWorkOrder(wo)
	if res.LaborCost != 150 || res.PartsCost != 80 || res.AppliedPartsCost != 80 {
		t.Fatalf("unexpected costs: %+v", res)
	}
	if res.ActualCost == nil || *res.ActualCost != 230 {
		t.Fatalf("expected actual cost 230, got %v", res.ActualCost)
	}
	if res.Status != "COMPLETED" || !res.IsCompleted || res.CompletedAt == nil {
		t.Fatalf("expected completed order: %+v", res)
	}
	if !res.AllServicesCompleted || !res.AllPartsApproved || res.CompletionPercentage != 100 {
		t.Fatalf("unexpected completion flags: %+v", res)
	}
	if res.Parts[0].AppliedAt == nil || res.Services[0].TechnicianNotes != "pads replaced" {
		t.Fatalf("unexpected items: %+v %+v", res.Services, res.Parts)
	}
}

func TestFromWorkOrder_EmptyCollections(t *testing.T) {
	wo, err := entities.NewWorkOrder(entities.WorkOrderProps{ID: "wo-2", CustomerID: "c", VehicleID: "v", Description: "Check"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	res := FromWorkOrder(wo)
	if res.Services == nil || res.Parts == nil {
		t.Fatalf("expected empty slices, got nil")
	}
}
