package entities

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWorkOrder(t *testing.T) *WorkOrder {
	t.Helper()
	wo, err := NewWorkOrder(WorkOrderProps{
		ID:          "wo-1",
		CustomerID:  "cust-1",
		VehicleID:   "veh-1",
		Description: "Brake noise on front axle",
	})
	require.NoError(t, err)
	return wo
}

func intPtr(v int) *int { return &v }
func floatPtr(v float64) *float64 { return &v }
func stringPtr(v string) *string { return &v }

func TestNewWorkOrder(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		wo := newTestWorkOrder(t)
		assert.Equal(t, WorkOrderStatusPending, wo.Status())
		assert.True(t, wo.EstimatedCost().IsZero())
		assert.Nil(t, wo.ActualCost())
		assert.False(t, wo.CustomerApproval())
		assert.Equal(t, wo.CreatedAt(), wo.UpdatedAt())
	})

	t.Run("validations", func(t *testing.T) {
		cases := []struct {
			name  string
			props WorkOrderProps
			want  error
		}{
			{name: "missing id", props: WorkOrderProps{CustomerID: "c", VehicleID: "v", Description: "d"}, want: ErrInvalidReference},
			{name: "missing customer", props: WorkOrderProps{ID: "w", VehicleID: "v", Description: "d"}, want: ErrInvalidReference},
			{name: "missing vehicle", props: WorkOrderProps{ID: "w", CustomerID: "c", Description: "d"}, want: ErrInvalidReference},
			{name: "blank description", props: WorkOrderProps{ID: "w", CustomerID: "c", VehicleID: "v", Description: "  "}, want: ErrInvalidDescription},
			{name: "long description", props: WorkOrderProps{ID: "w", CustomerID: "c", VehicleID: "v", Description: strings.Repeat("a", MaxDescriptionLength+1)}, want: ErrInvalidDescription},
			{name: "negative estimate", props: WorkOrderProps{ID: "w", CustomerID: "c", VehicleID: "v", Description: "d", EstimatedCost: -1}, want: ErrInvalidAmount},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := NewWorkOrder(tc.props)
				require.ErrorIs(t, err, tc.want)
			})
		}
	})
}

func TestWorkOrder_UpdateStatus(t *testing.T) {
	advance := freezeClock(t)

	wo := newTestWorkOrder(t)
	advance(time.Minute)
	require.NoError(t, wo.UpdateStatus(WorkOrderStatusInProgress))
	assert.Equal(t, WorkOrderStatusInProgress, wo.Status())
	assert.True(t, wo.UpdatedAt().After(wo.CreatedAt()))

	require.NoError(t, wo.UpdateStatus(WorkOrderStatusCompleted))
	require.NotNil(t, wo.CompletedAt())
	assert.True(t, wo.IsCompleted())

	require.NoError(t, wo.UpdateStatus(WorkOrderStatusDelivered))
	assert.True(t, wo.IsCompleted())
}

func TestWorkOrder_IllegalTransitionsDoNotMutate(t *testing.T) {
	advance := freezeClock(t)

	for _, from := range AllWorkOrderStatuses() {
		for _, to := range AllWorkOrderStatuses() {
			if IsStatusTransitionAllowed(from, to) {
				continue
			}
			snap := newTestWorkOrder(t).Snapshot()
			snap.Status = from
			wo := RestoreWorkOrder(snap)
			before := wo.UpdatedAt()

			advance(time.Second)
			err := wo.UpdateStatus(to)

			var transitionErr *StatusTransitionError
			require.Truef(t, errors.As(err, &transitionErr), "%s -> %s", from, to)
			assert.ErrorIs(t, err, ErrInvalidStatusTransition)
			assert.Equal(t, from, transitionErr.From)
			assert.Equal(t, to, transitionErr.To)
			assert.Equal(t, from, wo.Status())
			assert.Equal(t, before, wo.UpdatedAt())
		}
	}
}

func TestWorkOrder_CompletedCannotGoBackToInProgress(t *testing.T) {
	snap := newTestWorkOrder(t).Snapshot()
	snap.Status = WorkOrderStatusCompleted
	wo := RestoreWorkOrder(snap)

	err := wo.UpdateStatus(WorkOrderStatusInProgress)
	require.ErrorIs(t, err, ErrInvalidStatusTransition)
	assert.Equal(t, WorkOrderStatusCompleted, wo.Status())
}

func TestWorkOrder_ApproveByCustomer(t *testing.T) {
	wo := newTestWorkOrder(t)

	require.NoError(t, wo.ApproveByCustomer())
	assert.Equal(t, WorkOrderStatusApproved, wo.Status())
	assert.True(t, wo.CustomerApproval())
	assert.True(t, wo.IsReadyToStart())

	err := wo.ApproveByCustomer()
	require.ErrorIs(t, err, ErrInvalidOperation)
	assert.Equal(t, WorkOrderStatusApproved, wo.Status())
}

func TestWorkOrder_ApproveByCustomerOutsidePendingDoesNotMutate(t *testing.T) {
	advance := freezeClock(t)
	for _, s := range AllWorkOrderStatuses() {
		if s == WorkOrderStatusPending {
			continue
		}
		snap := newTestWorkOrder(t).Snapshot()
		snap.Status = s
		wo := RestoreWorkOrder(snap)
		before := wo.UpdatedAt()
		advance(time.Second)

		require.ErrorIs(t, wo.ApproveByCustomer(), ErrInvalidOperation)
		assert.Equal(t, s, wo.Status())
		assert.False(t, wo.CustomerApproval())
		assert.Equal(t, before, wo.UpdatedAt())
	}
}

func TestWorkOrder_Services(t *testing.T) {
	wo := newTestWorkOrder(t)

	require.NoError(t, wo.AddService(newTestService(t, "oil", 1, 120, 30)))
	require.NoError(t, wo.AddService(newTestService(t, "align", 2, 90, 45)))
	assert.Equal(t, "300.00", wo.EstimatedCost().String())

	err := wo.AddService(newTestService(t, "oil", 1, 999, 10))
	require.ErrorIs(t, err, ErrDuplicateService)
	assert.Equal(t, "300.00", wo.EstimatedCost().String())

	require.NoError(t, wo.UpdateService("align", UpdateServiceInput{Quantity: intPtr(1)}))
	assert.Equal(t, "210.00", wo.EstimatedCost().String())

	require.NoError(t, wo.UpdateService("align", UpdateServiceInput{UnitPrice: floatPtr(100), Notes: stringPtr("check tyres")}))
	svc, ok := wo.Service("align")
	require.True(t, ok)
	assert.Equal(t, "100.00", svc.TotalPrice().String())
	assert.Equal(t, "check tyres", svc.TechnicianNotes())
	assert.Equal(t, "220.00", wo.EstimatedCost().String())

	err = wo.UpdateService("align", UpdateServiceInput{Quantity: intPtr(5), UnitPrice: floatPtr(-1)})
	require.ErrorIs(t, err, ErrInvalidPrice)
	svc, _ = wo.Service("align")
	assert.Equal(t, 1, svc.Quantity())
	assert.Equal(t, "220.00", wo.EstimatedCost().String())

	require.ErrorIs(t, wo.UpdateService("nope", UpdateServiceInput{}), ErrServiceNotFound)
	require.ErrorIs(t, wo.RemoveService("nope"), ErrServiceNotFound)
	require.ErrorIs(t, wo.StartService("nope"), ErrServiceNotFound)
	require.ErrorIs(t, wo.CompleteService("nope", ""), ErrServiceNotFound)
	require.ErrorIs(t, wo.CancelService("nope"), ErrServiceNotFound)

	require.NoError(t, wo.CancelService("oil"))
	assert.Equal(t, "100.00", wo.EstimatedCost().String())

	require.NoError(t, wo.RemoveService("oil"))
	assert.Len(t, wo.Services(), 1)
	assert.Equal(t, "100.00", wo.EstimatedCost().String())
}

func TestWorkOrder_ServiceErrorsPropagate(t *testing.T) {
	wo := newTestWorkOrder(t)
	require.NoError(t, wo.AddService(newTestService(t, "oil", 1, 120, 30)))

	require.ErrorIs(t, wo.CompleteService("oil", ""), ErrInvalidTransition)
	require.NoError(t, wo.StartService("oil"))
	require.ErrorIs(t, wo.StartService("oil"), ErrInvalidTransition)
	require.NoError(t, wo.UpdateStatus(WorkOrderStatusInProgress))
	require.NoError(t, wo.CompleteService("oil", ""))
	require.ErrorIs(t, wo.CancelService("oil"), ErrInvalidTransition)
}

func TestWorkOrder_ServicesAreOwnedByTheOrder(t *testing.T) {
	wo := newTestWorkOrder(t)
	svc := newTestService(t, "oil", 1, 120, 30)
	require.NoError(t, wo.AddService(svc))

	require.NoError(t, svc.UpdateQuantity(10))
	assert.Equal(t, "120.00", wo.EstimatedCost().String())

	copies := wo.Services()
	require.NoError(t, copies[0].UpdateQuantity(10))
	assert.Equal(t, "120.00", wo.EstimatedCost().String())
}

func TestWorkOrder_CompletingAllServicesCompletesOrder(t *testing.T) {
	freezeClock(t)
	wo := newTestWorkOrder(t)
	require.NoError(t, wo.AddService(newTestService(t, "a", 1, 100, 30)))
	require.NoError(t, wo.AddService(newTestService(t, "b", 1, 50, 30)))
	require.NoError(t, wo.UpdateStatus(WorkOrderStatusInProgress))

	require.NoError(t, wo.StartService("a"))
	require.NoError(t, wo.StartService("b"))
	require.NoError(t, wo.CompleteService("a", "done"))

	assert.Equal(t, WorkOrderStatusInProgress, wo.Status())
	assert.Equal(t, 50, wo.CompletionPercentage())
	require.NotNil(t, wo.ActualCost())
	assert.Equal(t, "100.00", wo.ActualCost().String())
	assert.Equal(t, "100.00", wo.LaborCost().String())

	require.NoError(t, wo.CompleteService("b", ""))
	assert.Equal(t, WorkOrderStatusCompleted, wo.Status())
	assert.NotNil(t, wo.CompletedAt())
	assert.Equal(t, 100, wo.CompletionPercentage())
	assert.True(t, wo.AreAllServicesCompleted())
	assert.Equal(t, "150.00", wo.ActualCost().String())
}

func TestWorkOrder_CompletionWithCancelledServices(t *testing.T) {
	wo := newTestWorkOrder(t)
	require.NoError(t, wo.AddService(newTestService(t, "a", 1, 100, 30)))
	require.NoError(t, wo.AddService(newTestService(t, "b", 1, 50, 30)))

	require.NoError(t, wo.CancelService("b"))
	assert.Equal(t, WorkOrderStatusPending, wo.Status())

	require.NoError(t, wo.StartService("a"))
	require.NoError(t, wo.CompleteService("a", ""))
	assert.Equal(t, WorkOrderStatusCompleted, wo.Status())
	assert.False(t, wo.AreAllServicesCompleted())
}

func TestWorkOrder_CancellingEverythingDoesNotComplete(t *testing.T) {
	wo := newTestWorkOrder(t)
	require.NoError(t, wo.AddService(newTestService(t, "a", 1, 100, 30)))
	require.NoError(t, wo.AddService(newTestService(t, "b", 1, 50, 30)))

	require.NoError(t, wo.CancelService("a"))
	require.NoError(t, wo.CancelService("b"))

	assert.Equal(t, WorkOrderStatusPending, wo.Status())
	assert.Nil(t, wo.CompletedAt())
	assert.True(t, wo.EstimatedCost().IsZero())
	assert.Nil(t, wo.ActualCost())
}

func TestWorkOrder_CompletingServiceOnCancelledOrderKeepsStatus(t *testing.T) {
	wo := newTestWorkOrder(t)
	require.NoError(t, wo.AddService(newTestService(t, "a", 1, 100, 30)))
	require.NoError(t, wo.StartService("a"))
	require.NoError(t, wo.UpdateStatus(WorkOrderStatusCancelled))

	require.NoError(t, wo.CompleteService("a", ""))
	assert.Equal(t, WorkOrderStatusCancelled, wo.Status())
	assert.Nil(t, wo.CompletedAt())
}

func TestWorkOrder_Parts(t *testing.T) {
	wo := newTestWorkOrder(t)

	require.NoError(t, wo.AddPart(newTestPart(t, "pad", 2, 80)))
	require.NoError(t, wo.AddPart(newTestPart(t, "pad", 1, 999)))
	p, ok := wo.Part("pad")
	require.True(t, ok)
	assert.Equal(t, 3, p.Quantity())
	assert.Equal(t, "240.00", wo.EstimatedCost().String())
	assert.Len(t, wo.Parts(), 1)

	require.NoError(t, wo.UpdatePartQuantity("pad", 1))
	assert.Equal(t, "80.00", wo.EstimatedCost().String())

	require.NoError(t, wo.UpdatePartQuantity("pad", 0))
	_, ok = wo.Part("pad")
	assert.False(t, ok)
	assert.True(t, wo.EstimatedCost().IsZero())

	require.ErrorIs(t, wo.UpdatePartQuantity("pad", 1), ErrPartNotFound)
	require.ErrorIs(t, wo.RemovePart("pad"), ErrPartNotFound)
	require.ErrorIs(t, wo.ApprovePart("pad"), ErrPartNotFound)
	require.ErrorIs(t, wo.ApplyPart("pad"), ErrPartNotFound)

	require.NoError(t, wo.AddPart(newTestPart(t, "filter", 1, 40)))
	require.NoError(t, wo.UpdatePartQuantity("filter", -3))
	assert.Empty(t, wo.Parts())
}

func TestWorkOrder_AddPartMergeRequiresNewApproval(t *testing.T) {
	wo := newTestWorkOrder(t)
	require.NoError(t, wo.AddPart(newTestPart(t, "pad", 1, 100)))
	require.NoError(t, wo.ApprovePart("pad"))
	require.NoError(t, wo.ApplyPart("pad"))
	require.NotNil(t, wo.ActualCost())
	assert.Equal(t, "100.00", wo.ActualCost().String())

	require.NoError(t, wo.AddPart(newTestPart(t, "pad", 4, 100)))

	p, ok := wo.Part("pad")
	require.True(t, ok)
	assert.Equal(t, 5, p.Quantity())
	assert.False(t, p.IsApproved())
	assert.False(t, p.IsApplied())
	assert.Equal(t, "500.00", wo.EstimatedCost().String())
	assert.True(t, wo.PartsCost().IsZero())
	assert.Nil(t, wo.ActualCost())

	require.ErrorIs(t, wo.ApplyPart("pad"), ErrPartNotApproved)
	require.NoError(t, wo.ApprovePart("pad"))
	require.NoError(t, wo.ApplyPart("pad"))
	assert.Equal(t, "500.00", wo.PartsCost().String())
	assert.Equal(t, "500.00", wo.ActualCost().String())
}

func TestWorkOrder_ApplyPartRequiresApproval(t *testing.T) {
	wo := newTestWorkOrder(t)
	require.NoError(t, wo.AddPart(newTestPart(t, "pad", 1, 80)))
	require.NoError(t, wo.AddPart(newTestPart(t, "disc", 1, 200)))

	require.ErrorIs(t, wo.ApplyPart("pad"), ErrPartNotApproved)
	require.NoError(t, wo.ApprovePart("disc"))
	require.ErrorIs(t, wo.ApplyPart("pad"), ErrPartNotApproved)
	assert.False(t, wo.AreAllPartsApproved())

	require.NoError(t, wo.ApprovePart("pad"))
	assert.True(t, wo.AreAllPartsApproved())
	require.NoError(t, wo.ApplyPart("pad"))
	require.NoError(t, wo.ApplyPart("pad"))

	assert.Equal(t, "80.00", wo.PartsCost().String())
	assert.Equal(t, "80.00", wo.AppliedPartsCost().String())
	require.NotNil(t, wo.ActualCost())
	assert.Equal(t, "80.00", wo.ActualCost().String())
}

func TestWorkOrder_PartScenario(t *testing.T) {
	wo := newTestWorkOrder(t)
	assert.True(t, wo.EstimatedCost().IsZero())

	require.NoError(t, wo.AddPart(newTestPart(t, "pad", 2, 150.00)))
	assert.Equal(t, "300.00", wo.EstimatedCost().String())

	require.NoError(t, wo.ApprovePart("pad"))
	require.NoError(t, wo.ApplyPart("pad"))

	require.NotNil(t, wo.ActualCost())
	assert.Equal(t, "300.00", wo.ActualCost().String())
	assert.Equal(t, "300.00", wo.PartsCost().String())
	assert.True(t, wo.LaborCost().IsZero())
}

func TestWorkOrder_EstimatedHours(t *testing.T) {
	wo := newTestWorkOrder(t)
	require.NoError(t, wo.AddService(newTestService(t, "a", 1, 10, 30)))
	require.NoError(t, wo.AddService(newTestService(t, "b", 1, 10, 90)))
	assert.Equal(t, 2, wo.EstimatedHours())

	require.NoError(t, wo.AddService(newTestService(t, "c", 1, 10, 1)))
	assert.Equal(t, 3, wo.EstimatedHours())
}

func TestWorkOrder_EstimatedHoursFallsBackToCost(t *testing.T) {
	wo, err := NewWorkOrder(WorkOrderProps{ID: "w", CustomerID: "c", VehicleID: "v", Description: "d", EstimatedCost: 250})
	require.NoError(t, err)
	assert.Equal(t, 3, wo.EstimatedHours())

	require.NoError(t, wo.UpdateEstimatedCost(0))
	assert.Equal(t, 0, wo.EstimatedHours())
}

func TestWorkOrder_EstimatedCostIsOrderIndependent(t *testing.T) {
	type op func(t *testing.T, wo *WorkOrder)

	ops := []op{
		func(t *testing.T, wo *WorkOrder) { require.NoError(t, wo.AddService(newTestService(t, "a", 2, 45.5, 30))) },
		func(t *testing.T, wo *WorkOrder) { require.NoError(t, wo.AddService(newTestService(t, "b", 1, 99.99, 30))) },
		func(t *testing.T, wo *WorkOrder) { require.NoError(t, wo.AddPart(newTestPart(t, "p", 3, 12.3))) },
		func(t *testing.T, wo *WorkOrder) { require.NoError(t, wo.AddPart(newTestPart(t, "q", 1, 0.7))) },
	}
	orders := [][]int{{0, 1, 2, 3}, {3, 2, 1, 0}, {2, 0, 3, 1}, {1, 3, 0, 2}}

	var first string
	for _, order := range orders {
		wo := newTestWorkOrder(t)
		for _, i := range order {
			ops[i](t, wo)
		}
		got := wo.EstimatedCost().String()
		want := wo.TotalServicesCost().Add(wo.TotalPartsCost()).String()
		assert.Equal(t, want, got)
		if first == "" {
			first = got
		}
		assert.Equal(t, first, got)
	}
	assert.Equal(t, "228.59", first)
}

func TestWorkOrder_UpdateEstimatedCost(t *testing.T) {
	wo := newTestWorkOrder(t)
	require.NoError(t, wo.UpdateEstimatedCost(500))
	assert.Equal(t, "500.00", wo.EstimatedCost().String())
	require.ErrorIs(t, wo.UpdateEstimatedCost(-1), ErrInvalidAmount)

	require.NoError(t, wo.AddPart(newTestPart(t, "pad", 1, 80)))
	require.ErrorIs(t, wo.UpdateEstimatedCost(10), ErrInvalidOperation)
	assert.Equal(t, "80.00", wo.EstimatedCost().String())
}

func TestWorkOrder_TextFields(t *testing.T) {
	wo := newTestWorkOrder(t)

	wo.AddDiagnosis("  worn pads ")
	assert.Equal(t, "worn pads", wo.Diagnosis())

	wo.AddTechnicianNotes("first note")
	wo.AddTechnicianNotes("second note")
	assert.Equal(t, "second note", wo.TechnicianNotes())

	require.NoError(t, wo.UpdateDescription("Noise and vibration"))
	assert.Equal(t, "Noise and vibration", wo.Description())
	require.ErrorIs(t, wo.UpdateDescription(""), ErrInvalidDescription)

	date := time.Date(2024, 6, 1, 18, 0, 0, 0, time.UTC)
	wo.SetEstimatedCompletionDate(date)
	require.NotNil(t, wo.EstimatedCompletionDate())
	assert.True(t, date.Equal(*wo.EstimatedCompletionDate()))
}

func TestWorkOrder_SnapshotRoundTrip(t *testing.T) {
	freezeClock(t)
	wo := newTestWorkOrder(t)
	require.NoError(t, wo.AddService(newTestService(t, "a", 1, 100, 30)))
	require.NoError(t, wo.AddPart(newTestPart(t, "pad", 2, 80)))
	require.NoError(t, wo.ApprovePart("pad"))
	require.NoError(t, wo.ApplyPart("pad"))
	require.NoError(t, wo.StartService("a"))

	restored := RestoreWorkOrder(wo.Snapshot())
	assert.Equal(t, wo.Snapshot(), restored.Snapshot())
}

func TestWorkOrder_QueryHelpersWithoutItems(t *testing.T) {
	wo := newTestWorkOrder(t)
	assert.Equal(t, 0, wo.CompletionPercentage())
	assert.True(t, wo.TotalServicesCost().IsZero())
	assert.True(t, wo.TotalPartsCost().IsZero())
	assert.True(t, wo.AppliedPartsCost().IsZero())
	assert.False(t, wo.IsReadyToStart())
	assert.False(t, wo.IsCompleted())
}
