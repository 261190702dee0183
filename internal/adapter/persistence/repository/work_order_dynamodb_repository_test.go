package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"mecanica_workorders/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildWorkOrder(t *testing.T) *entities.WorkOrder {
	t.Helper()
	eta := time.Date(2024, 8, 1, 17, 30, 0, 0, time.UTC)
	wo, err := entities.NewWorkOrder(entities.WorkOrderProps{
		ID:                      "wo-1",
		CustomerID:              "cust-1",
		VehicleID:               "veh-1",
		Description:             "Brake service",
		EstimatedCompletionDate: &eta,
	})
	require.NoError(t, err)

	for _, props := range []entities.WorkOrderServiceProps{
		{ServiceID: "svc-b", ServiceName: "Bleed brakes", Quantity: 1, UnitPrice: 90.25, EstimatedDuration: 40},
		{ServiceID: "svc-a", ServiceName: "Replace pads", Quantity: 2, UnitPrice: 60, EstimatedDuration: 30},
	} {
		svc, err := entities.NewWorkOrderService(props)
		require.NoError(t, err)
		require.NoError(t, wo.AddService(svc))
	}
	part, err := entities.NewWorkOrderPart(entities.WorkOrderPartProps{
		PartID: "pad", PartName: "Brake pad", PartNumber: "BP-1", Quantity: 4, UnitPrice: 37.125, Notes: "front",
	})
	require.NoError(t, err)
	require.NoError(t, wo.AddPart(part))
	require.NoError(t, wo.ApprovePart("pad"))
	require.NoError(t, wo.ApplyPart("pad"))
	require.NoError(t, wo.UpdateStatus(entities.WorkOrderStatusInProgress))
	require.NoError(t, wo.StartService("svc-a"))
	require.NoError(t, wo.CompleteService("svc-a", "done"))
	wo.AddDiagnosis("Pads worn out")
	return wo
}

func TestWorkOrderDynamoRepository_SaveAndFind(t *testing.T) {
	ddb := newFakeDynamoDB()
	repo := NewWorkOrderDynamoRepository(ddb)
	ctx := context.Background()

	wo := buildWorkOrder(t)
	_, err := repo.Save(ctx, wo)
	require.NoError(t, err)
	require.Len(t, ddb.transactions, 1)
	assert.Len(t, ddb.transactions[0].TransactItems, 4)

	got, err := repo.FindByID(ctx, "wo-1")
	require.NoError(t, err)
	require.NotNil(t, got)

	want := wo.Snapshot()
	snap := got.Snapshot()
	assert.Equal(t, want.CustomerID, snap.CustomerID)
	assert.Equal(t, want.Status, snap.Status)
	assert.Equal(t, want.Diagnosis, snap.Diagnosis)
	assert.Equal(t, want.EstimatedCost.String(), snap.EstimatedCost.String())
	require.NotNil(t, snap.ActualCost)
	assert.Equal(t, want.ActualCost.String(), snap.ActualCost.String())
	assert.Equal(t, want.LaborCost.String(), snap.LaborCost.String())
	assert.Equal(t, want.PartsCost.String(), snap.PartsCost.String())
	assert.True(t, want.CreatedAt.Equal(snap.CreatedAt))
	assert.True(t, want.UpdatedAt.Equal(snap.UpdatedAt))
	assert.True(t, want.EstimatedCompletionDate.Equal(*snap.EstimatedCompletionDate))
	assert.Nil(t, snap.CompletedAt)

	require.Len(t, snap.Services, 2)
	assert.Equal(t, "svc-b", snap.Services[0].ServiceID)
	assert.Equal(t, "svc-a", snap.Services[1].ServiceID)
	assert.Equal(t, entities.ServiceItemStatusCompleted, snap.Services[1].Status)
	assert.Equal(t, "done", snap.Services[1].TechnicianNotes)
	require.NotNil(t, snap.Services[1].CompletedAt)

	require.Len(t, snap.Parts, 1)
	assert.Equal(t, "148.5", snap.Parts[0].TotalPrice.Decimal().String())
	assert.Equal(t, "37.125", snap.Parts[0].UnitPrice.Decimal().String())
	assert.True(t, snap.Parts[0].IsApproved)
	assert.NotNil(t, snap.Parts[0].AppliedAt)
	assert.Equal(t, "BP-1", snap.Parts[0].PartNumber)
}

func TestWorkOrderDynamoRepository_FindByIDMissing(t *testing.T) {
	repo := NewWorkOrderDynamoRepository(newFakeDynamoDB())
	got, err := repo.FindByID(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestWorkOrderDynamoRepository_SaveReplacesItems(t *testing.T) {
	ddb := newFakeDynamoDB()
	repo := NewWorkOrderDynamoRepository(ddb)
	ctx := context.Background()

	wo := buildWorkOrder(t)
	_, err := repo.Save(ctx, wo)
	require.NoError(t, err)

	require.NoError(t, wo.RemoveService("svc-b"))
	require.NoError(t, wo.RemovePart("pad"))
	_, err = repo.Save(ctx, wo)
	require.NoError(t, err)

	last := ddb.transactions[len(ddb.transactions)-1]
	deletes := 0
	for _, action := range last.TransactItems {
		if action.Delete != nil {
			deletes++
		}
	}
	assert.Equal(t, 2, deletes)
	assert.Len(t, ddb.tables[defaultWorkOrderItemsTableName], 1)

	got, err := repo.FindByID(ctx, "wo-1")
	require.NoError(t, err)
	require.Len(t, got.Services(), 1)
	assert.Empty(t, got.Parts())
	assert.Equal(t, "120.00", got.EstimatedCost().String())
}

func TestWorkOrderDynamoRepository_Delete(t *testing.T) {
	ddb := newFakeDynamoDB()
	repo := NewWorkOrderDynamoRepository(ddb)
	ctx := context.Background()

	_, err := repo.Save(ctx, buildWorkOrder(t))
	require.NoError(t, err)
	require.NoError(t, repo.Delete(ctx, "wo-1"))

	assert.Empty(t, ddb.tables[defaultWorkOrdersTableName])
	assert.Empty(t, ddb.tables[defaultWorkOrderItemsTableName])
}

func TestWorkOrderDynamoRepository_TransactionErrors(t *testing.T) {
	t.Run("write failure", func(t *testing.T) {
		ddb := newFakeDynamoDB()
		ddb.transactErr = errors.New("TransactionCanceledException")
		repo := NewWorkOrderDynamoRepository(ddb)

		_, err := repo.Save(context.Background(), buildWorkOrder(t))
		require.Error(t, err)
		assert.ErrorIs(t, err, ddb.transactErr)
	})

	t.Run("too many items", func(t *testing.T) {
		ddb := newFakeDynamoDB()
		repo := NewWorkOrderDynamoRepository(ddb)

		wo := buildWorkOrder(t)
		for i := 0; i < maxTransactItems; i++ {
			part, err := entities.NewWorkOrderPart(entities.WorkOrderPartProps{PartID: fmt.Sprintf("p-%d", i), Quantity: 1, UnitPrice: 1})
			require.NoError(t, err)
			require.NoError(t, wo.AddPart(part))
		}

		_, err := repo.Save(context.Background(), wo)
		require.ErrorIs(t, err, ErrTransactionTooLarge)
		assert.Empty(t, ddb.transactions)
	})
}

func TestWorkOrderDynamoRepository_TableNamesFromEnv(t *testing.T) {
	t.Setenv("WORK_ORDERS_TABLE", "wo_custom")
	t.Setenv("WORK_ORDER_ITEMS_TABLE", "wo_items_custom")

	repo := NewWorkOrderDynamoRepository(newFakeDynamoDB())
	assert.Equal(t, "wo_custom", repo.tableName)
	assert.Equal(t, "wo_items_custom", repo.itemsTableName)
}
