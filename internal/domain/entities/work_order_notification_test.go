package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWorkOrderStatusNotification(t *testing.T) {
	customer := Customer{ID: "cust-1", Name: "Ana", Email: "ana@example.com"}
	vehicle := Vehicle{ID: "veh-1", Brand: "Fiat", Model: "Uno", Plate: "ABC1D23"}

	t.Run("uses estimate while nothing is done", func(t *testing.T) {
		wo := newTestWorkOrder(t)
		require.NoError(t, wo.AddPart(newTestPart(t, "pad", 2, 150)))
		require.NoError(t, wo.UpdateStatus(WorkOrderStatusInProgress))

		n := NewWorkOrderStatusNotification(wo, customer, vehicle)
		assert.Equal(t, "wo-1", n.WorkOrderID)
		assert.Equal(t, "ana@example.com", n.CustomerEmail)
		assert.Equal(t, "ABC1D23", n.VehiclePlate)
		assert.Equal(t, WorkOrderStatusInProgress, n.Status)
		assert.Equal(t, 300.0, n.TotalValue)
		assert.Equal(t, StatusMessage(WorkOrderStatusInProgress), n.StatusMessage)
		assert.Nil(t, n.EstimatedCompletionDate)
	})

	t.Run("prefers actual cost", func(t *testing.T) {
		wo := newTestWorkOrder(t)
		require.NoError(t, wo.AddPart(newTestPart(t, "pad", 2, 150)))
		require.NoError(t, wo.AddPart(newTestPart(t, "disc", 1, 400)))
		require.NoError(t, wo.ApprovePart("pad"))
		require.NoError(t, wo.ApplyPart("pad"))
		wo.SetEstimatedCompletionDate(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))

		n := NewWorkOrderStatusNotification(wo, customer, vehicle)
		assert.Equal(t, 300.0, n.TotalValue)
		require.NotNil(t, n.EstimatedCompletionDate)
	})
}
