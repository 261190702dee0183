package routes

import (
	"mecanica_workorders/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathWorkOrders = "/work-orders"
)

func addWorkOrderRoutes(rg *gin.RouterGroup, h *handlers.WorkOrderHandler) {
	workOrders := rg.Group(PathWorkOrders)
	{
		workOrders.POST("", h.CreateWorkOrder)
		workOrders.GET("/:id", h.GetWorkOrder)
		workOrders.DELETE("/:id", h.DeleteWorkOrder)

		workOrders.PATCH("/:id/status", h.UpdateStatus)
		workOrders.POST("/:id/approve", h.ApproveByCustomer)
		workOrders.PATCH("/:id/description", h.UpdateDescription)
		workOrders.PATCH("/:id/diagnosis", h.AddDiagnosis)
		workOrders.PATCH("/:id/technician-notes", h.AddTechnicianNotes)
		workOrders.PATCH("/:id/estimated-completion-date", h.SetEstimatedCompletionDate)
		workOrders.PATCH("/:id/estimated-cost", h.UpdateEstimatedCost)
	}

	services := workOrders.Group("/:id/services")
	{
		services.POST("", h.AddService)
		services.PATCH("/:service_id", h.UpdateService)
		services.DELETE("/:service_id", h.RemoveService)
		services.POST("/:service_id/start", h.StartService)
		services.POST("/:service_id/complete", h.CompleteService)
		services.POST("/:service_id/cancel", h.CancelService)
	}

	parts := workOrders.Group("/:id/parts")
	{
		parts.POST("", h.AddPart)
		parts.PATCH("/:part_id", h.UpdatePartQuantity)
		parts.DELETE("/:part_id", h.RemovePart)
		parts.POST("/:part_id/approve", h.ApprovePart)
		parts.POST("/:part_id/apply", h.ApplyPart)
	}
}
