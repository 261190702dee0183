package handlers

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"strings"

	request "mecanica_workorders/internal/adapter/http/dto/request"
	response "mecanica_workorders/internal/adapter/http/dto/response"
	"mecanica_workorders/internal/domain/entities"
	"mecanica_workorders/internal/usecase"
	"mecanica_workorders/pkg"

	"github.com/gin-gonic/gin"
)

const (
	ParamWorkOrderID = "id"
	ParamServiceID   = "service_id"
	ParamPartID      = "part_id"
)

var (
	errInvalidWorkOrderPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errInvalidStatus           = pkg.NewDomainErrorSimple("INVALID_STATUS", "Unknown work order status", http.StatusBadRequest)
)

// WorkOrderHandler handles HTTP requests for work orders and their service and part items.
type WorkOrderHandler struct {
	usecase usecase.IWorkOrderUseCase
}

func NewWorkOrderHandler(uc usecase.IWorkOrderUseCase) *WorkOrderHandler {
	return &WorkOrderHandler{usecase: uc}
}

// CreateWorkOrder godoc
// @Summary      Open a work order
// @Tags         work-orders
// @Accept       json
// @Produce      json
// @Param        payload  body      request.CreateWorkOrderRequest  true  "Work order"
// @Success      201      {object}  response.WorkOrderResponse
// @Failure      400      {object}  pkg.HTTPError
// @Router       /work-orders [post]
func (h *WorkOrderHandler) CreateWorkOrder(c *gin.Context) {
	var payload request.CreateWorkOrderRequest
	if !bindJSON(c, &payload) {
		return
	}

	wo, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		writeWorkOrderError(c, "create", "", err)
		return
	}
	c.JSON(http.StatusCreated, response.FromWorkOrder(wo))
}

// GetWorkOrder godoc
// @Summary      Get a work order
// @Tags         work-orders
// @Produce      json
// @Param        id   path      string  true  "Work order ID"
// @Success      200  {object}  response.WorkOrderResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /work-orders/{id} [get]
func (h *WorkOrderHandler) GetWorkOrder(c *gin.Context) {
	id := c.Param(ParamWorkOrderID)
	wo, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		writeWorkOrderError(c, "get", id, err)
		return
	}
	c.JSON(http.StatusOK, response.FromWorkOrder(wo))
}

// DeleteWorkOrder godoc
// @Summary      Delete a work order
// @Tags         work-orders
// @Param        id   path  string  true  "Work order ID"
// @Success      204
// @Failure      404  {object}  pkg.HTTPError
// @Router       /work-orders/{id} [delete]
func (h *WorkOrderHandler) DeleteWorkOrder(c *gin.Context) {
	id := c.Param(ParamWorkOrderID)
	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		writeWorkOrderError(c, "delete", id, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// UpdateStatus godoc
// @Summary      Change the work order status
// @Tags         work-orders
// @Accept       json
// @Produce      json
// @Param        id       path      string                       true  "Work order ID"
// @Param        payload  body      request.UpdateStatusRequest  true  "Target status"
// @Success      200      {object}  response.WorkOrderResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      409      {object}  pkg.HTTPError
// @Router       /work-orders/{id}/status [patch]
func (h *WorkOrderHandler) UpdateStatus(c *gin.Context) {
	var payload request.UpdateStatusRequest
	if !bindJSON(c, &payload) {
		return
	}
	status := payload.ResolveStatus()
	if !status.IsValid() {
		c.JSON(errInvalidStatus.HTTPStatus, errInvalidStatus.ToHTTPError())
		return
	}
	h.run(c, "update-status", func(ctx context.Context, id string) (*entities.WorkOrder, error) {
		return h.usecase.UpdateStatus(ctx, id, status)
	})
}

// ApproveByCustomer godoc
// @Summary      Record the customer approval
// @Tags         work-orders
// @Produce      json
// @Param        id   path      string  true  "Work order ID"
// @Success      200  {object}  response.WorkOrderResponse
// @Failure      422  {object}  pkg.HTTPError
// @Router       /work-orders/{id}/approve [post]
func (h *WorkOrderHandler) ApproveByCustomer(c *gin.Context) {
	h.run(c, "approve-by-customer", h.usecase.ApproveByCustomer)
}

// UpdateDescription godoc
// @Summary      Replace the problem description
// @Tags         work-orders
// @Accept       json
// @Produce      json
// @Param        id       path      string                            true  "Work order ID"
// @Param        payload  body      request.UpdateDescriptionRequest  true  "Description"
// @Success      200      {object}  response.WorkOrderResponse
// @Router       /work-orders/{id}/description [patch]
func (h *WorkOrderHandler) UpdateDescription(c *gin.Context) {
	var payload request.UpdateDescriptionRequest
	if !bindJSON(c, &payload) {
		return
	}
	h.run(c, "update-description", func(ctx context.Context, id string) (*entities.WorkOrder, error) {
		return h.usecase.UpdateDescription(ctx, id, payload.Description)
	})
}

// AddDiagnosis godoc
// @Summary      Record the diagnosis
// @Tags         work-orders
// @Accept       json
// @Produce      json
// @Param        id       path      string                    true  "Work order ID"
// @Param        payload  body      request.DiagnosisRequest  true  "Diagnosis"
// @Success      200      {object}  response.WorkOrderResponse
// @Router       /work-orders/{id}/diagnosis [patch]
func (h *WorkOrderHandler) AddDiagnosis(c *gin.Context) {
	var payload request.DiagnosisRequest
	if !bindJSON(c, &payload) {
		return
	}
	h.run(c, "add-diagnosis", func(ctx context.Context, id string) (*entities.WorkOrder, error) {
		return h.usecase.AddDiagnosis(ctx, id, payload.Diagnosis)
	})
}

// AddTechnicianNotes godoc
// @Summary      Replace the technician notes
// @Tags         work-orders
// @Accept       json
// @Produce      json
// @Param        id       path      string                          true  "Work order ID"
// @Param        payload  body      request.TechnicianNotesRequest  true  "Notes"
// @Success      200      {object}  response.WorkOrderResponse
// @Router       /work-orders/{id}/technician-notes [patch]
func (h *WorkOrderHandler) AddTechnicianNotes(c *gin.Context) {
	var payload request.TechnicianNotesRequest
	if !bindJSON(c, &payload) {
		return
	}
	h.run(c, "add-technician-notes", func(ctx context.Context, id string) (*entities.WorkOrder, error) {
		return h.usecase.AddTechnicianNotes(ctx, id, payload.Notes)
	})
}

// SetEstimatedCompletionDate godoc
// @Summary      Set the estimated completion date
// @Tags         work-orders
// @Accept       json
// @Produce      json
// @Param        id       path      string                                  true  "Work order ID"
// @Param        payload  body      request.EstimatedCompletionDateRequest  true  "Date"
// @Success      200      {object}  response.WorkOrderResponse
// @Router       /work-orders/{id}/estimated-completion-date [patch]
func (h *WorkOrderHandler) SetEstimatedCompletionDate(c *gin.Context) {
	var payload request.EstimatedCompletionDateRequest
	if !bindJSON(c, &payload) {
		return
	}
	h.run(c, "set-estimated-completion", func(ctx context.Context, id string) (*entities.WorkOrder, error) {
		return h.usecase.SetEstimatedCompletionDate(ctx, id, payload.EstimatedCompletionDate)
	})
}

// UpdateEstimatedCost godoc
// @Summary      Set the estimate of an order without items
// @Tags         work-orders
// @Accept       json
// @Produce      json
// @Param        id       path      string                        true  "Work order ID"
// @Param        payload  body      request.EstimatedCostRequest  true  "Estimated cost"
// @Success      200      {object}  response.WorkOrderResponse
// @Failure      422      {object}  pkg.HTTPError
// @Router       /work-orders/{id}/estimated-cost [patch]
func (h *WorkOrderHandler) UpdateEstimatedCost(c *gin.Context) {
	var payload request.EstimatedCostRequest
	if !bindJSON(c, &payload) {
		return
	}
	h.run(c, "update-estimated-cost", func(ctx context.Context, id string) (*entities.WorkOrder, error) {
		return h.usecase.UpdateEstimatedCost(ctx, id, *payload.EstimatedCost)
	})
}

// AddService godoc
// @Summary      Attach a service
// @Tags         work-order-services
// @Accept       json
// @Produce      json
// @Param        id       path      string                     true  "Work order ID"
// @Param        payload  body      request.AddServiceRequest  true  "Service"
// @Success      200      {object}  response.WorkOrderResponse
// @Failure      409      {object}  pkg.HTTPError
// @Router       /work-orders/{id}/services [post]
func (h *WorkOrderHandler) AddService(c *gin.Context) {
	var payload request.AddServiceRequest
	if !bindJSON(c, &payload) {
		return
	}
	h.run(c, "add-service", func(ctx context.Context, id string) (*entities.WorkOrder, error) {
		return h.usecase.AddService(ctx, id, payload.ToProps())
	})
}

// UpdateService godoc
// @Summary      Update quantity, price or notes of a service
// @Tags         work-order-services
// @Accept       json
// @Produce      json
// @Param        id          path      string                        true  "Work order ID"
// @Param        service_id  path      string                        true  "Service ID"
// @Param        payload     body      request.UpdateServiceRequest  true  "Fields to change"
// @Success      200         {object}  response.WorkOrderResponse
// @Failure      404         {object}  pkg.HTTPError
// @Router       /work-orders/{id}/services/{service_id} [patch]
func (h *WorkOrderHandler) UpdateService(c *gin.Context) {
	var payload request.UpdateServiceRequest
	if !bindJSON(c, &payload) {
		return
	}
	if payload.IsEmpty() {
		c.JSON(errInvalidWorkOrderPayload.HTTPStatus, errInvalidWorkOrderPayload.ToHTTPError())
		return
	}
	serviceID := c.Param(ParamServiceID)
	h.run(c, "update-service", func(ctx context.Context, id string) (*entities.WorkOrder, error) {
		return h.usecase.UpdateService(ctx, id, serviceID, payload.ToInput())
	})
}

// RemoveService godoc
// @Summary      Detach a service
// @Tags         work-order-services
// @Produce      json
// @Param        id          path      string  true  "Work order ID"
// @Param        service_id  path      string  true  "Service ID"
// @Success      200         {object}  response.WorkOrderResponse
// @Router       /work-orders/{id}/services/{service_id} [delete]
func (h *WorkOrderHandler) RemoveService(c *gin.Context) {
	h.runOnItem(c, "remove-service", ParamServiceID, h.usecase.RemoveService)
}

// StartService godoc
// @Summary      Start a service
// @Tags         work-order-services
// @Produce      json
// @Param        id          path      string  true  "Work order ID"
// @Param        service_id  path      string  true  "Service ID"
// @Success      200         {object}  response.WorkOrderResponse
// @Router       /work-orders/{id}/services/{service_id}/start [post]
func (h *WorkOrderHandler) StartService(c *gin.Context) {
	h.runOnItem(c, "start-service", ParamServiceID, h.usecase.StartService)
}

// CompleteService godoc
// @Summary      Complete a service
// @Description  The order is completed automatically once every service is completed or cancelled.
// @Tags         work-order-services
// @Accept       json
// @Produce      json
// @Param        id          path      string                          true   "Work order ID"
// @Param        service_id  path      string                          true   "Service ID"
// @Param        payload     body      request.CompleteServiceRequest  false  "Technician notes"
// @Success      200         {object}  response.WorkOrderResponse
// @Router       /work-orders/{id}/services/{service_id}/complete [post]
func (h *WorkOrderHandler) CompleteService(c *gin.Context) {
	var payload request.CompleteServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(errInvalidWorkOrderPayload.HTTPStatus, errInvalidWorkOrderPayload.ToHTTPError())
		return
	}
	h.runOnItem(c, "complete-service", ParamServiceID, func(ctx context.Context, id, serviceID string) (*entities.WorkOrder, error) {
		return h.usecase.CompleteService(ctx, id, serviceID, payload.Notes)
	})
}

// CancelService godoc
// @Summary      Cancel a service
// @Tags         work-order-services
// @Produce      json
// @Param        id          path      string  true  "Work order ID"
// @Param        service_id  path      string  true  "Service ID"
// @Success      200         {object}  response.WorkOrderResponse
// @Router       /work-orders/{id}/services/{service_id}/cancel [post]
func (h *WorkOrderHandler) CancelService(c *gin.Context) {
	h.runOnItem(c, "cancel-service", ParamServiceID, h.usecase.CancelService)
}

// AddPart godoc
// @Summary      Attach a part, merging quantities for a part already attached
// @Tags         work-order-parts
// @Accept       json
// @Produce      json
// @Param        id       path      string                  true  "Work order ID"
// @Param        payload  body      request.AddPartRequest  true  "Part"
// @Success      200      {object}  response.WorkOrderResponse
// @Router       /work-orders/{id}/parts [post]
func (h *WorkOrderHandler) AddPart(c *gin.Context) {
	var payload request.AddPartRequest
	if !bindJSON(c, &payload) {
		return
	}
	h.run(c, "add-part", func(ctx context.Context, id string) (*entities.WorkOrder, error) {
		return h.usecase.AddPart(ctx, id, payload.ToProps())
	})
}

// UpdatePartQuantity godoc
// @Summary      Change a part quantity; zero removes the part
// @Tags         work-order-parts
// @Accept       json
// @Produce      json
// @Param        id       path      string                             true  "Work order ID"
// @Param        part_id  path      string                             true  "Part ID"
// @Param        payload  body      request.UpdatePartQuantityRequest  true  "Quantity"
// @Success      200      {object}  response.WorkOrderResponse
// @Router       /work-orders/{id}/parts/{part_id} [patch]
func (h *WorkOrderHandler) UpdatePartQuantity(c *gin.Context) {
	var payload request.UpdatePartQuantityRequest
	if !bindJSON(c, &payload) {
		return
	}
	h.runOnItem(c, "update-part-quantity", ParamPartID, func(ctx context.Context, id, partID string) (*entities.WorkOrder, error) {
		return h.usecase.UpdatePartQuantity(ctx, id, partID, *payload.Quantity)
	})
}

// RemovePart godoc
// @Summary      Detach a part
// @Tags         work-order-parts
// @Produce      json
// @Param        id       path      string  true  "Work order ID"
// @Param        part_id  path      string  true  "Part ID"
// @Success      200      {object}  response.WorkOrderResponse
// @Router       /work-orders/{id}/parts/{part_id} [delete]
func (h *WorkOrderHandler) RemovePart(c *gin.Context) {
	h.runOnItem(c, "remove-part", ParamPartID, h.usecase.RemovePart)
}

// ApprovePart godoc
// @Summary      Approve a part
// @Tags         work-order-parts
// @Produce      json
// @Param        id       path      string  true  "Work order ID"
// @Param        part_id  path      string  true  "Part ID"
// @Success      200      {object}  response.WorkOrderResponse
// @Router       /work-orders/{id}/parts/{part_id}/approve [post]
func (h *WorkOrderHandler) ApprovePart(c *gin.Context) {
	h.runOnItem(c, "approve-part", ParamPartID, h.usecase.ApprovePart)
}

// ApplyPart godoc
// @Summary      Mark an approved part as installed
// @Tags         work-order-parts
// @Produce      json
// @Param        id       path      string  true  "Work order ID"
// @Param        part_id  path      string  true  "Part ID"
// @Success      200      {object}  response.WorkOrderResponse
// @Failure      422      {object}  pkg.HTTPError
// @Router       /work-orders/{id}/parts/{part_id}/apply [post]
func (h *WorkOrderHandler) ApplyPart(c *gin.Context) {
	h.runOnItem(c, "apply-part", ParamPartID, h.usecase.ApplyPart)
}

func (h *WorkOrderHandler) run(
	c *gin.Context,
	op string,
	cmd func(ctx context.Context, id string) (*entities.WorkOrder, error),
) {
	id := c.Param(ParamWorkOrderID)
	wo, err := cmd(c.Request.Context(), id)
	if err != nil {
		writeWorkOrderError(c, op, id, err)
		return
	}
	c.JSON(http.StatusOK, response.FromWorkOrder(wo))
}

func (h *WorkOrderHandler) runOnItem(
	c *gin.Context,
	op, itemParam string,
	cmd func(ctx context.Context, id, itemID string) (*entities.WorkOrder, error),
) {
	itemID := c.Param(itemParam)
	h.run(c, op, func(ctx context.Context, id string) (*entities.WorkOrder, error) {
		return cmd(ctx, id, itemID)
	})
}

func bindJSON(c *gin.Context, payload any) bool {
	if err := c.ShouldBindJSON(payload); err != nil {
		log.Printf("[workorder][handler] invalid payload path=%s err=%v", c.FullPath(), err)
		c.JSON(errInvalidWorkOrderPayload.HTTPStatus, errInvalidWorkOrderPayload.ToHTTPError())
		return false
	}
	return true
}

func writeWorkOrderError(c *gin.Context, op, id string, err error) {
	appErr := mapWorkOrderError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		log.Printf("[workorder][handler] %s failed work_order_id=%s err=%v", op, strings.TrimSpace(id), err)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapWorkOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidWorkOrderID),
		errors.Is(err, usecase.ErrInvalidServiceID),
		errors.Is(err, usecase.ErrInvalidPartID),
		errors.Is(err, entities.ErrInvalidReference):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, entities.ErrInvalidAmount),
		errors.Is(err, entities.ErrInvalidPrice):
		return pkg.NewDomainErrorSimple("INVALID_AMOUNT", "Amounts must be zero or positive", http.StatusBadRequest)
	case errors.Is(err, entities.ErrInvalidQuantity):
		return pkg.NewDomainErrorSimple("INVALID_QUANTITY", "Invalid quantity", http.StatusBadRequest)
	case errors.Is(err, entities.ErrInvalidDescription):
		return pkg.NewDomainErrorSimple("INVALID_DESCRIPTION", "Description must have between 1 and 500 characters", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrWorkOrderNotFound):
		return pkg.NewDomainErrorSimple("WORK_ORDER_NOT_FOUND", "Work order not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrServiceNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", "Service not found in work order", http.StatusNotFound)
	case errors.Is(err, entities.ErrPartNotFound):
		return pkg.NewDomainErrorSimple("PART_NOT_FOUND", "Part not found in work order", http.StatusNotFound)
	case errors.Is(err, entities.ErrDuplicateService):
		return pkg.NewDomainErrorSimple("SERVICE_ALREADY_ADDED", "Service already added to work order", http.StatusConflict)
	case errors.Is(err, entities.ErrInvalidStatusTransition):
		return pkg.NewDomainErrorSimple("INVALID_STATUS_TRANSITION", err.Error(), http.StatusConflict)
	case errors.Is(err, entities.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_SERVICE_TRANSITION", "Service cannot move to the requested state", http.StatusConflict)
	case errors.Is(err, entities.ErrPartNotApproved):
		return pkg.NewDomainErrorSimple("PART_NOT_APPROVED", "Part must be approved before it is applied", http.StatusUnprocessableEntity)
	case errors.Is(err, entities.ErrInvalidOperation):
		return pkg.NewDomainErrorSimple("INVALID_OPERATION", "Operation not allowed for the current work order state", http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
