package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"mecanica_workorders/internal/domain/entities"
	"mecanica_workorders/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrWorkOrderNotFound  = errors.New("work order not found")
	ErrInvalidWorkOrderID = errors.New("invalid work order id")
	ErrInvalidServiceID   = errors.New("invalid service id")
	ErrInvalidPartID      = errors.New("invalid part id")
)

// CreateWorkOrderInput opens a new work order for a customer's vehicle.
type CreateWorkOrderInput struct {
	CustomerID              string
	VehicleID               string
	Description             string
	EstimatedCost           float64
	EstimatedCompletionDate *time.Time
}

// IWorkOrderUseCase exposes the work order commands.
//
// Every command loads the aggregate, applies exactly one aggregate operation and saves
// the whole aggregate. When the operation changed the order status (automatic
// completion included) the customer is notified after the save.

type IWorkOrderUseCase interface {
	Create(ctx context.Context, in CreateWorkOrderInput) (*entities.WorkOrder, error)
	GetByID(ctx context.Context, id string) (*entities.WorkOrder, error)
	Delete(ctx context.Context, id string) error

	UpdateStatus(ctx context.Context, id string, status entities.WorkOrderStatus) (*entities.WorkOrder, error)
	ApproveByCustomer(ctx context.Context, id string) (*entities.WorkOrder, error)
	UpdateDescription(ctx context.Context, id, description string) (*entities.WorkOrder, error)
	AddDiagnosis(ctx context.Context, id, diagnosis string) (*entities.WorkOrder, error)
	AddTechnicianNotes(ctx context.Context, id, notes string) (*entities.WorkOrder, error)
	SetEstimatedCompletionDate(ctx context.Context, id string, date time.Time) (*entities.WorkOrder, error)
	UpdateEstimatedCost(ctx context.Context, id string, value float64) (*entities.WorkOrder, error)

	AddService(ctx context.Context, id string, props entities.WorkOrderServiceProps) (*entities.WorkOrder, error)
	UpdateService(ctx context.Context, id, serviceID string, in entities.UpdateServiceInput) (*entities.WorkOrder, error)
	RemoveService(ctx context.Context, id, serviceID string) (*entities.WorkOrder, error)
	StartService(ctx context.Context, id, serviceID string) (*entities.WorkOrder, error)
	CompleteService(ctx context.Context, id, serviceID, notes string) (*entities.WorkOrder, error)
	CancelService(ctx context.Context, id, serviceID string) (*entities.WorkOrder, error)

	AddPart(ctx context.Context, id string, props entities.WorkOrderPartProps) (*entities.WorkOrder, error)
	UpdatePartQuantity(ctx context.Context, id, partID string, quantity int) (*entities.WorkOrder, error)
	RemovePart(ctx context.Context, id, partID string) (*entities.WorkOrder, error)
	ApprovePart(ctx context.Context, id, partID string) (*entities.WorkOrder, error)
	ApplyPart(ctx context.Context, id, partID string) (*entities.WorkOrder, error)
}

type WorkOrderUseCase struct {
	repo     interfaces.IWorkOrderRepository
	notifier IWorkOrderNotificationUseCase
}

var _ IWorkOrderUseCase = (*WorkOrderUseCase)(nil)

// NewWorkOrderUseCase builds the command use-case. notifier may be nil, which disables
// status change notifications.
func NewWorkOrderUseCase(repo interfaces.IWorkOrderRepository, notifier IWorkOrderNotificationUseCase) *WorkOrderUseCase {
	return &WorkOrderUseCase{repo: repo, notifier: notifier}
}

func (u *WorkOrderUseCase) Create(ctx context.Context, in CreateWorkOrderInput) (*entities.WorkOrder, error) {
	wo, err := entities.NewWorkOrder(entities.WorkOrderProps{
		ID:                      uuid.NewString(),
		CustomerID:              in.CustomerID,
		VehicleID:               in.VehicleID,
		Description:             in.Description,
		EstimatedCost:           in.EstimatedCost,
		EstimatedCompletionDate: in.EstimatedCompletionDate,
	})
	if err != nil {
		log.Printf("[workorder][usecase] create rejected customer_id=%q vehicle_id=%q err=%v", in.CustomerID, in.VehicleID, err)
		return nil, err
	}

	saved, err := u.repo.Save(ctx, wo)
	if err != nil {
		log.Printf("[workorder][usecase] create save failed work_order_id=%s err=%v", wo.ID(), err)
		return nil, err
	}
	log.Printf("[workorder][usecase] created work_order_id=%s customer_id=%s vehicle_id=%s", saved.ID(), saved.CustomerID(), saved.VehicleID())
	return saved, nil
}

func (u *WorkOrderUseCase) GetByID(ctx context.Context, id string) (*entities.WorkOrder, error) {
	return u.load(ctx, id)
}

func (u *WorkOrderUseCase) Delete(ctx context.Context, id string) error {
	wo, err := u.load(ctx, id)
	if err != nil {
		return err
	}
	if err := u.repo.Delete(ctx, wo.ID()); err != nil {
		log.Printf("[workorder][usecase] delete failed work_order_id=%s err=%v", wo.ID(), err)
		return err
	}
	log.Printf("[workorder][usecase] deleted work_order_id=%s", wo.ID())
	return nil
}

func (u *WorkOrderUseCase) UpdateStatus(ctx context.Context, id string, status entities.WorkOrderStatus) (*entities.WorkOrder, error) {
	return u.apply(ctx, "update-status", id, func(wo *entities.WorkOrder) error {
		return wo.UpdateStatus(status)
	})
}

func (u *WorkOrderUseCase) ApproveByCustomer(ctx context.Context, id string) (*entities.WorkOrder, error) {
	return u.apply(ctx, "approve-by-customer", id, func(wo *entities.WorkOrder) error {
		return wo.ApproveByCustomer()
	})
}

func (u *WorkOrderUseCase) UpdateDescription(ctx context.Context, id, description string) (*entities.WorkOrder, error) {
	return u.apply(ctx, "update-description", id, func(wo *entities.WorkOrder) error {
		return wo.UpdateDescription(description)
	})
}

func (u *WorkOrderUseCase) AddDiagnosis(ctx context.Context, id, diagnosis string) (*entities.WorkOrder, error) {
	return u.apply(ctx, "add-diagnosis", id, func(wo *entities.WorkOrder) error {
		wo.AddDiagnosis(diagnosis)
		return nil
	})
}

func (u *WorkOrderUseCase) AddTechnicianNotes(ctx context.Context, id, notes string) (*entities.WorkOrder, error) {
	return u.apply(ctx, "add-technician-notes", id, func(wo *entities.WorkOrder) error {
		wo.AddTechnicianNotes(notes)
		return nil
	})
}

func (u *WorkOrderUseCase) SetEstimatedCompletionDate(ctx context.Context, id string, date time.Time) (*entities.WorkOrder, error) {
	return u.apply(ctx, "set-estimated-completion", id, func(wo *entities.WorkOrder) error {
		wo.SetEstimatedCompletionDate(date)
		return nil
	})
}

func (u *WorkOrderUseCase) UpdateEstimatedCost(ctx context.Context, id string, value float64) (*entities.WorkOrder, error) {
	return u.apply(ctx, "update-estimated-cost", id, func(wo *entities.WorkOrder) error {
		return wo.UpdateEstimatedCost(value)
	})
}

func (u *WorkOrderUseCase) AddService(ctx context.Context, id string, props entities.WorkOrderServiceProps) (*entities.WorkOrder, error) {
	props.ServiceID = strings.TrimSpace(props.ServiceID)
	if props.ServiceID == "" {
		return nil, ErrInvalidServiceID
	}
	svc, err := entities.NewWorkOrderService(props)
	if err != nil {
		log.Printf("[workorder][usecase] add-service rejected work_order_id=%q service_id=%s err=%v", id, props.ServiceID, err)
		return nil, err
	}
	return u.apply(ctx, "add-service", id, func(wo *entities.WorkOrder) error {
		return wo.AddService(svc)
	})
}

func (u *WorkOrderUseCase) UpdateService(ctx context.Context, id, serviceID string, in entities.UpdateServiceInput) (*entities.WorkOrder, error) {
	return u.applyToService(ctx, "update-service", id, serviceID, func(wo *entities.WorkOrder, sid string) error {
		return wo.UpdateService(sid, in)
	})
}

func (u *WorkOrderUseCase) RemoveService(ctx context.Context, id, serviceID string) (*entities.WorkOrder, error) {
	return u.applyToService(ctx, "remove-service", id, serviceID, (*entities.WorkOrder).RemoveService)
}

func (u *WorkOrderUseCase) StartService(ctx context.Context, id, serviceID string) (*entities.WorkOrder, error) {
	return u.applyToService(ctx, "start-service", id, serviceID, (*entities.WorkOrder).StartService)
}

func (u *WorkOrderUseCase) CompleteService(ctx context.Context, id, serviceID, notes string) (*entities.WorkOrder, error) {
	return u.applyToService(ctx, "complete-service", id, serviceID, func(wo *entities.WorkOrder, sid string) error {
		return wo.CompleteService(sid, notes)
	})
}

func (u *WorkOrderUseCase) CancelService(ctx context.Context, id, serviceID string) (*entities.WorkOrder, error) {
	return u.applyToService(ctx, "cancel-service", id, serviceID, (*entities.WorkOrder).CancelService)
}

func (u *WorkOrderUseCase) AddPart(ctx context.Context, id string, props entities.WorkOrderPartProps) (*entities.WorkOrder, error) {
	props.PartID = strings.TrimSpace(props.PartID)
	if props.PartID == "" {
		return nil, ErrInvalidPartID
	}
	part, err := entities.NewWorkOrderPart(props)
	if err != nil {
		log.Printf("[workorder][usecase] add-part rejected work_order_id=%q part_id=%s err=%v", id, props.PartID, err)
		return nil, err
	}
	return u.apply(ctx, "add-part", id, func(wo *entities.WorkOrder) error {
		return wo.AddPart(part)
	})
}

func (u *WorkOrderUseCase) UpdatePartQuantity(ctx context.Context, id, partID string, quantity int) (*entities.WorkOrder, error) {
	return u.applyToPart(ctx, "update-part-quantity", id, partID, func(wo *entities.WorkOrder, pid string) error {
		return wo.UpdatePartQuantity(pid, quantity)
	})
}

func (u *WorkOrderUseCase) RemovePart(ctx context.Context, id, partID string) (*entities.WorkOrder, error) {
	return u.applyToPart(ctx, "remove-part", id, partID, (*entities.WorkOrder).RemovePart)
}

func (u *WorkOrderUseCase) ApprovePart(ctx context.Context, id, partID string) (*entities.WorkOrder, error) {
	return u.applyToPart(ctx, "approve-part", id, partID, (*entities.WorkOrder).ApprovePart)
}

func (u *WorkOrderUseCase) ApplyPart(ctx context.Context, id, partID string) (*entities.WorkOrder, error) {
	return u.applyToPart(ctx, "apply-part", id, partID, (*entities.WorkOrder).ApplyPart)
}

func (u *WorkOrderUseCase) applyToService(ctx context.Context, op, id, serviceID string, fn func(*entities.WorkOrder, string) error) (*entities.WorkOrder, error) {
	serviceID = strings.TrimSpace(serviceID)
	if serviceID == "" {
		return nil, ErrInvalidServiceID
	}
	return u.apply(ctx, op, id, func(wo *entities.WorkOrder) error {
		return fn(wo, serviceID)
	})
}

func (u *WorkOrderUseCase) applyToPart(ctx context.Context, op, id, partID string, fn func(*entities.WorkOrder, string) error) (*entities.WorkOrder, error) {
	partID = strings.TrimSpace(partID)
	if partID == "" {
		return nil, ErrInvalidPartID
	}
	return u.apply(ctx, op, id, func(wo *entities.WorkOrder) error {
		return fn(wo, partID)
	})
}

// apply runs one aggregate operation inside a load/save cycle. Nothing is saved when
// the operation fails.
func (u *WorkOrderUseCase) apply(ctx context.Context, op, id string, fn func(*entities.WorkOrder) error) (*entities.WorkOrder, error) {
	wo, err := u.load(ctx, id)
	if err != nil {
		return nil, err
	}

	before := wo.Status()
	if err := fn(wo); err != nil {
		log.Printf("[workorder][usecase] %s rejected work_order_id=%s status=%s err=%v", op, wo.ID(), before, err)
		return nil, err
	}

	saved, err := u.repo.Save(ctx, wo)
	if err != nil {
		log.Printf("[workorder][usecase] %s save failed work_order_id=%s err=%v", op, wo.ID(), err)
		return nil, err
	}
	log.Printf("[workorder][usecase] %s success work_order_id=%s status=%s estimated_cost=%s", op, saved.ID(), saved.Status(), saved.EstimatedCost())

	if saved.Status() != before {
		log.Printf("[workorder][usecase] status changed work_order_id=%s from=%s to=%s", saved.ID(), before, saved.Status())
		if u.notifier != nil {
			u.notifier.NotifyStatusChange(ctx, saved)
		}
	}
	return saved, nil
}

func (u *WorkOrderUseCase) load(ctx context.Context, id string) (*entities.WorkOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrInvalidWorkOrderID
	}

	wo, err := u.repo.FindByID(ctx, id)
	if err != nil {
		log.Printf("[workorder][usecase] load failed work_order_id=%s err=%v", id, err)
		return nil, err
	}
	if wo == nil {
		return nil, ErrWorkOrderNotFound
	}
	return wo, nil
}
