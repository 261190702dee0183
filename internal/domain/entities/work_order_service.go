package entities

import (
	"fmt"
	"math"
	"strings"
	"time"

	"mecanica_workorders/internal/domain/valueobjects"
)

// ServiceItemStatus is the execution state of a single service inside a work order.
type ServiceItemStatus string

const (
	ServiceItemStatusPending    ServiceItemStatus = "PENDING"
	ServiceItemStatusInProgress ServiceItemStatus = "IN_PROGRESS"
	ServiceItemStatusCompleted  ServiceItemStatus = "COMPLETED"
	ServiceItemStatusCancelled  ServiceItemStatus = "CANCELLED"
)

// now is swapped in tests that need deterministic timestamps.
var now = func() time.Time { return time.Now().UTC() }

// WorkOrderServiceProps are the inputs needed to attach a catalog service to a work order.
// Name and description are snapshots of the catalog at attach time.
type WorkOrderServiceProps struct {
	ServiceID          string
	ServiceName        string
	ServiceDescription string
	Quantity           int
	UnitPrice          float64
	EstimatedDuration  int
}

// WorkOrderService is a service line item. It is owned by exactly one WorkOrder and
// only mutated through the aggregate.
type WorkOrderService struct {
	serviceID          string
	serviceName        string
	serviceDescription string
	quantity           int
	unitPrice          valueobjects.Money
	totalPrice         valueobjects.Money
	estimatedDuration  int
	status             ServiceItemStatus
	startedAt          *time.Time
	completedAt        *time.Time
	technicianNotes    string
}

// WorkOrderServiceSnapshot is the flat persisted shape of a service line item.
type WorkOrderServiceSnapshot struct {
	ServiceID          string
	ServiceName        string
	ServiceDescription string
	Quantity           int
	UnitPrice          valueobjects.Money
	TotalPrice         valueobjects.Money
	EstimatedDuration  int
	Status             ServiceItemStatus
	StartedAt          *time.Time
	CompletedAt        *time.Time
	TechnicianNotes    string
}

func NewWorkOrderService(props WorkOrderServiceProps) (*WorkOrderService, error) {
	if strings.TrimSpace(props.ServiceID) == "" {
		return nil, fmt.Errorf("%w: service id is required", ErrInvalidReference)
	}
	if props.Quantity <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidQuantity, props.Quantity)
	}
	if props.EstimatedDuration < 0 {
		return nil, fmt.Errorf("%w: estimated duration %d", ErrInvalidQuantity, props.EstimatedDuration)
	}
	unitPrice, err := newUnitPrice(props.UnitPrice)
	if err != nil {
		return nil, err
	}

	s := &WorkOrderService{
		serviceID:          strings.TrimSpace(props.ServiceID),
		serviceName:        props.ServiceName,
		serviceDescription: props.ServiceDescription,
		quantity:           props.Quantity,
		unitPrice:          unitPrice,
		estimatedDuration:  props.EstimatedDuration,
		status:             ServiceItemStatusPending,
	}
	if err := s.recalculateTotal(); err != nil {
		return nil, err
	}
	return s, nil
}

// RestoreWorkOrderService rebuilds an item from storage without re-running transitions.
func RestoreWorkOrderService(s WorkOrderServiceSnapshot) *WorkOrderService {
	item := &WorkOrderService{
		serviceID:          s.ServiceID,
		serviceName:        s.ServiceName,
		serviceDescription: s.ServiceDescription,
		quantity:           s.Quantity,
		unitPrice:          s.UnitPrice,
		totalPrice:         s.TotalPrice,
		estimatedDuration:  s.EstimatedDuration,
		status:             s.Status,
		startedAt:          copyTime(s.StartedAt),
		completedAt:        copyTime(s.CompletedAt),
		technicianNotes:    s.TechnicianNotes,
	}
	if item.status == "" {
		item.status = ServiceItemStatusPending
	}
	// Totals are derived; never trust the stored value.
	_ = item.recalculateTotal()
	return item
}

func (s *WorkOrderService) Snapshot() WorkOrderServiceSnapshot {
	return WorkOrderServiceSnapshot{
		ServiceID:          s.serviceID,
		ServiceName:        s.serviceName,
		ServiceDescription: s.serviceDescription,
		Quantity:           s.quantity,
		UnitPrice:          s.unitPrice,
		TotalPrice:         s.totalPrice,
		EstimatedDuration:  s.estimatedDuration,
		Status:             s.status,
		StartedAt:          copyTime(s.startedAt),
		CompletedAt:        copyTime(s.completedAt),
		TechnicianNotes:    s.technicianNotes,
	}
}

func (s *WorkOrderService) ServiceID() string { return s.serviceID }
func (s *WorkOrderService) ServiceName() string { return s.serviceName }
func (s *WorkOrderService) ServiceDescription() string { return s.serviceDescription }
func (s *WorkOrderService) Quantity() int { return s.quantity }
func (s *WorkOrderService) UnitPrice() valueobjects.Money { return s.unitPrice }
func (s *WorkOrderService) TotalPrice() valueobjects.Money { return s.totalPrice }
func (s *WorkOrderService) EstimatedDuration() int { return s.estimatedDuration }
func (s *WorkOrderService) Status() ServiceItemStatus { return s.status }
func (s *WorkOrderService) StartedAt() *time.Time { return copyTime(s.startedAt) }
func (s *WorkOrderService) CompletedAt() *time.Time { return copyTime(s.completedAt) }
func (s *WorkOrderService) TechnicianNotes() string { return s.technicianNotes }
func (s *WorkOrderService) IsCompleted() bool { return s.status == ServiceItemStatusCompleted }
func (s *WorkOrderService) IsCancelled() bool { return s.status == ServiceItemStatusCancelled }

func (s *WorkOrderService) UpdateQuantity(quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidQuantity, quantity)
	}
	s.quantity = quantity
	return s.recalculateTotal()
}

func (s *WorkOrderService) UpdateUnitPrice(price float64) error {
	unitPrice, err := newUnitPrice(price)
	if err != nil {
		return err
	}
	s.unitPrice = unitPrice
	return s.recalculateTotal()
}

func (s *WorkOrderService) UpdateNotes(notes string) {
	s.technicianNotes = notes
}

func (s *WorkOrderService) Start() error {
	if s.status != ServiceItemStatusPending {
		return fmt.Errorf("%w: cannot start service %s in status %s", ErrInvalidTransition, s.serviceID, s.status)
	}
	t := now()
	s.status = ServiceItemStatusInProgress
	s.startedAt = &t
	return nil
}

// Complete finishes an in-progress service. Empty notes keep the previous ones.
func (s *WorkOrderService) Complete(notes string) error {
	if s.status != ServiceItemStatusInProgress {
		return fmt.Errorf("%w: cannot complete service %s in status %s", ErrInvalidTransition, s.serviceID, s.status)
	}
	t := now()
	s.status = ServiceItemStatusCompleted
	s.completedAt = &t
	if notes != "" {
		s.technicianNotes = notes
	}
	return nil
}

func (s *WorkOrderService) Cancel() error {
	if s.status == ServiceItemStatusCompleted {
		return fmt.Errorf("%w: cannot cancel completed service %s", ErrInvalidTransition, s.serviceID)
	}
	s.status = ServiceItemStatusCancelled
	return nil
}

// ActualDuration returns the worked minutes, or false when the service has not run start to finish.
func (s *WorkOrderService) ActualDuration() (int, bool) {
	if s.startedAt == nil || s.completedAt == nil {
		return 0, false
	}
	return int(math.Round(s.completedAt.Sub(*s.startedAt).Minutes())), true
}

func (s *WorkOrderService) recalculateTotal() error {
	total, err := s.unitPrice.MultiplyQuantity(s.quantity)
	if err != nil {
		return err
	}
	s.totalPrice = total
	return nil
}

func newUnitPrice(price float64) (valueobjects.Money, error) {
	m, err := valueobjects.NewMoney(price)
	if err != nil {
		return valueobjects.Money{}, fmt.Errorf("%w: %v", ErrInvalidPrice, price)
	}
	return m, nil
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
