package entities

import (
	"fmt"
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"mecanica_workorders/internal/domain/valueobjects"
)

const MaxDescriptionLength = 500

// WorkOrderProps are the inputs for opening a new work order.
type WorkOrderProps struct {
	ID                      string
	CustomerID              string
	VehicleID               string
	Description             string
	EstimatedCost           float64
	EstimatedCompletionDate *time.Time
}

// WorkOrder is the aggregate root for a vehicle repair job (ordem de serviço).
//
// It owns its service and part line items and keeps every cost field consistent with
// them: after each composition change estimatedCost, laborCost, partsCost and actualCost
// are recomputed from scratch. Instances are not safe for concurrent mutation.
type WorkOrder struct {
	id                      string
	customerID              string
	vehicleID               string
	description             string
	status                  WorkOrderStatus
	estimatedCost           valueobjects.Money
	actualCost              *valueobjects.Money
	laborCost               valueobjects.Money
	partsCost               valueobjects.Money
	diagnosis               string
	technicianNotes         string
	customerApproval        bool
	estimatedCompletionDate *time.Time
	completedAt             *time.Time
	createdAt               time.Time
	updatedAt               time.Time
	services                []*WorkOrderService
	parts                   []WorkOrderPart
}

// WorkOrderSnapshot is the flat persisted shape of a work order, items included.
type WorkOrderSnapshot struct {
	ID                      string
	CustomerID              string
	VehicleID               string
	Description             string
	Status                  WorkOrderStatus
	EstimatedCost           valueobjects.Money
	ActualCost              *valueobjects.Money
	LaborCost               valueobjects.Money
	PartsCost               valueobjects.Money
	Diagnosis               string
	TechnicianNotes         string
	CustomerApproval        bool
	EstimatedCompletionDate *time.Time
	CompletedAt             *time.Time
	CreatedAt               time.Time
	UpdatedAt               time.Time
	Services                []WorkOrderServiceSnapshot
	Parts                   []WorkOrderPartSnapshot
}

// UpdateServiceInput carries the optional fields of a service update. Nil fields are left untouched.
type UpdateServiceInput struct {
	Quantity  *int
	UnitPrice *float64
	Notes     *string
}

func NewWorkOrder(props WorkOrderProps) (*WorkOrder, error) {
	if strings.TrimSpace(props.ID) == "" {
		return nil, fmt.Errorf("%w: work order id is required", ErrInvalidReference)
	}
	if strings.TrimSpace(props.CustomerID) == "" {
		return nil, fmt.Errorf("%w: customer id is required", ErrInvalidReference)
	}
	if strings.TrimSpace(props.VehicleID) == "" {
		return nil, fmt.Errorf("%w: vehicle id is required", ErrInvalidReference)
	}
	description, err := normalizeDescription(props.Description)
	if err != nil {
		return nil, err
	}
	estimated, err := valueobjects.NewMoney(props.EstimatedCost)
	if err != nil {
		return nil, err
	}

	t := now()
	return &WorkOrder{
		id:                      strings.TrimSpace(props.ID),
		customerID:              strings.TrimSpace(props.CustomerID),
		vehicleID:               strings.TrimSpace(props.VehicleID),
		description:             description,
		status:                  WorkOrderStatusPending,
		estimatedCost:           estimated,
		laborCost:               valueobjects.ZeroMoney(),
		partsCost:               valueobjects.ZeroMoney(),
		estimatedCompletionDate: copyTime(props.EstimatedCompletionDate),
		createdAt:               t,
		updatedAt:               t,
	}, nil
}

// RestoreWorkOrder rebuilds an aggregate loaded from storage. Timestamps are kept as stored.
func RestoreWorkOrder(s WorkOrderSnapshot) *WorkOrder {
	w := &WorkOrder{
		id:                      s.ID,
		customerID:              s.CustomerID,
		vehicleID:               s.VehicleID,
		description:             s.Description,
		status:                  s.Status,
		estimatedCost:           s.EstimatedCost,
		actualCost:              copyMoney(s.ActualCost),
		laborCost:               s.LaborCost,
		partsCost:               s.PartsCost,
		diagnosis:               s.Diagnosis,
		technicianNotes:         s.TechnicianNotes,
		customerApproval:        s.CustomerApproval,
		estimatedCompletionDate: copyTime(s.EstimatedCompletionDate),
		completedAt:             copyTime(s.CompletedAt),
		createdAt:               s.CreatedAt,
		updatedAt:               s.UpdatedAt,
		services:                make([]*WorkOrderService, 0, len(s.Services)),
		parts:                   make([]WorkOrderPart, 0, len(s.Parts)),
	}
	if w.status == "" {
		w.status = WorkOrderStatusPending
	}
	for _, svc := range s.Services {
		w.services = append(w.services, RestoreWorkOrderService(svc))
	}
	for _, p := range s.Parts {
		w.parts = append(w.parts, RestoreWorkOrderPart(p))
	}
	if len(w.services) > 0 || len(w.parts) > 0 {
		w.recalculateCosts()
	}
	return w
}

func (w *WorkOrder) Snapshot() WorkOrderSnapshot {
	s := WorkOrderSnapshot{
		ID:                      w.id,
		CustomerID:              w.customerID,
		VehicleID:               w.vehicleID,
		Description:             w.description,
		Status:                  w.status,
		EstimatedCost:           w.estimatedCost,
		ActualCost:              copyMoney(w.actualCost),
		LaborCost:               w.laborCost,
		PartsCost:               w.partsCost,
		Diagnosis:               w.diagnosis,
		TechnicianNotes:         w.technicianNotes,
		CustomerApproval:        w.customerApproval,
		EstimatedCompletionDate: copyTime(w.estimatedCompletionDate),
		CompletedAt:             copyTime(w.completedAt),
		CreatedAt:               w.createdAt,
		UpdatedAt:               w.updatedAt,
		Services:                make([]WorkOrderServiceSnapshot, 0, len(w.services)),
		Parts:                   make([]WorkOrderPartSnapshot, 0, len(w.parts)),
	}
	for _, svc := range w.services {
		s.Services = append(s.Services, svc.Snapshot())
	}
	for _, p := range w.parts {
		s.Parts = append(s.Parts, p.Snapshot())
	}
	return s
}

func (w *WorkOrder) ID() string { return w.id }
func (w *WorkOrder) CustomerID() string { return w.customerID }
func (w *WorkOrder) VehicleID() string { return w.vehicleID }
func (w *WorkOrder) Description() string { return w.description }
func (w *WorkOrder) Status() WorkOrderStatus { return w.status }
func (w *WorkOrder) EstimatedCost() valueobjects.Money { return w.estimatedCost }
func (w *WorkOrder) ActualCost() *valueobjects.Money { return copyMoney(w.actualCost) }
func (w *WorkOrder) LaborCost() valueobjects.Money { return w.laborCost }
func (w *WorkOrder) PartsCost() valueobjects.Money { return w.partsCost }
func (w *WorkOrder) Diagnosis() string { return w.diagnosis }
func (w *WorkOrder) TechnicianNotes() string { return w.technicianNotes }
func (w *WorkOrder) CustomerApproval() bool { return w.customerApproval }
func (w *WorkOrder) EstimatedCompletionDate() *time.Time { return copyTime(w.estimatedCompletionDate) }
func (w *WorkOrder) CompletedAt() *time.Time { return copyTime(w.completedAt) }
func (w *WorkOrder) CreatedAt() time.Time { return w.createdAt }
func (w *WorkOrder) UpdatedAt() time.Time { return w.updatedAt }

// Services returns copies of the service items in insertion order.
func (w *WorkOrder) Services() []WorkOrderService {
	out := make([]WorkOrderService, 0, len(w.services))
	for _, svc := range w.services {
		out = append(out, *RestoreWorkOrderService(svc.Snapshot()))
	}
	return out
}

func (w *WorkOrder) Parts() []WorkOrderPart {
	out := make([]WorkOrderPart, len(w.parts))
	copy(out, w.parts)
	return out
}

func (w *WorkOrder) Service(serviceID string) (WorkOrderService, bool) {
	svc, _ := w.findService(serviceID)
	if svc == nil {
		return WorkOrderService{}, false
	}
	return *RestoreWorkOrderService(svc.Snapshot()), true
}

func (w *WorkOrder) Part(partID string) (WorkOrderPart, bool) {
	i := w.findPart(partID)
	if i < 0 {
		return WorkOrderPart{}, false
	}
	return w.parts[i], true
}

// UpdateStatus moves the order along the transition table. The table is checked
// before anything is touched, so a rejected change leaves the order unchanged.
func (w *WorkOrder) UpdateStatus(to WorkOrderStatus) error {
	if !IsStatusTransitionAllowed(w.status, to) {
		return &StatusTransitionError{From: w.status, To: to}
	}
	w.setStatus(to)
	w.touch()
	return nil
}

// ApproveByCustomer records the customer's approval of a PENDING order.
func (w *WorkOrder) ApproveByCustomer() error {
	if w.status != WorkOrderStatusPending {
		return fmt.Errorf("%w: customer approval requires status %s, got %s", ErrInvalidOperation, WorkOrderStatusPending, w.status)
	}
	w.customerApproval = true
	w.status = WorkOrderStatusApproved
	w.touch()
	return nil
}

func (w *WorkOrder) UpdateDescription(description string) error {
	d, err := normalizeDescription(description)
	if err != nil {
		return err
	}
	w.description = d
	w.touch()
	return nil
}

func (w *WorkOrder) AddDiagnosis(diagnosis string) {
	w.diagnosis = strings.TrimSpace(diagnosis)
	w.touch()
}

// AddTechnicianNotes replaces the current notes; history is not kept.
func (w *WorkOrder) AddTechnicianNotes(notes string) {
	w.technicianNotes = strings.TrimSpace(notes)
	w.touch()
}

func (w *WorkOrder) SetEstimatedCompletionDate(date time.Time) {
	d := date.UTC()
	w.estimatedCompletionDate = &d
	w.touch()
}

// UpdateEstimatedCost is only allowed while no items are attached; afterwards the
// estimate is always derived from the items.
func (w *WorkOrder) UpdateEstimatedCost(value float64) error {
	if len(w.services) > 0 || len(w.parts) > 0 {
		return fmt.Errorf("%w: estimated cost is derived from services and parts", ErrInvalidOperation)
	}
	m, err := valueobjects.NewMoney(value)
	if err != nil {
		return err
	}
	w.estimatedCost = m
	w.touch()
	return nil
}

func (w *WorkOrder) AddService(service *WorkOrderService) error {
	if service == nil {
		return fmt.Errorf("%w: service is required", ErrInvalidReference)
	}
	if existing, _ := w.findService(service.ServiceID()); existing != nil {
		return fmt.Errorf("%w: service_id=%s", ErrDuplicateService, service.ServiceID())
	}
	w.services = append(w.services, RestoreWorkOrderService(service.Snapshot()))
	w.afterCompositionChange()
	return nil
}

func (w *WorkOrder) RemoveService(serviceID string) error {
	_, i := w.findService(serviceID)
	if i < 0 {
		return fmt.Errorf("%w: service_id=%s", ErrServiceNotFound, serviceID)
	}
	w.services = append(w.services[:i], w.services[i+1:]...)
	w.afterCompositionChange()
	return nil
}

// UpdateService applies the provided fields to a working copy first, so an invalid
// field leaves the stored item untouched.
func (w *WorkOrder) UpdateService(serviceID string, in UpdateServiceInput) error {
	svc, i := w.findService(serviceID)
	if svc == nil {
		return fmt.Errorf("%w: service_id=%s", ErrServiceNotFound, serviceID)
	}
	next := RestoreWorkOrderService(svc.Snapshot())
	if in.Quantity != nil {
		if err := next.UpdateQuantity(*in.Quantity); err != nil {
			return err
		}
	}
	if in.UnitPrice != nil {
		if err := next.UpdateUnitPrice(*in.UnitPrice); err != nil {
			return err
		}
	}
	if in.Notes != nil {
		next.UpdateNotes(*in.Notes)
	}
	w.services[i] = next
	w.afterCompositionChange()
	return nil
}

func (w *WorkOrder) StartService(serviceID string) error {
	svc, _ := w.findService(serviceID)
	if svc == nil {
		return fmt.Errorf("%w: service_id=%s", ErrServiceNotFound, serviceID)
	}
	if err := svc.Start(); err != nil {
		return err
	}
	w.afterCompositionChange()
	return nil
}

// CompleteService finishes one service. Once every service is either completed or
// cancelled, the whole order moves to COMPLETED.
func (w *WorkOrder) CompleteService(serviceID, notes string) error {
	svc, _ := w.findService(serviceID)
	if svc == nil {
		return fmt.Errorf("%w: service_id=%s", ErrServiceNotFound, serviceID)
	}
	if err := svc.Complete(notes); err != nil {
		return err
	}
	w.afterCompositionChange()

	if w.allServicesFinished() && w.canAutoComplete() {
		w.setStatus(WorkOrderStatusCompleted)
	}
	return nil
}

func (w *WorkOrder) CancelService(serviceID string) error {
	svc, _ := w.findService(serviceID)
	if svc == nil {
		return fmt.Errorf("%w: service_id=%s", ErrServiceNotFound, serviceID)
	}
	if err := svc.Cancel(); err != nil {
		return err
	}
	w.afterCompositionChange()
	return nil
}

// AddPart attaches a part. Adding a part id that is already attached sums the
// quantities on the existing item and keeps its price. The added units have not been
// approved or installed, so the merged item needs approval and application again.
func (w *WorkOrder) AddPart(part WorkOrderPart) error {
	if part.PartID() == "" {
		return fmt.Errorf("%w: part id is required", ErrInvalidReference)
	}
	if i := w.findPart(part.PartID()); i >= 0 {
		merged, err := w.parts[i].UpdateQuantity(w.parts[i].Quantity() + part.Quantity())
		if err != nil {
			return err
		}
		w.parts[i] = merged.resetApproval()
	} else {
		w.parts = append(w.parts, part)
	}
	w.afterCompositionChange()
	return nil
}

func (w *WorkOrder) RemovePart(partID string) error {
	i := w.findPart(partID)
	if i < 0 {
		return fmt.Errorf("%w: part_id=%s", ErrPartNotFound, partID)
	}
	w.parts = append(w.parts[:i], w.parts[i+1:]...)
	w.afterCompositionChange()
	return nil
}

// UpdatePartQuantity sets a new quantity; zero or less removes the part.
func (w *WorkOrder) UpdatePartQuantity(partID string, quantity int) error {
	i := w.findPart(partID)
	if i < 0 {
		return fmt.Errorf("%w: part_id=%s", ErrPartNotFound, partID)
	}
	if quantity <= 0 {
		return w.RemovePart(partID)
	}
	updated, err := w.parts[i].UpdateQuantity(quantity)
	if err != nil {
		return err
	}
	w.parts[i] = updated
	w.afterCompositionChange()
	return nil
}

func (w *WorkOrder) ApprovePart(partID string) error {
	i := w.findPart(partID)
	if i < 0 {
		return fmt.Errorf("%w: part_id=%s", ErrPartNotFound, partID)
	}
	w.parts[i] = w.parts[i].Approve()
	w.afterCompositionChange()
	return nil
}

func (w *WorkOrder) ApplyPart(partID string) error {
	i := w.findPart(partID)
	if i < 0 {
		return fmt.Errorf("%w: part_id=%s", ErrPartNotFound, partID)
	}
	if !w.parts[i].IsApproved() {
		return fmt.Errorf("%w: part_id=%s", ErrPartNotApproved, partID)
	}
	w.parts[i] = w.parts[i].MarkAsApplied()
	w.afterCompositionChange()
	return nil
}

// TotalServicesCost sums the services that still count towards the estimate.
func (w *WorkOrder) TotalServicesCost() valueobjects.Money {
	total := valueobjects.ZeroMoney()
	for _, svc := range w.services {
		if !svc.IsCancelled() {
			total = total.Add(svc.TotalPrice())
		}
	}
	return total
}

func (w *WorkOrder) TotalPartsCost() valueobjects.Money {
	total := valueobjects.ZeroMoney()
	for _, p := range w.parts {
		total = total.Add(p.TotalPrice())
	}
	return total
}

func (w *WorkOrder) AppliedPartsCost() valueobjects.Money {
	total := valueobjects.ZeroMoney()
	for _, p := range w.parts {
		if p.IsApplied() {
			total = total.Add(p.TotalPrice())
		}
	}
	return total
}

func (w *WorkOrder) CompletedServicesCost() valueobjects.Money {
	total := valueobjects.ZeroMoney()
	for _, svc := range w.services {
		if svc.IsCompleted() {
			total = total.Add(svc.TotalPrice())
		}
	}
	return total
}

// CompletionPercentage is the rounded share of completed services, 0 without services.
func (w *WorkOrder) CompletionPercentage() int {
	if len(w.services) == 0 {
		return 0
	}
	completed := 0
	for _, svc := range w.services {
		if svc.IsCompleted() {
			completed++
		}
	}
	return int(math.Round(float64(completed) / float64(len(w.services)) * 100))
}

func (w *WorkOrder) AreAllServicesCompleted() bool {
	for _, svc := range w.services {
		if !svc.IsCompleted() {
			return false
		}
	}
	return true
}

func (w *WorkOrder) AreAllPartsApproved() bool {
	for _, p := range w.parts {
		if !p.IsApproved() {
			return false
		}
	}
	return true
}

func (w *WorkOrder) IsReadyToStart() bool {
	return w.status == WorkOrderStatusApproved && w.customerApproval
}

func (w *WorkOrder) IsCompleted() bool {
	return w.status == WorkOrderStatusCompleted || w.status == WorkOrderStatusDelivered
}

// EstimatedHours rounds the total service minutes up to hours. Without services it
// falls back to one hour per 100 of estimated cost.
func (w *WorkOrder) EstimatedHours() int {
	if len(w.services) > 0 {
		minutes := 0
		for _, svc := range w.services {
			minutes += svc.EstimatedDuration()
		}
		return int(math.Ceil(float64(minutes) / 60))
	}
	return int(math.Ceil(w.estimatedCost.Float64() / 100))
}

func (w *WorkOrder) afterCompositionChange() {
	w.recalculateCosts()
	w.touch()
}

func (w *WorkOrder) recalculateCosts() {
	w.estimatedCost = w.TotalServicesCost().Add(w.TotalPartsCost())
	w.laborCost = w.CompletedServicesCost()
	w.partsCost = w.AppliedPartsCost()

	if w.hasCompletedOrApplied() {
		actual := w.laborCost.Add(w.partsCost)
		w.actualCost = &actual
	} else {
		w.actualCost = nil
	}
}

func (w *WorkOrder) hasCompletedOrApplied() bool {
	for _, svc := range w.services {
		if svc.IsCompleted() {
			return true
		}
	}
	for _, p := range w.parts {
		if p.IsApplied() {
			return true
		}
	}
	return false
}

func (w *WorkOrder) allServicesFinished() bool {
	if len(w.services) == 0 {
		return false
	}
	for _, svc := range w.services {
		if !svc.IsCompleted() && !svc.IsCancelled() {
			return false
		}
	}
	return true
}

func (w *WorkOrder) canAutoComplete() bool {
	return !w.status.IsTerminal() && w.status != WorkOrderStatusCompleted
}

func (w *WorkOrder) setStatus(status WorkOrderStatus) {
	w.status = status
	if status == WorkOrderStatusCompleted {
		t := now()
		w.completedAt = &t
	}
}

func (w *WorkOrder) touch() {
	w.updatedAt = now()
}

func (w *WorkOrder) findService(serviceID string) (*WorkOrderService, int) {
	for i, svc := range w.services {
		if svc.ServiceID() == serviceID {
			return svc, i
		}
	}
	return nil, -1
}

func (w *WorkOrder) findPart(partID string) int {
	for i, p := range w.parts {
		if p.PartID() == partID {
			return i
		}
	}
	return -1
}

func normalizeDescription(description string) (string, error) {
	d := strings.TrimSpace(description)
	if d == "" {
		return "", fmt.Errorf("%w: description is required", ErrInvalidDescription)
	}
	if utf8.RuneCountInString(d) > MaxDescriptionLength {
		return "", fmt.Errorf("%w: description exceeds %d characters", ErrInvalidDescription, MaxDescriptionLength)
	}
	return d, nil
}

func copyMoney(m *valueobjects.Money) *valueobjects.Money {
	if m == nil {
		return nil
	}
	c := *m
	return &c
}
