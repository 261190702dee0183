package entities

import (
	"fmt"
	"strings"
	"time"

	"mecanica_workorders/internal/domain/valueobjects"
)

// WorkOrderPartProps are the inputs needed to attach an inventory part to a work order.
type WorkOrderPartProps struct {
	PartID          string
	PartName        string
	PartDescription string
	PartNumber      string
	Quantity        int
	UnitPrice       float64
	Notes           string
}

// WorkOrderPart is an immutable part line item.
//
// Every "mutation" returns a new value; the work order swaps its stored copy by part id,
// so a WorkOrderPart handed out to callers never changes underneath them.
type WorkOrderPart struct {
	partID          string
	partName        string
	partDescription string
	partNumber      string
	quantity        int
	unitPrice       valueobjects.Money
	totalPrice      valueobjects.Money
	notes           string
	isApproved      bool
	appliedAt       *time.Time
}

// WorkOrderPartSnapshot is the flat persisted shape of a part line item.
type WorkOrderPartSnapshot struct {
	PartID          string
	PartName        string
	PartDescription string
	PartNumber      string
	Quantity        int
	UnitPrice       valueobjects.Money
	TotalPrice      valueobjects.Money
	Notes           string
	IsApproved      bool
	AppliedAt       *time.Time
}

func NewWorkOrderPart(props WorkOrderPartProps) (WorkOrderPart, error) {
	if strings.TrimSpace(props.PartID) == "" {
		return WorkOrderPart{}, fmt.Errorf("%w: part id is required", ErrInvalidReference)
	}
	if props.Quantity <= 0 {
		return WorkOrderPart{}, fmt.Errorf("%w: %d", ErrInvalidQuantity, props.Quantity)
	}
	unitPrice, err := newUnitPrice(props.UnitPrice)
	if err != nil {
		return WorkOrderPart{}, err
	}

	p := WorkOrderPart{
		partID:          strings.TrimSpace(props.PartID),
		partName:        props.PartName,
		partDescription: props.PartDescription,
		partNumber:      props.PartNumber,
		quantity:        props.Quantity,
		unitPrice:       unitPrice,
		notes:           props.Notes,
	}
	return p.withTotal()
}

func RestoreWorkOrderPart(s WorkOrderPartSnapshot) WorkOrderPart {
	p := WorkOrderPart{
		partID:          s.PartID,
		partName:        s.PartName,
		partDescription: s.PartDescription,
		partNumber:      s.PartNumber,
		quantity:        s.Quantity,
		unitPrice:       s.UnitPrice,
		totalPrice:      s.TotalPrice,
		notes:           s.Notes,
		isApproved:      s.IsApproved,
		appliedAt:       copyTime(s.AppliedAt),
	}
	if restored, err := p.withTotal(); err == nil {
		return restored
	}
	return p
}

func (p WorkOrderPart) Snapshot() WorkOrderPartSnapshot {
	return WorkOrderPartSnapshot{
		PartID:          p.partID,
		PartName:        p.partName,
		PartDescription: p.partDescription,
		PartNumber:      p.partNumber,
		Quantity:        p.quantity,
		UnitPrice:       p.unitPrice,
		TotalPrice:      p.totalPrice,
		Notes:           p.notes,
		IsApproved:      p.isApproved,
		AppliedAt:       copyTime(p.appliedAt),
	}
}

func (p WorkOrderPart) PartID() string { return p.partID }
func (p WorkOrderPart) PartName() string { return p.partName }
func (p WorkOrderPart) PartDescription() string { return p.partDescription }
func (p WorkOrderPart) PartNumber() string { return p.partNumber }
func (p WorkOrderPart) Quantity() int { return p.quantity }
func (p WorkOrderPart) UnitPrice() valueobjects.Money { return p.unitPrice }
func (p WorkOrderPart) TotalPrice() valueobjects.Money { return p.totalPrice }
func (p WorkOrderPart) Notes() string { return p.notes }
func (p WorkOrderPart) IsApproved() bool { return p.isApproved }
func (p WorkOrderPart) AppliedAt() *time.Time { return copyTime(p.appliedAt) }
func (p WorkOrderPart) IsApplied() bool { return p.appliedAt != nil }

func (p WorkOrderPart) UpdateQuantity(quantity int) (WorkOrderPart, error) {
	if quantity <= 0 {
		return WorkOrderPart{}, fmt.Errorf("%w: %d", ErrInvalidQuantity, quantity)
	}
	next := p.clone()
	next.quantity = quantity
	return next.withTotal()
}

func (p WorkOrderPart) UpdateUnitPrice(price float64) (WorkOrderPart, error) {
	unitPrice, err := newUnitPrice(price)
	if err != nil {
		return WorkOrderPart{}, err
	}
	next := p.clone()
	next.unitPrice = unitPrice
	return next.withTotal()
}

func (p WorkOrderPart) Approve() WorkOrderPart {
	next := p.clone()
	next.isApproved = true
	return next
}

// MarkAsApplied stamps the application time. A part that is already applied keeps its
// original timestamp. Approval is checked by the work order, not here.
func (p WorkOrderPart) MarkAsApplied() WorkOrderPart {
	next := p.clone()
	if next.appliedAt == nil {
		t := now()
		next.appliedAt = &t
	}
	return next
}

// resetApproval clears the approval and application gates.
func (p WorkOrderPart) resetApproval() WorkOrderPart {
	next := p.clone()
	next.isApproved = false
	next.appliedAt = nil
	return next
}

func (p WorkOrderPart) clone() WorkOrderPart {
	c := p
	c.appliedAt = copyTime(p.appliedAt)
	return c
}

func (p WorkOrderPart) withTotal() (WorkOrderPart, error) {
	total, err := p.unitPrice.MultiplyQuantity(p.quantity)
	if err != nil {
		return WorkOrderPart{}, err
	}
	p.totalPrice = total
	return p, nil
}
