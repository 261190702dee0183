package interfaces

import (
	"context"

	"mecanica_workorders/internal/domain/entities"
)

// IWorkOrderRepository abstracts DynamoDB persistence for the WorkOrder aggregate.
//
// Save always writes the header together with the full service and part collections;
// stored items that are no longer attached are removed in the same transaction.
// FindByID returns (nil, nil) when the order does not exist.

type IWorkOrderRepository interface {
	FindByID(ctx context.Context, id string) (*entities.WorkOrder, error)
	Save(ctx context.Context, wo *entities.WorkOrder) (*entities.WorkOrder, error)
	Delete(ctx context.Context, id string) error
}
