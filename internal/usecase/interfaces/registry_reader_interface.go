package interfaces

import (
	"context"

	"mecanica_workorders/internal/domain/entities"
)

// ICustomerReader reads customers owned by another service. Absent customers are (nil, nil).
type ICustomerReader interface {
	FindByID(ctx context.Context, customerID string) (*entities.Customer, error)
}

// IVehicleReader reads vehicles owned by another service. Absent vehicles are (nil, nil).
type IVehicleReader interface {
	FindByID(ctx context.Context, vehicleID string) (*entities.Vehicle, error)
}
