package repository

import (
	"context"
	"fmt"

	"mecanica_workorders/internal/domain/entities"
	"mecanica_workorders/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultCustomersTableName = "customers"
	defaultVehiclesTableName  = "vehicles"
)

// CustomerDynamoReader reads customers from the table shared with the customer service.
//
// Table requirements:
//   - PK: id (string)

type CustomerDynamoReader struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.ICustomerReader = (*CustomerDynamoReader)(nil)

func NewCustomerDynamoReader(ddb DynamoDBAPI) *CustomerDynamoReader {
	return &CustomerDynamoReader{
		ddb:       ddb,
		tableName: getenvDefault("CUSTOMERS_TABLE", defaultCustomersTableName),
	}
}

func (r *CustomerDynamoReader) FindByID(ctx context.Context, customerID string) (*entities.Customer, error) {
	var c entities.Customer
	found, err := getByID(ctx, r.ddb, r.tableName, customerID, &c)
	if err != nil || !found {
		return nil, err
	}
	return &c, nil
}

// VehicleDynamoReader reads vehicles from the table shared with the vehicle service.
type VehicleDynamoReader struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IVehicleReader = (*VehicleDynamoReader)(nil)

func NewVehicleDynamoReader(ddb DynamoDBAPI) *VehicleDynamoReader {
	return &VehicleDynamoReader{
		ddb:       ddb,
		tableName: getenvDefault("VEHICLES_TABLE", defaultVehiclesTableName),
	}
}

func (r *VehicleDynamoReader) FindByID(ctx context.Context, vehicleID string) (*entities.Vehicle, error) {
	var v entities.Vehicle
	found, err := getByID(ctx, r.ddb, r.tableName, vehicleID, &v)
	if err != nil || !found {
		return nil, err
	}
	return &v, nil
}

func getByID(ctx context.Context, ddb DynamoDBAPI, table, id string, out any) (bool, error) {
	res, err := ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(table),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return false, fmt.Errorf("get %s item: %w", table, err)
	}
	if len(res.Item) == 0 {
		return false, nil
	}
	if err := attributevalue.UnmarshalMap(res.Item, out); err != nil {
		return false, fmt.Errorf("unmarshal %s item: %w", table, err)
	}
	return true, nil
}
