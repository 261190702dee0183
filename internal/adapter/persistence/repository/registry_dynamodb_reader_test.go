package repository

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomerDynamoReader_FindByID(t *testing.T) {
	ddb := newFakeDynamoDB()
	ddb.put(defaultCustomersTableName, map[string]types.AttributeValue{
		"id":    &types.AttributeValueMemberS{Value: "cust-1"},
		"name":  &types.AttributeValueMemberS{Value: "Ana"},
		"email": &types.AttributeValueMemberS{Value: "ana@example.com"},
	})
	reader := NewCustomerDynamoReader(ddb)

	c, err := reader.FindByID(context.Background(), "cust-1")
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, "Ana", c.Name)
	assert.Equal(t, "ana@example.com", c.Email)

	missing, err := reader.FindByID(context.Background(), "cust-2")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestVehicleDynamoReader_FindByID(t *testing.T) {
	ddb := newFakeDynamoDB()
	ddb.put(defaultVehiclesTableName, map[string]types.AttributeValue{
		"id":    &types.AttributeValueMemberS{Value: "veh-1"},
		"brand": &types.AttributeValueMemberS{Value: "Fiat"},
		"model": &types.AttributeValueMemberS{Value: "Uno"},
		"plate": &types.AttributeValueMemberS{Value: "ABC1D23"},
	})
	reader := NewVehicleDynamoReader(ddb)

	v, err := reader.FindByID(context.Background(), "veh-1")
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Equal(t, "ABC1D23", v.Plate)

	missing, err := reader.FindByID(context.Background(), "veh-2")
	require.NoError(t, err)
	assert.Nil(t, missing)
}
