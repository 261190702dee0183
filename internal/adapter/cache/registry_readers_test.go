package cache

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"mecanica_workorders/internal/domain/entities"
	mock_interfaces "mecanica_workorders/internal/usecase/interfaces/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCachedCustomerReader_Hit(t *testing.T) {
	cache, mr := setupTestRedis(t)
	ctrl := gomock.NewController(t)
	next := mock_interfaces.NewMockICustomerReader(ctrl)
	reader := NewCachedCustomerReader(next, cache)

	data, _ := json.Marshal(entities.Customer{ID: "cust-1", Name: "Ana", Email: "ana@example.com"})
	require.NoError(t, mr.Set(customerKey("cust-1"), string(data)))

	c, err := reader.FindByID(context.Background(), "cust-1")
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", c.Email)
}

func TestCachedCustomerReader_MissLoadsAndStores(t *testing.T) {
	cache, mr := setupTestRedis(t)
	ctrl := gomock.NewController(t)
	next := mock_interfaces.NewMockICustomerReader(ctrl)
	reader := NewCachedCustomerReader(next, cache)

	next.EXPECT().FindByID(gomock.Any(), "cust-1").Return(&entities.Customer{ID: "cust-1", Name: "Ana", Email: "ana@example.com"}, nil).Times(1)

	c, err := reader.FindByID(context.Background(), "cust-1")
	require.NoError(t, err)
	assert.Equal(t, "Ana", c.Name)
	assert.True(t, mr.Exists(customerKey("cust-1")))

	again, err := reader.FindByID(context.Background(), "cust-1")
	require.NoError(t, err)
	assert.Equal(t, "Ana", again.Name)
}

func TestCachedCustomerReader_AbsentIsNotCached(t *testing.T) {
	cache, mr := setupTestRedis(t)
	ctrl := gomock.NewController(t)
	next := mock_interfaces.NewMockICustomerReader(ctrl)
	reader := NewCachedCustomerReader(next, cache)

	next.EXPECT().FindByID(gomock.Any(), "cust-1").Return(nil, nil)

	c, err := reader.FindByID(context.Background(), "cust-1")
	require.NoError(t, err)
	assert.Nil(t, c)
	assert.False(t, mr.Exists(customerKey("cust-1")))
}

func TestCachedCustomerReader_LoadError(t *testing.T) {
	cache, _ := setupTestRedis(t)
	ctrl := gomock.NewController(t)
	next := mock_interfaces.NewMockICustomerReader(ctrl)
	reader := NewCachedCustomerReader(next, cache)

	next.EXPECT().FindByID(gomock.Any(), "cust-1").Return(nil, errors.New("db"))

	_, err := reader.FindByID(context.Background(), "cust-1")
	assert.EqualError(t, err, "db")
}

func TestCachedVehicleReader_RedisDownFallsBack(t *testing.T) {
	cache, mr := setupTestRedis(t)
	ctrl := gomock.NewController(t)
	next := mock_interfaces.NewMockIVehicleReader(ctrl)
	reader := NewCachedVehicleReader(next, cache)

	mr.Close()
	next.EXPECT().FindByID(gomock.Any(), "veh-1").Return(&entities.Vehicle{ID: "veh-1", Plate: "ABC1D23"}, nil)

	v, err := reader.FindByID(context.Background(), "veh-1")
	require.NoError(t, err)
	assert.Equal(t, "ABC1D23", v.Plate)
}
