package cache

import (
	"context"
	"errors"
	"log"

	"mecanica_workorders/internal/domain/entities"
	"mecanica_workorders/internal/usecase/interfaces"
)

// CachedCustomerReader is a read-through cache in front of another ICustomerReader.
// Redis failures fall back to the wrapped reader; absent customers are not cached.
type CachedCustomerReader struct {
	next  interfaces.ICustomerReader
	cache *RedisCache
}

var _ interfaces.ICustomerReader = (*CachedCustomerReader)(nil)

func NewCachedCustomerReader(next interfaces.ICustomerReader, cache *RedisCache) *CachedCustomerReader {
	return &CachedCustomerReader{next: next, cache: cache}
}

func (r *CachedCustomerReader) FindByID(ctx context.Context, customerID string) (*entities.Customer, error) {
	return readThrough(ctx, r.cache, customerKey(customerID), func() (*entities.Customer, error) {
		return r.next.FindByID(ctx, customerID)
	})
}

// CachedVehicleReader is the vehicle counterpart of CachedCustomerReader.
type CachedVehicleReader struct {
	next  interfaces.IVehicleReader
	cache *RedisCache
}

var _ interfaces.IVehicleReader = (*CachedVehicleReader)(nil)

func NewCachedVehicleReader(next interfaces.IVehicleReader, cache *RedisCache) *CachedVehicleReader {
	return &CachedVehicleReader{next: next, cache: cache}
}

func (r *CachedVehicleReader) FindByID(ctx context.Context, vehicleID string) (*entities.Vehicle, error) {
	return readThrough(ctx, r.cache, vehicleKey(vehicleID), func() (*entities.Vehicle, error) {
		return r.next.FindByID(ctx, vehicleID)
	})
}

func readThrough[T any](ctx context.Context, cache *RedisCache, key string, load func() (*T, error)) (*T, error) {
	var cached T
	err := cache.Get(ctx, key, &cached)
	if err == nil {
		return &cached, nil
	}
	if !errors.Is(err, ErrCacheMiss) {
		log.Printf("[workorder][cache] get failed key=%s err=%v", key, err)
	}

	v, err := load()
	if err != nil || v == nil {
		return v, err
	}
	if err := cache.Set(ctx, key, v); err != nil {
		log.Printf("[workorder][cache] set failed key=%s err=%v", key, err)
	}
	return v, nil
}

func customerKey(id string) string { return "customer:" + id }
func vehicleKey(id string) string { return "vehicle:" + id }
