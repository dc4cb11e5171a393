package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// CustomerCacheTTL is the time-to-live for cached customers.
	CustomerCacheTTL = 24 * time.Hour

	customerCacheKeyPrefix = "customer"

	// orderCountKeySuffix holds the per-customer order-count rollup
	// maintained by the worker from order.created events.
	orderCountKeySuffix = "order_count"
)

// CachedCustomer is the denormalized read model stored in Redis.
// Fields are stored as a Redis hash.
type CachedCustomer struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// CustomerCache provides structured read/write operations for customer cache
// entries. Key format: "customer:{id}".
type CustomerCache struct {
	client *RedisClient
}

// NewCustomerCache creates a new CustomerCache backed by the given RedisClient.
func NewCustomerCache(r *RedisClient) *CustomerCache {
	return &CustomerCache{client: r}
}

// Get retrieves a cached customer by ID.
// Returns redis.Nil error when the key does not exist or has expired.
func (c *CustomerCache) Get(ctx context.Context, id int64) (*CachedCustomer, error) {
	key := c.key(id)
	vals, err := c.client.Client().HGetAll(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("cache get: %w", err)
	}
	if len(vals) == 0 {
		return nil, redis.Nil // key not found
	}

	cid, err := strconv.ParseInt(vals["id"], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("cache parse id: %w", err)
	}

	return &CachedCustomer{
		ID:    cid,
		Name:  vals["name"],
		Phone: vals["phone"],
	}, nil
}

// Set writes a cached customer as a Redis hash with a 24-hour TTL.
// Uses a pipeline to set all fields and the TTL atomically.
func (c *CustomerCache) Set(ctx context.Context, cust *CachedCustomer) error {
	key := c.key(cust.ID)
	pipe := c.client.Client().Pipeline()
	pipe.HSet(ctx, key,
		"id", strconv.FormatInt(cust.ID, 10),
		"name", cust.Name,
		"phone", cust.Phone,
	)
	pipe.Expire(ctx, key, CustomerCacheTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Delete removes a cached customer. The order-count rollup is kept — it
// survives customer deletion just as the orders themselves do.
func (c *CustomerCache) Delete(ctx context.Context, id int64) error {
	if err := c.client.Client().Del(ctx, c.key(id)).Err(); err != nil {
		return fmt.Errorf("cache delete: %w", err)
	}
	return nil
}

// IncrOrderCount bumps the per-customer order-count rollup and returns the
// new value. Used by the worker when consuming order.created events.
func (c *CustomerCache) IncrOrderCount(ctx context.Context, custID int64) (int64, error) {
	key := fmt.Sprintf("%s:%d:%s", customerCacheKeyPrefix, custID, orderCountKeySuffix)
	n, err := c.client.Client().Incr(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("cache incr order count: %w", err)
	}
	return n, nil
}

// key builds the Redis key: "customer:{id}"
func (c *CustomerCache) key(id int64) string {
	return fmt.Sprintf("%s:%d", customerCacheKeyPrefix, id)
}
