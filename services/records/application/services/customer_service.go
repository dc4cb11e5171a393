package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	pkgcache "github.com/ghuser/orderline/pkg/cache"
	recordsdomain "github.com/ghuser/orderline/services/records/domain"
	"github.com/ghuser/orderline/services/records/domain/models"
	"github.com/ghuser/orderline/services/records/domain/repositories"
	domainsvcs "github.com/ghuser/orderline/services/records/domain/services"
)

// CreateCustomerInput is the typed create request for a Customer.
// ID must be nil: identifiers are store-assigned.
type CreateCustomerInput struct {
	ID    *int64
	Name  string
	Phone string
}

// CustomerService orchestrates CRUD for Customer records.
// Reads are served from Redis cache when available.
type CustomerService struct {
	repo  repositories.CustomerRepository
	cache *pkgcache.CustomerCache
}

// NewCustomerService returns a CustomerService wired with the given
// repository and cache. The cache may be nil (worker/CLI processes).
func NewCustomerService(repo repositories.CustomerRepository, custCache *pkgcache.CustomerCache) *CustomerService {
	return &CustomerService{repo: repo, cache: custCache}
}

// Create validates and persists a Customer, returning it with the assigned ID.
func (s *CustomerService) Create(ctx context.Context, in CreateCustomerInput) (*models.Customer, error) {
	if in.ID != nil {
		return nil, recordsdomain.ErrIDOnCreate
	}
	if err := domainsvcs.ValidateName(in.Name); err != nil {
		return nil, fmt.Errorf("%w: %w", recordsdomain.ErrInvalidInput, err)
	}
	if err := domainsvcs.ValidatePhone(in.Phone); err != nil {
		return nil, fmt.Errorf("%w: %w", recordsdomain.ErrInvalidInput, err)
	}

	cust := &models.Customer{Name: in.Name, Phone: in.Phone}
	if err := s.repo.Create(ctx, cust); err != nil {
		return nil, fmt.Errorf("save customer: %w", err)
	}
	return cust, nil
}

// GetByID retrieves a Customer using a read-through cache pattern:
//  1. Check Redis cache first.
//  2. On cache miss (or cache error), query Postgres.
//  3. Asynchronously warm the cache with the Postgres result.
func (s *CustomerService) GetByID(ctx context.Context, id int64) (*models.Customer, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, id); err == nil {
			return &models.Customer{ID: cached.ID, Name: cached.Name, Phone: cached.Phone}, nil
		} else if !errors.Is(err, redis.Nil) {
			// Cache error — fall through to Postgres.
			_ = err
		}
	}

	cust, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get customer: %w", err)
	}

	if s.cache != nil {
		go func() {
			_ = s.cache.Set(context.Background(), &pkgcache.CachedCustomer{
				ID:    cust.ID,
				Name:  cust.Name,
				Phone: cust.Phone,
			})
		}()
	}

	return cust, nil
}

// Update merges the supplied patch into the stored customer and returns the
// result. Fields left nil keep their stored values. An empty patch performs
// no write and returns the customer as stored. A body ID, if present, is
// ignored — the path identifies the target.
func (s *CustomerService) Update(ctx context.Context, id int64, patch models.CustomerPatch) (*models.Customer, error) {
	if patch.IsEmpty() {
		cust, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("get customer: %w", err)
		}
		return cust, nil
	}

	cust, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, fmt.Errorf("update customer: %w", err)
	}

	if s.cache != nil {
		_ = s.cache.Delete(context.Background(), id)
	}
	return cust, nil
}

// Delete removes a customer. It succeeds even when no row matches — a
// documented asymmetry with item and order deletion. Orders referencing the
// deleted customer are left in place; the reference is only checked when
// orders are written.
func (s *CustomerService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	if s.cache != nil {
		_ = s.cache.Delete(context.Background(), id)
	}
	return nil
}
