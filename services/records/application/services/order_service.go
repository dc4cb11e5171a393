package services

import (
	"context"
	"fmt"
	"time"

	recordsdomain "github.com/ghuser/orderline/services/records/domain"
	"github.com/ghuser/orderline/services/records/domain/models"
	"github.com/ghuser/orderline/services/records/domain/repositories"
)

// CreateOrderInput is the typed create request for an Order.
// ID must be nil and CustID must be set. Timestamp, if supplied, is
// discarded — the store assigns it from its own clock.
type CreateOrderInput struct {
	ID        *int64
	Notes     string
	CustID    *int64
	Timestamp *int64
}

// OrderService orchestrates CRUD for Order records.
type OrderService struct {
	repo repositories.OrderRepository
	now  func() time.Time
}

// NewOrderService returns an OrderService wired with the given repository.
func NewOrderService(repo repositories.OrderRepository) *OrderService {
	return &OrderService{repo: repo, now: time.Now}
}

// Create validates and persists an Order. The referenced customer must exist
// at the moment of the insert; the check and the write happen in one
// transaction, so a NotFound failure leaves no row behind. The timestamp is
// assigned from the server clock, ignoring any client-supplied value.
func (s *OrderService) Create(ctx context.Context, in CreateOrderInput) (*models.Order, error) {
	if in.ID != nil {
		return nil, recordsdomain.ErrIDOnCreate
	}
	if in.CustID == nil {
		return nil, recordsdomain.ErrCustomerRequired
	}

	order := models.NewOrder(in.Notes, *in.CustID, s.now())
	if err := s.repo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("save order: %w", err)
	}
	return order, nil
}

// GetByID returns the order or ErrOrderNotFound.
func (s *OrderService) GetByID(ctx context.Context, id int64) (*models.Order, error) {
	order, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	return order, nil
}

// Update merges the supplied patch into the stored order. The timestamp is
// never updatable regardless of input. A body ID that disagrees with the
// path is rejected. Returns (false, nil) when the patch carries no eligible
// field — a no-op, not an error. On success only an acknowledgment is
// reported, not the updated order; this asymmetry with customer/item update
// is deliberate and documented.
func (s *OrderService) Update(ctx context.Context, id int64, patch models.OrderPatch) (bool, error) {
	if patch.ID != nil && *patch.ID != id {
		return false, recordsdomain.ErrIDMismatch
	}

	if patch.IsEmpty() {
		// The target must still exist even when there is nothing to write.
		if _, err := s.repo.GetByID(ctx, id); err != nil {
			return false, fmt.Errorf("get order: %w", err)
		}
		return false, nil
	}

	if err := s.repo.Update(ctx, id, patch); err != nil {
		return false, fmt.Errorf("update order: %w", err)
	}
	return true, nil
}

// Delete removes an order. Returns ErrOrderNotFound when no row matched.
func (s *OrderService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	return nil
}
