package services

import (
	"context"
	"fmt"

	recordsdomain "github.com/ghuser/orderline/services/records/domain"
	"github.com/ghuser/orderline/services/records/domain/models"
	"github.com/ghuser/orderline/services/records/domain/repositories"
	domainsvcs "github.com/ghuser/orderline/services/records/domain/services"
)

// CreateItemInput is the typed create request for an Item.
// ID must be nil: identifiers are store-assigned.
type CreateItemInput struct {
	ID    *int64
	Name  string
	Price float64
}

// ItemService orchestrates CRUD for Item records.
type ItemService struct {
	repo repositories.ItemRepository
}

// NewItemService returns an ItemService wired with the given repository.
func NewItemService(repo repositories.ItemRepository) *ItemService {
	return &ItemService{repo: repo}
}

// Create validates and persists an Item, returning it with the assigned ID.
// Returns ErrItemNameTaken when the name is already in use; the existing
// item is left untouched.
func (s *ItemService) Create(ctx context.Context, in CreateItemInput) (*models.Item, error) {
	if in.ID != nil {
		return nil, recordsdomain.ErrIDOnCreate
	}
	if err := domainsvcs.ValidateName(in.Name); err != nil {
		return nil, fmt.Errorf("%w: %w", recordsdomain.ErrInvalidInput, err)
	}

	item := &models.Item{Name: in.Name, Price: in.Price}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("save item: %w", err)
	}
	return item, nil
}

// GetByID returns the item or ErrItemNotFound.
func (s *ItemService) GetByID(ctx context.Context, id int64) (*models.Item, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}
	return item, nil
}

// Update merges the supplied patch into the stored item and returns the
// result. The body must carry an ID equal to the path ID; an absent or
// disagreeing one is rejected. An empty patch performs no write and returns
// the item as stored.
func (s *ItemService) Update(ctx context.Context, id int64, patch models.ItemPatch) (*models.Item, error) {
	if patch.ID == nil || *patch.ID != id {
		return nil, recordsdomain.ErrIDMismatch
	}

	if patch.IsEmpty() {
		item, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("get item: %w", err)
		}
		return item, nil
	}

	item, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, fmt.Errorf("update item: %w", err)
	}
	return item, nil
}

// Delete removes an item and reports how many rows were affected.
// Returns ErrItemNotFound when no row matched.
func (s *ItemService) Delete(ctx context.Context, id int64) (int64, error) {
	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("delete item: %w", err)
	}
	return affected, nil
}
