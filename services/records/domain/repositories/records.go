package repositories

import (
	"context"

	"github.com/ghuser/orderline/services/records/domain/models"
)

// CustomerRepository is the persistence interface for Customer records.
// The domain layer owns this interface; infrastructure implements it.
type CustomerRepository interface {
	// Create persists a new Customer and assigns its ID.
	Create(ctx context.Context, c *models.Customer) error

	// GetByID returns the customer or ErrCustomerNotFound.
	GetByID(ctx context.Context, id int64) (*models.Customer, error)

	// Update applies the non-nil patch fields to the stored row and returns
	// the updated customer. Returns ErrCustomerNotFound if no row matches.
	// The patch must carry at least one updatable field.
	Update(ctx context.Context, id int64, patch models.CustomerPatch) (*models.Customer, error)

	// Delete removes the customer row if present and reports how many rows
	// matched. A zero count is not an error for customers.
	Delete(ctx context.Context, id int64) (int64, error)
}

// ItemRepository is the persistence interface for Item records.
type ItemRepository interface {
	// Create persists a new Item and assigns its ID.
	// Returns ErrItemNameTaken when the name is already in use; the check
	// and the insert are a single atomic unit.
	Create(ctx context.Context, i *models.Item) error

	// GetByID returns the item or ErrItemNotFound.
	GetByID(ctx context.Context, id int64) (*models.Item, error)

	// Update applies the non-nil patch fields and returns the updated item.
	// Returns ErrItemNotFound if no row matches and ErrItemNameTaken when
	// the new name collides with another item.
	Update(ctx context.Context, id int64, patch models.ItemPatch) (*models.Item, error)

	// Delete removes the item row. Returns ErrItemNotFound on zero rows;
	// otherwise reports the affected-row count.
	Delete(ctx context.Context, id int64) (int64, error)
}

// OrderRepository is the persistence interface for Order records.
type OrderRepository interface {
	// Create persists a new Order and assigns its ID. The referenced
	// customer's existence is checked in the same transaction as the
	// insert; ErrCustomerNotFound is returned before any row is written.
	Create(ctx context.Context, o *models.Order) error

	// GetByID returns the order or ErrOrderNotFound.
	GetByID(ctx context.Context, id int64) (*models.Order, error)

	// Update applies the non-nil notes/cust_id patch fields. Timestamp is
	// excluded from the update set unconditionally. Returns
	// ErrOrderNotFound if the order does not exist and ErrCustomerNotFound
	// if a supplied cust_id references no customer. The patch must carry
	// at least one updatable field.
	Update(ctx context.Context, id int64, patch models.OrderPatch) error

	// Delete removes the order row. Returns ErrOrderNotFound on zero rows.
	Delete(ctx context.Context, id int64) error
}
