package services

import (
	"context"
	"sync"

	recordsdomain "github.com/ghuser/orderline/services/records/domain"
	"github.com/ghuser/orderline/services/records/domain/models"
)

// In-memory repository fakes reproducing the store's merge and
// check-then-write semantics, so service contracts can be exercised without
// PostgreSQL. Each fake serializes access with a mutex, mirroring the
// per-key atomicity the real store gets from transactions.

type fakeCustomerRepo struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]models.Customer
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{nextID: 1, rows: make(map[int64]models.Customer)}
}

func (r *fakeCustomerRepo) Create(_ context.Context, c *models.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c.ID = r.nextID
	r.nextID++
	r.rows[c.ID] = *c
	return nil
}

func (r *fakeCustomerRepo) GetByID(_ context.Context, id int64) (*models.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[id]
	if !ok {
		return nil, recordsdomain.ErrCustomerNotFound
	}
	return &row, nil
}

func (r *fakeCustomerRepo) Update(_ context.Context, id int64, patch models.CustomerPatch) (*models.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[id]
	if !ok {
		return nil, recordsdomain.ErrCustomerNotFound
	}
	if patch.Name != nil {
		row.Name = *patch.Name
	}
	if patch.Phone != nil {
		row.Phone = *patch.Phone
	}
	r.rows[id] = row
	return &row, nil
}

func (r *fakeCustomerRepo) Delete(_ context.Context, id int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[id]; !ok {
		return 0, nil
	}
	delete(r.rows, id)
	return 1, nil
}

func (r *fakeCustomerRepo) exists(id int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.rows[id]
	return ok
}

type fakeItemRepo struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]models.Item
}

func newFakeItemRepo() *fakeItemRepo {
	return &fakeItemRepo{nextID: 1, rows: make(map[int64]models.Item)}
}

func (r *fakeItemRepo) Create(_ context.Context, i *models.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, row := range r.rows {
		if row.Name == i.Name {
			return recordsdomain.ErrItemNameTaken
		}
	}
	i.ID = r.nextID
	r.nextID++
	r.rows[i.ID] = *i
	return nil
}

func (r *fakeItemRepo) GetByID(_ context.Context, id int64) (*models.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[id]
	if !ok {
		return nil, recordsdomain.ErrItemNotFound
	}
	return &row, nil
}

func (r *fakeItemRepo) Update(_ context.Context, id int64, patch models.ItemPatch) (*models.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[id]
	if !ok {
		return nil, recordsdomain.ErrItemNotFound
	}
	if patch.Name != nil {
		for otherID, other := range r.rows {
			if otherID != id && other.Name == *patch.Name {
				return nil, recordsdomain.ErrItemNameTaken
			}
		}
		row.Name = *patch.Name
	}
	if patch.Price != nil {
		row.Price = *patch.Price
	}
	r.rows[id] = row
	return &row, nil
}

func (r *fakeItemRepo) Delete(_ context.Context, id int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[id]; !ok {
		return 0, recordsdomain.ErrItemNotFound
	}
	delete(r.rows, id)
	return 1, nil
}

type fakeOrderRepo struct {
	mu        sync.Mutex
	nextID    int64
	rows      map[int64]models.Order
	customers *fakeCustomerRepo
}

func newFakeOrderRepo(customers *fakeCustomerRepo) *fakeOrderRepo {
	return &fakeOrderRepo{nextID: 1, rows: make(map[int64]models.Order), customers: customers}
}

func (r *fakeOrderRepo) Create(_ context.Context, o *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.customers.exists(o.CustID) {
		return recordsdomain.ErrCustomerNotFound
	}
	o.ID = r.nextID
	r.nextID++
	r.rows[o.ID] = *o
	return nil
}

func (r *fakeOrderRepo) GetByID(_ context.Context, id int64) (*models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[id]
	if !ok {
		return nil, recordsdomain.ErrOrderNotFound
	}
	return &row, nil
}

func (r *fakeOrderRepo) Update(_ context.Context, id int64, patch models.OrderPatch) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[id]
	if !ok {
		return recordsdomain.ErrOrderNotFound
	}
	if patch.CustID != nil && !r.customers.exists(*patch.CustID) {
		return recordsdomain.ErrCustomerNotFound
	}
	if patch.Notes != nil {
		row.Notes = *patch.Notes
	}
	if patch.CustID != nil {
		row.CustID = *patch.CustID
	}
	// Timestamp is never part of the update set.
	r.rows[id] = row
	return nil
}

func (r *fakeOrderRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[id]; !ok {
		return recordsdomain.ErrOrderNotFound
	}
	delete(r.rows, id)
	return nil
}

func (r *fakeOrderRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.rows)
}

func int64Ptr(i int64) *int64       { return &i }
func strPtr(s string) *string       { return &s }
func float64Ptr(f float64) *float64 { return &f }
