package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ghuser/orderline/pkg/database"
	recordsdomain "github.com/ghuser/orderline/services/records/domain"
	"github.com/ghuser/orderline/services/records/domain/models"
)

// CustomerRepository implements repositories.CustomerRepository against PostgreSQL.
type CustomerRepository struct {
	db *database.Database
}

// NewCustomerRepository returns a CustomerRepository backed by the given pool.
func NewCustomerRepository(db *database.Database) *CustomerRepository {
	return &CustomerRepository{db: db}
}

// Create inserts a new customer row and assigns c.ID from the store.
func (r *CustomerRepository) Create(ctx context.Context, c *models.Customer) error {
	err := r.db.DB().QueryRowContext(ctx,
		`INSERT INTO customers (name, phone) VALUES ($1, $2) RETURNING id`,
		c.Name, c.Phone,
	).Scan(&c.ID)
	if err != nil {
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// GetByID retrieves a customer by ID. Returns ErrCustomerNotFound if not found.
func (r *CustomerRepository) GetByID(ctx context.Context, id int64) (*models.Customer, error) {
	var c models.Customer
	err := r.db.DB().QueryRowContext(ctx,
		`SELECT id, name, phone FROM customers WHERE id = $1`,
		id,
	).Scan(&c.ID, &c.Name, &c.Phone)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, recordsdomain.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("query customer: %w", err)
	}
	return &c, nil
}

// Update applies the non-nil patch fields in a single fixed statement.
// COALESCE keeps stored values for fields the patch leaves nil, so the merge
// and the existence check are one atomic write.
func (r *CustomerRepository) Update(ctx context.Context, id int64, patch models.CustomerPatch) (*models.Customer, error) {
	var c models.Customer
	err := r.db.DB().QueryRowContext(ctx,
		`UPDATE customers
		    SET name  = COALESCE($2, name),
		        phone = COALESCE($3, phone)
		  WHERE id = $1
		RETURNING id, name, phone`,
		id, nullString(patch.Name), nullString(patch.Phone),
	).Scan(&c.ID, &c.Name, &c.Phone)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, recordsdomain.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("update customer: %w", err)
	}
	return &c, nil
}

// Delete removes the customer row if present. A zero count is reported, not
// an error: customer deletion is unconditionally successful. Orders
// referencing the customer are deliberately left untouched.
func (r *CustomerRepository) Delete(ctx context.Context, id int64) (int64, error) {
	res, err := r.db.DB().ExecContext(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("delete customer: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete customer rows affected: %w", err)
	}
	return affected, nil
}

// nullString adapts an optional patch field to a nullable bind parameter.
func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

// nullFloat64 adapts an optional patch field to a nullable bind parameter.
func nullFloat64(f *float64) sql.NullFloat64 {
	if f == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *f, Valid: true}
}

// nullInt64 adapts an optional patch field to a nullable bind parameter.
func nullInt64(i *int64) sql.NullInt64 {
	if i == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *i, Valid: true}
}
