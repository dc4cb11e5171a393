package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ghuser/orderline/pkg/database"
	recordsdomain "github.com/ghuser/orderline/services/records/domain"
	"github.com/ghuser/orderline/services/records/domain/models"
)

// pgUniqueViolation is the PostgreSQL error code for unique constraint violations.
const pgUniqueViolation = "23505"

// ItemRepository implements repositories.ItemRepository against PostgreSQL.
type ItemRepository struct {
	db *database.Database
}

// NewItemRepository returns an ItemRepository backed by the given pool.
func NewItemRepository(db *database.Database) *ItemRepository {
	return &ItemRepository{db: db}
}

// Create inserts a new item row and assigns i.ID from the store.
// The duplicate-name check runs in the same transaction as the insert, and
// the unique index backstops it against concurrent writers; either path
// reports ErrItemNameTaken with no row written.
func (r *ItemRepository) Create(ctx context.Context, i *models.Item) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		var exists bool
		if err := tx.QueryRowContext(ctx,
			`SELECT EXISTS(SELECT 1 FROM items WHERE name = $1)`,
			i.Name,
		).Scan(&exists); err != nil {
			return fmt.Errorf("check item name: %w", err)
		}
		if exists {
			return recordsdomain.ErrItemNameTaken
		}

		err := tx.QueryRowContext(ctx,
			`INSERT INTO items (name, price) VALUES ($1, $2) RETURNING id`,
			i.Name, i.Price,
		).Scan(&i.ID)
		if err != nil {
			if isUniqueViolation(err) {
				return recordsdomain.ErrItemNameTaken
			}
			return fmt.Errorf("insert item: %w", err)
		}
		return nil
	})
}

// GetByID retrieves an item by ID. Returns ErrItemNotFound if not found.
func (r *ItemRepository) GetByID(ctx context.Context, id int64) (*models.Item, error) {
	var i models.Item
	err := r.db.DB().QueryRowContext(ctx,
		`SELECT id, name, price FROM items WHERE id = $1`,
		id,
	).Scan(&i.ID, &i.Name, &i.Price)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, recordsdomain.ErrItemNotFound
		}
		return nil, fmt.Errorf("query item: %w", err)
	}
	return &i, nil
}

// Update applies the non-nil patch fields in a single fixed statement.
// Renaming onto an existing name reports ErrItemNameTaken.
func (r *ItemRepository) Update(ctx context.Context, id int64, patch models.ItemPatch) (*models.Item, error) {
	var i models.Item
	err := r.db.DB().QueryRowContext(ctx,
		`UPDATE items
		    SET name  = COALESCE($2, name),
		        price = COALESCE($3, price)
		  WHERE id = $1
		RETURNING id, name, price`,
		id, nullString(patch.Name), nullFloat64(patch.Price),
	).Scan(&i.ID, &i.Name, &i.Price)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, recordsdomain.ErrItemNotFound
		}
		if isUniqueViolation(err) {
			return nil, recordsdomain.ErrItemNameTaken
		}
		return nil, fmt.Errorf("update item: %w", err)
	}
	return &i, nil
}

// Delete removes the item row. Returns ErrItemNotFound on zero rows,
// otherwise the affected-row count.
func (r *ItemRepository) Delete(ctx context.Context, id int64) (int64, error) {
	res, err := r.db.DB().ExecContext(ctx, `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("delete item: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete item rows affected: %w", err)
	}
	if affected == 0 {
		return 0, recordsdomain.ErrItemNotFound
	}
	return affected, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
