package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"

	"github.com/ghuser/orderline/pkg/database"
	"github.com/ghuser/orderline/pkg/events"
	recordsdomain "github.com/ghuser/orderline/services/records/domain"
	domainevents "github.com/ghuser/orderline/services/records/domain/events"
	"github.com/ghuser/orderline/services/records/domain/models"
)

// OrderRepository implements repositories.OrderRepository against PostgreSQL.
type OrderRepository struct {
	db  *database.Database
	bus *events.EventBus
}

// NewOrderRepository returns an OrderRepository backed by the given pool and
// event bus. The bus is used to publish OrderCreatedEvents after a
// successful insert; it may be nil in processes that do not publish.
func NewOrderRepository(db *database.Database, bus *events.EventBus) *OrderRepository {
	return &OrderRepository{db: db, bus: bus}
}

// Create checks the referenced customer and inserts the order in one
// transaction, then publishes an OrderCreatedEvent on the same transaction
// (outbox pattern). A missing customer reports ErrCustomerNotFound with no
// row written.
func (r *OrderRepository) Create(ctx context.Context, o *models.Order) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		if err := customerExists(ctx, tx, o.CustID); err != nil {
			return err
		}

		err := tx.QueryRowContext(ctx,
			`INSERT INTO orders (notes, cust_id, ts) VALUES ($1, $2, $3) RETURNING id`,
			o.Notes, o.CustID, o.Timestamp,
		).Scan(&o.ID)
		if err != nil {
			return fmt.Errorf("insert order: %w", err)
		}

		if r.bus != nil {
			if err := r.publishCreated(tx, o); err != nil {
				return fmt.Errorf("publish order created: %w", err)
			}
		}
		return nil
	})
}

// GetByID retrieves an order by ID. Returns ErrOrderNotFound if not found.
func (r *OrderRepository) GetByID(ctx context.Context, id int64) (*models.Order, error) {
	var o models.Order
	err := r.db.DB().QueryRowContext(ctx,
		`SELECT id, notes, cust_id, ts FROM orders WHERE id = $1`,
		id,
	).Scan(&o.ID, &o.Notes, &o.CustID, &o.Timestamp)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, recordsdomain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("query order: %w", err)
	}
	return &o, nil
}

// Update applies the non-nil notes/cust_id patch fields inside one
// transaction: order existence check, customer existence check (only when a
// cust_id is supplied), then a fixed COALESCE update. The ts column never
// appears in the update set.
func (r *OrderRepository) Update(ctx context.Context, id int64, patch models.OrderPatch) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		var exists bool
		if err := tx.QueryRowContext(ctx,
			`SELECT EXISTS(SELECT 1 FROM orders WHERE id = $1)`,
			id,
		).Scan(&exists); err != nil {
			return fmt.Errorf("check order: %w", err)
		}
		if !exists {
			return recordsdomain.ErrOrderNotFound
		}

		if patch.CustID != nil {
			if err := customerExists(ctx, tx, *patch.CustID); err != nil {
				return err
			}
		}

		if _, err := tx.ExecContext(ctx,
			`UPDATE orders
			    SET notes   = COALESCE($2, notes),
			        cust_id = COALESCE($3, cust_id)
			  WHERE id = $1`,
			id, nullString(patch.Notes), nullInt64(patch.CustID),
		); err != nil {
			return fmt.Errorf("update order: %w", err)
		}
		return nil
	})
}

// Delete checks existence and removes the order row in one transaction.
// Returns ErrOrderNotFound on zero rows.
func (r *OrderRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		var exists bool
		if err := tx.QueryRowContext(ctx,
			`SELECT EXISTS(SELECT 1 FROM orders WHERE id = $1)`,
			id,
		).Scan(&exists); err != nil {
			return fmt.Errorf("check order: %w", err)
		}
		if !exists {
			return recordsdomain.ErrOrderNotFound
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM orders WHERE id = $1`, id); err != nil {
			return fmt.Errorf("delete order: %w", err)
		}
		return nil
	})
}

func (r *OrderRepository) publishCreated(tx *sql.Tx, o *models.Order) error {
	event := domainevents.OrderCreatedEvent{
		EventID:    uuid.New(),
		Version:    1,
		OrderID:    o.ID,
		CustID:     o.CustID,
		Notes:      o.Notes,
		Timestamp:  o.Timestamp,
		OccurredAt: time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event_id", event.EventID.String())
	msg.Metadata.Set("event_version", "1")
	p, err := r.bus.NewTxPublisher(tx)
	if err != nil {
		return fmt.Errorf("create publisher: %w", err)
	}
	return p.Publish(domainevents.TopicOrderCreated, msg)
}

// customerExists reports ErrCustomerNotFound when custID references no row.
// Runs on the caller's transaction so the check and the following write are
// a single unit.
func customerExists(ctx context.Context, tx *sql.Tx, custID int64) error {
	var exists bool
	if err := tx.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM customers WHERE id = $1)`,
		custID,
	).Scan(&exists); err != nil {
		return fmt.Errorf("check customer: %w", err)
	}
	if !exists {
		return recordsdomain.ErrCustomerNotFound
	}
	return nil
}
