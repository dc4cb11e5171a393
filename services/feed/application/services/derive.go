// Package services implements the order feed aggregation pipeline: parse a
// raw batch, derive the customer directory and item catalog, and emit them
// as two independent artifacts.
package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	feeddomain "github.com/ghuser/orderline/services/feed/domain"
	"github.com/ghuser/orderline/services/feed/domain/models"
)

// rawOrderJSON mirrors models.RawOrder with pointer fields so a missing key
// is distinguishable from a zero value during structural validation.
type rawOrderJSON struct {
	Phone *string        `json:"phone"`
	Name  *string        `json:"name"`
	Items *[]lineItemJSON `json:"items"`
}

type lineItemJSON struct {
	Name  *string  `json:"name"`
	Price *float64 `json:"price"`
}

// ParseBatch decodes and structurally validates a raw order batch.
// Any defect — non-list input, an order missing phone/name/items, a line
// item missing name/price — is reported as ErrMalformedBatch with the
// offending position named; nothing is partially accepted.
func ParseBatch(r io.Reader) ([]models.RawOrder, error) {
	dec := json.NewDecoder(r)
	var raw []rawOrderJSON
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %w", feeddomain.ErrMalformedBatch, err)
	}
	// A JSON null decodes into a nil slice with no error; only a list is a batch.
	if raw == nil {
		return nil, fmt.Errorf("%w: top-level value is not a list", feeddomain.ErrMalformedBatch)
	}
	if err := dec.Decode(new(json.RawMessage)); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data after the list", feeddomain.ErrMalformedBatch)
	}

	batch := make([]models.RawOrder, 0, len(raw))
	for i, ro := range raw {
		switch {
		case ro.Phone == nil:
			return nil, fmt.Errorf("%w: order %d: missing phone", feeddomain.ErrMalformedBatch, i)
		case ro.Name == nil:
			return nil, fmt.Errorf("%w: order %d: missing name", feeddomain.ErrMalformedBatch, i)
		case ro.Items == nil:
			return nil, fmt.Errorf("%w: order %d: missing items", feeddomain.ErrMalformedBatch, i)
		}

		items := make([]models.LineItem, 0, len(*ro.Items))
		for j, li := range *ro.Items {
			if li.Name == nil {
				return nil, fmt.Errorf("%w: order %d item %d: missing name", feeddomain.ErrMalformedBatch, i, j)
			}
			if li.Price == nil {
				return nil, fmt.Errorf("%w: order %d item %d: missing price", feeddomain.ErrMalformedBatch, i, j)
			}
			items = append(items, models.LineItem{Name: *li.Name, Price: *li.Price})
		}

		batch = append(batch, models.RawOrder{Phone: *ro.Phone, Name: *ro.Name, Items: items})
	}
	return batch, nil
}

// Derive produces the two summary views from a validated batch. It is a pure
// function of the batch (including its order): the directory applies
// last-write-wins per phone, the catalog applies first-write-wins per item
// name for price while counting every occurrence.
func Derive(batch []models.RawOrder) (models.CustomerDirectory, models.ItemCatalog) {
	directory := make(models.CustomerDirectory, len(batch))
	catalog := make(models.ItemCatalog)

	for _, order := range batch {
		directory[order.Phone] = order.Name

		for _, item := range order.Items {
			if stats, seen := catalog[item.Name]; seen {
				stats.Orders++
				catalog[item.Name] = stats // price stays first-seen
			} else {
				catalog[item.Name] = models.ItemStats{Price: item.Price, Orders: 1}
			}
		}
	}

	return directory, catalog
}
