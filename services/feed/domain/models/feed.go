package models

// LineItem is one purchased item inside a raw order record.
type LineItem struct {
	Name  string
	Price float64
}

// RawOrder is one record of the order feed: the purchasing customer's phone
// and name plus the purchased line items. It is unrelated to the live Order
// entity — the feed carries its own denormalized shape.
type RawOrder struct {
	Phone string
	Name  string
	Items []LineItem
}

// CustomerDirectory maps phone number to customer name. Within one batch the
// last order seen for a phone wins.
type CustomerDirectory map[string]string

// ItemStats is the derived view of one item name across a batch.
type ItemStats struct {
	Price  float64 `json:"price"`
	Orders int     `json:"orders"`
}

// ItemCatalog maps item name to its stats. The first price seen for a name
// wins; every later occurrence only increments the order count.
type ItemCatalog map[string]ItemStats
