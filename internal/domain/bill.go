package domain

import "time"

// BillItem is a single line on a bill, typically built from one
// price-tag extraction.
type BillItem struct {
	Name      string  `json:"name" binding:"required"`
	Quantity  int     `json:"quantity"`
	MRP       float64 `json:"mrp,omitempty"`
	SellPrice float64 `json:"sell_price"`
}

// Bill is a persisted billing record.
type Bill struct {
	ID        string     `json:"id"`
	Customer  string     `json:"customer,omitempty"`
	Items     []BillItem `json:"items" binding:"required"`
	Total     float64    `json:"total"`
	CreatedAt time.Time  `json:"created_at"`
}
