package entities

import "github.com/aarondl/null/v8"

// Quotation is a priced offer sent by sales in response to a submitted cart.
// Round counts negotiation exchanges on the same cart.
type Quotation struct {
	ID          string
	CartID      string
	Status      string
	Round       int
	TotalAmount float64
	SentAt      null.Time
	UpdatedAt   null.Time
}
