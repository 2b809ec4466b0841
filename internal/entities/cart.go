package entities

import "github.com/aarondl/null/v8"

// Cart is a buyer's submitted collection of recommended items; once
// submitted it is the unit everything else (quotations, orders) hangs off.
type Cart struct {
	ID           string
	BuyerID      int64
	TenantID     string
	Status       string
	OpsForwarded bool
	ItemCount    int
	SubmittedAt  null.Time
	UpdatedAt    null.Time
}
