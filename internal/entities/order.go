package entities

import "github.com/aarondl/null/v8"

// Order is created once a buyer accepts a quotation. The timestamp fields
// are the payment/fulfillment signals the workflow deriver reads.
type Order struct {
	ID                     string
	CartID                 string
	QuotationID            string
	Status                 string
	TotalAmount            float64
	PaidAmount             float64
	PaymentLinkSentAt      null.Time
	PaymentConfirmedAt     null.Time
	ForwardedToOpsAt       null.Time
	OpsProcessingStartedAt null.Time
	OpsFinalCheckStatus    null.String
	CreatedAt              null.Time
	Payments               []Payment
}

// Payment is one payment record attached to an order.
type Payment struct {
	ID        string
	Status    string
	Amount    float64
	PaidAt    null.Time
	CreatedAt null.Time
}
