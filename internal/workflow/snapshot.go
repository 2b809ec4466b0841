package workflow

import "time"

// Snapshot is the per-request view assembled fresh from the platform API on
// every poll. Only CartStatus is required; every other signal may be absent.
// It is never persisted.
type Snapshot struct {
	CartStatus            string
	LatestQuotationStatus string
	OpsForwarded          bool
	Order                 *OrderSnapshot
}

// OrderSnapshot carries the order and payment signals of a request once the
// buyer has accepted a quotation. Timestamp pointers are nil when the signal
// is absent.
type OrderSnapshot struct {
	ID                     string
	Status                 string
	TotalAmount            float64
	PaidAmount             float64
	PaymentLinkSentAt      *time.Time
	PaymentConfirmedAt     *time.Time
	ForwardedToOpsAt       *time.Time
	OpsProcessingStartedAt *time.Time
	OpsFinalCheckStatus    string
	Payments               []PaymentSnapshot
}

// PaymentSnapshot is one payment record attached to an order.
type PaymentSnapshot struct {
	Status    string
	PaidAt    *time.Time
	CreatedAt *time.Time
}

// Paid reports whether the order carries a confirmed-payment signal:
// paid amount covers a non-zero total, a payment record is completed, or the
// confirmation timestamp is set. A zero total means "not yet priced" and never
// counts as fully paid.
func (o *OrderSnapshot) Paid() bool {
	if o == nil {
		return false
	}
	if o.TotalAmount > 0 && o.PaidAmount >= o.TotalAmount {
		return true
	}
	if o.PaymentConfirmedAt != nil {
		return true
	}
	for _, p := range o.Payments {
		if p.Status == PaymentStatusCompleted {
			return true
		}
	}
	return false
}
