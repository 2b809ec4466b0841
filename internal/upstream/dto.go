package upstream

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/aarondl/null/v8"
)

// FlexAmount accepts monetary values the platform API serializes either as a
// JSON number or as a quoted string.
type FlexAmount float64

func (a *FlexAmount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*a = 0
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s == "" {
			*a = 0
			return nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("amount %q is not numeric: %w", s, err)
		}
		*a = FlexAmount(f)
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*a = FlexAmount(f)
	return nil
}

func (a FlexAmount) Float64() float64 { return float64(a) }

// CartDTO mirrors one row of GET /internal/quotations/requests.
type CartDTO struct {
	ID           string    `json:"id"`
	BuyerID      int64     `json:"buyer_id"`
	TenantID     string    `json:"tenant_id"`
	Status       string    `json:"status"`
	OpsForwarded bool      `json:"ops_forwarded"`
	ItemCount    int       `json:"item_count"`
	SubmittedAt  null.Time `json:"submitted_at"`
	UpdatedAt    null.Time `json:"updated_at"`
}

func (d CartDTO) GetID() string { return d.ID }

// QuotationDTO mirrors one row of GET /orders/my-quotations.
type QuotationDTO struct {
	ID          string     `json:"id"`
	CartID      string     `json:"cart_id"`
	Status      string     `json:"status"`
	Round       int        `json:"round"`
	TotalAmount FlexAmount `json:"total_amount"`
	SentAt      null.Time  `json:"sent_at"`
	UpdatedAt   null.Time  `json:"updated_at"`
}

func (d QuotationDTO) GetID() string { return d.ID }

// OrderDTO mirrors one row of GET /operations/orders.
type OrderDTO struct {
	ID                     string       `json:"id"`
	CartID                 string       `json:"cart_id"`
	QuotationID            string       `json:"quotation_id"`
	Status                 string       `json:"status"`
	TotalAmount            FlexAmount   `json:"total_amount"`
	PaidAmount             FlexAmount   `json:"paid_amount"`
	PaymentLinkSentAt      null.Time    `json:"payment_link_sent_at"`
	PaymentConfirmedAt     null.Time    `json:"payment_confirmed_at"`
	ForwardedToOpsAt       null.Time    `json:"forwarded_to_ops_at"`
	OpsProcessingStartedAt null.Time    `json:"ops_processing_started_at"`
	OpsFinalCheckStatus    null.String  `json:"ops_final_check_status"`
	CreatedAt              null.Time    `json:"created_at"`
	Payments               []PaymentDTO `json:"payments"`
}

func (d OrderDTO) GetID() string { return d.ID }

// PaymentDTO is one payment record nested under an order.
type PaymentDTO struct {
	ID        string     `json:"id"`
	Status    string     `json:"status"`
	Amount    FlexAmount `json:"amount"`
	PaidAt    null.Time  `json:"paid_at"`
	CreatedAt null.Time  `json:"created_at"`
}
