package dto

import "time"

// RequestWorkflowDTO is the projection every list/detail/tracker view
// renders: one canonical status per buyer request, with the label and badge
// ready for display.
type RequestWorkflowDTO struct {
	CartID          string    `json:"cart_id"`
	BuyerID         int64     `json:"buyer_id"`
	TenantID        string    `json:"tenant_id"`
	Status          string    `json:"status"`
	Label           string    `json:"label"`
	BadgeClass      string    `json:"badge_class"`
	Terminal        bool      `json:"terminal"`
	CartStatus      string    `json:"cart_status"`
	QuotationStatus string    `json:"quotation_status,omitempty"`
	QuotationRound  int       `json:"quotation_round,omitempty"`
	OrderID         string    `json:"order_id,omitempty"`
	OrderStatus     string    `json:"order_status,omitempty"`
	TotalAmount     float64   `json:"total_amount,omitempty"`
	PaidAmount      float64   `json:"paid_amount,omitempty"`
	ItemCount       int       `json:"item_count"`
	DerivedAt       time.Time `json:"derived_at"`
}

// OrderTransitionsDTO lists the fulfillment moves currently allowed for an
// order. It is a rendering hint for action buttons; the platform enforces
// transitions on write.
type OrderTransitionsDTO struct {
	OrderID     string   `json:"order_id"`
	Status      string   `json:"status"`
	AllowedNext []string `json:"allowed_next"`
}
