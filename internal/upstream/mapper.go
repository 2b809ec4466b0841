package upstream

import (
	"fmt"

	"sourcing-system/internal/entities"
)

// Mappers narrow raw API rows into domain entities at the trust boundary.
// Everything past this point may assume well-typed input.

func mapCart(d CartDTO) (entities.Cart, error) {
	if d.ID == "" {
		return entities.Cart{}, fmt.Errorf("cart row without id")
	}
	if d.Status == "" {
		return entities.Cart{}, fmt.Errorf("cart %s without status", d.ID)
	}
	return entities.Cart{
		ID:           d.ID,
		BuyerID:      d.BuyerID,
		TenantID:     d.TenantID,
		Status:       d.Status,
		OpsForwarded: d.OpsForwarded,
		ItemCount:    d.ItemCount,
		SubmittedAt:  d.SubmittedAt,
		UpdatedAt:    d.UpdatedAt,
	}, nil
}

func mapQuotation(d QuotationDTO) (entities.Quotation, error) {
	if d.ID == "" || d.CartID == "" {
		return entities.Quotation{}, fmt.Errorf("quotation row without id or cart_id")
	}
	return entities.Quotation{
		ID:          d.ID,
		CartID:      d.CartID,
		Status:      d.Status,
		Round:       d.Round,
		TotalAmount: d.TotalAmount.Float64(),
		SentAt:      d.SentAt,
		UpdatedAt:   d.UpdatedAt,
	}, nil
}

func mapOrder(d OrderDTO) (entities.Order, error) {
	if d.ID == "" || d.CartID == "" {
		return entities.Order{}, fmt.Errorf("order row without id or cart_id")
	}
	payments := make([]entities.Payment, 0, len(d.Payments))
	for _, p := range d.Payments {
		payments = append(payments, entities.Payment{
			ID:        p.ID,
			Status:    p.Status,
			Amount:    p.Amount.Float64(),
			PaidAt:    p.PaidAt,
			CreatedAt: p.CreatedAt,
		})
	}
	return entities.Order{
		ID:                     d.ID,
		CartID:                 d.CartID,
		QuotationID:            d.QuotationID,
		Status:                 d.Status,
		TotalAmount:            d.TotalAmount.Float64(),
		PaidAmount:             d.PaidAmount.Float64(),
		PaymentLinkSentAt:      d.PaymentLinkSentAt,
		PaymentConfirmedAt:     d.PaymentConfirmedAt,
		ForwardedToOpsAt:       d.ForwardedToOpsAt,
		OpsProcessingStartedAt: d.OpsProcessingStartedAt,
		OpsFinalCheckStatus:    d.OpsFinalCheckStatus,
		CreatedAt:              d.CreatedAt,
		Payments:               payments,
	}, nil
}
