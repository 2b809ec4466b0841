package upstream

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexAmount_Unmarshal(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    float64
		wantErr bool
	}{
		{name: "number", in: `1250.5`, want: 1250.5},
		{name: "quoted number", in: `"1250.50"`, want: 1250.5},
		{name: "integer string", in: `"990"`, want: 990},
		{name: "null", in: `null`, want: 0},
		{name: "empty string", in: `""`, want: 0},
		{name: "garbage string", in: `"abc"`, wantErr: true},
		{name: "bool", in: `true`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a FlexAmount
			err := json.Unmarshal([]byte(tt.in), &a)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, a.Float64())
		})
	}
}

func TestMapOrder(t *testing.T) {
	var d OrderDTO
	raw := `{
		"id": "ord-1",
		"cart_id": "cart-1",
		"quotation_id": "q-1",
		"status": "confirmed",
		"total_amount": "1500.00",
		"paid_amount": 500,
		"payment_link_sent_at": "2024-03-01T10:00:00Z",
		"ops_final_check_status": "pending",
		"payments": [
			{"id": "p-1", "status": "completed", "amount": "500", "paid_at": "2024-03-02T09:00:00Z"}
		]
	}`
	require.NoError(t, json.Unmarshal([]byte(raw), &d))

	order, err := mapOrder(d)
	require.NoError(t, err)

	assert.Equal(t, "ord-1", order.ID)
	assert.Equal(t, 1500.0, order.TotalAmount)
	assert.Equal(t, 500.0, order.PaidAmount)
	assert.True(t, order.PaymentLinkSentAt.Valid)
	assert.False(t, order.PaymentConfirmedAt.Valid)
	assert.Equal(t, "pending", order.OpsFinalCheckStatus.String)
	require.Len(t, order.Payments, 1)
	assert.Equal(t, "completed", order.Payments[0].Status)
}

func TestMappers_RejectRowsWithoutIDs(t *testing.T) {
	_, err := mapCart(CartDTO{Status: "submitted"})
	assert.Error(t, err)

	_, err = mapCart(CartDTO{ID: "c-1"})
	assert.Error(t, err, "cart without status")

	_, err = mapQuotation(QuotationDTO{ID: "q-1"})
	assert.Error(t, err, "quotation without cart_id")

	_, err = mapOrder(OrderDTO{ID: "o-1"})
	assert.Error(t, err, "order without cart_id")
}
