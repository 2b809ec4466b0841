package workflow

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ts(s string) *time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return &t
}

func TestDerive_Scenarios(t *testing.T) {
	tests := []struct {
		name string
		snap Snapshot
		want CanonicalStatus
	}{
		{
			name: "submitted cart",
			snap: Snapshot{CartStatus: "submitted"},
			want: StatusSubmitted,
		},
		{
			name: "under review, not forwarded",
			snap: Snapshot{CartStatus: "under_review", OpsForwarded: false},
			want: StatusUnderReview,
		},
		{
			name: "under review, forwarded to sales",
			snap: Snapshot{CartStatus: "under_review", OpsForwarded: true},
			want: StatusOpsForwarded,
		},
		{
			name: "quotation sent",
			snap: Snapshot{CartStatus: "quoted", LatestQuotationStatus: "sent"},
			want: StatusQuoted,
		},
		{
			name: "negotiation counter",
			snap: Snapshot{CartStatus: "quoted", LatestQuotationStatus: "countered"},
			want: StatusCounter,
		},
		{
			name: "negotiation final",
			snap: Snapshot{CartStatus: "quoted", LatestQuotationStatus: "final"},
			want: StatusFinal,
		},
		{
			name: "quotation expired",
			snap: Snapshot{CartStatus: "closed", LatestQuotationStatus: "expired"},
			want: StatusClosedDeclined,
		},
		{
			name: "quotation rejected",
			snap: Snapshot{CartStatus: "quoted", LatestQuotationStatus: "rejected"},
			want: StatusClosedDeclined,
		},
		{
			name: "accepted, order not created yet",
			snap: Snapshot{CartStatus: "quoted", LatestQuotationStatus: "accepted"},
			want: StatusAcceptedPaymentPending,
		},
		{
			name: "paid in full with completed payment",
			snap: Snapshot{
				CartStatus:            "quoted",
				LatestQuotationStatus: "accepted",
				Order: &OrderSnapshot{
					ID: "o1", Status: "confirmed",
					TotalAmount: 1000, PaidAmount: 1000,
					Payments: []PaymentSnapshot{{Status: "completed"}},
				},
			},
			want: StatusPaidConfirmed,
		},
		{
			name: "payment link sent but unpaid",
			snap: Snapshot{
				CartStatus: "quoted",
				Order: &OrderSnapshot{
					ID: "o1", Status: "confirmed",
					TotalAmount: 1000, PaidAmount: 0,
					PaymentLinkSentAt: ts("2024-01-01T00:00:00Z"),
				},
			},
			want: StatusPaymentLinkSent,
		},
		{
			name: "order exists, no payment signals, no recheck flag",
			snap: Snapshot{
				CartStatus: "quoted",
				Order:      &OrderSnapshot{ID: "o1", Status: "confirmed", TotalAmount: 1000},
			},
			want: StatusAcceptedPaymentPending,
		},
		{
			name: "order exists, ops recheck pending",
			snap: Snapshot{
				CartStatus: "quoted",
				Order: &OrderSnapshot{
					ID: "o1", Status: "confirmed",
					TotalAmount: 1000, OpsFinalCheckStatus: "pending",
				},
			},
			want: StatusAcceptedPendingOpsRecheck,
		},
		{
			name: "paid and forwarded to ops, processing not started",
			snap: Snapshot{
				CartStatus: "quoted",
				Order: &OrderSnapshot{
					ID: "o1", Status: "confirmed",
					TotalAmount: 500, PaidAmount: 500,
					ForwardedToOpsAt: ts("2024-02-01T10:00:00Z"),
				},
			},
			want: StatusReadyForOps,
		},
		{
			name: "paid, ops processing started",
			snap: Snapshot{
				CartStatus: "quoted",
				Order: &OrderSnapshot{
					ID: "o1", Status: "confirmed",
					TotalAmount: 500, PaidAmount: 500,
					ForwardedToOpsAt:       ts("2024-02-01T10:00:00Z"),
					OpsProcessingStartedAt: ts("2024-02-01T12:00:00Z"),
				},
			},
			want: StatusInOpsProcessing,
		},
		{
			name: "paid, order in production",
			snap: Snapshot{
				CartStatus: "quoted",
				Order: &OrderSnapshot{
					ID: "o1", Status: "in_production",
					TotalAmount: 500, PaidAmount: 500,
				},
			},
			want: StatusInOpsProcessing,
		},
		{
			name: "order cancelled",
			snap: Snapshot{
				CartStatus: "quoted",
				Order:      &OrderSnapshot{ID: "o1", Status: "cancelled", TotalAmount: 500, PaidAmount: 500},
			},
			want: StatusClosedDeclined,
		},
		{
			name: "order refunded",
			snap: Snapshot{
				CartStatus: "quoted",
				Order:      &OrderSnapshot{ID: "o1", Status: "refunded"},
			},
			want: StatusClosedDeclined,
		},
		{
			name: "order delivered",
			snap: Snapshot{
				CartStatus: "quoted",
				Order:      &OrderSnapshot{ID: "o1", Status: "delivered", TotalAmount: 500, PaidAmount: 500},
			},
			want: StatusClosedAccepted,
		},
		{
			name: "zero total never counts as paid",
			snap: Snapshot{
				CartStatus: "quoted",
				Order:      &OrderSnapshot{ID: "o1", Status: "confirmed", TotalAmount: 0, PaidAmount: 0},
			},
			want: StatusAcceptedPaymentPending,
		},
		{
			name: "draft cart falls back to submitted",
			snap: Snapshot{CartStatus: "draft"},
			want: StatusSubmitted,
		},
		{
			name: "unknown cart status falls back to submitted",
			snap: Snapshot{CartStatus: "???"},
			want: StatusSubmitted,
		},
		{
			name: "unknown quotation status falls through to cart",
			snap: Snapshot{CartStatus: "under_review", LatestQuotationStatus: "weird"},
			want: StatusUnderReview,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Derive(tt.snap))
		})
	}
}

// The most downstream entity present always wins.
func TestDerive_OrderSignalsWinOverQuotation(t *testing.T) {
	snap := Snapshot{
		CartStatus:            "submitted",
		LatestQuotationStatus: "sent",
		Order: &OrderSnapshot{
			ID: "o1", Status: "confirmed",
			TotalAmount: 100, PaidAmount: 100,
		},
	}
	assert.Equal(t, StatusPaidConfirmed, Derive(snap))
}

func TestDerive_TerminalAbsorption(t *testing.T) {
	// Regardless of every other field, a cancelled order or a dead
	// quotation means CLOSED_DECLINED.
	cancelled := Snapshot{
		CartStatus:            "under_review",
		LatestQuotationStatus: "accepted",
		OpsForwarded:          true,
		Order: &OrderSnapshot{
			ID: "o1", Status: "cancelled",
			TotalAmount: 100, PaidAmount: 100,
			PaymentLinkSentAt:      ts("2024-01-01T00:00:00Z"),
			ForwardedToOpsAt:       ts("2024-01-02T00:00:00Z"),
			OpsProcessingStartedAt: ts("2024-01-03T00:00:00Z"),
			Payments:               []PaymentSnapshot{{Status: "completed"}},
		},
	}
	assert.Equal(t, StatusClosedDeclined, Derive(cancelled))

	for _, q := range []string{"rejected", "expired"} {
		snap := Snapshot{CartStatus: "under_review", LatestQuotationStatus: q, OpsForwarded: true}
		assert.Equal(t, StatusClosedDeclined, Derive(snap), q)
	}
}

// Derive is total: any combination of raw strings yields one of the fourteen
// canonical values.
func TestDerive_Totality(t *testing.T) {
	cartStatuses := []string{"", "draft", "submitted", "under_review", "quoted", "closed", "junk"}
	quoteStatuses := []string{"", "draft", "sent", "countered", "final", "accepted", "rejected", "expired", "junk"}
	orderStatuses := []string{"", "confirmed", "in_production", "shipped", "delivered", "completed", "cancelled", "refunded", "junk"}

	known := make(map[CanonicalStatus]bool, len(AllStatuses))
	for _, s := range AllStatuses {
		known[s] = true
	}

	for _, cs := range cartStatuses {
		for _, qs := range quoteStatuses {
			for _, forwarded := range []bool{false, true} {
				snap := Snapshot{CartStatus: cs, LatestQuotationStatus: qs, OpsForwarded: forwarded}
				require.True(t, known[Derive(snap)], "no order: %+v", snap)

				for _, os := range orderStatuses {
					snap.Order = &OrderSnapshot{ID: "o", Status: os, TotalAmount: 10}
					got := Derive(snap)
					require.True(t, known[got], "with order: %+v -> %s", snap, got)
					snap.Order = nil
				}
			}
		}
	}
}

func TestDerive_Idempotent(t *testing.T) {
	snap := Snapshot{
		CartStatus:            "quoted",
		LatestQuotationStatus: "accepted",
		Order: &OrderSnapshot{
			ID: "o1", Status: "confirmed", TotalAmount: 100,
			PaymentLinkSentAt: ts("2024-01-01T00:00:00Z"),
		},
	}
	first := Derive(snap)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Derive(snap))
	}
}

func TestDeriveSales_AgreesPreAcceptance(t *testing.T) {
	snaps := []Snapshot{
		{CartStatus: "submitted"},
		{CartStatus: "under_review"},
		{CartStatus: "under_review", OpsForwarded: true},
		{CartStatus: "quoted", LatestQuotationStatus: "sent"},
		{CartStatus: "quoted", LatestQuotationStatus: "countered"},
		{CartStatus: "quoted", LatestQuotationStatus: "final"},
		{CartStatus: "quoted", LatestQuotationStatus: "rejected"},
		{CartStatus: "closed", LatestQuotationStatus: "expired"},
	}
	for _, snap := range snaps {
		assert.Equal(t, Derive(snap), DeriveSales(snap), "%+v", snap)
	}
}

func TestDeriveSales_CollapsesFulfillment(t *testing.T) {
	snaps := []Snapshot{
		{CartStatus: "quoted", LatestQuotationStatus: "accepted"},
		{CartStatus: "quoted", Order: &OrderSnapshot{ID: "o", Status: "confirmed", TotalAmount: 100}},
		{CartStatus: "quoted", Order: &OrderSnapshot{ID: "o", Status: "confirmed", TotalAmount: 100, PaymentLinkSentAt: ts("2024-01-01T00:00:00Z")}},
		{CartStatus: "quoted", Order: &OrderSnapshot{ID: "o", Status: "confirmed", TotalAmount: 100, PaidAmount: 100}},
		{CartStatus: "quoted", Order: &OrderSnapshot{ID: "o", Status: "in_production", TotalAmount: 100, PaidAmount: 100}},
		{CartStatus: "quoted", Order: &OrderSnapshot{ID: "o", Status: "completed"}},
	}
	for _, snap := range snaps {
		assert.Equal(t, StatusClosedAccepted, DeriveSales(snap), "%+v", snap)
	}

	// The declined terminal is never folded into the won bucket.
	declined := Snapshot{CartStatus: "quoted", Order: &OrderSnapshot{ID: "o", Status: "cancelled"}}
	assert.Equal(t, StatusClosedDeclined, DeriveSales(declined))
}

func TestOrderSnapshot_Paid(t *testing.T) {
	assert.False(t, (*OrderSnapshot)(nil).Paid())
	assert.False(t, (&OrderSnapshot{TotalAmount: 0, PaidAmount: 0}).Paid())
	assert.True(t, (&OrderSnapshot{TotalAmount: 100, PaidAmount: 150}).Paid())
	assert.True(t, (&OrderSnapshot{PaymentConfirmedAt: ts("2024-01-01T00:00:00Z")}).Paid())
	assert.True(t, (&OrderSnapshot{Payments: []PaymentSnapshot{{Status: "pending"}, {Status: "completed"}}}).Paid())
	assert.False(t, (&OrderSnapshot{Payments: []PaymentSnapshot{{Status: "failed"}}}).Paid())
}
