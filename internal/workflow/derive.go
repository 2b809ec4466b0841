package workflow

// Raw order statuses, grouped by the workflow stage they signal.
var (
	orderDeclinedStatuses = map[string]bool{
		"cancelled": true,
		"canceled":  true,
		"refunded":  true,
		"declined":  true,
	}

	orderClosedStatuses = map[string]bool{
		"completed": true,
		"delivered": true,
		"closed":    true,
	}

	// Statuses in which operations is actively working the order.
	orderProcessingStatuses = map[string]bool{
		"in_production":  true,
		"quality_check":  true,
		"ready_to_ship":  true,
		"shipped":        true,
		"ops_processing": true,
	}
)

// Derive maps a snapshot to exactly one canonical status. It is pure and
// total: any snapshot produces a status, unknown raw strings degrade to the
// earliest applicable stage, and the most downstream entity present always
// wins (order/payments over quotation over the ops flag over the cart).
func Derive(s Snapshot) CanonicalStatus {
	if s.Order != nil {
		return deriveFromOrder(s.Order)
	}

	switch s.LatestQuotationStatus {
	case QuotationStatusRejected, QuotationStatusExpired:
		return StatusClosedDeclined
	case QuotationStatusAccepted:
		// Order creation lags acceptance by one poll at most.
		return StatusAcceptedPaymentPending
	case QuotationStatusFinal:
		return StatusFinal
	case QuotationStatusCountered:
		return StatusCounter
	case QuotationStatusSent:
		return StatusQuoted
	}

	if s.OpsForwarded {
		return StatusOpsForwarded
	}

	switch s.CartStatus {
	case CartStatusUnderReview:
		return StatusUnderReview
	case CartStatusSubmitted:
		return StatusSubmitted
	}

	// Conservative fallback for draft and unknown cart statuses; callers
	// filter drafts upstream.
	return StatusSubmitted
}

func deriveFromOrder(o *OrderSnapshot) CanonicalStatus {
	if orderDeclinedStatuses[o.Status] {
		return StatusClosedDeclined
	}
	if orderClosedStatuses[o.Status] {
		return StatusClosedAccepted
	}

	inFulfillment := o.ForwardedToOpsAt != nil || orderProcessingStatuses[o.Status]
	if inFulfillment && o.Paid() {
		if o.OpsProcessingStartedAt != nil || orderProcessingStatuses[o.Status] {
			return StatusInOpsProcessing
		}
		return StatusReadyForOps
	}

	if o.Paid() {
		return StatusPaidConfirmed
	}
	if o.PaymentLinkSentAt != nil {
		return StatusPaymentLinkSent
	}

	// No payment signal yet. The ops recheck gate only applies while the
	// order explicitly flags it; an absent flag degrades to the state the
	// buyer can act on.
	if o.OpsFinalCheckStatus == "pending" {
		return StatusAcceptedPendingOpsRecheck
	}
	return StatusAcceptedPaymentPending
}

// salesCollapsed lists the post-acceptance states the sales view folds into
// its single closed-won bucket. Sales tracks conversion, not fulfillment.
var salesCollapsed = map[CanonicalStatus]bool{
	StatusAcceptedPendingOpsRecheck: true,
	StatusAcceptedPaymentPending:    true,
	StatusPaymentLinkSent:           true,
	StatusPaidConfirmed:             true,
	StatusReadyForOps:               true,
	StatusInOpsProcessing:           true,
	StatusClosedAccepted:            true,
}

// DeriveSales is the sales-scoped variant of Derive. It agrees with Derive on
// every status up to and including QUOTED, COUNTER, FINAL and CLOSED_DECLINED;
// everything past acceptance collapses to CLOSED_ACCEPTED.
func DeriveSales(s Snapshot) CanonicalStatus {
	st := Derive(s)
	if salesCollapsed[st] {
		return StatusClosedAccepted
	}
	return st
}
