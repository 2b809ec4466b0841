// Package workflow derives the single canonical status a buyer request shows
// across the sourcing app, out of the raw states of the cart, the latest
// quotation, the order and its payments.
//
// Typical progression (transitions are not strictly linear):
//
//	SUBMITTED ─► UNDER_REVIEW ─► OPS_FORWARDED ─► QUOTED ─► COUNTER ─► FINAL
//	    ─► ACCEPTED_PENDING_OPS_RECHECK ─► ACCEPTED_PAYMENT_PENDING
//	    ─► PAYMENT_LINK_SENT ─► PAID_CONFIRMED ─► READY_FOR_OPS
//	    ─► IN_OPS_PROCESSING ─► CLOSED_ACCEPTED
//
// CLOSED_ACCEPTED and CLOSED_DECLINED are terminal.
package workflow

// CanonicalStatus is the UI-facing workflow status of a buyer request.
type CanonicalStatus string

const (
	StatusSubmitted                 CanonicalStatus = "SUBMITTED"
	StatusUnderReview               CanonicalStatus = "UNDER_REVIEW"
	StatusOpsForwarded              CanonicalStatus = "OPS_FORWARDED"
	StatusQuoted                    CanonicalStatus = "QUOTED"
	StatusCounter                   CanonicalStatus = "COUNTER"
	StatusFinal                     CanonicalStatus = "FINAL"
	StatusAcceptedPendingOpsRecheck CanonicalStatus = "ACCEPTED_PENDING_OPS_RECHECK"
	StatusAcceptedPaymentPending    CanonicalStatus = "ACCEPTED_PAYMENT_PENDING"
	StatusPaymentLinkSent           CanonicalStatus = "PAYMENT_LINK_SENT"
	StatusPaidConfirmed             CanonicalStatus = "PAID_CONFIRMED"
	StatusReadyForOps               CanonicalStatus = "READY_FOR_OPS"
	StatusInOpsProcessing           CanonicalStatus = "IN_OPS_PROCESSING"
	StatusClosedAccepted            CanonicalStatus = "CLOSED_ACCEPTED"
	StatusClosedDeclined            CanonicalStatus = "CLOSED_DECLINED"
)

// AllStatuses lists every canonical status in progression order.
var AllStatuses = []CanonicalStatus{
	StatusSubmitted,
	StatusUnderReview,
	StatusOpsForwarded,
	StatusQuoted,
	StatusCounter,
	StatusFinal,
	StatusAcceptedPendingOpsRecheck,
	StatusAcceptedPaymentPending,
	StatusPaymentLinkSent,
	StatusPaidConfirmed,
	StatusReadyForOps,
	StatusInOpsProcessing,
	StatusClosedAccepted,
	StatusClosedDeclined,
}

func (s CanonicalStatus) String() string {
	return string(s)
}

// IsTerminal reports whether no further transition is possible.
func (s CanonicalStatus) IsTerminal() bool {
	return s == StatusClosedAccepted || s == StatusClosedDeclined
}

// BadgeClass is the style token a status badge is rendered with.
type BadgeClass string

const (
	BadgeSuccess BadgeClass = "success"
	BadgeInfo    BadgeClass = "info"
	BadgeWarning BadgeClass = "warning"
	BadgeNeutral BadgeClass = "neutral"
	BadgeDanger  BadgeClass = "danger"
)

// Label returns the human-readable display label for the status.
func (s CanonicalStatus) Label() string {
	switch s {
	case StatusSubmitted:
		return "Submitted"
	case StatusUnderReview:
		return "Under Review"
	case StatusOpsForwarded:
		return "Forwarded to Sales"
	case StatusQuoted:
		return "Quoted"
	case StatusCounter:
		return "Counter Offer"
	case StatusFinal:
		return "Final Offer"
	case StatusAcceptedPendingOpsRecheck:
		return "Accepted, Ops Recheck"
	case StatusAcceptedPaymentPending:
		return "Accepted, Payment Pending"
	case StatusPaymentLinkSent:
		return "Payment Link Sent"
	case StatusPaidConfirmed:
		return "Paid"
	case StatusReadyForOps:
		return "Ready for Operations"
	case StatusInOpsProcessing:
		return "In Operations"
	case StatusClosedAccepted:
		return "Closed"
	case StatusClosedDeclined:
		return "Declined"
	default:
		return "Submitted"
	}
}

// BadgeClass returns the style token for the status. The switch is exhaustive
// over AllStatuses so a new member cannot silently inherit a wrong color.
func (s CanonicalStatus) BadgeClass() BadgeClass {
	switch s {
	case StatusSubmitted:
		return BadgeNeutral
	case StatusUnderReview, StatusOpsForwarded, StatusQuoted:
		return BadgeInfo
	case StatusCounter, StatusFinal:
		return BadgeWarning
	case StatusAcceptedPendingOpsRecheck, StatusAcceptedPaymentPending:
		return BadgeWarning
	case StatusPaymentLinkSent:
		return BadgeInfo
	case StatusPaidConfirmed:
		return BadgeSuccess
	case StatusReadyForOps, StatusInOpsProcessing:
		return BadgeInfo
	case StatusClosedAccepted:
		return BadgeSuccess
	case StatusClosedDeclined:
		return BadgeDanger
	default:
		return BadgeNeutral
	}
}

// Raw cart statuses as the platform API reports them.
const (
	CartStatusDraft       = "draft"
	CartStatusSubmitted   = "submitted"
	CartStatusUnderReview = "under_review"
	CartStatusQuoted      = "quoted"
	CartStatusClosed      = "closed"
)

// Raw quotation statuses.
const (
	QuotationStatusDraft     = "draft"
	QuotationStatusSent      = "sent"
	QuotationStatusCountered = "countered"
	QuotationStatusFinal     = "final"
	QuotationStatusAccepted  = "accepted"
	QuotationStatusRejected  = "rejected"
	QuotationStatusExpired   = "expired"
)

// Raw payment record statuses.
const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"
)
