package models

// Payment represents one maintenance payment made by a member.
type Payment struct {
	// ID is the unique identifier for the payment (UUID format).
	ID string `json:"id"`

	// MemberID references the paying Member. Advisory only: storage does not
	// enforce that a matching member exists.
	MemberID string `json:"memberId"`

	// MemberName is the member's name as it was when the payment was
	// recorded. Kept denormalized so historical receipts stay stable.
	MemberName string `json:"memberName"`

	// Month is the maintenance month the payment covers, in "YYYY-MM" form.
	Month string `json:"month"`

	// Amount is the payment amount. Always non-negative.
	Amount float64 `json:"amount"`

	// Date is the recording time as an ISO-8601 timestamp string.
	Date string `json:"date"`

	// Note is optional free text attached to the payment.
	Note string `json:"note,omitempty"`
}
