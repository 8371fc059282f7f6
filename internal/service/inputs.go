package service

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"societyledger/internal/models"
)

var monthPattern = regexp.MustCompile(`^\d{4}-\d{2}$`)

// NewMemberInput carries the user-entered fields for adding a member.
// Values come straight from form controls and are never pre-validated.
type NewMemberInput struct {
	Name        string `json:"name"`
	FlatNumber  string `json:"flatNumber"`
	Mobile      string `json:"mobile"`
	PhotoBase64 string `json:"photoBase64"`
}

// Validate checks required fields.
func (in NewMemberInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Name, validation.Required),
		validation.Field(&in.FlatNumber, validation.Required),
	)
}

// NewPaymentInput carries the user-entered fields for recording a payment.
type NewPaymentInput struct {
	MemberID string  `json:"memberId"`
	Month    string  `json:"month"`
	Amount   float64 `json:"amount"`
	Note     string  `json:"note"`
}

// Validate checks required fields and the "YYYY-MM" month shape. The month
// range itself is not validated.
func (in NewPaymentInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.MemberID, validation.Required),
		validation.Field(&in.Month, validation.Required, validation.Match(monthPattern)),
		validation.Field(&in.Amount, validation.Required, validation.Min(0.0)),
	)
}

// NewExpenseInput carries the user-entered fields for logging an expense.
// An empty Category defaults to Other, matching the expense form's default.
type NewExpenseInput struct {
	Title    string  `json:"title"`
	Amount   float64 `json:"amount"`
	Category string  `json:"category"`
}

// Validate checks required fields and that a non-empty category belongs to
// the closed set.
func (in NewExpenseInput) Validate() error {
	categories := models.Categories()
	allowed := make([]interface{}, len(categories))
	for i, c := range categories {
		allowed[i] = string(c)
	}

	return validation.ValidateStruct(&in,
		validation.Field(&in.Title, validation.Required),
		validation.Field(&in.Amount, validation.Required, validation.Min(0.0)),
		validation.Field(&in.Category, validation.In(allowed...)),
	)
}
