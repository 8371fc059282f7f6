// Package document renders printable society documents: maintenance receipts
// and formal demand notices. The wording follows the society's standard
// stationery; rendering is plain text so the presentation layer can print it
// as-is.
package document

import (
	"fmt"
	"strings"
	"text/template"
	"time"

	"societyledger/internal/models"
)

// Society identifies the society on printed documents.
type Society struct {
	Name           string
	RegistrationNo string
	Address        string
}

// ReceiptNo derives the printed receipt number from a payment id: the first
// eight characters, uppercased.
func ReceiptNo(paymentID string) string {
	if len(paymentID) > 8 {
		paymentID = paymentID[:8]
	}
	return strings.ToUpper(paymentID)
}

// memberDisplayName degrades gracefully for orphaned payments whose name
// snapshot is empty.
func memberDisplayName(name string) string {
	if name == "" {
		return "Unknown member"
	}
	return name
}

var receiptTmpl = template.Must(template.New("receipt").Parse(
	`{{.SocietyName}}
MAINTENANCE RECEIPT
Reg No: {{.RegNo}} | {{.Address}}
------------------------------------------------------------
Receipt No: {{.ReceiptNo}}
Date:       {{.Date}}

Received From:  {{.MemberName}}
For Month:      {{.Month}}
Payment Mode:   Cash / UPI
Amount:         Rs. {{.Amount}}
{{- if .Note}}
Note:           {{.Note}}
{{- end}}

____________________          ____________________
Payer Signature               Treasurer / Secretary

This is a computer generated receipt.
`))

type receiptData struct {
	SocietyName string
	RegNo       string
	Address     string
	ReceiptNo   string
	Date        string
	MemberName  string
	Month       string
	Amount      string
	Note        string
}

// Receipt renders the maintenance receipt for a payment. The member name is
// the snapshot stored on the payment, never a live lookup.
func Receipt(payment *models.Payment, society Society) (string, error) {
	date := payment.Date
	if t, err := time.Parse(time.RFC3339, payment.Date); err == nil {
		date = t.Format("02 Jan 2006")
	}

	var b strings.Builder
	err := receiptTmpl.Execute(&b, receiptData{
		SocietyName: strings.ToUpper(society.Name),
		RegNo:       society.RegistrationNo,
		Address:     society.Address,
		ReceiptNo:   ReceiptNo(payment.ID),
		Date:        date,
		MemberName:  memberDisplayName(payment.MemberName),
		Month:       payment.Month,
		Amount:      formatAmount(payment.Amount),
		Note:        payment.Note,
	})
	if err != nil {
		return "", fmt.Errorf("failed to render receipt: %w", err)
	}
	return b.String(), nil
}

var noticeTmpl = template.Must(template.New("notice").Parse(
	`FORMAL DEMAND NOTICE
Before the Managing Committee, {{.SocietyName}} Owners Association

Date: {{.Date}}

To,
{{.MemberName}}
Flat No: {{.FlatNumber}}
{{.SocietyName}}, {{.Address}}.
{{- if .Mobile}}
Mobile: {{.Mobile}}
{{- end}}

SUBJECT: OUTSTANDING MAINTENANCE DUES - FINAL REMINDER

Dear Member,

This notice is to inform you that an amount of Rs. {{.Dues}} is outstanding
against your flat towards the society maintenance charges.

It has come to our attention that the dues have not been cleared despite
previous verbal reminders. We would like to draw your attention to the legal
framework governing apartment ownership.

"Maintenance liability is attached to the ownership of the property,
regardless of occupancy status (vacant flat)."

Under the provisions of the Apartment Ownership Act and the Transfer of
Property Act, every flat owner is legally obligated to contribute towards the
common expenses of the association. Non-occupancy of the flat does not exempt
the owner from this statutory liability.

You are hereby requested to clear the total outstanding dues within 7 (Seven)
days from the receipt of this notice. Failure to do so may compel the
Association to initiate recovery proceedings under the applicable Cooperative
Societies Act, including but not limited to disconnection of essential
services (Water/Electricity) as per the association bye-laws.

Please treat this as urgent.

Sincerely,

Secretary / President
{{.SocietyName}} Owners Association
`))

type noticeData struct {
	SocietyName string
	Address     string
	Date        string
	MemberName  string
	FlatNumber  string
	Mobile      string
	Dues        string
}

// DemandNotice renders the formal demand notice for a member. The dues figure
// is the society's configured placeholder amount; it is not computed from
// unpaid months.
func DemandNotice(member *models.Member, dues float64, society Society) (string, error) {
	var b strings.Builder
	err := noticeTmpl.Execute(&b, noticeData{
		SocietyName: society.Name,
		Address:     society.Address,
		Date:        time.Now().Format("2 January 2006"),
		MemberName:  member.Name,
		FlatNumber:  member.FlatNumber,
		Mobile:      member.Mobile,
		Dues:        formatAmount(dues),
	})
	if err != nil {
		return "", fmt.Errorf("failed to render notice: %w", err)
	}
	return b.String(), nil
}

// formatAmount prints whole amounts without a fractional part and keeps two
// decimals otherwise.
func formatAmount(amount float64) string {
	if amount == float64(int64(amount)) {
		return fmt.Sprintf("%d", int64(amount))
	}
	return fmt.Sprintf("%.2f", amount)
}
