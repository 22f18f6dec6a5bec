package application

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/phpdave11/gofpdf"

	"github.com/jhalaharsh71/hotel-frontend-sub001/internal/domain"
)

// BuildReceiptPDF renders a receipt snapshot as a downloadable PDF and
// returns the document bytes with a suggested filename.
func BuildReceiptPDF(receipt *domain.ReceiptSnapshot) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Booking Receipt", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "BOOKING RECEIPT")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Receipt No     : %s", receipt.ID),
		fmt.Sprintf("Booking No     : %s", receipt.BookingID),
		fmt.Sprintf("Issued         : %s", receipt.CreatedAt.Format("2006-01-02 15:04")),
		fmt.Sprintf("Guest          : %s", orDash(receipt.CustomerName)),
		fmt.Sprintf("Phone          : %s", orDash(receipt.Phone)),
		fmt.Sprintf("Email          : %s", orDash(receipt.Email)),
		fmt.Sprintf("Check-in       : %s", receipt.CheckInDate.Format("2006-01-02")),
		fmt.Sprintf("Check-out      : %s", receipt.CheckOutDate.Format("2006-01-02")),
		fmt.Sprintf("Nights         : %d", receipt.DurationNights),
		fmt.Sprintf("Nightly rate   : %.2f", receipt.NightlyRate),
		fmt.Sprintf("Payment method : %s", receipt.PaymentMethod),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Guests:")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 11)
	for i, g := range receipt.Guests {
		name := strings.TrimSpace(g.FirstName + " " + g.LastName)
		role := ""
		if g.IsPrimary {
			role = " (primary)"
		}
		pdf.Cell(0, 6, fmt.Sprintf("%d) %s%s", i+1, orDash(name), role))
		pdf.Ln(6)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Total: %.2f", receipt.TotalAmount))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Paid: %.2f", receipt.PaidAmount))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Due at property: %.2f", receipt.TotalAmount-receipt.PaidAmount))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Please present this receipt at check-in. The balance is payable at the property.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("RECEIPT_%s.pdf", receipt.BookingID)
	return buf.Bytes(), filename, nil
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
