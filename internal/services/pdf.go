package services

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/habitat-caracas/habitat/backend/internal/models"
)

// RenderContactPDF renders a contact submission as a one-page PDF: a
// header line, the sender fields, then the message with its original
// line breaks preserved.
func RenderContactPDF(contact *models.Contact) ([]byte, error) {
	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 24, tr(fmt.Sprintf("Contact Submission #%d", contact.ID)), "", 1, "L", false, 0, "")
	pdf.Ln(8)

	phone := contact.Phone
	if phone == "" {
		phone = "-"
	}

	pdf.SetFont("Helvetica", "", 12)
	fields := []string{
		fmt.Sprintf("Name: %s", contact.Name),
		fmt.Sprintf("Email: %s", contact.Email),
		fmt.Sprintf("Phone: %s", phone),
		fmt.Sprintf("Subject: %s", contact.Subject),
		fmt.Sprintf("Submitted: %s", contact.SubmittedAt.Format("2006-01-02 15:04")),
	}
	for _, line := range fields {
		pdf.CellFormat(0, 18, tr(line), "", 1, "L", false, 0, "")
	}

	pdf.Ln(10)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 18, "Message:", "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 12)
	for _, line := range strings.Split(contact.Message, "\n") {
		pdf.MultiCell(0, 16, tr(line), "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
