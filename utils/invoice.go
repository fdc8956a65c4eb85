package utils

import (
	"bytes"
	"fmt"

	"github.com/google/uuid"
	"github.com/jung-kurt/gofpdf"

	"DocSpot/models"
)

/*
* Render a paid appointment as a PDF receipt
* Layout: title, appointment details table, payment details table
 */
func GenerateReceiptPDF(appointment models.Appointment) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.SetTextColor(41, 98, 255)
	pdf.CellFormat(0, 10, "DocSpot - Appointment Receipt", "", 1, "C", false, 0, "")

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 10, "Appointment Details", "1", 1, "C", false, 0, "")
	addReceiptRow(pdf, "Receipt No", uuid.NewString(), true)
	addReceiptRow(pdf, "Appointment ID", appointment.ID.Hex(), true)
	addReceiptRow(pdf, "Doctor", appointment.DocData.Name, true)
	addReceiptRow(pdf, "Speciality", appointment.DocData.Speciality, true)
	addReceiptRow(pdf, "Patient", appointment.UserData.Name, true)
	addReceiptRow(pdf, "Slot Date", appointment.SlotDate, true)
	addReceiptRow(pdf, "Slot Time", appointment.SlotTime, true)

	pdf.CellFormat(0, 10, "Payment Details", "1", 1, "C", false, 0, "")
	addReceiptRow(pdf, "Payment ID", appointment.PaymentID, false)
	addReceiptRow(pdf, "Booked On", appointment.Date.Format("2006-01-02 15:04"), false)
	pdf.SetFont("Arial", "B", 13)
	addReceiptRow(pdf, "Amount Paid", fmt.Sprintf("%.2f", appointment.Amount), true)

	pdf.SetY(pdf.GetY() + 12)
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 10, "This is a computer generated receipt", "", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func addReceiptRow(pdf *gofpdf.Fpdf, label, value string, isHeader bool) {
	if isHeader {
		pdf.SetFont("Arial", "B", 12)
		pdf.SetFillColor(255, 255, 255)
	} else {
		pdf.SetFont("Arial", "", 10)
		pdf.SetFillColor(240, 240, 240)
	}
	pdf.CellFormat(45, 10, label, "1", 0, "", false, 0, "")
	pdf.CellFormat(0, 10, value, "1", 1, "", false, 0, "")
}
