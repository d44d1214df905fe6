package services

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"strings"

	"carrental/internal/domain"
	"carrental/internal/domain/models"
	"carrental/internal/repositories"
	"carrental/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// DocsService renders invoice PDFs.
type DocsService struct {
	DB        *sql.DB
	RequestID string
	Loader    func(ctx context.Context, invoiceNumber string) (invoiceDocData, error)
}

type invoiceDocData struct {
	Invoice  models.Invoice
	Payment  models.Payment
	Rental   models.Rental
	Customer models.Customer
	Car      models.Car
}

// GenerateInvoice renders an invoice for agents and admins, or for the
// customer the rental belongs to.
func (s DocsService) GenerateInvoice(ctx context.Context, rc domain.RequestContext, invoiceNumber string) ([]byte, string, error) {
	if !rc.Authenticated() {
		return nil, "", domain.UnauthorizedError{}
	}
	data, err := s.loadInvoiceDocData(ctx, strings.ToUpper(utils.TrimOrEmpty(invoiceNumber)))
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, "", err
		}
		utils.LogError(s.RequestID, "docs", "generate_invoice", err)
		return nil, "", domain.InternalError{Err: err}
	}
	if err := canViewInvoice(rc, data); err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_invoice", "invoice="+data.Invoice.InvoiceNumber)
	return buildInvoicePDF(data)
}

func canViewInvoice(rc domain.RequestContext, d invoiceDocData) error {
	switch rc.Role {
	case models.RoleAdmin, models.RoleAgent:
		return nil
	case models.RoleCustomer:
		owner := utils.NormalizeEmail(d.Customer.Email)
		if owner != "" && owner == utils.NormalizeEmail(rc.Username) {
			return nil
		}
	}
	return domain.UnauthorizedError{Actual: rc.Role}
}

func (s DocsService) loadInvoiceDocData(ctx context.Context, number string) (invoiceDocData, error) {
	if s.Loader != nil {
		return s.Loader(ctx, number)
	}
	var out invoiceDocData
	var err error
	if out.Invoice, err = (repositories.InvoiceRepository{DB: s.DB}).GetByNumber(ctx, number); err != nil {
		return out, err
	}
	if out.Payment, err = (repositories.PaymentRepository{DB: s.DB}).GetByID(ctx, out.Invoice.PaymentID); err != nil {
		return out, err
	}
	if out.Rental, err = (repositories.RentalRepository{DB: s.DB}).GetByID(ctx, out.Payment.RentalID); err != nil {
		return out, err
	}
	// A missing customer or car leaves that block of the document blank.
	if out.Customer, err = (repositories.CustomerRepository{DB: s.DB}).GetByID(ctx, out.Rental.CustomerID); err != nil && !domain.IsNotFound(err) {
		return out, fmt.Errorf("load customer %d: %w", out.Rental.CustomerID, err)
	}
	if out.Car, err = (repositories.CarRepository{DB: s.DB}).GetByRegistration(ctx, out.Rental.CarID); err != nil && !domain.IsNotFound(err) {
		return out, fmt.Errorf("load car %s: %w", out.Rental.CarID, err)
	}
	return out, nil
}

func buildInvoicePDF(d invoiceDocData) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Invoice "+d.Invoice.InvoiceNumber, false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "INVOICE")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	header := []string{
		"Invoice No   : " + d.Invoice.InvoiceNumber,
		"Invoice Date : " + utils.FormatDateTime(d.Invoice.InvoiceDate),
		"Due Date     : " + utils.FormatDate(d.Invoice.DueDate),
		"Transaction  : " + safe(d.Payment.TransactionID, "-"),
	}
	for _, s := range header {
		pdf.Cell(0, 7, s)
		pdf.Ln(7)
	}
	pdf.Ln(3)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Billed to:")
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, "Name   : "+safe(d.Customer.FullName(), "-"))
	pdf.Ln(7)
	pdf.Cell(0, 7, "Email  : "+safe(d.Customer.Email, "-"))
	pdf.Ln(7)
	pdf.Cell(0, 7, "Phone  : "+safe(d.Customer.Phone, "-"))
	pdf.Ln(10)

	vehicle := strings.TrimSpace(d.Car.Make + " " + d.Car.Model)
	desc := fmt.Sprintf("Rental #%d: %s (%s), %s to %s, %s -> %s",
		d.Rental.ID,
		safe(vehicle, "Car"),
		safe(d.Rental.CarID, "-"),
		utils.FormatDate(d.Rental.StartDate),
		utils.FormatDate(d.Rental.EndDate),
		safe(d.Rental.PickupLocation, "-"),
		safe(d.Rental.ReturnLocation, "-"),
	)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Details:")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 6, desc, "", "", false)
	pdf.Ln(2)

	lines := [][2]string{
		{"Rental fee", utils.FormatRupees(d.Invoice.TotalAmount)},
		{"Tax (18%)", utils.FormatRupees(d.Invoice.TaxAmount)},
		{"Discount", utils.FormatRupees(d.Invoice.DiscountAmount)},
		{"Paid via", safe(d.Payment.PaymentMethod, "-")},
		{"Status", safe(d.Payment.PaymentStatus, "-")},
	}
	for _, l := range lines {
		pdf.CellFormat(60, 7, l[0], "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 7, l[1], "", 1, "L", false, 0, "")
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Total: "+utils.FormatRupees(d.Invoice.TotalAmount))
	pdf.Ln(12)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), fmt.Sprintf("INVOICE_%s.pdf", safeFilenamePart(d.Invoice.InvoiceNumber)), nil
}

func safe(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}

func safeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "NA"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "_", "\\", "_", ":", "_", "*", "_", "?", "_", "\"", "_", "<", "_", ">", "_", "|", "_")
	s = replacer.Replace(s)
	if len(s) > 40 {
		s = s[:40]
	}
	return s
}
