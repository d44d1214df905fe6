package repositories

import (
	"context"
	"database/sql"
	"errors"

	intdb "carrental/internal/db"
	"carrental/internal/domain"
	"carrental/internal/domain/models"
)

type InvoiceRepository struct {
	DB intdb.DBTX
}

const invoiceColumns = `invoice_number, payment_id, invoice_date, total_amount, due_date, tax_amount, discount_amount`

func (r InvoiceRepository) Create(ctx context.Context, inv models.Invoice) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO invoices (`+invoiceColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		inv.InvoiceNumber,
		inv.PaymentID,
		inv.InvoiceDate,
		inv.TotalAmount,
		inv.DueDate,
		inv.TaxAmount,
		inv.DiscountAmount,
	)
	return err
}

func (r InvoiceRepository) GetByNumber(ctx context.Context, number string) (models.Invoice, error) {
	return r.get(ctx, `SELECT `+invoiceColumns+` FROM invoices WHERE invoice_number = ? LIMIT 1`, number)
}

func (r InvoiceRepository) GetByPaymentID(ctx context.Context, paymentID int64) (models.Invoice, error) {
	return r.get(ctx, `SELECT `+invoiceColumns+` FROM invoices WHERE payment_id = ? LIMIT 1`, paymentID)
}

func (r InvoiceRepository) get(ctx context.Context, query string, arg any) (models.Invoice, error) {
	var inv models.Invoice
	err := r.DB.QueryRowContext(ctx, query, arg).Scan(
		&inv.InvoiceNumber,
		&inv.PaymentID,
		&inv.InvoiceDate,
		&inv.TotalAmount,
		&inv.DueDate,
		&inv.TaxAmount,
		&inv.DiscountAmount,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Invoice{}, domain.NotFoundError{Resource: "invoice", Err: err}
	}
	return inv, err
}
