package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"carrental/internal/domain"
	"carrental/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var paidAt = time.Date(2025, 1, 4, 10, 30, 0, 0, time.UTC)

func fixedPayments(t *testing.T) (PaymentService, sqlmock.Sqlmock) {
	db, mock := newMockDB(t)
	return PaymentService{
		DB:       db,
		Now:      func() time.Time { return paidAt },
		NewTxnID: func() string { return "TXN-TEST" },
	}, mock
}

func openRental(returned bool) *sqlmock.Rows {
	return sqlmock.NewRows(rentalCols).AddRow(11, 7, "MH12AB1234", day("2025-01-01"), day("2025-01-04"),
		7500.0, returned, "Pune", "Mumbai", models.RentalAgreementPlaceholder)
}

func TestPayForRental_IssuesInvoiceAndReleasesCar(t *testing.T) {
	svc, mock := fixedPayments(t)

	mock.ExpectBegin()
	mock.ExpectQuery("FROM rentals WHERE rental_id = \\? FOR UPDATE").WithArgs(int64(11)).WillReturnRows(openRental(false))
	mock.ExpectExec("INSERT INTO payments").
		WithArgs(int64(11), 7500.0, paidAt, "card", "TXN-TEST", models.PaymentStatusSuccessful).
		WillReturnResult(sqlmock.NewResult(5, 1))
	mock.ExpectExec("INSERT INTO invoices").
		WithArgs("INV5", int64(5), paidAt, 7500.0, paidAt, 1350.0, 0.0).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE rentals SET returned = 1").WithArgs(int64(11)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE cars SET availability").WithArgs(true, "MH12AB1234").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	receipt, err := svc.PayForRental(context.Background(), 11, " card ")
	require.NoError(t, err)
	assert.True(t, receipt.Rental.Returned)
	assert.Equal(t, int64(5), receipt.Payment.ID)
	assert.Equal(t, 7500.0, receipt.Payment.Amount)
	assert.Equal(t, "Successful", receipt.Payment.PaymentStatus)
	assert.Equal(t, "INV5", receipt.Invoice.InvoiceNumber)
	assert.Equal(t, 1350.0, receipt.Invoice.TaxAmount)
	assert.Equal(t, 0.0, receipt.Invoice.DiscountAmount)
	assert.Equal(t, receipt.Invoice.InvoiceDate, receipt.Invoice.DueDate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPayForRental_InvoiceFailureRollsBackPayment(t *testing.T) {
	svc, mock := fixedPayments(t)

	mock.ExpectBegin()
	mock.ExpectQuery("FOR UPDATE").WithArgs(int64(11)).WillReturnRows(openRental(false))
	mock.ExpectExec("INSERT INTO payments").WillReturnResult(sqlmock.NewResult(5, 1))
	mock.ExpectExec("INSERT INTO invoices").WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	_, err := svc.PayForRental(context.Background(), 11, "card")
	assert.True(t, domain.IsInternal(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPayForRental_SecondPaymentIsRejected(t *testing.T) {
	svc, mock := fixedPayments(t)

	mock.ExpectBegin()
	mock.ExpectQuery("FOR UPDATE").WithArgs(int64(11)).WillReturnRows(openRental(true))
	mock.ExpectRollback()

	_, err := svc.PayForRental(context.Background(), 11, "card")
	assert.True(t, domain.IsConflict(err))
	assert.True(t, errors.Is(err, domain.ErrAlreadyPaid))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPayForRental_UnknownRental(t *testing.T) {
	svc, mock := fixedPayments(t)

	mock.ExpectBegin()
	mock.ExpectQuery("FOR UPDATE").WithArgs(int64(99)).WillReturnRows(sqlmock.NewRows(rentalCols))
	mock.ExpectRollback()

	_, err := svc.PayForRental(context.Background(), 99, "card")
	assert.True(t, domain.IsNotFound(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPayForRental_RequiresMethodAndID(t *testing.T) {
	svc, mock := fixedPayments(t)

	_, err := svc.PayForRental(context.Background(), 11, "   ")
	assert.True(t, domain.IsValidation(err))
	_, err = svc.PayForRental(context.Background(), 0, "card")
	assert.True(t, domain.IsValidation(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentService_DefaultTransactionID(t *testing.T) {
	id := PaymentService{}.txnID()
	assert.Regexp(t, `^TXN-[0-9A-F-]{36}$`, id)
	assert.Equal(t, "INV42", InvoiceNumber(42))
}

func TestGetInvoice(t *testing.T) {
	svc, mock := fixedPayments(t)
	mock.ExpectQuery("FROM invoices WHERE invoice_number").WithArgs("INV5").
		WillReturnRows(sqlmock.NewRows([]string{"invoice_number", "payment_id", "invoice_date", "total_amount", "due_date", "tax_amount", "discount_amount"}).
			AddRow("INV5", 5, paidAt, 7500.0, paidAt, 1350.0, 0.0))

	inv, err := svc.GetInvoice(context.Background(), " inv5 ")
	require.NoError(t, err)
	assert.Equal(t, int64(5), inv.PaymentID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReceipt(t *testing.T) {
	svc, mock := fixedPayments(t)
	ctx := context.Background()

	mock.ExpectQuery("FROM rentals WHERE rental_id").WithArgs(int64(11)).WillReturnRows(openRental(false))
	r, err := svc.Receipt(ctx, 11)
	require.NoError(t, err)
	assert.Zero(t, r.Payment.ID)

	mock.ExpectQuery("FROM rentals WHERE rental_id").WithArgs(int64(11)).WillReturnRows(openRental(true))
	mock.ExpectQuery("FROM payments WHERE rental_id").WithArgs(int64(11)).
		WillReturnRows(sqlmock.NewRows([]string{"payment_id", "rental_id", "amount", "payment_date", "payment_method", "transaction_id", "payment_status"}).
			AddRow(5, 11, 7500.0, paidAt, "card", "TXN-TEST", models.PaymentStatusSuccessful))
	mock.ExpectQuery("FROM invoices WHERE payment_id").WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"invoice_number", "payment_id", "invoice_date", "total_amount", "due_date", "tax_amount", "discount_amount"}).
			AddRow("INV5", 5, paidAt, 7500.0, paidAt, 1350.0, 0.0))
	r, err = svc.Receipt(ctx, 11)
	require.NoError(t, err)
	assert.Equal(t, "TXN-TEST", r.Payment.TransactionID)
	assert.Equal(t, "INV5", r.Invoice.InvoiceNumber)

	assert.NoError(t, mock.ExpectationsWereMet())
}
