package services

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"carrental/internal/domain"
	"carrental/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	paymentCols = []string{"payment_id", "rental_id", "amount", "payment_date", "payment_method", "transaction_id", "payment_status"}
	invoiceCols = []string{"invoice_number", "payment_id", "invoice_date", "total_amount", "due_date", "tax_amount", "discount_amount"}

	agentSession = domain.RequestContext{UserID: 2, Username: "agent", Role: models.RoleAgent}
)

func stubInvoiceDocs(asked *string) DocsService {
	return DocsService{Loader: func(_ context.Context, number string) (invoiceDocData, error) {
		if asked != nil {
			*asked = number
		}
		return invoiceDocData{
			Invoice:  models.Invoice{InvoiceNumber: "INV5", PaymentID: 5, InvoiceDate: paidAt, DueDate: paidAt, TotalAmount: 7500, TaxAmount: 1350},
			Payment:  models.Payment{ID: 5, RentalID: 11, Amount: 7500, PaymentMethod: "card", TransactionID: "TXN-TEST", PaymentStatus: models.PaymentStatusSuccessful},
			Rental:   models.Rental{ID: 11, CustomerID: 7, CarID: "MH12AB1234", StartDate: day("2025-01-01"), EndDate: day("2025-01-04")},
			Customer: models.Customer{ID: 7, FirstName: "Asha", LastName: "Rao", Email: "asha@example.com"},
			Car:      DefaultCars[0],
		}, nil
	}}
}

func TestGenerateInvoice(t *testing.T) {
	var asked string
	svc := stubInvoiceDocs(&asked)

	pdf, name, err := svc.GenerateInvoice(context.Background(), agentSession, " inv5 ")
	require.NoError(t, err)
	assert.Equal(t, "INV5", asked)
	assert.Equal(t, "INVOICE_INV5.pdf", name)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")))
}

func TestGenerateInvoice_Access(t *testing.T) {
	svc := stubInvoiceDocs(nil)
	ctx := context.Background()

	cases := []struct {
		name    string
		rc      domain.RequestContext
		allowed bool
	}{
		{"admin", domain.RequestContext{UserID: 1, Username: "admin", Role: models.RoleAdmin}, true},
		{"agent", agentSession, true},
		{"owning customer", domain.RequestContext{UserID: 3, Username: "Asha@Example.com", Role: models.RoleCustomer}, true},
		{"other customer", domain.RequestContext{UserID: 4, Username: "ravi@example.com", Role: models.RoleCustomer}, false},
		{"anonymous", domain.RequestContext{}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := svc.GenerateInvoice(ctx, tc.rc, "INV5")
			if tc.allowed {
				assert.NoError(t, err)
				return
			}
			assert.True(t, domain.IsUnauthorized(err))
		})
	}
}

func TestGenerateInvoice_NotFound(t *testing.T) {
	svc := DocsService{Loader: func(context.Context, string) (invoiceDocData, error) {
		return invoiceDocData{}, domain.NotFoundError{Resource: "invoice"}
	}}
	_, _, err := svc.GenerateInvoice(context.Background(), agentSession, "INV404")
	assert.True(t, domain.IsNotFound(err))
}

func expectInvoiceChain(mock sqlmock.Sqlmock) {
	mock.ExpectQuery("FROM invoices WHERE invoice_number").WithArgs("INV5").
		WillReturnRows(sqlmock.NewRows(invoiceCols).AddRow("INV5", 5, paidAt, 7500.0, paidAt, 1350.0, 0.0))
	mock.ExpectQuery("FROM payments WHERE payment_id").WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows(paymentCols).AddRow(5, 11, 7500.0, paidAt, "card", "TXN-TEST", models.PaymentStatusSuccessful))
	mock.ExpectQuery("FROM rentals WHERE rental_id").WithArgs(int64(11)).WillReturnRows(openRental(true))
}

func TestGenerateInvoice_MissingCustomerAndCarStillRender(t *testing.T) {
	db, mock := newMockDB(t)
	svc := DocsService{DB: db}

	expectInvoiceChain(mock)
	mock.ExpectQuery("FROM customers WHERE customer_id").WithArgs(int64(7)).WillReturnRows(sqlmock.NewRows(customerCols))
	mock.ExpectQuery("FROM cars WHERE registration_number").WithArgs("MH12AB1234").WillReturnRows(sqlmock.NewRows(carCols))

	pdf, _, err := svc.GenerateInvoice(context.Background(), agentSession, "INV5")
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGenerateInvoice_LookupFailureIsInternal(t *testing.T) {
	db, mock := newMockDB(t)
	svc := DocsService{DB: db}

	expectInvoiceChain(mock)
	mock.ExpectQuery("FROM customers WHERE customer_id").WithArgs(int64(7)).WillReturnError(errors.New("connection reset"))

	_, _, err := svc.GenerateInvoice(context.Background(), agentSession, "INV5")
	assert.True(t, domain.IsInternal(err))
	assert.NoError(t, mock.ExpectationsWereMet())

	expectInvoiceChain(mock)
	mock.ExpectQuery("FROM customers WHERE customer_id").WithArgs(int64(7)).WillReturnRows(sqlmock.NewRows(customerCols))
	mock.ExpectQuery("FROM cars WHERE registration_number").WillReturnError(errors.New("connection reset"))

	_, _, err = svc.GenerateInvoice(context.Background(), agentSession, "INV5")
	assert.True(t, domain.IsInternal(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSafeFilenamePart(t *testing.T) {
	assert.Equal(t, "NA", safeFilenamePart("  "))
	assert.Equal(t, "INV_1", safeFilenamePart("INV/1"))
}
