package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	intdb "carrental/internal/db"
	"carrental/internal/domain"
	"carrental/internal/domain/models"
	"carrental/internal/repositories"
	"carrental/internal/utils"

	"github.com/google/uuid"
)

// PaymentService settles a rental: payment, invoice, rental closure and car
// release commit together or not at all.
type PaymentService struct {
	DB        *sql.DB
	RequestID string
	Now       func() time.Time
	NewTxnID  func() string
}

func (s PaymentService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return utils.NowUTC()
}

func (s PaymentService) txnID() string {
	if s.NewTxnID != nil {
		return s.NewTxnID()
	}
	return "TXN-" + strings.ToUpper(uuid.NewString())
}

// InvoiceNumber derives the invoice key from its payment id.
func InvoiceNumber(paymentID int64) string {
	return fmt.Sprintf("INV%d", paymentID)
}

// GetRental loads a rental by id.
func (s PaymentService) GetRental(ctx context.Context, rentalID int64) (models.Rental, error) {
	if rentalID <= 0 {
		return models.Rental{}, domain.ValidationError{Field: "rentalId", Msg: "invalid id"}
	}
	rt, err := repositories.RentalRepository{DB: s.DB}.GetByID(ctx, rentalID)
	if err != nil && !domain.IsNotFound(err) {
		return models.Rental{}, domain.InternalError{Err: err}
	}
	return rt, err
}

// Receipt backs the payment page: the rental, plus its payment and invoice
// once it has been settled.
func (s PaymentService) Receipt(ctx context.Context, rentalID int64) (models.PaymentReceipt, error) {
	rental, err := s.GetRental(ctx, rentalID)
	if err != nil {
		return models.PaymentReceipt{}, err
	}
	out := models.PaymentReceipt{Rental: rental}
	if !rental.Returned {
		return out, nil
	}

	payment, err := repositories.PaymentRepository{DB: s.DB}.GetByRentalID(ctx, rental.ID)
	switch {
	case domain.IsNotFound(err):
		return out, nil
	case err != nil:
		return models.PaymentReceipt{}, domain.InternalError{Err: err}
	}
	out.Payment = payment

	invoice, err := repositories.InvoiceRepository{DB: s.DB}.GetByPaymentID(ctx, payment.ID)
	switch {
	case domain.IsNotFound(err):
	case err != nil:
		return models.PaymentReceipt{}, domain.InternalError{Err: err}
	default:
		out.Invoice = invoice
	}
	return out, nil
}

// PayForRental records a successful payment for the rental fee, issues the
// invoice, marks the rental returned and makes the car available again.
func (s PaymentService) PayForRental(ctx context.Context, rentalID int64, method string) (models.PaymentReceipt, error) {
	method = utils.NormalizeSpace(method)
	if rentalID <= 0 {
		return models.PaymentReceipt{}, domain.ValidationError{Field: "rentalId", Msg: "invalid id"}
	}
	if method == "" {
		return models.PaymentReceipt{}, domain.ValidationError{Field: "method", Msg: "required"}
	}

	var receipt models.PaymentReceipt
	err := intdb.WithTx(ctx, s.DB, func(tx *sql.Tx) error {
		rentals := repositories.RentalRepository{DB: tx}

		rental, err := rentals.GetForUpdate(ctx, rentalID)
		if err != nil {
			return err
		}
		if rental.Returned {
			return domain.ConflictError{Resource: "rental", Msg: "already paid", Err: domain.ErrAlreadyPaid}
		}

		now := s.now()
		payment, err := repositories.PaymentRepository{DB: tx}.Create(ctx, models.Payment{
			RentalID:      rental.ID,
			Amount:        rental.RentalFee,
			PaymentDate:   now,
			PaymentMethod: method,
			TransactionID: s.txnID(),
			PaymentStatus: models.PaymentStatusSuccessful,
		})
		if err != nil {
			if intdb.IsDuplicateKey(err) {
				return domain.ConflictError{Resource: "rental", Msg: "already paid", Err: domain.ErrAlreadyPaid}
			}
			return err
		}

		// Due date is the processing time; no grace period is granted.
		invoice := models.Invoice{
			InvoiceNumber:  InvoiceNumber(payment.ID),
			PaymentID:      payment.ID,
			InvoiceDate:    now,
			TotalAmount:    payment.Amount,
			DueDate:        now,
			TaxAmount:      utils.ComputeTax(payment.Amount),
			DiscountAmount: 0,
		}
		if err := (repositories.InvoiceRepository{DB: tx}).Create(ctx, invoice); err != nil {
			return err
		}

		if err := rentals.MarkReturned(ctx, rental.ID); err != nil {
			return err
		}
		if err := (repositories.CarRepository{DB: tx}).SetAvailability(ctx, rental.CarID, true); err != nil {
			return err
		}

		rental.Returned = true
		receipt = models.PaymentReceipt{Rental: rental, Payment: payment, Invoice: invoice}
		return nil
	})
	if err != nil {
		if domain.IsValidation(err) || domain.IsNotFound(err) || domain.IsConflict(err) {
			return models.PaymentReceipt{}, err
		}
		utils.LogError(s.RequestID, "payment", "pay_rental", err)
		return models.PaymentReceipt{}, domain.InternalError{Err: err}
	}

	utils.LogEvent(s.RequestID, "payment", "pay_rental",
		fmt.Sprintf("rental_id=%d payment_id=%d invoice=%s amount=%s",
			rentalID, receipt.Payment.ID, receipt.Invoice.InvoiceNumber, utils.FormatMoney(receipt.Payment.Amount)))
	return receipt, nil
}

// GetInvoice loads an invoice by number.
func (s PaymentService) GetInvoice(ctx context.Context, number string) (models.Invoice, error) {
	number = strings.ToUpper(utils.TrimOrEmpty(number))
	if number == "" {
		return models.Invoice{}, domain.ValidationError{Field: "invoiceNumber", Msg: "required"}
	}
	inv, err := repositories.InvoiceRepository{DB: s.DB}.GetByNumber(ctx, number)
	if err != nil && !domain.IsNotFound(err) {
		return models.Invoice{}, domain.InternalError{Err: err}
	}
	return inv, err
}
