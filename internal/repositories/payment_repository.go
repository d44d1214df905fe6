package repositories

import (
	"context"
	"database/sql"
	"errors"

	intdb "carrental/internal/db"
	"carrental/internal/domain"
	"carrental/internal/domain/models"
)

type PaymentRepository struct {
	DB intdb.DBTX
}

const paymentColumns = `payment_id, rental_id, amount, payment_date, payment_method, transaction_id, payment_status`

func (r PaymentRepository) Create(ctx context.Context, p models.Payment) (models.Payment, error) {
	res, err := r.DB.ExecContext(ctx, `
		INSERT INTO payments (rental_id, amount, payment_date, payment_method, transaction_id, payment_status)
		VALUES (?, ?, ?, ?, ?, ?)`,
		p.RentalID,
		p.Amount,
		p.PaymentDate,
		p.PaymentMethod,
		p.TransactionID,
		p.PaymentStatus,
	)
	if err != nil {
		return models.Payment{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.Payment{}, err
	}
	p.ID = id
	return p, nil
}

func (r PaymentRepository) GetByID(ctx context.Context, id int64) (models.Payment, error) {
	return r.get(ctx, `SELECT `+paymentColumns+` FROM payments WHERE payment_id = ? LIMIT 1`, id)
}

// GetByRentalID returns the single payment recorded for a rental.
func (r PaymentRepository) GetByRentalID(ctx context.Context, rentalID int64) (models.Payment, error) {
	return r.get(ctx, `SELECT `+paymentColumns+` FROM payments WHERE rental_id = ? LIMIT 1`, rentalID)
}

func (r PaymentRepository) get(ctx context.Context, query string, id int64) (models.Payment, error) {
	var p models.Payment
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&p.ID,
		&p.RentalID,
		&p.Amount,
		&p.PaymentDate,
		&p.PaymentMethod,
		&p.TransactionID,
		&p.PaymentStatus,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Payment{}, domain.NotFoundError{Resource: "payment", Err: err}
	}
	return p, err
}
