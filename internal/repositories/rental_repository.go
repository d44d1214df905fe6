package repositories

import (
	"context"
	"database/sql"
	"errors"

	intdb "carrental/internal/db"
	"carrental/internal/domain"
	"carrental/internal/domain/models"
)

type RentalRepository struct {
	DB intdb.DBTX
}

const rentalColumns = `rental_id, customer_id, car_id, start_date, end_date, rental_fee, returned,
	pickup_location, return_location, rental_agreement`

func scanRental(s intdb.Scanner) (models.Rental, error) {
	var rt models.Rental
	err := s.Scan(
		&rt.ID,
		&rt.CustomerID,
		&rt.CarID,
		&rt.StartDate,
		&rt.EndDate,
		&rt.RentalFee,
		&rt.Returned,
		&rt.PickupLocation,
		&rt.ReturnLocation,
		&rt.RentalAgreement,
	)
	return rt, err
}

func (r RentalRepository) Create(ctx context.Context, rt models.Rental) (models.Rental, error) {
	res, err := r.DB.ExecContext(ctx, `
		INSERT INTO rentals (customer_id, car_id, start_date, end_date, rental_fee, returned,
			pickup_location, return_location, rental_agreement)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rt.CustomerID,
		rt.CarID,
		rt.StartDate,
		rt.EndDate,
		rt.RentalFee,
		rt.Returned,
		rt.PickupLocation,
		rt.ReturnLocation,
		rt.RentalAgreement,
	)
	if err != nil {
		return models.Rental{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.Rental{}, err
	}
	rt.ID = id
	return rt, nil
}

func (r RentalRepository) GetByID(ctx context.Context, id int64) (models.Rental, error) {
	return r.get(ctx, `SELECT `+rentalColumns+` FROM rentals WHERE rental_id = ? LIMIT 1`, id)
}

// GetForUpdate locks the rental row for the surrounding transaction.
func (r RentalRepository) GetForUpdate(ctx context.Context, id int64) (models.Rental, error) {
	return r.get(ctx, `SELECT `+rentalColumns+` FROM rentals WHERE rental_id = ? FOR UPDATE`, id)
}

func (r RentalRepository) get(ctx context.Context, query string, id int64) (models.Rental, error) {
	rt, err := scanRental(r.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Rental{}, domain.NotFoundError{Resource: "rental", Err: err}
	}
	return rt, err
}

func (r RentalRepository) MarkReturned(ctx context.Context, id int64) error {
	res, err := r.DB.ExecContext(ctx, `UPDATE rentals SET returned = 1 WHERE rental_id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.NotFoundError{Resource: "rental", Err: sql.ErrNoRows}
	}
	return nil
}

func (r RentalRepository) ListByCustomer(ctx context.Context, customerID int64) ([]models.Rental, error) {
	return r.list(ctx, `SELECT `+rentalColumns+` FROM rentals WHERE customer_id = ? ORDER BY rental_id`, customerID)
}

// ListActive returns rentals that have not been returned yet.
func (r RentalRepository) ListActive(ctx context.Context) ([]models.Rental, error) {
	return r.list(ctx, `SELECT `+rentalColumns+` FROM rentals WHERE returned = 0 ORDER BY rental_id`)
}

func (r RentalRepository) list(ctx context.Context, query string, args ...any) ([]models.Rental, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Rental{}
	for rows.Next() {
		rt, err := scanRental(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rt)
	}
	return out, rows.Err()
}
