package repositories

import (
	"context"
	"database/sql"
	"errors"

	intdb "carrental/internal/db"
	"carrental/internal/domain"
	"carrental/internal/domain/models"
)

type CarRepository struct {
	DB intdb.DBTX
}

const carColumns = `registration_number, make, model, year, color, mileage, fuel_type, transmission,
	passenger_capacity, daily_rate, weekly_rate, monthly_rate, availability, last_service_date`

func scanCar(s intdb.Scanner) (models.Car, error) {
	var (
		c           models.Car
		lastService sql.NullTime
	)
	err := s.Scan(
		&c.RegistrationNumber,
		&c.Make,
		&c.Model,
		&c.Year,
		&c.Color,
		&c.Mileage,
		&c.FuelType,
		&c.Transmission,
		&c.PassengerCapacity,
		&c.DailyRate,
		&c.WeeklyRate,
		&c.MonthlyRate,
		&c.Availability,
		&lastService,
	)
	if err != nil {
		return models.Car{}, err
	}
	c.LastServiceDate = intdb.TimePtr(lastService)
	return c, nil
}

// List returns every car in insertion order.
func (r CarRepository) List(ctx context.Context) ([]models.Car, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT `+carColumns+` FROM cars ORDER BY seq`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []models.Car{}
	for rows.Next() {
		c, err := scanCar(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

func (r CarRepository) GetByRegistration(ctx context.Context, reg string) (models.Car, error) {
	return r.get(ctx, `SELECT `+carColumns+` FROM cars WHERE registration_number = ? LIMIT 1`, reg)
}

// GetForUpdate loads the car and holds its row lock until the surrounding
// transaction ends. DB must be a *sql.Tx.
func (r CarRepository) GetForUpdate(ctx context.Context, reg string) (models.Car, error) {
	return r.get(ctx, `SELECT `+carColumns+` FROM cars WHERE registration_number = ? FOR UPDATE`, reg)
}

func (r CarRepository) get(ctx context.Context, query, reg string) (models.Car, error) {
	c, err := scanCar(r.DB.QueryRowContext(ctx, query, reg))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Car{}, domain.NotFoundError{Resource: "car", Err: err}
	}
	return c, err
}

// SetAvailability writes the flag unconditionally.
func (r CarRepository) SetAvailability(ctx context.Context, reg string, available bool) error {
	res, err := r.DB.ExecContext(ctx, `UPDATE cars SET availability = ? WHERE registration_number = ?`, available, reg)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.NotFoundError{Resource: "car", Err: sql.ErrNoRows}
	}
	return nil
}

// ClaimAvailability flips availability from true to false and reports
// whether this caller won the flip.
func (r CarRepository) ClaimAvailability(ctx context.Context, reg string) (bool, error) {
	res, err := r.DB.ExecContext(ctx,
		`UPDATE cars SET availability = 0 WHERE registration_number = ? AND availability = 1`, reg)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

func (r CarRepository) Create(ctx context.Context, c models.Car) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO cars (`+carColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.RegistrationNumber,
		c.Make,
		c.Model,
		c.Year,
		c.Color,
		c.Mileage,
		c.FuelType,
		c.Transmission,
		c.PassengerCapacity,
		c.DailyRate,
		c.WeeklyRate,
		c.MonthlyRate,
		c.Availability,
		intdb.NullTime(c.LastServiceDate),
	)
	return err
}

func (r CarRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM cars`).Scan(&n)
	return n, err
}
