package repositories

import (
	"context"
	"database/sql"
	"errors"

	intdb "carrental/internal/db"
	"carrental/internal/domain"
	"carrental/internal/domain/models"
)

type CustomerRepository struct {
	DB intdb.DBTX
}

const customerColumns = `customer_id, first_name, last_name, address, city, state, zip_code, phone,
	email, driver_license, date_of_birth, membership_number`

func scanCustomer(s intdb.Scanner) (models.Customer, error) {
	var (
		c   models.Customer
		dob sql.NullTime
	)
	if err := s.Scan(
		&c.ID,
		&c.FirstName,
		&c.LastName,
		&c.Address,
		&c.City,
		&c.State,
		&c.ZipCode,
		&c.Phone,
		&c.Email,
		&c.DriverLicense,
		&dob,
		&c.MembershipNumber,
	); err != nil {
		return models.Customer{}, err
	}
	c.DateOfBirth = intdb.TimePtr(dob)
	return c, nil
}

// GetByEmail finds the customer registered under email.
func (r CustomerRepository) GetByEmail(ctx context.Context, email string) (models.Customer, error) {
	c, err := scanCustomer(r.DB.QueryRowContext(ctx,
		`SELECT `+customerColumns+` FROM customers WHERE email = ? LIMIT 1`, email))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Customer{}, domain.NotFoundError{Resource: "customer", Err: err}
	}
	return c, err
}

func (r CustomerRepository) GetByID(ctx context.Context, id int64) (models.Customer, error) {
	c, err := scanCustomer(r.DB.QueryRowContext(ctx,
		`SELECT `+customerColumns+` FROM customers WHERE customer_id = ? LIMIT 1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Customer{}, domain.NotFoundError{Resource: "customer", Err: err}
	}
	return c, err
}

// Create inserts c and returns it with the generated id.
func (r CustomerRepository) Create(ctx context.Context, c models.Customer) (models.Customer, error) {
	res, err := r.DB.ExecContext(ctx, `
		INSERT INTO customers (first_name, last_name, address, city, state, zip_code, phone,
			email, driver_license, date_of_birth, membership_number)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.FirstName,
		c.LastName,
		c.Address,
		c.City,
		c.State,
		c.ZipCode,
		c.Phone,
		c.Email,
		c.DriverLicense,
		intdb.NullTime(c.DateOfBirth),
		c.MembershipNumber,
	)
	if err != nil {
		return models.Customer{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.Customer{}, err
	}
	c.ID = id
	return c, nil
}
