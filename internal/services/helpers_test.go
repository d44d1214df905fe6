package services

import (
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

var (
	carCols = []string{
		"registration_number", "make", "model", "year", "color", "mileage", "fuel_type", "transmission",
		"passenger_capacity", "daily_rate", "weekly_rate", "monthly_rate", "availability", "last_service_date",
	}
	customerCols = []string{
		"customer_id", "first_name", "last_name", "address", "city", "state", "zip_code", "phone",
		"email", "driver_license", "date_of_birth", "membership_number",
	}
	rentalCols = []string{
		"rental_id", "customer_id", "car_id", "start_date", "end_date", "rental_fee", "returned",
		"pickup_location", "return_location", "rental_agreement",
	}
	userCols = []string{"id", "username", "password_hash", "role", "created_at"}
)

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func innovaRow(available bool) *sqlmock.Rows {
	return sqlmock.NewRows(carCols).AddRow(
		"MH12AB1234", "Toyota", "Innova", 2020, "White", 30000, "Diesel", "Manual", 7,
		2500.0, 15000.0, 55000.0, available, time.Date(2024, 12, 15, 0, 0, 0, 0, time.UTC))
}

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}
