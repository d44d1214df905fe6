package config

import (
	"context"
	"fmt"

	intdb "carrental/internal/db"
)

// schema lists the DDL applied at startup, parents before children.
var schema = []struct {
	table string
	ddl   string
}{
	{"users", `
CREATE TABLE IF NOT EXISTS users (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	username VARCHAR(80) NOT NULL,
	password_hash VARCHAR(100) NOT NULL,
	role VARCHAR(20) NOT NULL,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	UNIQUE KEY uniq_username (username)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`},
	{"cars", `
CREATE TABLE IF NOT EXISTS cars (
	seq BIGINT NOT NULL AUTO_INCREMENT,
	registration_number VARCHAR(50) NOT NULL PRIMARY KEY,
	make VARCHAR(50) NOT NULL DEFAULT '',
	model VARCHAR(50) NOT NULL DEFAULT '',
	year INT NOT NULL DEFAULT 0,
	color VARCHAR(30) NOT NULL DEFAULT '',
	mileage INT NOT NULL DEFAULT 0,
	fuel_type VARCHAR(30) NOT NULL DEFAULT '',
	transmission VARCHAR(30) NOT NULL DEFAULT '',
	passenger_capacity INT NOT NULL DEFAULT 0,
	daily_rate DECIMAL(12,2) NOT NULL DEFAULT 0,
	weekly_rate DECIMAL(12,2) NOT NULL DEFAULT 0,
	monthly_rate DECIMAL(12,2) NOT NULL DEFAULT 0,
	availability TINYINT(1) NOT NULL DEFAULT 1,
	last_service_date DATE NULL,
	UNIQUE KEY uniq_seq (seq)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`},
	{"customers", `
CREATE TABLE IF NOT EXISTS customers (
	customer_id BIGINT AUTO_INCREMENT PRIMARY KEY,
	first_name VARCHAR(50) NOT NULL DEFAULT '',
	last_name VARCHAR(50) NOT NULL DEFAULT '',
	address VARCHAR(255) NOT NULL DEFAULT '',
	city VARCHAR(50) NOT NULL DEFAULT '',
	state VARCHAR(50) NOT NULL DEFAULT '',
	zip_code VARCHAR(10) NOT NULL DEFAULT '',
	phone VARCHAR(20) NOT NULL DEFAULT '',
	email VARCHAR(100) NOT NULL,
	driver_license VARCHAR(50) NOT NULL DEFAULT '',
	date_of_birth DATE NULL,
	membership_number VARCHAR(50) NOT NULL DEFAULT '',
	UNIQUE KEY uniq_email (email)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`},
	{"rentals", `
CREATE TABLE IF NOT EXISTS rentals (
	rental_id BIGINT AUTO_INCREMENT PRIMARY KEY,
	customer_id BIGINT NOT NULL,
	car_id VARCHAR(50) NOT NULL,
	start_date DATE NOT NULL,
	end_date DATE NOT NULL,
	rental_fee DECIMAL(12,2) NOT NULL DEFAULT 0,
	returned TINYINT(1) NOT NULL DEFAULT 0,
	pickup_location VARCHAR(100) NOT NULL DEFAULT '',
	return_location VARCHAR(100) NOT NULL DEFAULT '',
	rental_agreement VARCHAR(255) NOT NULL DEFAULT '',
	KEY idx_customer (customer_id),
	KEY idx_car (car_id),
	CONSTRAINT fk_rental_customer FOREIGN KEY (customer_id) REFERENCES customers (customer_id),
	CONSTRAINT fk_rental_car FOREIGN KEY (car_id) REFERENCES cars (registration_number)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`},
	{"payments", `
CREATE TABLE IF NOT EXISTS payments (
	payment_id BIGINT AUTO_INCREMENT PRIMARY KEY,
	rental_id BIGINT NOT NULL,
	amount DECIMAL(12,2) NOT NULL DEFAULT 0,
	payment_date DATETIME NOT NULL,
	payment_method VARCHAR(50) NOT NULL DEFAULT '',
	transaction_id VARCHAR(100) NOT NULL,
	payment_status VARCHAR(50) NOT NULL DEFAULT '',
	UNIQUE KEY uniq_rental (rental_id),
	UNIQUE KEY uniq_transaction (transaction_id),
	CONSTRAINT fk_payment_rental FOREIGN KEY (rental_id) REFERENCES rentals (rental_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`},
	{"invoices", `
CREATE TABLE IF NOT EXISTS invoices (
	invoice_number VARCHAR(50) NOT NULL PRIMARY KEY,
	payment_id BIGINT NOT NULL,
	invoice_date DATETIME NOT NULL,
	total_amount DECIMAL(12,2) NOT NULL DEFAULT 0,
	due_date DATETIME NOT NULL,
	tax_amount DECIMAL(12,2) NOT NULL DEFAULT 0,
	discount_amount DECIMAL(12,2) NOT NULL DEFAULT 0,
	UNIQUE KEY uniq_payment (payment_id),
	CONSTRAINT fk_invoice_payment FOREIGN KEY (payment_id) REFERENCES payments (payment_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`},
}

// Tables returns the managed table names in creation order.
func Tables() []string {
	out := make([]string, 0, len(schema))
	for _, s := range schema {
		out = append(out, s.table)
	}
	return out
}

// EnsureSchema creates every missing table. It is safe to run on each start.
func EnsureSchema(ctx context.Context, q intdb.DBTX) error {
	for _, s := range schema {
		if _, err := q.ExecContext(ctx, s.ddl); err != nil {
			return fmt.Errorf("create table %s: %w", s.table, err)
		}
	}
	return nil
}
