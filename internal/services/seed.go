package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"carrental/internal/domain/models"
	"carrental/internal/repositories"
	"carrental/internal/utils"
)

func serviceDate(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

// DefaultCars is the starter fleet inserted into an empty inventory.
var DefaultCars = []models.Car{
	{
		RegistrationNumber: "MH12AB1234", Make: "Toyota", Model: "Innova", Year: 2020, Color: "White",
		Mileage: 30000, FuelType: "Diesel", Transmission: "Manual", PassengerCapacity: 7,
		DailyRate: 2500, WeeklyRate: 15000, MonthlyRate: 55000, Availability: true,
		LastServiceDate: serviceDate(2024, time.December, 15),
	},
	{
		RegistrationNumber: "DL10XY9876", Make: "Honda", Model: "City", Year: 2021, Color: "Black",
		Mileage: 15000, FuelType: "Petrol", Transmission: "Automatic", PassengerCapacity: 5,
		DailyRate: 2000, WeeklyRate: 12000, MonthlyRate: 45000, Availability: true,
		LastServiceDate: serviceDate(2025, time.February, 10),
	},
	{
		RegistrationNumber: "KA05CD5678", Make: "Hyundai", Model: "Creta", Year: 2022, Color: "Blue",
		Mileage: 10000, FuelType: "Diesel", Transmission: "Manual", PassengerCapacity: 5,
		DailyRate: 2200, WeeklyRate: 13000, MonthlyRate: 47000, Availability: true,
		LastServiceDate: serviceDate(2025, time.January, 20),
	},
}

type seedAccount struct {
	username, password, role string
}

var defaultAccounts = []seedAccount{
	{"admin", "admin123", models.RoleAdmin},
	{"agent", "agent123", models.RoleAgent},
	{"customer", "cust123", models.RoleCustomer},
}

// Seeder fills empty tables with the starter fleet and demo accounts.
type Seeder struct {
	DB   *sql.DB
	Auth AuthService
}

func (s Seeder) Seed(ctx context.Context) error {
	cars := repositories.CarRepository{DB: s.DB}
	n, err := cars.Count(ctx)
	if err != nil {
		return fmt.Errorf("count cars: %w", err)
	}
	if n == 0 {
		for _, c := range DefaultCars {
			if err := cars.Create(ctx, c); err != nil {
				return fmt.Errorf("seed car %s: %w", c.RegistrationNumber, err)
			}
		}
		utils.LogEvent("", "seed", "cars", fmt.Sprintf("inserted=%d", len(DefaultCars)))
	}

	n, err = repositories.UserRepository{DB: s.DB}.Count(ctx)
	if err != nil {
		return fmt.Errorf("count users: %w", err)
	}
	if n == 0 {
		auth := s.Auth
		auth.DB = s.DB
		for _, a := range defaultAccounts {
			if _, err := auth.Register(ctx, a.username, a.password, a.role); err != nil {
				return fmt.Errorf("seed user %s: %w", a.username, err)
			}
		}
		utils.LogEvent("", "seed", "users", fmt.Sprintf("inserted=%d", len(defaultAccounts)))
	}
	return nil
}
