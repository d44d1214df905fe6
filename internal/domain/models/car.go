package models

import "time"

// Car is a rentable vehicle keyed by its registration number.
type Car struct {
	RegistrationNumber string     `json:"registrationNumber"`
	Make               string     `json:"make"`
	Model              string     `json:"model"`
	Year               int        `json:"year"`
	Color              string     `json:"color"`
	Mileage            int        `json:"mileage"`
	FuelType           string     `json:"fuelType"`
	Transmission       string     `json:"transmission"`
	PassengerCapacity  int        `json:"passengerCapacity"`
	DailyRate          float64    `json:"dailyRate"`
	WeeklyRate         float64    `json:"weeklyRate"`
	MonthlyRate        float64    `json:"monthlyRate"`
	Availability       bool       `json:"availability"`
	LastServiceDate    *time.Time `json:"lastServiceDate,omitempty"`
}
