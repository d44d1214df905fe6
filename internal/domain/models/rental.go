package models

import "time"

// RentalAgreementPlaceholder is stored on every rental until agreements are
// generated per booking.
const RentalAgreementPlaceholder = "LinkToAgreement.pdf"

type Rental struct {
	ID              int64     `json:"rentalId"`
	CustomerID      int64     `json:"customerId"`
	CarID           string    `json:"carId"`
	StartDate       time.Time `json:"startDate"`
	EndDate         time.Time `json:"endDate"`
	RentalFee       float64   `json:"rentalFee"`
	Returned        bool      `json:"returned"`
	PickupLocation  string    `json:"pickupLocation"`
	ReturnLocation  string    `json:"returnLocation"`
	RentalAgreement string    `json:"rentalAgreement"`
}
