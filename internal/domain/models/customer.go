package models

import "time"

type Customer struct {
	ID               int64      `json:"customerId"`
	FirstName        string     `json:"firstName"`
	LastName         string     `json:"lastName"`
	Address          string     `json:"address"`
	City             string     `json:"city"`
	State            string     `json:"state"`
	ZipCode          string     `json:"zipCode"`
	Phone            string     `json:"phone"`
	Email            string     `json:"email"`
	DriverLicense    string     `json:"driverLicense"`
	DateOfBirth      *time.Time `json:"dateOfBirth,omitempty"`
	MembershipNumber string     `json:"membershipNumber"`
}

func (c Customer) FullName() string {
	switch {
	case c.FirstName == "":
		return c.LastName
	case c.LastName == "":
		return c.FirstName
	}
	return c.FirstName + " " + c.LastName
}
