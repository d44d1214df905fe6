package models

// BookingForm is the submitted booking page: customer details plus the
// requested date range and locations. Dates are YYYY-MM-DD.
type BookingForm struct {
	FirstName        string `form:"firstName" json:"firstName"`
	LastName         string `form:"lastName" json:"lastName"`
	Address          string `form:"address" json:"address"`
	City             string `form:"city" json:"city"`
	State            string `form:"state" json:"state"`
	ZipCode          string `form:"zipCode" json:"zipCode"`
	Phone            string `form:"phone" json:"phone"`
	Email            string `form:"email" json:"email" binding:"required,email"`
	DriverLicense    string `form:"driverLicense" json:"driverLicense"`
	DateOfBirth      string `form:"dateOfBirth" json:"dateOfBirth"`
	MembershipNumber string `form:"membershipNumber" json:"membershipNumber"`

	StartDate      string `form:"startDate" json:"startDate" binding:"required"`
	EndDate        string `form:"endDate" json:"endDate" binding:"required"`
	PickupLocation string `form:"pickupLocation" json:"pickupLocation"`
	ReturnLocation string `form:"returnLocation" json:"returnLocation"`
}
