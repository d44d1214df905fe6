package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	intdb "carrental/internal/db"
	"carrental/internal/domain"
	"carrental/internal/domain/models"
	"carrental/internal/repositories"
	"carrental/internal/utils"
)

// BookingService opens rentals: customer resolution, fee computation and the
// availability claim run in one transaction.
type BookingService struct {
	DB        *sql.DB
	RequestID string
}

type dateRange struct {
	start, end time.Time
	days       int
}

func parseDateRange(startRaw, endRaw string) (dateRange, error) {
	start, err := utils.ParseDate(startRaw)
	if err != nil {
		return dateRange{}, domain.ValidationError{Field: "startDate", Msg: "expected YYYY-MM-DD", Err: domain.ErrInvalidDate}
	}
	end, err := utils.ParseDate(endRaw)
	if err != nil {
		return dateRange{}, domain.ValidationError{Field: "endDate", Msg: "expected YYYY-MM-DD", Err: domain.ErrInvalidDate}
	}
	days := utils.DaysBetween(start, end)
	if days <= 0 {
		return dateRange{}, domain.ValidationError{Field: "endDate", Msg: "must be after startDate", Err: domain.ErrInvalidDateRange}
	}
	return dateRange{start: start, end: end, days: days}, nil
}

func customerFromForm(form models.BookingForm) (models.Customer, error) {
	c := models.Customer{
		FirstName:        utils.NormalizeSpace(form.FirstName),
		LastName:         utils.NormalizeSpace(form.LastName),
		Address:          utils.TrimOrEmpty(form.Address),
		City:             utils.TrimOrEmpty(form.City),
		State:            utils.TrimOrEmpty(form.State),
		ZipCode:          utils.TrimOrEmpty(form.ZipCode),
		Phone:            utils.TrimOrEmpty(form.Phone),
		Email:            utils.NormalizeEmail(form.Email),
		DriverLicense:    utils.TrimOrEmpty(form.DriverLicense),
		MembershipNumber: utils.TrimOrEmpty(form.MembershipNumber),
	}
	if raw := utils.TrimOrEmpty(form.DateOfBirth); raw != "" {
		dob, err := utils.ParseDate(raw)
		if err != nil {
			return models.Customer{}, domain.ValidationError{Field: "dateOfBirth", Msg: "expected YYYY-MM-DD", Err: domain.ErrInvalidDate}
		}
		c.DateOfBirth = &dob
	}
	return c, nil
}

// BookCar creates (or reuses) the customer, opens a rental priced at
// dailyRate * days and takes the car out of availability.
func (s BookingService) BookCar(ctx context.Context, reg string, form models.BookingForm) (models.Rental, error) {
	reg = utils.NormalizeRegistration(reg)
	email := utils.NormalizeEmail(form.Email)
	if email == "" {
		return models.Rental{}, domain.ValidationError{Field: "email", Msg: "required"}
	}
	dr, err := parseDateRange(form.StartDate, form.EndDate)
	if err != nil {
		return models.Rental{}, err
	}

	var rental models.Rental
	err = intdb.WithTx(ctx, s.DB, func(tx *sql.Tx) error {
		cars := repositories.CarRepository{DB: tx}
		customers := repositories.CustomerRepository{DB: tx}
		rentals := repositories.RentalRepository{DB: tx}

		car, err := cars.GetForUpdate(ctx, reg)
		if err != nil {
			return err
		}
		if !car.Availability {
			return domain.ConflictError{Resource: "car", Msg: car.RegistrationNumber + " is already rented", Err: domain.ErrCarUnavailable}
		}

		customer, err := customers.GetByEmail(ctx, email)
		if domain.IsNotFound(err) {
			fresh, ferr := customerFromForm(form)
			if ferr != nil {
				return ferr
			}
			customer, err = customers.Create(ctx, fresh)
		}
		if err != nil {
			return err
		}

		rental, err = rentals.Create(ctx, models.Rental{
			CustomerID:      customer.ID,
			CarID:           car.RegistrationNumber,
			StartDate:       dr.start,
			EndDate:         dr.end,
			RentalFee:       utils.ComputeRentalFee(car.DailyRate, dr.days),
			Returned:        false,
			PickupLocation:  utils.TrimOrEmpty(form.PickupLocation),
			ReturnLocation:  utils.TrimOrEmpty(form.ReturnLocation),
			RentalAgreement: models.RentalAgreementPlaceholder,
		})
		if err != nil {
			return err
		}

		claimed, err := cars.ClaimAvailability(ctx, car.RegistrationNumber)
		if err != nil {
			return err
		}
		if !claimed {
			return domain.ConflictError{Resource: "car", Msg: car.RegistrationNumber + " is already rented", Err: domain.ErrCarUnavailable}
		}
		return nil
	})
	if err != nil {
		if domain.IsValidation(err) || domain.IsNotFound(err) || domain.IsConflict(err) {
			return models.Rental{}, err
		}
		utils.LogError(s.RequestID, "booking", "book_car", err)
		return models.Rental{}, domain.InternalError{Err: err}
	}

	utils.LogEvent(s.RequestID, "booking", "book_car",
		fmt.Sprintf("rental_id=%d car=%s days=%d fee=%s", rental.ID, rental.CarID, dr.days, utils.FormatMoney(rental.RentalFee)))
	return rental, nil
}

// CustomerRentals lists rentals of the customer whose email is the session
// username. An account without a customer record has no rentals.
func (s BookingService) CustomerRentals(ctx context.Context, rc domain.RequestContext) ([]models.Rental, error) {
	if !rc.Authenticated() || rc.Role != models.RoleCustomer {
		return nil, domain.UnauthorizedError{Required: models.RoleCustomer, Actual: rc.Role}
	}
	customer, err := repositories.CustomerRepository{DB: s.DB}.GetByEmail(ctx, utils.NormalizeEmail(rc.Username))
	if err != nil {
		if domain.IsNotFound(err) {
			return []models.Rental{}, nil
		}
		return nil, domain.InternalError{Err: err}
	}
	list, err := repositories.RentalRepository{DB: s.DB}.ListByCustomer(ctx, customer.ID)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	return list, nil
}

// ActiveRentals lists rentals not yet returned, for the agent dashboard.
func (s BookingService) ActiveRentals(ctx context.Context) ([]models.Rental, error) {
	list, err := repositories.RentalRepository{DB: s.DB}.ListActive(ctx)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	return list, nil
}
