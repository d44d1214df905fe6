package services

import (
	"context"
	"database/sql"
	"fmt"

	"carrental/internal/domain"
	"carrental/internal/domain/models"
	"carrental/internal/repositories"
	"carrental/internal/utils"
)

// InventoryService reads the fleet and flips car availability.
type InventoryService struct {
	DB        *sql.DB
	RequestID string
}

func (s InventoryService) cars() repositories.CarRepository {
	return repositories.CarRepository{DB: s.DB}
}

// ListCars returns every car in insertion order.
func (s InventoryService) ListCars(ctx context.Context) ([]models.Car, error) {
	list, err := s.cars().List(ctx)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	return list, nil
}

// GetCar looks a car up by registration number, case-insensitively.
func (s InventoryService) GetCar(ctx context.Context, reg string) (models.Car, error) {
	reg = utils.NormalizeRegistration(reg)
	if reg == "" {
		return models.Car{}, domain.ValidationError{Field: "registrationNumber", Msg: "required"}
	}
	car, err := s.cars().GetByRegistration(ctx, reg)
	if err != nil && !domain.IsNotFound(err) {
		return models.Car{}, domain.InternalError{Err: err}
	}
	return car, err
}

// SetAvailability writes the flag without any version check.
func (s InventoryService) SetAvailability(ctx context.Context, reg string, available bool) error {
	reg = utils.NormalizeRegistration(reg)
	if err := s.cars().SetAvailability(ctx, reg, available); err != nil {
		if domain.IsNotFound(err) {
			return err
		}
		return domain.InternalError{Err: err}
	}
	utils.LogEvent(s.RequestID, "inventory", "set_availability", fmt.Sprintf("car=%s available=%t", reg, available))
	return nil
}

// ReturnCar marks the car available. It does not close any rental.
func (s InventoryService) ReturnCar(ctx context.Context, reg string) error {
	return s.SetAvailability(ctx, reg, true)
}
