package handlers

import (
	"fmt"
	"net/http"

	"carrental/internal/domain/models"

	"github.com/gin-gonic/gin"
)

// GET /book/:registrationNumber
func (h *Handler) BookPage(c *gin.Context) {
	car, err := h.inventory(c).GetCar(c.Request.Context(), c.Param("registrationNumber"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "", gin.H{"car": car})
}

// POST /book/:registrationNumber
func (h *Handler) Book(c *gin.Context) {
	var form models.BookingForm
	if !bindOrError(c, &form) {
		return
	}
	rental, err := h.booking(c).BookCar(c.Request.Context(), c.Param("registrationNumber"), form)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respondOK(c, http.StatusCreated, "Booking successful!", gin.H{
		"rental":   rental,
		"redirect": fmt.Sprintf("/make-payment/%d", rental.ID),
	})
}
