package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GET /
func (h *Handler) Home(c *gin.Context) {
	cars, err := h.inventory(c).ListCars(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "", gin.H{"cars": cars})
}

// GET /return/:registrationNumber
func (h *Handler) ReturnCar(c *gin.Context) {
	if err := h.inventory(c).ReturnCar(c.Request.Context(), c.Param("registrationNumber")); err != nil {
		RespondDomainError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Car returned successfully.", gin.H{"redirect": "/"})
}
