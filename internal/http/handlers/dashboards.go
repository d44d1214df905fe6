package handlers

import (
	"net/http"

	"carrental/internal/domain/models"
	"carrental/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// GET /dashboard/admin
func (h *Handler) AdminDashboard(c *gin.Context) {
	users, err := h.auth(c).ListAccounts(c.Request.Context(), middleware.GetRequestContext(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "", gin.H{"users": users})
}

// GET /delete-user/:id
func (h *Handler) DeleteUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.auth(c).DeleteAccount(c.Request.Context(), middleware.GetRequestContext(c), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "User deleted successfully.", gin.H{"redirect": dashboardPath(models.RoleAdmin)})
}

// GET /dashboard/agent
func (h *Handler) AgentDashboard(c *gin.Context) {
	rc := middleware.GetRequestContext(c)
	if err := h.auth(c).Authorize(rc, models.RoleAgent); err != nil {
		RespondDomainError(c, err)
		return
	}
	ctx := c.Request.Context()
	cars, err := h.inventory(c).ListCars(ctx)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	active, err := h.booking(c).ActiveRentals(ctx)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "", gin.H{"username": rc.Username, "cars": cars, "activeRentals": active})
}

// GET /dashboard/customer
func (h *Handler) CustomerDashboard(c *gin.Context) {
	rentals, err := h.booking(c).CustomerRentals(c.Request.Context(), middleware.GetRequestContext(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "", gin.H{"rentals": rentals})
}
