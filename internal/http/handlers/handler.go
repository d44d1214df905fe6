package handlers

import (
	"database/sql"

	"carrental/internal/http/middleware"
	"carrental/internal/services"

	"github.com/gin-gonic/gin"
)

// Handler carries the shared dependencies of every route. Services are
// built per request so they log with the request id.
type Handler struct {
	DB           *sql.DB
	Sessions     services.SessionManager
	SecureCookie bool
	// HashCost is passed to AuthService; zero means bcrypt.DefaultCost.
	HashCost int
}

func (h *Handler) auth(c *gin.Context) services.AuthService {
	return services.AuthService{DB: h.DB, RequestID: middleware.GetRequestID(c), HashCost: h.HashCost}
}

func (h *Handler) inventory(c *gin.Context) services.InventoryService {
	return services.InventoryService{DB: h.DB, RequestID: middleware.GetRequestID(c)}
}

func (h *Handler) booking(c *gin.Context) services.BookingService {
	return services.BookingService{DB: h.DB, RequestID: middleware.GetRequestID(c)}
}

func (h *Handler) payments(c *gin.Context) services.PaymentService {
	return services.PaymentService{DB: h.DB, RequestID: middleware.GetRequestID(c)}
}

func (h *Handler) docs(c *gin.Context) services.DocsService {
	return services.DocsService{DB: h.DB, RequestID: middleware.GetRequestID(c)}
}
