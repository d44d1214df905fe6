package handlers

import (
	"net/http"

	"carrental/internal/domain/models"

	"github.com/gin-gonic/gin"
)

type paymentRequest struct {
	Method string `form:"method" json:"method"`
}

// GET /make-payment/:rentalId
func (h *Handler) PaymentPage(c *gin.Context) {
	id, ok := parseIDParam(c, "rentalId")
	if !ok {
		return
	}
	receipt, err := h.payments(c).Receipt(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	data := gin.H{"rental": receipt.Rental, "paid": receipt.Payment.ID > 0}
	if receipt.Payment.ID > 0 {
		data["payment"] = receipt.Payment
		data["invoice"] = receipt.Invoice
	}
	respondOK(c, http.StatusOK, "", data)
}

// POST /make-payment/:rentalId
func (h *Handler) Pay(c *gin.Context) {
	id, ok := parseIDParam(c, "rentalId")
	if !ok {
		return
	}
	var req paymentRequest
	if !bindOrError(c, &req) {
		return
	}
	receipt, err := h.payments(c).PayForRental(c.Request.Context(), id, req.Method)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Payment successful, car marked as returned and available.", gin.H{
		"receipt":    receipt,
		"invoicePdf": "/invoices/" + receipt.Invoice.InvoiceNumber + "/pdf",
		"redirect":   dashboardPath(models.RoleCustomer),
	})
}
