package handlers

import (
	"net/http"

	"carrental/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// GET /invoices/:number/pdf returns the invoice inline to staff or the
// paying customer.
func (h *Handler) InvoicePDF(c *gin.Context) {
	pdfBytes, filename, err := h.docs(c).GenerateInvoice(c.Request.Context(), middleware.GetRequestContext(c), c.Param("number"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
