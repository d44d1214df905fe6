package handlers

import (
	"net/http"
	"strconv"

	"carrental/internal/domain"
	"carrental/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// respondOK sends a flash-style message together with the page data.
func respondOK(c *gin.Context, status int, message string, data gin.H) {
	payload := gin.H{
		"message":    message,
		"request_id": middleware.GetRequestID(c),
	}
	for k, v := range data {
		payload[k] = v
	}
	c.JSON(status, payload)
}

// bindOrError accepts urlencoded, multipart or JSON bodies.
func bindOrError[T any](c *gin.Context, dst *T) bool {
	if err := c.ShouldBind(dst); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_payload", "invalid form: "+err.Error())
		return false
	}
	return true
}

func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		RespondDomainError(c, domain.ValidationError{Field: name, Msg: "invalid id"})
		return 0, false
	}
	return id, true
}

func dashboardPath(role string) string {
	return "/dashboard/" + role
}
