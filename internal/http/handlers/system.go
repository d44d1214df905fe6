package handlers

import (
	"context"
	"net/http"
	"time"

	intconfig "carrental/internal/config"
	intdb "carrental/internal/db"
	"carrental/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// GET /health pings the database and reports missing tables.
func (h *Handler) Health(c *gin.Context) {
	if h.DB == nil {
		respondError(c, http.StatusServiceUnavailable, "db_unavailable", "database not connected")
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()
	if err := h.DB.PingContext(ctx); err != nil {
		respondError(c, http.StatusServiceUnavailable, "db_unavailable", "database ping failed")
		return
	}

	missing := []string{}
	for _, table := range intconfig.Tables() {
		if !intdb.HasTable(ctx, h.DB, table) {
			missing = append(missing, table)
		}
	}
	if len(missing) > 0 {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":         "degraded",
			"missing_tables": missing,
			"request_id":     middleware.GetRequestID(c),
		})
		return
	}
	respondOK(c, http.StatusOK, "car rental backend running", gin.H{"status": "ok"})
}
