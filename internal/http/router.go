package api

import (
	stdhttp "net/http"

	intconfig "carrental/internal/config"
	"carrental/internal/domain/models"
	h "carrental/internal/http/handlers"
	"carrental/internal/http/middleware"
	"carrental/internal/utils"

	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env, hd *h.Handler) *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Session(hd.Sessions),
		middleware.Logger(),
		gin.Recovery(),
		middleware.CORS(env.CORSOrigins),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		utils.Logger().Warnf("failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"message":    "route not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": middleware.GetRequestID(c),
		})
	})

	r.GET("/health", hd.Health)

	r.GET("/", hd.Home)

	// Accounts
	r.GET("/signup", hd.SignupPage)
	r.POST("/signup", hd.Signup)
	r.GET("/login", hd.LoginPage)
	r.POST("/login", hd.Login)
	r.GET("/logout", hd.Logout)

	// Dashboards; role checks happen in the services.
	r.GET("/dashboard/admin", hd.AdminDashboard)
	r.GET("/delete-user/:id", hd.DeleteUser)
	r.GET("/dashboard/agent", hd.AgentDashboard)
	r.GET("/dashboard/customer", hd.CustomerDashboard)

	// Booking & payment
	r.GET("/book/:registrationNumber", hd.BookPage)
	r.POST("/book/:registrationNumber", hd.Book)
	r.GET("/make-payment/:rentalId", hd.PaymentPage)
	r.POST("/make-payment/:rentalId", hd.Pay)
	r.GET("/invoices/:number/pdf",
		middleware.RequireRoles(models.RoleAdmin, models.RoleAgent, models.RoleCustomer), hd.InvoicePDF)

	r.GET("/return/:registrationNumber",
		middleware.RequireRoles(models.RoleAgent, models.RoleAdmin), hd.ReturnCar)

	return r
}
