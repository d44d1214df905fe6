package handlers

import (
	"net/http"
	"time"

	"carrental/internal/domain/models"
	"carrental/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

type signupRequest struct {
	Username string `form:"username" json:"username"`
	Password string `form:"password" json:"password"`
	Role     string `form:"role" json:"role"`
}

type loginRequest struct {
	Username string `form:"username" json:"username"`
	Password string `form:"password" json:"password"`
}

// GET /signup
func (h *Handler) SignupPage(c *gin.Context) {
	respondOK(c, http.StatusOK, "", gin.H{"roles": models.Roles})
}

// POST /signup
func (h *Handler) Signup(c *gin.Context) {
	var req signupRequest
	if !bindOrError(c, &req) {
		return
	}
	u, err := h.auth(c).Register(c.Request.Context(), req.Username, req.Password, req.Role)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respondOK(c, http.StatusCreated, "Account created successfully. Please login.", gin.H{
		"user":     u,
		"redirect": "/login",
	})
}

// GET /login
func (h *Handler) LoginPage(c *gin.Context) {
	rc := middleware.GetRequestContext(c)
	data := gin.H{"authenticated": rc.Authenticated()}
	if rc.Authenticated() {
		data["username"] = rc.Username
		data["role"] = rc.Role
		data["dashboard"] = dashboardPath(rc.Role)
	}
	respondOK(c, http.StatusOK, "", data)
}

// POST /login
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if !bindOrError(c, &req) {
		return
	}
	u, err := h.auth(c).Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	token, exp, err := h.Sessions.Issue(u)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	h.setSessionCookie(c, token, int(time.Until(exp).Seconds()))
	respondOK(c, http.StatusOK, "Welcome, "+u.Role+"!", gin.H{
		"user":      u,
		"token":     token,
		"expiresAt": exp,
		"redirect":  dashboardPath(u.Role),
	})
}

// GET /logout
func (h *Handler) Logout(c *gin.Context) {
	h.setSessionCookie(c, "", -1)
	respondOK(c, http.StatusOK, "Logged out successfully.", gin.H{"redirect": "/login"})
}

func (h *Handler) setSessionCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, value, maxAge, "/", "", h.SecureCookie, true)
}
