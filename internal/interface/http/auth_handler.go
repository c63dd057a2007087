package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Aaronzito/api-web-encontrarte/internal/application"
	"github.com/Aaronzito/api-web-encontrarte/pkg/response"
	"github.com/Aaronzito/api-web-encontrarte/pkg/validation"
)

// AuthHandler serves registration and login.
type AuthHandler struct {
	Svc    *application.AuthService
	Logger *logrus.Logger
}

func NewAuthHandler(svc *application.AuthService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger}
}

type registerRequest struct {
	Name     string `json:"name"`
	Lastname string `json:"lastname"`
	Email    string `json:"email" binding:"required"`
	Pass     string `json:"pass" binding:"required"`
	Address  string `json:"address"`
	City     string `json:"city"`
	Birth    string `json:"birth"` // accepted but not persisted
	Phone    string `json:"phone"`
}

type loginRequest struct {
	Email string `json:"email" binding:"required"`
	Pass  string `json:"pass" binding:"required"`
}

// Register POST /register
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Logger.WithFields(logrus.Fields{"details": validation.ToDetails(err)}).Debug("register payload rejected")
		response.Message(c, http.StatusBadRequest, "email and password are required")
		return
	}

	err := h.Svc.Register(c.Request.Context(), application.RegisterInput{
		Name:     req.Name,
		Lastname: req.Lastname,
		Email:    req.Email,
		Password: req.Pass,
		Address:  req.Address,
		City:     req.City,
		Phone:    req.Phone,
	})
	if err != nil {
		h.Logger.WithError(err).Error("failed to register user")
		response.Message(c, http.StatusInternalServerError, "failed to register user")
		return
	}
	response.Message(c, http.StatusCreated, "user registered successfully")
}

// Login POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Message(c, http.StatusBadRequest, "email and password are required")
		return
	}

	u, token, err := h.Svc.Login(c.Request.Context(), req.Email, req.Pass)
	switch {
	case err == nil:
	case err == application.ErrUserNotFound:
		response.Message(c, http.StatusNotFound, "user not found")
		return
	case err == application.ErrWrongPassword:
		response.Message(c, http.StatusUnauthorized, "incorrect password")
		return
	default:
		h.Logger.WithError(err).WithField("email", req.Email).Error("login failed")
		response.Message(c, http.StatusInternalServerError, "failed to log in")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "login successful",
		"token":   token,
		"user":    gin.H{"id": u.ID},
	})
}
