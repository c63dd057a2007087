package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Aaronzito/api-web-encontrarte/internal/application"
	"github.com/Aaronzito/api-web-encontrarte/internal/domain/entity"
	"github.com/Aaronzito/api-web-encontrarte/pkg/helpers"
	"github.com/Aaronzito/api-web-encontrarte/pkg/response"
)

// UserHandler serves credential-store reads and the profile-image update.
type UserHandler struct {
	Svc    *application.AuthService
	Logger *logrus.Logger
}

func NewUserHandler(svc *application.AuthService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

type imageUpdateRequest struct {
	ID    int64  `json:"id" binding:"required"`
	Image string `json:"image" binding:"required"`
}

// The password hash never leaves the service, even though the row carries it.
func userJSON(u *entity.User) gin.H {
	return gin.H{
		"id":       u.ID,
		"usr_role": u.Role,
		"name":     u.Name,
		"lastname": u.Lastname,
		"email":    u.Email,
		"address":  u.Address,
		"city":     u.City,
		"phone":    u.Phone,
		"image":    imageValue(u.Image),
	}
}

// GetUser GET /user/:id — responds with an array like the select it maps to:
// one element when the row exists, empty otherwise.
func (h *UserHandler) GetUser(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Message(c, http.StatusBadRequest, "invalid user id")
		return
	}
	u, err := h.Svc.GetUser(c.Request.Context(), id)
	if err != nil {
		if err == application.ErrUserNotFound {
			c.JSON(http.StatusOK, []gin.H{})
			return
		}
		h.Logger.WithError(err).WithField("user_id", id).Error("failed to fetch user")
		response.Message(c, http.StatusInternalServerError, "failed to fetch user")
		return
	}
	c.JSON(http.StatusOK, []gin.H{userJSON(u)})
}

// UpdateImage PUT /imageupdate
func (h *UserHandler) UpdateImage(c *gin.Context) {
	var req imageUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Message(c, http.StatusBadRequest, "missing required fields")
		return
	}
	img, err := helpers.DecodeImage(req.Image)
	if err != nil {
		response.Message(c, http.StatusBadRequest, "invalid image encoding")
		return
	}
	if _, err := h.Svc.UpdateImage(c.Request.Context(), req.ID, img); err != nil {
		h.Logger.WithError(err).WithField("user_id", req.ID).Error("failed to update image")
		response.Message(c, http.StatusInternalServerError, "failed to update image")
		return
	}
	response.Message(c, http.StatusOK, "image updated successfully")
}
