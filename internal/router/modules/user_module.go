package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/Aaronzito/api-web-encontrarte/internal/interface/http"
)

// UserModule wires the credential-store read and the profile-image update.
type UserModule struct {
	Handler *handlers.UserHandler
}

func NewUserModule(h *handlers.UserHandler) *UserModule {
	return &UserModule{Handler: h}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	rg.GET("/user/:id", m.Handler.GetUser)
	rg.PUT("/imageupdate", m.Handler.UpdateImage)
}
