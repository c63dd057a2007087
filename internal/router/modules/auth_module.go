package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Aaronzito/api-web-encontrarte/internal/container"
	handlers "github.com/Aaronzito/api-web-encontrarte/internal/interface/http"
	"github.com/Aaronzito/api-web-encontrarte/internal/interface/middleware"
)

// AuthModule wires the public registration and login endpoints.
// No endpoint in this API requires a token; the client holds it for its
// own session handling.
type AuthModule struct {
	Handler *handlers.AuthHandler
}

func NewAuthModule(h *handlers.AuthHandler) *AuthModule {
	return &AuthModule{Handler: h}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	registerLimiter := middleware.RateLimit(container.GetRedis(), 5, time.Minute, middleware.KeyByIPAndPath())
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath())

	rg.POST("/register", registerLimiter, m.Handler.Register)
	rg.POST("/login", loginLimiter, m.Handler.Login)
}
