package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/Aaronzito/api-web-encontrarte/internal/interface/http"
)

// ArtworkModule wires artwork listings, the cascading delete and the sales
// report. Route names keep the original client-facing paths.
type ArtworkModule struct {
	Handler *handlers.ArtworkHandler
}

func NewArtworkModule(h *handlers.ArtworkHandler) *ArtworkModule {
	return &ArtworkModule{Handler: h}
}

func (m *ArtworkModule) Register(rg *gin.RouterGroup) {
	rg.POST("/Addartworks", m.Handler.Add)
	rg.GET("/artworks", m.Handler.List)
	rg.GET("/artworks/search", m.Handler.Search)
	rg.GET("/products/:id", m.Handler.ListByArtist)
	rg.GET("/sales/:id", m.Handler.Sales)
	rg.DELETE("/delete/:id", m.Handler.Delete)
}
