package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/Aaronzito/api-web-encontrarte/internal/interface/http"
)

// AuctionModule wires auction listings.
type AuctionModule struct {
	Handler *handlers.AuctionHandler
}

func NewAuctionModule(h *handlers.AuctionHandler) *AuctionModule {
	return &AuctionModule{Handler: h}
}

func (m *AuctionModule) Register(rg *gin.RouterGroup) {
	rg.POST("/Addactions", m.Handler.Add)
	rg.GET("/auctions/:id", m.Handler.ListByArtist)
	rg.DELETE("/delete_auction/:id", m.Handler.Delete)
}
