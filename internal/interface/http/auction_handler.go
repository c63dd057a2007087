package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Aaronzito/api-web-encontrarte/internal/application"
	"github.com/Aaronzito/api-web-encontrarte/internal/domain/entity"
	"github.com/Aaronzito/api-web-encontrarte/pkg/helpers"
	"github.com/Aaronzito/api-web-encontrarte/pkg/response"
)

// AuctionHandler serves auction listings.
type AuctionHandler struct {
	Svc    *application.AuctionService
	Logger *logrus.Logger
}

func NewAuctionHandler(svc *application.AuctionService, logger *logrus.Logger) *AuctionHandler {
	return &AuctionHandler{Svc: svc, Logger: logger}
}

type addAuctionRequest struct {
	ArtistID    int64     `json:"artistid" binding:"required"`
	Title       string    `json:"title" binding:"required"`
	CurrentBid  float64   `json:"currentBid" binding:"required"`
	EndedTime   time.Time `json:"endedtime" binding:"required"`
	Descripcion string    `json:"descripcion" binding:"required"`
	Image       string    `json:"image" binding:"required"`
}

// Add POST /Addactions
func (h *AuctionHandler) Add(c *gin.Context) {
	var req addAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Message(c, http.StatusBadRequest, "all fields are required")
		return
	}
	img, err := helpers.DecodeImage(req.Image)
	if err != nil {
		response.Message(c, http.StatusBadRequest, "invalid image encoding")
		return
	}

	id, err := h.Svc.Create(c.Request.Context(), &entity.Auction{
		ArtistID:    req.ArtistID,
		Title:       req.Title,
		CurrentBid:  req.CurrentBid,
		EndedTime:   req.EndedTime,
		Description: req.Descripcion,
		Image:       img,
	})
	if err != nil {
		h.Logger.WithError(err).Error("failed to register auction")
		response.Message(c, http.StatusInternalServerError, "failed to register auction")
		return
	}
	response.Created(c, "auction registered successfully", id)
}

// ListByArtist GET /auctions/:id
func (h *AuctionHandler) ListByArtist(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Message(c, http.StatusBadRequest, "invalid artist id")
		return
	}
	items, err := h.Svc.ListByArtist(c.Request.Context(), id)
	if err != nil {
		h.Logger.WithError(err).WithField("artist_id", id).Error("failed to list auctions")
		response.Message(c, http.StatusInternalServerError, "failed to list auctions")
		return
	}

	out := make([]gin.H, 0, len(items))
	for i := range items {
		a := &items[i]
		out = append(out, gin.H{
			"id":          a.ID,
			"artistid":    a.ArtistID,
			"title":       a.Title,
			"currentBid":  a.CurrentBid,
			"endedtime":   a.EndedTime,
			"descripcion": a.Description,
			"image":       imageValue(a.Image),
		})
	}
	c.JSON(http.StatusOK, out)
}

// Delete DELETE /delete_auction/:id
func (h *AuctionHandler) Delete(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Message(c, http.StatusBadRequest, "invalid auction id")
		return
	}
	n, err := h.Svc.Delete(c.Request.Context(), id)
	if err != nil {
		h.Logger.WithError(err).WithField("auction_id", id).Error("failed to delete auction")
		response.Message(c, http.StatusInternalServerError, "failed to delete auction")
		return
	}
	response.Deleted(c, n)
}
