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

// ArtworkHandler serves artwork listings, the cascading delete and the
// sales report.
type ArtworkHandler struct {
	Svc    *application.ArtworkService
	Logger *logrus.Logger
}

func NewArtworkHandler(svc *application.ArtworkService, logger *logrus.Logger) *ArtworkHandler {
	return &ArtworkHandler{Svc: svc, Logger: logger}
}

type addArtworkRequest struct {
	ArtworkType string  `json:"artwork_type"`
	Title       string  `json:"title" binding:"required"`
	Descripcion string  `json:"descripcion"`
	Image       string  `json:"image" binding:"required"`
	FirstPrice  float64 `json:"firstprice" binding:"required"`
	ArtistID    int64   `json:"artistid" binding:"required"`
	CategoriaID int64   `json:"categoriaid" binding:"required"`
}

func artworkJSON(a *entity.Artwork) gin.H {
	return gin.H{
		"id":           a.ID,
		"artwork_type": a.Type,
		"title":        a.Title,
		"descripcion":  a.Description,
		"image":        imageValue(a.Image),
		"firstprice":   a.FirstPrice,
		"artistid":     a.ArtistID,
		"categoriaid":  a.CategoryID,
	}
}

func artworksJSON(items []entity.Artwork) []gin.H {
	out := make([]gin.H, 0, len(items))
	for i := range items {
		out = append(out, artworkJSON(&items[i]))
	}
	return out
}

// Add POST /Addartworks
func (h *ArtworkHandler) Add(c *gin.Context) {
	var req addArtworkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Message(c, http.StatusBadRequest, "all fields are required")
		return
	}
	img, err := helpers.DecodeImage(req.Image)
	if err != nil {
		response.Message(c, http.StatusBadRequest, "invalid image encoding")
		return
	}

	id, err := h.Svc.Create(c.Request.Context(), &entity.Artwork{
		Type:        req.ArtworkType,
		Title:       req.Title,
		Description: req.Descripcion,
		Image:       img,
		FirstPrice:  req.FirstPrice,
		ArtistID:    req.ArtistID,
		CategoryID:  req.CategoriaID,
	})
	if err != nil {
		h.Logger.WithError(err).Error("failed to register artwork")
		response.Message(c, http.StatusInternalServerError, "failed to register artwork")
		return
	}
	response.Created(c, "artwork registered successfully", id)
}

// List GET /artworks
func (h *ArtworkHandler) List(c *gin.Context) {
	items, err := h.Svc.List(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).Error("failed to list artworks")
		response.Message(c, http.StatusInternalServerError, "failed to list artworks")
		return
	}
	c.JSON(http.StatusOK, artworksJSON(items))
}

// ListByArtist GET /products/:id
func (h *ArtworkHandler) ListByArtist(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Message(c, http.StatusBadRequest, "invalid artist id")
		return
	}
	items, err := h.Svc.ListByArtist(c.Request.Context(), id)
	if err != nil {
		h.Logger.WithError(err).WithField("artist_id", id).Error("failed to list artworks")
		response.Message(c, http.StatusInternalServerError, "failed to list artworks")
		return
	}
	c.JSON(http.StatusOK, artworksJSON(items))
}

// Delete DELETE /delete/:id — removes the artwork's direct transactions and
// then the artwork, reporting the artwork rows deleted.
func (h *ArtworkHandler) Delete(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Message(c, http.StatusBadRequest, "invalid artwork id")
		return
	}
	n, err := h.Svc.Delete(c.Request.Context(), id)
	if err != nil {
		h.Logger.WithError(err).WithField("artwork_id", id).Error("failed to delete artwork")
		response.Message(c, http.StatusInternalServerError, "failed to delete artwork")
		return
	}
	response.Deleted(c, n)
}

// Sales GET /sales/:id
func (h *ArtworkHandler) Sales(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Message(c, http.StatusBadRequest, "invalid artist id")
		return
	}
	records, err := h.Svc.SalesByArtist(c.Request.Context(), id)
	if err != nil {
		h.Logger.WithError(err).WithField("artist_id", id).Error("failed to list sales")
		response.Message(c, http.StatusInternalServerError, "failed to list sales")
		return
	}

	out := make([]gin.H, 0, len(records))
	for i := range records {
		s := &records[i]
		out = append(out, gin.H{
			"id":           s.ID,
			"artworkid":    s.ArtworkID,
			"userid":       s.BuyerID,
			"artistid":     s.ArtistID,
			"price":        s.Price,
			"created_at":   s.CreatedAt,
			"artworkId":    s.ArtworkID,
			"artworkTitle": s.ArtworkTitle,
			"artworkImage": imageValue(s.ArtworkImage),
			"artistId":     s.ArtistID,
			"artistName":   s.ArtistName,
			"artistImage":  imageValue(s.ArtistImage),
			"buyerId":      s.BuyerID,
			"buyerName":    s.BuyerName,
			"buyerImage":   imageValue(s.BuyerImage),
			"buyerAddress": s.BuyerAddress,
			"buyerCity":    s.BuyerCity,
		})
	}
	c.JSON(http.StatusOK, out)
}

// Search GET /artworks/search?q= — empty result unless Elasticsearch is
// configured.
func (h *ArtworkHandler) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		response.Message(c, http.StatusBadRequest, "missing query")
		return
	}
	results, err := h.Svc.Search(c.Request.Context(), q, 10)
	if err != nil {
		h.Logger.WithError(err).Error("artwork search failed")
		response.Message(c, http.StatusInternalServerError, "search failed")
		return
	}
	c.JSON(http.StatusOK, results)
}
