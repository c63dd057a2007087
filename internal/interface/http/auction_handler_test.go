package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aaronzito/api-web-encontrarte/internal/application"
	"github.com/Aaronzito/api-web-encontrarte/internal/domain/entity"
	repo "github.com/Aaronzito/api-web-encontrarte/internal/domain/repository"
)

type memAuctionRepo struct {
	auctions map[int64]*entity.Auction
	nextID   int64
}

func newMemAuctionRepo() *memAuctionRepo {
	return &memAuctionRepo{auctions: map[int64]*entity.Auction{}, nextID: 1}
}

func (m *memAuctionRepo) Create(_ context.Context, a *entity.Auction) (int64, error) {
	a.ID = m.nextID
	m.nextID++
	cp := *a
	m.auctions[a.ID] = &cp
	return a.ID, nil
}

func (m *memAuctionRepo) ListByArtist(_ context.Context, artistID int64) ([]entity.Auction, error) {
	out := []entity.Auction{}
	for id := int64(1); id < m.nextID; id++ {
		if a, ok := m.auctions[id]; ok && a.ArtistID == artistID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (m *memAuctionRepo) Delete(_ context.Context, id int64) (int64, error) {
	if _, ok := m.auctions[id]; !ok {
		return 0, nil
	}
	delete(m.auctions, id)
	return 1, nil
}

var _ repo.AuctionRepository = (*memAuctionRepo)(nil)

func newAuctionRouter(r repo.AuctionRepository) *gin.Engine {
	svc := application.NewAuctionService(r)
	h := NewAuctionHandler(svc, quietLogger())

	e := gin.New()
	e.POST("/Addactions", h.Add)
	e.GET("/auctions/:id", h.ListByArtist)
	e.DELETE("/delete_auction/:id", h.Delete)
	return e
}

func TestAddAuctionEndpoint(t *testing.T) {
	r := newMemAuctionRepo()
	e := newAuctionRouter(r)

	w := doJSON(t, e, http.MethodPost, "/Addactions", gin.H{
		"artistid":    7,
		"title":       "Subasta de otono",
		"currentBid":  50.0,
		"endedtime":   time.Now().Add(48 * time.Hour).Format(time.RFC3339),
		"descripcion": "Pieza unica",
		"image":       "data:image/jpeg;base64,AQID",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var body struct {
		Message string `json:"message"`
		ID      int64  `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "auction registered successfully", body.Message)
	assert.Equal(t, int64(1), body.ID)
}

func TestAddAuctionMissingFields(t *testing.T) {
	e := newAuctionRouter(newMemAuctionRepo())

	w := doJSON(t, e, http.MethodPost, "/Addactions", gin.H{"title": "incompleta"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message":"all fields are required"}`, w.Body.String())
}

func TestListAuctionsByArtistEndpoint(t *testing.T) {
	r := newMemAuctionRepo()
	e := newAuctionRouter(r)

	_, err := r.Create(context.Background(), &entity.Auction{ArtistID: 7, Title: "mine"})
	require.NoError(t, err)
	_, err = r.Create(context.Background(), &entity.Auction{ArtistID: 8, Title: "theirs"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/auctions/7", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var rows []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "mine", rows[0]["title"])
}

func TestDeleteAuctionEndpoint(t *testing.T) {
	r := newMemAuctionRepo()
	e := newAuctionRouter(r)

	_, err := r.Create(context.Background(), &entity.Auction{ArtistID: 7, Title: "x"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodDelete, "/delete_auction/1", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"affectedRows":1}`, rec.Body.String())

	req = httptest.NewRequest(http.MethodDelete, "/delete_auction/1", nil)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"affectedRows":0}`, rec.Body.String())
}
