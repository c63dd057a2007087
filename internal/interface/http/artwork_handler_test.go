package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aaronzito/api-web-encontrarte/internal/application"
	"github.com/Aaronzito/api-web-encontrarte/internal/domain/entity"
	repo "github.com/Aaronzito/api-web-encontrarte/internal/domain/repository"
)

type memArtworkRepo struct {
	artworks     map[int64]*entity.Artwork
	transactions map[int64]int64 // transaction id -> artworkid
	nextID       int64
}

func newMemArtworkRepo() *memArtworkRepo {
	return &memArtworkRepo{
		artworks:     map[int64]*entity.Artwork{},
		transactions: map[int64]int64{},
		nextID:       1,
	}
}

func (m *memArtworkRepo) Create(_ context.Context, a *entity.Artwork) (int64, error) {
	a.ID = m.nextID
	m.nextID++
	cp := *a
	m.artworks[a.ID] = &cp
	return a.ID, nil
}

func (m *memArtworkRepo) List(_ context.Context) ([]entity.Artwork, error) {
	out := []entity.Artwork{}
	for id := int64(1); id < m.nextID; id++ {
		if a, ok := m.artworks[id]; ok {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (m *memArtworkRepo) ListByArtist(_ context.Context, artistID int64) ([]entity.Artwork, error) {
	out := []entity.Artwork{}
	for id := int64(1); id < m.nextID; id++ {
		if a, ok := m.artworks[id]; ok && a.ArtistID == artistID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (m *memArtworkRepo) DeleteWithDependents(_ context.Context, id int64) (int64, error) {
	for txID, awID := range m.transactions {
		if awID == id {
			delete(m.transactions, txID)
		}
	}
	if _, ok := m.artworks[id]; !ok {
		return 0, nil
	}
	delete(m.artworks, id)
	return 1, nil
}

var _ repo.ArtworkRepository = (*memArtworkRepo)(nil)

type memSaleRepo struct {
	records []entity.SaleRecord
}

func (m *memSaleRepo) ListByArtist(_ context.Context, artistID int64) ([]entity.SaleRecord, error) {
	out := []entity.SaleRecord{}
	for _, r := range m.records {
		if r.ArtistID == artistID {
			out = append(out, r)
		}
	}
	return out, nil
}

var _ repo.SaleRepository = (*memSaleRepo)(nil)

func newArtworkRouter(r repo.ArtworkRepository, sales repo.SaleRepository) *gin.Engine {
	svc := application.NewArtworkService(r, sales, quietLogger(), nil, "")
	h := NewArtworkHandler(svc, quietLogger())

	e := gin.New()
	e.POST("/Addartworks", h.Add)
	e.GET("/artworks", h.List)
	e.GET("/artworks/search", h.Search)
	e.GET("/products/:id", h.ListByArtist)
	e.GET("/sales/:id", h.Sales)
	e.DELETE("/delete/:id", h.Delete)
	return e
}

func TestAddArtworkEndpoint(t *testing.T) {
	r := newMemArtworkRepo()
	e := newArtworkRouter(r, &memSaleRepo{})

	w := doJSON(t, e, http.MethodPost, "/Addartworks", gin.H{
		"artwork_type": "painting",
		"title":        "Atardecer",
		"descripcion":  "Oleo sobre lienzo",
		"image":        "data:image/jpeg;base64,AQID",
		"firstprice":   150.0,
		"artistid":     7,
		"categoriaid":  1,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var body struct {
		Message string `json:"message"`
		ID      int64  `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "artwork registered successfully", body.Message)
	assert.Equal(t, int64(1), body.ID)
	assert.Equal(t, []byte{0x01, 0x02, 0x03}, r.artworks[1].Image)
}

func TestAddArtworkMissingFields(t *testing.T) {
	e := newArtworkRouter(newMemArtworkRepo(), &memSaleRepo{})

	w := doJSON(t, e, http.MethodPost, "/Addartworks", gin.H{"title": "solo"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message":"all fields are required"}`, w.Body.String())
}

func TestListArtworksEndpoint(t *testing.T) {
	r := newMemArtworkRepo()
	e := newArtworkRouter(r, &memSaleRepo{})

	_, err := r.Create(context.Background(), &entity.Artwork{
		Title:    "Atardecer",
		Image:    []byte{0x01, 0x02, 0x03},
		ArtistID: 7,
	})
	require.NoError(t, err)
	_, err = r.Create(context.Background(), &entity.Artwork{
		Title:    "Amanecer",
		ArtistID: 8,
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/artworks", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var rows []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, "data:image/jpeg;base64,AQID", rows[0]["image"])
	assert.Nil(t, rows[1]["image"])
}

func TestListByArtistEndpoint(t *testing.T) {
	r := newMemArtworkRepo()
	e := newArtworkRouter(r, &memSaleRepo{})

	_, err := r.Create(context.Background(), &entity.Artwork{Title: "mine", ArtistID: 7})
	require.NoError(t, err)
	_, err = r.Create(context.Background(), &entity.Artwork{Title: "theirs", ArtistID: 8})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/products/7", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var rows []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "mine", rows[0]["title"])
}

func TestDeleteArtworkEndpoint(t *testing.T) {
	r := newMemArtworkRepo()
	e := newArtworkRouter(r, &memSaleRepo{})

	id, err := r.Create(context.Background(), &entity.Artwork{Title: "x", ArtistID: 1})
	require.NoError(t, err)
	r.transactions[100] = id

	req := httptest.NewRequest(http.MethodDelete, "/delete/1", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"affectedRows":1}`, rec.Body.String())
	assert.Empty(t, r.transactions)
}

func TestDeleteArtworkUnknownID(t *testing.T) {
	e := newArtworkRouter(newMemArtworkRepo(), &memSaleRepo{})

	req := httptest.NewRequest(http.MethodDelete, "/delete/42", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"affectedRows":0}`, rec.Body.String())
}

func TestSalesEndpoint(t *testing.T) {
	sales := &memSaleRepo{records: []entity.SaleRecord{
		{
			DirectTransaction: entity.DirectTransaction{ID: 1, ArtworkID: 3, BuyerID: 9, ArtistID: 7, Price: 100},
			ArtworkTitle:      "Atardecer",
			ArtistName:        "Frida",
			BuyerName:         "Diego",
			BuyerCity:         "CDMX",
		},
	}}
	e := newArtworkRouter(newMemArtworkRepo(), sales)

	req := httptest.NewRequest(http.MethodGet, "/sales/7", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var rows []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "Atardecer", rows[0]["artworkTitle"])
	assert.Equal(t, "Frida", rows[0]["artistName"])
	assert.Equal(t, "Diego", rows[0]["buyerName"])
	assert.Equal(t, "CDMX", rows[0]["buyerCity"])
	assert.EqualValues(t, 9, rows[0]["buyerId"])
	assert.EqualValues(t, 100, rows[0]["price"])
}

func TestSearchEndpointMissingQuery(t *testing.T) {
	e := newArtworkRouter(newMemArtworkRepo(), &memSaleRepo{})

	req := httptest.NewRequest(http.MethodGet, "/artworks/search", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSearchEndpointWithoutElasticsearch(t *testing.T) {
	e := newArtworkRouter(newMemArtworkRepo(), &memSaleRepo{})

	req := httptest.NewRequest(http.MethodGet, "/artworks/search?q=atardecer", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}
