package application

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/sirupsen/logrus"

	"github.com/Aaronzito/api-web-encontrarte/internal/domain/entity"
	repo "github.com/Aaronzito/api-web-encontrarte/internal/domain/repository"
)

// ArtworkService owns artwork listings, the cascading delete of an artwork
// with its direct transactions, and the sales report. When Elasticsearch is
// configured it also maintains a shadow index of artworks for search; index
// failures are logged and never affect the database result.
type ArtworkService struct {
	Repo    repo.ArtworkRepository
	Sales   repo.SaleRepository
	Logger  *logrus.Logger
	ES      *elasticsearch.Client
	ESIndex string
}

func NewArtworkService(r repo.ArtworkRepository, sales repo.SaleRepository, logger *logrus.Logger, es *elasticsearch.Client, esIndex string) *ArtworkService {
	return &ArtworkService{Repo: r, Sales: sales, Logger: logger, ES: es, ESIndex: esIndex}
}

func (s *ArtworkService) Create(ctx context.Context, a *entity.Artwork) (int64, error) {
	id, err := s.Repo.Create(ctx, a)
	if err != nil {
		return 0, err
	}
	_ = s.indexArtwork(ctx, a)
	return id, nil
}

func (s *ArtworkService) List(ctx context.Context) ([]entity.Artwork, error) {
	return s.Repo.List(ctx)
}

func (s *ArtworkService) ListByArtist(ctx context.Context, artistID int64) ([]entity.Artwork, error) {
	return s.Repo.ListByArtist(ctx, artistID)
}

func (s *ArtworkService) SalesByArtist(ctx context.Context, artistID int64) ([]entity.SaleRecord, error) {
	return s.Sales.ListByArtist(ctx, artistID)
}

// Delete removes the artwork's direct transactions and then the artwork,
// returning the artwork rows deleted. An unknown id yields 0, not an error.
func (s *ArtworkService) Delete(ctx context.Context, id int64) (int64, error) {
	n, err := s.Repo.DeleteWithDependents(ctx, id)
	if err != nil {
		return 0, err
	}
	s.removeFromIndex(ctx, id)
	return n, nil
}

func (s *ArtworkService) indexArtwork(ctx context.Context, a *entity.Artwork) error {
	if s.ES == nil || s.ESIndex == "" {
		return nil
	}
	doc := map[string]any{
		"id":          a.ID,
		"title":       a.Title,
		"descripcion": a.Description,
		"artistid":    a.ArtistID,
		"firstprice":  a.FirstPrice,
		"categoriaid": a.CategoryID,
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{
		Index:      s.ESIndex,
		DocumentID: strconv.FormatInt(a.ID, 10),
		Body:       strings.NewReader(string(b)),
		Refresh:    "false",
	}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("artwork_id", a.ID).Warn("es index failed")
		}
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && s.Logger != nil {
		s.Logger.WithField("status", res.Status()).WithField("artwork_id", a.ID).Warn("es index response error")
	}
	return nil
}

func (s *ArtworkService) removeFromIndex(ctx context.Context, id int64) {
	if s.ES == nil || s.ESIndex == "" {
		return
	}
	req := esapi.DeleteRequest{Index: s.ESIndex, DocumentID: strconv.FormatInt(id, 10)}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("artwork_id", id).Warn("es delete failed")
		}
		return
	}
	_ = res.Body.Close()
}

// Search runs a multi_match query over title and description on the shadow
// index. Without Elasticsearch configured it returns an empty result.
func (s *ArtworkService) Search(ctx context.Context, q string, size int) ([]map[string]any, error) {
	if s.ES == nil || s.ESIndex == "" {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"title^2", "descripcion"},
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := s.ES.Search(
		s.ES.Search.WithContext(c),
		s.ES.Search.WithIndex(s.ESIndex),
		s.ES.Search.WithBody(strings.NewReader(string(b))),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID     string         `json:"_id"`
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	out := make([]map[string]any, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}
