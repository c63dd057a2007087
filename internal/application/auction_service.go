package application

import (
	"context"

	"github.com/Aaronzito/api-web-encontrarte/internal/domain/entity"
	repo "github.com/Aaronzito/api-web-encontrarte/internal/domain/repository"
)

// AuctionService owns auction listings. Auctions have no dependent records,
// so deletion is a single statement.
type AuctionService struct {
	Repo repo.AuctionRepository
}

func NewAuctionService(r repo.AuctionRepository) *AuctionService {
	return &AuctionService{Repo: r}
}

func (s *AuctionService) Create(ctx context.Context, a *entity.Auction) (int64, error) {
	return s.Repo.Create(ctx, a)
}

func (s *AuctionService) ListByArtist(ctx context.Context, artistID int64) ([]entity.Auction, error) {
	return s.Repo.ListByArtist(ctx, artistID)
}

func (s *AuctionService) Delete(ctx context.Context, id int64) (int64, error) {
	return s.Repo.Delete(ctx, id)
}
