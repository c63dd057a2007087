package repository

import (
	"context"

	"github.com/Aaronzito/api-web-encontrarte/internal/domain/entity"
)

// AuctionRepository defines database operations on auctions.
type AuctionRepository interface {
	Create(ctx context.Context, a *entity.Auction) (int64, error)
	ListByArtist(ctx context.Context, artistID int64) ([]entity.Auction, error)
	Delete(ctx context.Context, id int64) (int64, error)
}
