package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Aaronzito/api-web-encontrarte/internal/domain/entity"
	"github.com/Aaronzito/api-web-encontrarte/internal/domain/repository"
)

type SaleRepository struct {
	pool *pgxpool.Pool
}

func NewSaleRepository(pool *pgxpool.Pool) *SaleRepository {
	return &SaleRepository{pool: pool}
}

// ListByArtist joins each transaction with its artwork, the artist row and
// the buyer row, filtered by the selling artist.
func (r *SaleRepository) ListByArtist(ctx context.Context, artistID int64) ([]entity.SaleRecord, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT d.id, d.artworkid, d.userid, d.artistid, d.price, d.created_at,
		       ar.title, ar.image,
		       artist.name, artist.image,
		       buyer.name, buyer.image, buyer.address, buyer.city
		FROM direct_transaction d
		JOIN artworks ar ON d.artworkid = ar.id
		JOIN users artist ON ar.artistid = artist.id
		JOIN users buyer ON d.userid = buyer.id
		WHERE d.artistid = $1
		ORDER BY d.id
	`, artistID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []entity.SaleRecord{}
	for rows.Next() {
		var s entity.SaleRecord
		if err := rows.Scan(&s.ID, &s.ArtworkID, &s.BuyerID, &s.ArtistID, &s.Price, &s.CreatedAt,
			&s.ArtworkTitle, &s.ArtworkImage,
			&s.ArtistName, &s.ArtistImage,
			&s.BuyerName, &s.BuyerImage, &s.BuyerAddress, &s.BuyerCity); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

var _ repository.SaleRepository = (*SaleRepository)(nil)
