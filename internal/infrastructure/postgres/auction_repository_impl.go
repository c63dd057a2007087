package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Aaronzito/api-web-encontrarte/internal/domain/entity"
	"github.com/Aaronzito/api-web-encontrarte/internal/domain/repository"
)

type AuctionRepository struct {
	pool *pgxpool.Pool
}

func NewAuctionRepository(pool *pgxpool.Pool) *AuctionRepository {
	return &AuctionRepository{pool: pool}
}

func (r *AuctionRepository) Create(ctx context.Context, a *entity.Auction) (int64, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO auctions (artistid, title, currentbid, endedtime, descripcion, image)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`, a.ArtistID, a.Title, a.CurrentBid, a.EndedTime, a.Description, a.Image)

	if err := row.Scan(&a.ID); err != nil {
		return 0, err
	}
	return a.ID, nil
}

func (r *AuctionRepository) ListByArtist(ctx context.Context, artistID int64) ([]entity.Auction, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, artistid, title, currentbid, endedtime, descripcion, image
		FROM auctions
		WHERE artistid = $1
		ORDER BY id
	`, artistID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []entity.Auction{}
	for rows.Next() {
		var a entity.Auction
		if err := rows.Scan(&a.ID, &a.ArtistID, &a.Title, &a.CurrentBid,
			&a.EndedTime, &a.Description, &a.Image); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *AuctionRepository) Delete(ctx context.Context, id int64) (int64, error) {
	res, err := r.pool.Exec(ctx, `DELETE FROM auctions WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected(), nil
}

var _ repository.AuctionRepository = (*AuctionRepository)(nil)
