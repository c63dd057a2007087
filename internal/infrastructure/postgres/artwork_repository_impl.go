package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Aaronzito/api-web-encontrarte/internal/domain/entity"
	"github.com/Aaronzito/api-web-encontrarte/internal/domain/repository"
)

type ArtworkRepository struct {
	pool *pgxpool.Pool
}

func NewArtworkRepository(pool *pgxpool.Pool) *ArtworkRepository {
	return &ArtworkRepository{pool: pool}
}

func (r *ArtworkRepository) Create(ctx context.Context, a *entity.Artwork) (int64, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO artworks (artwork_type, title, descripcion, image, firstprice, artistid, categoriaid)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`, a.Type, a.Title, a.Description, a.Image, a.FirstPrice, a.ArtistID, a.CategoryID)

	if err := row.Scan(&a.ID); err != nil {
		return 0, err
	}
	return a.ID, nil
}

func (r *ArtworkRepository) List(ctx context.Context) ([]entity.Artwork, error) {
	return r.list(ctx, `
		SELECT id, artwork_type, title, descripcion, image, firstprice, artistid, categoriaid
		FROM artworks
		ORDER BY id
	`)
}

func (r *ArtworkRepository) ListByArtist(ctx context.Context, artistID int64) ([]entity.Artwork, error) {
	return r.list(ctx, `
		SELECT id, artwork_type, title, descripcion, image, firstprice, artistid, categoriaid
		FROM artworks
		WHERE artistid = $1
		ORDER BY id
	`, artistID)
}

func (r *ArtworkRepository) list(ctx context.Context, query string, args ...any) ([]entity.Artwork, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []entity.Artwork{}
	for rows.Next() {
		var a entity.Artwork
		if err := rows.Scan(&a.ID, &a.Type, &a.Title, &a.Description, &a.Image,
			&a.FirstPrice, &a.ArtistID, &a.CategoryID); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// DeleteWithDependents removes the direct transactions referencing the
// artwork and then the artwork itself. Both statements run in one
// transaction: either everything is gone or nothing is.
func (r *ArtworkRepository) DeleteWithDependents(ctx context.Context, id int64) (int64, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM direct_transaction WHERE artworkid = $1`, id); err != nil {
		return 0, err
	}
	res, err := tx.Exec(ctx, `DELETE FROM artworks WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return res.RowsAffected(), nil
}

var _ repository.ArtworkRepository = (*ArtworkRepository)(nil)
