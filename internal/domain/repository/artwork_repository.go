package repository

import (
	"context"

	"github.com/Aaronzito/api-web-encontrarte/internal/domain/entity"
)

// ArtworkRepository defines database operations on artworks.
type ArtworkRepository interface {
	Create(ctx context.Context, a *entity.Artwork) (int64, error)
	List(ctx context.Context) ([]entity.Artwork, error)
	ListByArtist(ctx context.Context, artistID int64) ([]entity.Artwork, error)
	// DeleteWithDependents removes every direct transaction referencing the
	// artwork and then the artwork itself, in one database transaction.
	// It returns the number of artwork rows deleted (0 for an unknown id).
	DeleteWithDependents(ctx context.Context, id int64) (int64, error)
}
