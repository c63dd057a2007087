package repository

import (
	"context"

	"github.com/Aaronzito/api-web-encontrarte/internal/domain/entity"
)

// SaleRepository reads the sales report. Transactions are read-only here;
// rows are written by the purchase flow outside this service.
type SaleRepository interface {
	ListByArtist(ctx context.Context, artistID int64) ([]entity.SaleRecord, error)
}
