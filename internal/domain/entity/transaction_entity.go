package entity

import "time"

// DirectTransaction records a completed sale. It must be deleted before the
// artwork it references.
type DirectTransaction struct {
	ID        int64
	ArtworkID int64
	BuyerID   int64
	ArtistID  int64
	Price     float64
	CreatedAt time.Time
}

// SaleRecord is the flattened sales report row joining a transaction with
// its artwork, artist and buyer.
type SaleRecord struct {
	DirectTransaction
	ArtworkTitle string
	ArtworkImage []byte
	ArtistName   string
	ArtistImage  []byte
	BuyerName    string
	BuyerImage   []byte
	BuyerAddress string
	BuyerCity    string
}
