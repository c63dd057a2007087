package entity

import "time"

// Auction is an independently created and deleted listing, no dependents.
type Auction struct {
	ID          int64
	ArtistID    int64
	Title       string
	CurrentBid  float64
	EndedTime   time.Time
	Description string
	Image       []byte
}
