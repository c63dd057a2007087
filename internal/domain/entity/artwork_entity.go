package entity

// Artwork is a piece listed for direct sale. ArtistID references the owning
// user; deleting an artwork also removes its direct transactions.
type Artwork struct {
	ID          int64
	Type        string
	Title       string
	Description string
	Image       []byte
	FirstPrice  float64
	ArtistID    int64
	CategoryID  int64
}
