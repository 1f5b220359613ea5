package entity

type Book struct {
	BookID          int64   `json:"book_id"`
	Title           string  `json:"title"`
	Author          string  `json:"author"`
	PublishedYear   *int    `json:"published_year,omitempty"`
	Genre           *string `json:"genre,omitempty"`
	AvailableCopies int     `json:"available_copies"`
	TotalCopies     int     `json:"total_copies"`
}
