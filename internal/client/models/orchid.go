// Package models holds the client-side representations of the store's
// entities. Field names and JSON tags follow the server's response schemas;
// the schemas are owned by the server and consumed as given.
package models

// Orchid as returned by the server. The category arrives embedded under the
// "categoryId" JSON key (a quirk of the server's response records, kept
// as-is).
type Orchid struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	Price       float64   `json:"price"`
	IsNatural   bool      `json:"isNatural"`
	IsAvailable bool      `json:"isAvailable"`
	Category    *Category `json:"categoryId,omitempty"`
}

// OrchidRequest is the create/update payload; here the category travels as a
// plain id.
type OrchidRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	URL         string  `json:"url"`
	Price       float64 `json:"price"`
	IsNatural   bool    `json:"isNatural"`
	IsAvailable bool    `json:"isAvailable"`
	CategoryID  int     `json:"categoryId"`
}
