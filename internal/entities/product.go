package entities

import "time"

// Product is a marketplace listing owned by a farmer. The farmer contact
// fields are denormalized from the users table when listings are read.
type Product struct {
	ID                int       `json:"id"`
	FarmerID          int       `json:"farmer_id"`
	Name              string    `json:"name"`
	Category          string    `json:"category"`
	PricePerKg        float64   `json:"price_per_kg"`
	QuantityAvailable float64   `json:"quantity_available"`
	Description       string    `json:"description"`
	ImageURL          string    `json:"image_url"`
	CreatedAt         time.Time `json:"created_at"`

	FarmerName     string `json:"farmer_name,omitempty"`
	FarmerPhone    string `json:"farmer_phone,omitempty"`
	FarmerLocation string `json:"farmer_location,omitempty"`
}
