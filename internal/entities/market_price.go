package entities

import "time"

// MarketPrice is one observed price for a crop at a market. Many rows can
// exist per crop; the most recent DateRecorded wins for chatbot answers.
type MarketPrice struct {
	ID             int       `json:"id"`
	CropName       string    `json:"crop_name"`
	MarketLocation string    `json:"market_location"`
	Price          float64   `json:"price"`
	DateRecorded   time.Time `json:"date_recorded"`
}
