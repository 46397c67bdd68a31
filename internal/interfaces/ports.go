package interfaces

import "farmon/internal/entities"

// PriceReader finds the most recently recorded market price whose crop name
// contains the query. A nil record with a nil error means no price is known.
type PriceReader interface {
	Latest(crop string) (*entities.MarketPrice, error)
}

// AvailabilityReader counts in-stock listings whose name contains the query,
// capped at limit.
type AvailabilityReader interface {
	CountAvailable(name string, limit int) (int, error)
}

// ChatLogger appends one conversation turn. UserID is nil for anonymous
// visitors. Logging is best-effort; failures must never reach the client.
type ChatLogger interface {
	Append(userID *int, text, sender string) error
}
