package entities

import "time"

// Chat message senders.
const (
	SenderUser = "user"
	SenderBot  = "bot"
)

// ChatMessage is one logged turn of the assistant conversation. UserID is nil
// for anonymous visitors. Rows are append-only.
type ChatMessage struct {
	ID          int       `json:"id"`
	UserID      *int      `json:"user_id"`
	MessageText string    `json:"message_text"`
	Sender      string    `json:"sender"`
	Timestamp   time.Time `json:"timestamp"`
}
