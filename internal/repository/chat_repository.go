package repository

import (
	"context"

	"farmon/internal/entities"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ChatRepository struct {
	db *pgxpool.Pool
}

func NewChatRepository(db *pgxpool.Pool) *ChatRepository {
	return &ChatRepository{db: db}
}

// Append inserts one conversation turn. UserID may be nil for anonymous
// visitors; rows are never updated afterwards.
func (r *ChatRepository) Append(userID *int, text, sender string) error {
	_, err := r.db.Exec(context.Background(),
		"INSERT INTO chat_messages (user_id, message_text, sender) VALUES ($1, $2, $3)",
		userID, text, sender)
	return err
}

// HistoryByUser returns the user's most recent turns in chronological order.
func (r *ChatRepository) HistoryByUser(userID int, limit int) ([]entities.ChatMessage, error) {
	rows, err := r.db.Query(context.Background(),
		`SELECT id, user_id, message_text, sender, timestamp
		 FROM chat_messages WHERE user_id = $1
		 ORDER BY timestamp DESC LIMIT $2`,
		userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []entities.ChatMessage
	for rows.Next() {
		var m entities.ChatMessage
		if err := rows.Scan(&m.ID, &m.UserID, &m.MessageText, &m.Sender, &m.Timestamp); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// The query walks backwards from the newest row; callers expect oldest first.
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}

func (r *ChatRepository) Count() (int, error) {
	var n int
	err := r.db.QueryRow(context.Background(), "SELECT COUNT(*) FROM chat_messages").Scan(&n)
	return n, err
}
