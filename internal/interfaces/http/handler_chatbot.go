package http

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"farmon/internal/entities"

	"github.com/gin-gonic/gin"
)

// AskChatbot processes one chat message and returns the assistant's reply.
// The endpoint is open to anonymous visitors; a valid bearer token only adds
// identity to the logged turns.
func (h *Handler) AskChatbot(c *gin.Context) {
	if h.askLimiter != nil && !h.askLimiter.Allow(c.ClientIP()) {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "Too many messages, slow down"})
		return
	}

	var payload struct {
		Message  string `json:"message"`
		Language string `json:"language"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message is required"})
		return
	}

	message := TruncateString(SanitizeString(payload.Message), MaxMessageLength)
	if message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message is required"})
		return
	}
	language := payload.Language
	if language == "" {
		language = "fr"
	}

	response, locale := h.chatbotService.Respond(message, language)

	// Best-effort history logging: a failed insert never changes the reply
	// or the status code.
	var userID *int
	if id := currentUserID(c); id != 0 {
		userID = &id
	}
	if h.chatLog != nil {
		if err := h.chatLog.Append(userID, message, entities.SenderUser); err != nil {
			log.Printf("Failed to save chat message: %v", err)
		}
		if err := h.chatLog.Append(userID, response, entities.SenderBot); err != nil {
			log.Printf("Failed to save chat response: %v", err)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   message,
		"response":  response,
		"language":  locale,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// GetChatHistory returns the caller's conversation, oldest turn first.
func (h *Handler) GetChatHistory(c *gin.Context) {
	userID := currentUserID(c)
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid user"})
		return
	}

	limit := 50
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	messages, err := h.chatRepo.HistoryByUser(userID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch chat history"})
		return
	}
	if messages == nil {
		messages = []entities.ChatMessage{}
	}

	c.JSON(http.StatusOK, gin.H{
		"messages": messages,
		"count":    len(messages),
	})
}
