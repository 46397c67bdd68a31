package http

import (
	"net/http"

	"farmon/internal/entities"
	"farmon/internal/repository"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	userRepo    *repository.UserRepository
	productRepo *repository.ProductRepository
	priceRepo   *repository.MarketPriceRepository
	chatRepo    *repository.ChatRepository
}

func NewAdminHandler(userRepo *repository.UserRepository, productRepo *repository.ProductRepository,
	priceRepo *repository.MarketPriceRepository, chatRepo *repository.ChatRepository) *AdminHandler {
	return &AdminHandler{
		userRepo:    userRepo,
		productRepo: productRepo,
		priceRepo:   priceRepo,
		chatRepo:    chatRepo,
	}
}

// GetStats returns platform statistics
func (h *AdminHandler) GetStats(c *gin.Context) {
	users, err := h.userRepo.Count()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stats"})
		return
	}
	products, err := h.productRepo.Count()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stats"})
		return
	}
	prices, err := h.priceRepo.Count()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stats"})
		return
	}
	chats, err := h.chatRepo.Count()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stats"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total_users":         users,
		"total_products":      products,
		"total_market_prices": prices,
		"total_chat_messages": chats,
	})
}

// CreateMarketPrice ingests one observed price record.
func (h *AdminHandler) CreateMarketPrice(c *gin.Context) {
	var payload struct {
		CropName       string  `json:"crop_name" binding:"required"`
		MarketLocation string  `json:"market_location" binding:"required"`
		Price          float64 `json:"price" binding:"required"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required field"})
		return
	}
	if payload.Price <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Price must be greater than 0"})
		return
	}

	record := &entities.MarketPrice{
		CropName:       TruncateString(SanitizeString(payload.CropName), MaxNameLength),
		MarketLocation: TruncateString(SanitizeString(payload.MarketLocation), MaxLocationLength),
		Price:          payload.Price,
	}
	if err := h.priceRepo.Create(record); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record market price"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Market price recorded",
		"price":   record,
	})
}
