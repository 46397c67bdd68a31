package http

import (
	"errors"
	"net/http"
	"strconv"

	"farmon/internal/entities"
	"farmon/internal/repository"
	"farmon/internal/usecases"

	"github.com/gin-gonic/gin"
)

// GetAllProducts returns marketplace listings, newest first, with optional
// category and price range filters.
func (h *Handler) GetAllProducts(c *gin.Context) {
	filter := repository.ProductFilter{Category: c.Query("category")}

	if raw := c.Query("min_price"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			filter.MinPrice = &v
		}
	}
	if raw := c.Query("max_price"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			filter.MaxPrice = &v
		}
	}

	products, err := h.marketplace.ListProducts(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
		return
	}
	if products == nil {
		products = []entities.Product{}
	}

	c.JSON(http.StatusOK, gin.H{
		"products": products,
		"count":    len(products),
	})
}

func (h *Handler) GetProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return
	}

	product, err := h.marketplace.GetProduct(id)
	if errors.Is(err, usecases.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
		return
	}

	c.JSON(http.StatusOK, product)
}

// CreateProduct adds a new listing. Farmers only.
func (h *Handler) CreateProduct(c *gin.Context) {
	userID := currentUserID(c)
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid user"})
		return
	}

	var payload struct {
		Name              string  `json:"name" binding:"required"`
		Category          string  `json:"category" binding:"required"`
		PricePerKg        float64 `json:"price_per_kg" binding:"required"`
		QuantityAvailable float64 `json:"quantity_available" binding:"required"`
		Description       string  `json:"description"`
		ImageURL          string  `json:"image_url"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required field"})
		return
	}
	if payload.PricePerKg <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Price must be greater than 0"})
		return
	}
	if payload.QuantityAvailable <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Quantity must be greater than 0"})
		return
	}

	product := &entities.Product{
		Name:              TruncateString(SanitizeString(payload.Name), MaxNameLength),
		Category:          TruncateString(SanitizeString(payload.Category), MaxCategoryLength),
		PricePerKg:        payload.PricePerKg,
		QuantityAvailable: payload.QuantityAvailable,
		Description:       SanitizeString(payload.Description),
		ImageURL:          payload.ImageURL,
	}

	err := h.marketplace.CreateProduct(userID, product)
	if errors.Is(err, usecases.ErrForbidden) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only farmers can create product listings"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Product created successfully",
		"product": product,
	})
}

// UpdateProduct changes a listing. Owner only.
func (h *Handler) UpdateProduct(c *gin.Context) {
	userID := currentUserID(c)
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return
	}

	var payload struct {
		Name              *string  `json:"name"`
		Category          *string  `json:"category"`
		PricePerKg        *float64 `json:"price_per_kg"`
		QuantityAvailable *float64 `json:"quantity_available"`
		Description       *string  `json:"description"`
		ImageURL          *string  `json:"image_url"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	upd := repository.ProductUpdate{
		Name:              payload.Name,
		Category:          payload.Category,
		PricePerKg:        payload.PricePerKg,
		QuantityAvailable: payload.QuantityAvailable,
		Description:       payload.Description,
		ImageURL:          payload.ImageURL,
	}
	if upd.Empty() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No valid fields to update"})
		return
	}

	product, err := h.marketplace.UpdateProduct(userID, id, upd)
	if errors.Is(err, usecases.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	if errors.Is(err, usecases.ErrForbidden) {
		c.JSON(http.StatusForbidden, gin.H{"error": "You can only update your own products"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product updated successfully",
		"product": product,
	})
}

// DeleteProduct removes a listing. Owner only.
func (h *Handler) DeleteProduct(c *gin.Context) {
	userID := currentUserID(c)
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return
	}

	err = h.marketplace.DeleteProduct(userID, id)
	if errors.Is(err, usecases.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	if errors.Is(err, usecases.ErrForbidden) {
		c.JSON(http.StatusForbidden, gin.H{"error": "You can only delete your own products"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}

// GetMarketPrices returns recent observed prices, newest first.
func (h *Handler) GetMarketPrices(c *gin.Context) {
	limit := 20
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	prices, err := h.priceRepo.List(c.Query("crop"), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch market prices"})
		return
	}
	if prices == nil {
		prices = []entities.MarketPrice{}
	}

	c.JSON(http.StatusOK, gin.H{
		"prices": prices,
		"count":  len(prices),
	})
}
