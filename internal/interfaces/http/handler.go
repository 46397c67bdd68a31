package http

import (
	"net/http"

	"farmon/internal/infrastructure"
	"farmon/internal/interfaces"
	"farmon/internal/repository"
	"farmon/internal/usecases"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	chatbotService *usecases.ChatbotService
	marketplace    *usecases.MarketplaceUsecase
	userRepo       *repository.UserRepository
	priceRepo      *repository.MarketPriceRepository
	chatLog        interfaces.ChatLogger
	chatRepo       *repository.ChatRepository
	askLimiter     *infrastructure.MessageRateLimiter
}

func NewHandler(chatbot *usecases.ChatbotService, marketplace *usecases.MarketplaceUsecase,
	userRepo *repository.UserRepository, priceRepo *repository.MarketPriceRepository,
	chatRepo *repository.ChatRepository, askLimiter *infrastructure.MessageRateLimiter) *Handler {
	h := &Handler{
		chatbotService: chatbot,
		marketplace:    marketplace,
		userRepo:       userRepo,
		priceRepo:      priceRepo,
		chatRepo:       chatRepo,
		askLimiter:     askLimiter,
	}
	if chatRepo != nil {
		h.chatLog = chatRepo
	}
	return h
}

func SetupRoutes(r *gin.Engine, h *Handler, auth *usecases.AuthUsecase, adminHandler *AdminHandler, middleware *Middleware) {
	// Apply Security Middleware
	r.Use(SecurityHeaders())
	r.Use(RequestSizeLimiter(1 << 20)) // 1MB max request size
	r.Use(middleware.CORSMiddleware())

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Welcome to FarmOn API",
			"version": "2.0.0",
			"endpoints": gin.H{
				"auth":     "/api/auth",
				"products": "/api/products",
				"chatbot":  "/api/chatbot",
			},
		})
	})

	// Public Auth Routes
	authGroup := r.Group("/api/auth")
	{
		authGroup.POST("/register", func(c *gin.Context) {
			var regReq struct {
				Username string `json:"username" binding:"required"`
				Email    string `json:"email" binding:"required,email"`
				Password string `json:"password" binding:"required"`
				Role     string `json:"role" binding:"required"`
				Phone    string `json:"phone"`
				Location string `json:"location"`
			}
			if err := c.ShouldBindJSON(&regReq); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
				return
			}
			if !ValidUsername(regReq.Username) || len(regReq.Password) < 6 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid username or password (min 6 chars)"})
				return
			}
			user, err := auth.Register(regReq.Username, regReq.Email, regReq.Password, regReq.Role, regReq.Phone, regReq.Location)
			if err != nil {
				c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusCreated, gin.H{"message": "Registration successful", "user": user})
		})

		authGroup.POST("/login", func(c *gin.Context) {
			var loginReq struct {
				Email    string `json:"email" binding:"required"`
				Password string `json:"password" binding:"required"`
			}
			if err := c.ShouldBindJSON(&loginReq); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
				return
			}
			token, user, err := auth.Login(loginReq.Email, loginReq.Password)
			if err != nil {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
				return
			}
			c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
		})
	}

	// Public Marketplace Routes
	r.GET("/api/products", h.GetAllProducts)
	r.GET("/api/products/:id", h.GetProduct)
	r.GET("/api/market-prices", h.GetMarketPrices)

	// Public Chatbot Route (identity attached when a valid token is sent)
	r.POST("/api/chatbot/ask", middleware.OptionalAuth(), h.AskChatbot)

	// Protected Routes
	api := r.Group("/api")
	api.Use(middleware.AuthRequired())
	api.Use(middleware.RateLimitPerUser(5, 10))
	{
		api.GET("/auth/me", h.GetCurrentUser)
		api.PUT("/auth/profile", h.UpdateProfile)

		api.POST("/products", h.CreateProduct)
		api.PUT("/products/:id", h.UpdateProduct)
		api.DELETE("/products/:id", h.DeleteProduct)

		api.GET("/chatbot/history", h.GetChatHistory)
	}

	// Admin-only Routes
	admin := r.Group("/api/admin")
	admin.Use(middleware.AuthRequired())
	admin.Use(middleware.AdminRequired())
	{
		admin.GET("/stats", adminHandler.GetStats)
		admin.POST("/market-prices", adminHandler.CreateMarketPrice)
	}
}

// currentUserID extracts the authenticated user id set by the auth middleware.
// Returns 0 when the request is anonymous.
func currentUserID(c *gin.Context) int {
	v, exists := c.Get("user_id")
	if !exists {
		return 0
	}
	if id, ok := v.(float64); ok { // JWT numbers decode as float64
		return int(id)
	}
	return 0
}
