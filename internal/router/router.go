package router

import (
	"time"

	"drivethru/internal/auth"
	"drivethru/internal/catalog"
	"drivethru/internal/chat"
	"drivethru/internal/middleware"
	"drivethru/internal/order"
	"drivethru/internal/session"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Handlers bundles everything the HTTP surface needs. Any nil handler
// simply leaves its routes unregistered, so the API can run without
// the assistant when no chat backend is configured.
type Handlers struct {
	Auth     *auth.Handler
	Catalog  *catalog.Handler
	Order    *order.Handler
	Chat     *chat.Handler
	Sessions *session.Manager
}

func New(h Handlers) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Session-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// ───────────────────────── HEALTH ─────────────────────────
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── AUTH ─────────────────────────
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", h.Auth.Register)
		authGroup.POST("/login", h.Auth.Login)
	}

	// ───────────────────────── MENU ─────────────────────────
	r.GET("/menu", h.Catalog.ListMenu)
	r.GET("/menu/:name", h.Catalog.GetItem)

	menuAdmin := r.Group("/menu")
	menuAdmin.Use(
		middleware.AuthMiddleware(),
		middleware.RequireRole(auth.RoleManager),
	)
	{
		menuAdmin.PUT("", h.Catalog.SaveItem)
		menuAdmin.DELETE("/:name", h.Catalog.DeleteItem)
	}

	// ───────────────────────── SESSIONS ─────────────────────────
	sessions := r.Group("/session")
	{
		sessions.POST("", func(c *gin.Context) {
			s := h.Sessions.Start()
			c.JSON(201, gin.H{"session_id": s.ID})
		})
		sessions.DELETE("/:id", func(c *gin.Context) {
			if err := h.Sessions.End(c.Param("id")); err != nil {
				c.JSON(404, gin.H{"error": "session not found"})
				return
			}
			c.JSON(200, gin.H{"message": "session closed"})
		})
	}

	// ───────────────────────── ORDER ─────────────────────────
	// The register is staff-operated: any staff token works, but the
	// session header picks which customer's order is being edited.
	orders := r.Group("/order")
	orders.Use(
		middleware.AuthMiddleware(),
		middleware.RequireRole(auth.RoleCashier, auth.RoleManager),
		middleware.SessionMiddleware(h.Sessions),
	)
	{
		orders.GET("", h.Order.Get)
		orders.POST("/items", h.Order.AddItem)
		orders.PATCH("/items/:index", h.Order.UpdateLine)
		orders.DELETE("/items/:index", h.Order.DeleteLine)
		orders.POST("/transcript", h.Order.ApplyTranscript)
		orders.POST("/voice", h.Order.VoiceOrder)
		orders.POST("/checkout", h.Order.Checkout)
		orders.POST("/back", h.Order.BackToOrdering)
		orders.POST("/payment", h.Order.SetPayment)
		orders.POST("/complete", h.Order.Complete)
		orders.GET("/receipt", h.Order.GetReceipt)
		orders.POST("/reset", h.Order.Reset)
	}

	// ───────────────────────── ASSISTANT ─────────────────────────
	if h.Chat != nil {
		r.POST("/assistant", h.Chat.Ask)
	}

	return r
}
