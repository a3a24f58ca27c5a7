package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/shopledger/shopledger/internal/server/handlers"
)

const requestIDHeader = "X-Request-ID"

// New wires the Gin engine with required routes and middlewares.
func New(ledgerHandler *handlers.LedgerHandler, stockHandler *handlers.StockHandler, partyHandler *handlers.PartyHandler, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestIDMiddleware())
	r.Use(zapLoggerMiddleware(logger))

	api := r.Group("/api")
	{
		api.GET("/transactions", ledgerHandler.List)
		api.POST("/transactions", ledgerHandler.Create)
		api.DELETE("/transactions/:date/:name", ledgerHandler.Delete)
		api.GET("/balance", ledgerHandler.Balance)

		api.GET("/stock", stockHandler.List)
		api.POST("/stock", stockHandler.Create)
		api.DELETE("/stock/:item_number", stockHandler.Delete)

		api.GET("/item-types", stockHandler.ListTypes)
		api.POST("/item-types", stockHandler.CreateType)
		api.DELETE("/item-types/:name", stockHandler.DeleteType)

		api.GET("/customers-suppliers", partyHandler.List)
		api.POST("/customers-suppliers", partyHandler.Create)
		api.DELETE("/customers-suppliers/:name/:type", partyHandler.Delete)
	}

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	if logger != nil {
		logger.Info("router initialized")
	}

	return r
}

// requestIDMiddleware tags every request with an id, honoring one supplied
// by the caller.
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Writer.Header().Set(requestIDHeader, id)
		c.Next()
	}
}

func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request completed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("request_id", c.GetString("request_id")),
			zap.String("client_ip", c.ClientIP()))
	}
}
