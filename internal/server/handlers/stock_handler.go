package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/shopledger/shopledger/internal/domain/models"
	"github.com/shopledger/shopledger/internal/service/inventory"
)

// StockHandler exposes stock items and the item-type vocabulary.
type StockHandler struct {
	svc    *inventory.Service
	logger *zap.Logger
}

// NewStockHandler constructs the HTTP handler adapter.
func NewStockHandler(svc *inventory.Service, logger *zap.Logger) *StockHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StockHandler{svc: svc, logger: logger}
}

// List handles GET /api/stock?status=current|sold|all. The status filter
// defaults to current.
func (h *StockHandler) List(c *gin.Context) {
	items, err := h.svc.ListItems(c.Request.Context(), c.Query("status"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// Create handles POST /api/stock.
func (h *StockHandler) Create(c *gin.Context) {
	var req models.StockItemCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid stock payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	item, err := h.svc.AddItem(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// Delete handles DELETE /api/stock/:item_number.
func (h *StockHandler) Delete(c *gin.Context) {
	if err := h.svc.DeleteItem(c.Request.Context(), c.Param("item_number")); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Stock item deleted successfully"})
}

// ListTypes handles GET /api/item-types.
func (h *StockHandler) ListTypes(c *gin.Context) {
	types, err := h.svc.ListTypes(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, types)
}

// CreateType handles POST /api/item-types.
func (h *StockHandler) CreateType(c *gin.Context) {
	var req models.ItemTypeCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid item type payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	itemType, err := h.svc.AddType(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, itemType)
}

// DeleteType handles DELETE /api/item-types/:name.
func (h *StockHandler) DeleteType(c *gin.Context) {
	if err := h.svc.DeleteType(c.Request.Context(), c.Param("name")); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item type deleted successfully"})
}
