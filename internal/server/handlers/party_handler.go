package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/shopledger/shopledger/internal/domain/models"
	"github.com/shopledger/shopledger/internal/service/directory"
)

// PartyHandler exposes the customer and supplier directory.
type PartyHandler struct {
	svc    *directory.Service
	logger *zap.Logger
}

// NewPartyHandler constructs the HTTP handler adapter.
func NewPartyHandler(svc *directory.Service, logger *zap.Logger) *PartyHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PartyHandler{svc: svc, logger: logger}
}

// List handles GET /api/customers-suppliers?type=customer|supplier.
func (h *PartyHandler) List(c *gin.Context) {
	parties, err := h.svc.List(c.Request.Context(), models.PartyType(c.Query("type")))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, parties)
}

// Create handles POST /api/customers-suppliers.
func (h *PartyHandler) Create(c *gin.Context) {
	var req models.PartyCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid party payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	party, err := h.svc.Add(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, party)
}

// Delete handles DELETE /api/customers-suppliers/:name/:type.
func (h *PartyHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("name"), models.PartyType(c.Param("type"))); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Customer/Supplier deleted successfully"})
}
