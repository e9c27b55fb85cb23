package handlers

import (
	"context"
	"net/http"

	"moveflow/models"
	"moveflow/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ServiceLister is the catalog slice of the upstream backend.
type ServiceLister interface {
	ListServices(ctx context.Context) ([]models.Service, error)
}

// CatalogHandler serves the bookable service list for the first wizard step.
type CatalogHandler struct {
	Catalog ServiceLister
}

func (h *CatalogHandler) ListServicesHandler(c *gin.Context) {
	logger := utils.GetLogger()
	services, err := h.Catalog.ListServices(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list services", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "service catalog is temporarily unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": services})
}
