package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/manas360/booking-service/internal/catalog"
)

// CatalogHandler serves the static reference catalogs.
type CatalogHandler struct{}

// NewCatalogHandler creates a catalog handler.
func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

// Themes godoc
// GET /catalog/themes
func (h *CatalogHandler) Themes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"themes": catalog.GroupThemes})
}

// Environments godoc
// GET /catalog/environments
func (h *CatalogHandler) Environments(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"environments": catalog.VREnvironments})
}

// Modules godoc
// GET /catalog/modules
func (h *CatalogHandler) Modules(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"modules": catalog.CBTModules})
}
