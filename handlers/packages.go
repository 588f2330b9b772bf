package handlers

import (
	"net/http"

	"luxego/models"

	"github.com/gin-gonic/gin"
)

// GetPackages handles GET /api/packages, serving the static catalog.
func GetPackages(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"results": len(models.PackageCatalog),
		"data":    gin.H{"packages": models.PackageCatalog},
	})
}
