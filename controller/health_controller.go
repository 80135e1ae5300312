package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HealthController struct{}

func NewHealthController() *HealthController {
	return &HealthController{}
}

// RegisterRoutes sets up the health check endpoint under the /api group
func (ctrl *HealthController) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/health", ctrl.healthCheck)
	router.HEAD("/health", ctrl.healthCheck)
}

// RegisterRootRoutes sets up the service landing endpoint.
func (ctrl *HealthController) RegisterRootRoutes(router *gin.Engine) {
	router.GET("/", ctrl.root)
}

// healthCheck returns the current status of the server
// @Summary      System Health Check
// @Description  Confirm that the server is up and running.
// @Tags         System
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
// @Router       /health [head]
func (ctrl *HealthController) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// root describes the service and its endpoint groups.
func (ctrl *HealthController) root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Finance Dashboard API",
		"version": "1.0.0",
		"endpoints": gin.H{
			"trading": "/api/trading",
			"chat":    "/api/chat",
		},
	})
}
