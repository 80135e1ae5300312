package controller

import (
	"net/http"

	"github.com/thomas-choi/myFinance-dashboard-fastserver/model"

	"github.com/gin-gonic/gin"
)

// --- Shared Response Helpers ---

func handleSuccess(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, model.Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func handleError(c *gin.Context, status int, message string, err error) {
	c.JSON(status, model.Response{
		Success: false,
		Message: message,
		Error:   err.Error(),
	})
}
