package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rutvans_api/internal/adapter/http/dto/response"
)

// Ping godoc
// @Summary      Health check
// @Tags         health
// @Produce      json
// @Success      200  {object}  response.MessageResponse
// @Router       /v1/ping [get]
func Ping(c *gin.Context) {
	c.JSON(http.StatusOK, response.MessageResponse{Message: "pong"})
}
