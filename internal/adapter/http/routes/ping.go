package routes

import (
	"github.com/gin-gonic/gin"

	"rutvans_api/internal/adapter/http/handlers"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", handlers.Ping)
}
