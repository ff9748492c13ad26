package routes

import (
	"github.com/gin-gonic/gin"

	"rutvans_api/internal/adapter/http/handlers"
)

const (
	PathSales = "/ventas"
)

func addSaleRoutes(rg *gin.RouterGroup, h *handlers.SaleHandler) {
	sales := rg.Group(PathSales)
	{
		sales.GET("", h.List)
		sales.GET("/:id", h.Get)
		sales.POST("", h.Create)
		sales.PUT("/:id", h.Update)
		sales.DELETE("/:id", h.Delete)
	}
}
