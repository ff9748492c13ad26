package routes

import (
	"github.com/gin-gonic/gin"

	"rutvans_api/internal/adapter/http/handlers"
)

const (
	PathFinance = "/finanzas"
)

func addFinanceRoutes(rg *gin.RouterGroup, h *handlers.ReportHandler) {
	finance := rg.Group(PathFinance)
	{
		finance.GET("/resumen", h.Summary)
		finance.GET("/ventas-detalle", h.DailyDetail)
		finance.GET("/ventas-periodo", h.PeriodTotals)
		finance.GET("/top-rutas", h.TopRoutes)
		finance.GET("/balance-historico", h.HistoricalBalance)
		finance.GET("/egresos-categorias", h.ExpenseCategories)
		finance.GET("/export", h.Export)
	}
}
