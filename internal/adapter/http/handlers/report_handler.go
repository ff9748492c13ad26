package handlers

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"rutvans_api/internal/adapter/http/dto/request"
	"rutvans_api/internal/adapter/http/dto/response"
	"rutvans_api/internal/adapter/http/export"
	"rutvans_api/internal/domain/reports"
	"rutvans_api/internal/usecase"
	"rutvans_api/pkg"
)

// ReportHandler serves the finance reports under /api/finanzas.
type ReportHandler struct {
	usecase usecase.IReportUseCase
	logger  *zap.Logger
}

func NewReportHandler(uc usecase.IReportUseCase, logger *zap.Logger) *ReportHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportHandler{usecase: uc, logger: logger}
}

// Summary godoc
// @Summary      Whole-ledger financial summary
// @Tags         finanzas
// @Produce      json
// @Success      200  {object}  response.SummaryResponse
// @Failure      500  {object}  pkg.HTTPError
// @Router       /api/finanzas/resumen [get]
func (h *ReportHandler) Summary(c *gin.Context) {
	summary, err := h.usecase.Summary(c.Request.Context())
	if err != nil {
		h.fail(c, err, "Error al obtener resumen financiero")
		return
	}
	c.JSON(http.StatusOK, response.FromSummary(summary))
}

// DailyDetail godoc
// @Summary      Sales of one UTC day
// @Tags         finanzas
// @Produce      json
// @Param        date  query  string  true  "Day (YYYY-MM-DD); alias fecha"
// @Success      200  {array}   response.DetailLineResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Router       /api/finanzas/ventas-detalle [get]
func (h *ReportHandler) DailyDetail(c *gin.Context) {
	q := bindReportQuery(c)
	lines, err := h.usecase.DailyDetail(c.Request.Context(), q.ResolveDate())
	if err != nil {
		h.fail(c, err, "Error al obtener ventas por fecha")
		return
	}
	c.JSON(http.StatusOK, response.FromDetailLines(lines))
}

// PeriodTotals godoc
// @Summary      Total, count and average over a date range
// @Tags         finanzas
// @Produce      json
// @Param        from  query  string  true  "First day (YYYY-MM-DD); alias desde"
// @Param        to    query  string  true  "Last day (YYYY-MM-DD); alias hasta"
// @Success      200  {object}  response.PeriodTotalsResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Router       /api/finanzas/ventas-periodo [get]
func (h *ReportHandler) PeriodTotals(c *gin.Context) {
	q := bindReportQuery(c)
	totals, err := h.usecase.PeriodTotals(c.Request.Context(), q.ResolveFrom(), q.ResolveTo())
	if err != nil {
		h.fail(c, err, "Error al obtener resumen por periodo")
		return
	}
	c.JSON(http.StatusOK, response.FromPeriodTotals(totals))
}

// TopRoutes godoc
// @Summary      Routes ranked by share of income
// @Tags         finanzas
// @Produce      json
// @Param        from  query  string  true  "First day (YYYY-MM-DD); alias desde"
// @Param        to    query  string  true  "Last day (YYYY-MM-DD); alias hasta"
// @Success      200  {array}   response.RouteShareResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Router       /api/finanzas/top-rutas [get]
func (h *ReportHandler) TopRoutes(c *gin.Context) {
	q := bindReportQuery(c)
	routes, err := h.usecase.TopRoutes(c.Request.Context(), q.ResolveFrom(), q.ResolveTo())
	if err != nil {
		h.fail(c, err, "Error al obtener rutas más vendidas")
		return
	}
	c.JSON(http.StatusOK, response.FromRouteShares(routes))
}

// HistoricalBalance godoc
// @Summary      Balance per day or month
// @Tags         finanzas
// @Produce      json
// @Param        from    query  string  true  "First day (YYYY-MM-DD); alias desde"
// @Param        to      query  string  true  "Last day (YYYY-MM-DD); alias hasta"
// @Param        period  query  string  true  "daily or monthly; alias periodo"
// @Success      200  {array}   response.BalancePointResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Router       /api/finanzas/balance-historico [get]
func (h *ReportHandler) HistoricalBalance(c *gin.Context) {
	q := bindReportQuery(c)
	points, err := h.usecase.HistoricalBalance(c.Request.Context(), q.ResolveFrom(), q.ResolveTo(), q.ResolvePeriod())
	if err != nil {
		h.fail(c, err, "Error al obtener balance histórico")
		return
	}
	c.JSON(http.StatusOK, response.FromBalancePoints(points))
}

// ExpenseCategories godoc
// @Summary      Expense categories (not available yet)
// @Tags         finanzas
// @Produce      json
// @Failure      400  {object}  pkg.HTTPError
// @Router       /api/finanzas/egresos-categorias [get]
func (h *ReportHandler) ExpenseCategories(c *gin.Context) {
	err := h.usecase.ExpenseCategories(c.Request.Context())
	if err == nil {
		err = usecase.ErrExpensesNotAvailable
	}
	h.fail(c, err, "Error al obtener egresos")
}

// Export godoc
// @Summary      Finance workbook (xlsx) for a date range
// @Tags         finanzas
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        from    query  string  true  "First day (YYYY-MM-DD); alias desde"
// @Param        to      query  string  true  "Last day (YYYY-MM-DD); alias hasta"
// @Param        period  query  string  true  "daily or monthly; alias periodo"
// @Success      200  {file}    file
// @Failure      400  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Router       /api/finanzas/export [get]
func (h *ReportHandler) Export(c *gin.Context) {
	q := bindReportQuery(c)
	wb, err := h.usecase.FinanceWorkbook(c.Request.Context(), q.ResolveFrom(), q.ResolveTo(), q.ResolvePeriod())
	if err != nil {
		h.fail(c, err, "Error al exportar finanzas")
		return
	}

	var buf bytes.Buffer
	if err := export.WriteFinanceWorkbook(&buf, wb); err != nil {
		h.fail(c, err, "Error al exportar finanzas")
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+export.Filename(wb)+`"`)
	c.Data(http.StatusOK, export.ContentType, buf.Bytes())
}

func (h *ReportHandler) fail(c *gin.Context, err error, internalMessage string) {
	appErr := mapReportError(err, internalMessage)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		h.logger.Error("[finanzas][handler] report failed", zap.String("path", c.FullPath()), zap.Error(err))
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// bindReportQuery never fails: every field is a plain string, and missing
// values are reported by the use case.
func bindReportQuery(c *gin.Context) request.ReportQuery {
	var q request.ReportQuery
	_ = c.ShouldBindQuery(&q)
	return q
}

func mapReportError(err error, internalMessage string) *pkg.AppError {
	switch {
	case errors.Is(err, reports.ErrMissingDate):
		return pkg.NewDomainErrorSimple("MISSING_DATE", "Fecha requerida", http.StatusBadRequest)
	case errors.Is(err, reports.ErrMissingRange):
		return pkg.NewDomainErrorSimple("MISSING_RANGE", "Parámetros desde y hasta requeridos", http.StatusBadRequest)
	case errors.Is(err, reports.ErrMissingPeriod):
		return pkg.NewDomainErrorSimple("MISSING_PERIOD", "Parámetro periodo requerido", http.StatusBadRequest)
	case errors.Is(err, reports.ErrInvalidDate):
		return pkg.NewDomainErrorSimple("INVALID_DATE", "Fecha inválida, use YYYY-MM-DD", http.StatusBadRequest)
	case errors.Is(err, reports.ErrInvalidPeriod):
		return pkg.NewDomainErrorSimple("INVALID_PERIOD", "Periodo inválido, use daily o monthly", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrExpensesNotAvailable):
		return pkg.NewDomainErrorSimple("EXPENSES_NOT_AVAILABLE", "Aún no hay egresos en el sistema", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", internalMessage, err, http.StatusInternalServerError)
	}
}
