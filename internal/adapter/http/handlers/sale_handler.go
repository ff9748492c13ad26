package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"rutvans_api/internal/adapter/http/dto/request"
	"rutvans_api/internal/adapter/http/dto/response"
	"rutvans_api/internal/usecase"
	"rutvans_api/pkg"
)

var (
	errInvalidSalePayload = pkg.NewDomainErrorSimple("INVALID_SALE_INPUT", "Datos de venta inválidos", http.StatusBadRequest)
)

// SaleHandler handles CRUD requests for sales (ventas).
type SaleHandler struct {
	usecase usecase.ISaleUseCase
	logger  *zap.Logger
}

func NewSaleHandler(uc usecase.ISaleUseCase, logger *zap.Logger) *SaleHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SaleHandler{usecase: uc, logger: logger}
}

// List godoc
// @Summary      Latest sales (max 100)
// @Tags         ventas
// @Produce      json
// @Success      200  {array}   response.SaleResponse
// @Failure      500  {object}  pkg.HTTPError
// @Router       /api/ventas [get]
func (h *SaleHandler) List(c *gin.Context) {
	sales, err := h.usecase.List(c.Request.Context())
	if err != nil {
		h.fail(c, err, "Error al obtener ventas")
		return
	}
	c.JSON(http.StatusOK, response.FromSales(sales))
}

// Get godoc
// @Summary      Sale by id
// @Tags         ventas
// @Produce      json
// @Param        id   path      string  true  "Sale id"
// @Success      200  {object}  response.SaleResponse
// @Failure      404  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Router       /api/ventas/{id} [get]
func (h *SaleHandler) Get(c *gin.Context) {
	sale, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err, "Error al obtener venta")
		return
	}
	c.JSON(http.StatusOK, response.FromSale(sale))
}

// Create godoc
// @Summary      Record a sale
// @Tags         ventas
// @Accept       json
// @Produce      json
// @Param        payload  body      request.SaleRequest  true  "Sale"
// @Success      201  {object}  response.SaleResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Router       /api/ventas [post]
func (h *SaleHandler) Create(c *gin.Context) {
	var payload request.SaleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSalePayload.HTTPStatus, errInvalidSalePayload.ToHTTPError())
		return
	}

	sale, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		h.fail(c, err, "Error al crear venta")
		return
	}
	c.JSON(http.StatusCreated, response.FromSale(sale))
}

// Update godoc
// @Summary      Update the fields present in the body
// @Tags         ventas
// @Accept       json
// @Produce      json
// @Param        id       path      string               true  "Sale id"
// @Param        payload  body      request.SaleRequest  true  "Fields to change"
// @Success      200  {object}  response.SaleResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Router       /api/ventas/{id} [put]
func (h *SaleHandler) Update(c *gin.Context) {
	var payload request.SaleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSalePayload.HTTPStatus, errInvalidSalePayload.ToHTTPError())
		return
	}

	sale, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToPatch())
	if err != nil {
		h.fail(c, err, "Error al actualizar venta")
		return
	}
	c.JSON(http.StatusOK, response.FromSale(sale))
}

// Delete godoc
// @Summary      Delete a sale
// @Tags         ventas
// @Produce      json
// @Param        id   path      string  true  "Sale id"
// @Success      200  {object}  response.DeletedResponse
// @Failure      500  {object}  pkg.HTTPError
// @Router       /api/ventas/{id} [delete]
func (h *SaleHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err, "Error al eliminar venta")
		return
	}
	c.JSON(http.StatusOK, response.DeletedResponse{Mensaje: "Venta eliminada"})
}

func (h *SaleHandler) fail(c *gin.Context, err error, internalMessage string) {
	appErr := mapSaleError(err, internalMessage)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		h.logger.Error("[ventas][handler] request failed", zap.String("path", c.FullPath()), zap.Error(err))
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapSaleError(err error, internalMessage string) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSaleID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Id de venta requerido", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSaleNotFound):
		return pkg.NewDomainErrorSimple("SALE_NOT_FOUND", "No encontrada", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", internalMessage, err, http.StatusInternalServerError)
	}
}
