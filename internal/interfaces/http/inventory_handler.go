package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/gestorsur/bodega-api/internal/application/dto"
	"github.com/gestorsur/bodega-api/internal/application/inventory"
	"github.com/gestorsur/bodega-api/internal/domain"
	"github.com/gestorsur/bodega-api/pkg/logger"
)

// InventoryHandler maneja las peticiones HTTP de entradas, salidas y stock (protegido).
type InventoryHandler struct {
	entryUC *inventory.EntryUseCase
	exitUC  *inventory.ExitUseCase
	stockUC *inventory.StockUseCase
	log     *logger.Logger
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(entryUC *inventory.EntryUseCase, exitUC *inventory.ExitUseCase, stockUC *inventory.StockUseCase, log *logger.Logger) *InventoryHandler {
	return &InventoryHandler{entryUC: entryUC, exitUC: exitUC, stockUC: stockUC, log: log}
}

// CreateEntry godoc
// @Summary      Registrar entrada de inventario
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateEntryRequest  true  "supplier_rut y líneas (product_id, quantity, purchase_price)"
// @Success      201   {object}  dto.EntryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/entries [post]
func (h *InventoryHandler) CreateEntry(c *fiber.Ctx) error {
	var in dto.CreateEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.entryUC.CreateEntry(c.Context(), in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetEntry godoc
// @Summary      Obtener entrada con detalle
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id   path      string  true  "ID de la entrada"
// @Success      200  {object}  dto.EntryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/entries/{id} [get]
func (h *InventoryHandler) GetEntry(c *fiber.Ctx) error {
	resp, err := h.entryUC.GetEntry(c.Context(), c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(resp)
}

// ListEntries godoc
// @Summary      Listar entradas
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "máximo de filas (default 20)"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200  {array}  dto.EntryResponse
// @Router       /api/inventory/entries [get]
func (h *InventoryHandler) ListEntries(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()
	list, err := h.entryUC.ListEntries(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(list)
}

// DeleteEntry godoc
// @Summary      Eliminar entrada (revierte el stock)
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id   path      string  true  "ID de la entrada"
// @Success      200  {object}  dto.DeletedResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/inventory/entries/{id} [delete]
func (h *InventoryHandler) DeleteEntry(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.entryUC.DeleteEntry(c.Context(), id); err != nil {
		// Reversa inconsistente = el ledger divergió del historial; se
		// registra como falla de servidor aunque al cliente le llegue 409
		if errors.Is(err, domain.ErrInconsistentReversal) {
			h.log.Error().Err(err).Str("entry_id", id).Msg("reversa de entrada inconsistente")
		}
		return errorResponse(c, err)
	}
	return c.JSON(dto.DeletedResponse{ID: id, Deleted: true})
}

// CreateExit godoc
// @Summary      Registrar salida de inventario
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateExitRequest  true  "customer_rut y líneas (product_id, quantity)"
// @Success      201   {object}  dto.ExitResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/exits [post]
func (h *InventoryHandler) CreateExit(c *fiber.Ctx) error {
	var in dto.CreateExitRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.exitUC.CreateExit(c.Context(), in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetExit godoc
// @Summary      Obtener salida con detalle
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id   path      string  true  "ID de la salida"
// @Success      200  {object}  dto.ExitResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/exits/{id} [get]
func (h *InventoryHandler) GetExit(c *fiber.Ctx) error {
	resp, err := h.exitUC.GetExit(c.Context(), c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(resp)
}

// ListExits godoc
// @Summary      Listar salidas
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "máximo de filas (default 20)"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200  {array}  dto.ExitResponse
// @Router       /api/inventory/exits [get]
func (h *InventoryHandler) ListExits(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()
	list, err := h.exitUC.ListExits(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(list)
}

// DeleteExit godoc
// @Summary      Eliminar salida (repone el stock)
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id   path      string  true  "ID de la salida"
// @Success      200  {object}  dto.DeletedResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/exits/{id} [delete]
func (h *InventoryHandler) DeleteExit(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.exitUC.DeleteExit(c.Context(), id); err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(dto.DeletedResponse{ID: id, Deleted: true})
}

// GetStock godoc
// @Summary      Stock vigente de un producto
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        productID  path      string  true  "ID del producto"
// @Success      200  {object}  dto.StockItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/stock/{productID} [get]
func (h *InventoryHandler) GetStock(c *fiber.Ctx) error {
	resp, err := h.stockUC.GetStock(c.Context(), c.Params("productID"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(resp)
}

// ListStock godoc
// @Summary      Stock vigente por producto
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.StockItemResponse
// @Router       /api/inventory [get]
func (h *InventoryHandler) ListStock(c *fiber.Ctx) error {
	list, err := h.stockUC.ListStock(c.Context())
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(list)
}
