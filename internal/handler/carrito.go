package handler

import (
	"net/http"

	"mykonos/internal/dto"
	"mykonos/internal/middleware"
	"mykonos/internal/service"

	"github.com/gin-gonic/gin"
)

type CarritoHandler struct {
	svc service.CarritoService
}

func NewCarritoHandler(svc service.CarritoService) *CarritoHandler {
	return &CarritoHandler{svc: svc}
}

func (h *CarritoHandler) Obtener(c *gin.Context) {
	resp, err := h.svc.ObtenerCarrito(c.Request.Context(), c.GetInt(middleware.WebUserIDKey))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CarritoHandler) AgregarItem(c *gin.Context) {
	var req dto.AgregarItemRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.AgregarItem(c.Request.Context(), c.GetInt(middleware.WebUserIDKey), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *CarritoHandler) ActualizarItem(c *gin.Context) {
	itemID, ok := intParam(c, "itemId")
	if !ok {
		return
	}
	var req dto.ActualizarItemRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.ActualizarItem(c.Request.Context(), c.GetInt(middleware.WebUserIDKey), itemID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CarritoHandler) EliminarItem(c *gin.Context) {
	itemID, ok := intParam(c, "itemId")
	if !ok {
		return
	}
	resp, err := h.svc.EliminarItem(c.Request.Context(), c.GetInt(middleware.WebUserIDKey), itemID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CarritoHandler) Vaciar(c *gin.Context) {
	if err := h.svc.Vaciar(c.Request.Context(), c.GetInt(middleware.WebUserIDKey)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
