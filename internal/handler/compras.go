package handler

import (
	"net/http"

	"mykonos/internal/middleware"
	"mykonos/internal/service"

	"github.com/gin-gonic/gin"
)

type ComprasHandler struct {
	svc service.CompraService
}

func NewComprasHandler(svc service.CompraService) *ComprasHandler {
	return &ComprasHandler{svc: svc}
}

func (h *ComprasHandler) MisCompras(c *gin.Context) {
	resp, err := h.svc.MisCompras(c.Request.Context(), c.GetInt(middleware.WebUserIDKey))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ComprasHandler) DetalleCompra(c *gin.Context) {
	saleID, ok := intParam(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.DetalleCompra(c.Request.Context(), c.GetInt(middleware.WebUserIDKey), saleID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
