package handler

import (
	"net/http"

	"mykonos/internal/service"

	"github.com/gin-gonic/gin"
)

type GruposHandler struct {
	svc service.GrupoService
}

func NewGruposHandler(svc service.GrupoService) *GruposHandler {
	return &GruposHandler{svc: svc}
}

func (h *GruposHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *GruposHandler) Raices(c *gin.Context) {
	resp, err := h.svc.Raices(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *GruposHandler) Jerarquia(c *gin.Context) {
	resp, err := h.svc.Jerarquia(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *GruposHandler) ObtenerPorID(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.ObtenerPorID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
