package handler

import (
	"net/http"

	"mykonos/internal/apierror"
	"mykonos/internal/dto"
	"mykonos/internal/service"

	"github.com/gin-gonic/gin"
)

// TiendaHandler serves the public storefront: listings, product detail, slug
// lookup and code resolution.
type TiendaHandler struct {
	catalogo service.CatalogoService
}

func NewTiendaHandler(catalogo service.CatalogoService) *TiendaHandler {
	return &TiendaHandler{catalogo: catalogo}
}

func (h *TiendaHandler) Listar(c *gin.Context) {
	var filter dto.TiendaFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	if err := validate.Struct(filter); err != nil {
		c.JSON(http.StatusUnprocessableEntity, apierror.New("filtros invalidos"))
		return
	}
	resp, err := h.catalogo.ListarTienda(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListarPorGrupo filters the listing by a category name taken from the path.
func (h *TiendaHandler) ListarPorGrupo(c *gin.Context) {
	var filter dto.TiendaFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	filter.Category = c.Param("groupName")
	resp, err := h.catalogo.ListarTienda(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *TiendaHandler) Detalle(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	var filter dto.TiendaFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.catalogo.DetalleProducto(c.Request.Context(), id, filter.SucursalID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *TiendaHandler) PorSlug(c *gin.Context) {
	resp, err := h.catalogo.PorSlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *TiendaHandler) BuscarPorCodigo(c *gin.Context) {
	id, err := h.catalogo.BuscarPorCodigo(c.Request.Context(), c.Param("code"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.CodigoResponse{ProductID: id})
}
