package handler

import (
	"net/http"

	"mykonos/internal/service"

	"github.com/gin-gonic/gin"
)

// SucursalesHandler serves branch listings and the per-branch stock views of a
// product (physical for admins, web-assigned for the storefront).
type SucursalesHandler struct {
	svc   service.SucursalService
	stock service.StockService
}

func NewSucursalesHandler(svc service.SucursalService, stock service.StockService) *SucursalesHandler {
	return &SucursalesHandler{svc: svc, stock: stock}
}

func (h *SucursalesHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// StockPorSucursal returns the full physical-vs-web breakdown for every branch.
func (h *SucursalesHandler) StockPorSucursal(c *gin.Context) {
	productID, ok := intParam(c, "pid")
	if !ok {
		return
	}
	resp, err := h.stock.StockPorSucursal(c.Request.Context(), productID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// StockWebPorSucursal returns only web-assigned quantities for one branch.
func (h *SucursalesHandler) StockWebPorSucursal(c *gin.Context) {
	productID, ok := intParam(c, "pid")
	if !ok {
		return
	}
	branchID, ok := intParam(c, "bid")
	if !ok {
		return
	}
	resp, err := h.stock.StockWebPorSucursal(c.Request.Context(), productID, branchID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
