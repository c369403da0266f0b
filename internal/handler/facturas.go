package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Joecr98/sistema-precios-menus/internal/apierror"
	"github.com/Joecr98/sistema-precios-menus/internal/dto"
	"github.com/Joecr98/sistema-precios-menus/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type FacturasHandler struct{ svc service.FacturacionService }

func NewFacturasHandler(svc service.FacturacionService) *FacturasHandler {
	return &FacturasHandler{svc: svc}
}

// Generar handles POST /v1/facturas. Not idempotent: every accepted call
// creates a new factura.
func (h *FacturasHandler) Generar(c *gin.Context) {
	var req dto.GenerarFacturaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON inválido: "+err.Error()))
		return
	}

	resp, err := h.svc.GenerarFactura(c.Request.Context(), req)
	switch {
	case err == nil:
		c.JSON(http.StatusCreated, resp)
	case errors.Is(err, service.ErrDatosInvalidos):
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
	case errors.Is(err, service.ErrSinMenusConfigurados):
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
	default:
		log.Error().Err(err).Msg("facturas: error generando factura")
		c.JSON(http.StatusInternalServerError, apierror.New("Error al generar la factura"))
	}
}

func (h *FacturasHandler) ObtenerPorID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.ObtenerFactura(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Factura no encontrada"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListarPorCliente handles GET /v1/facturas?cliente_id=N.
func (h *FacturasHandler) ListarPorCliente(c *gin.Context) {
	clienteID, err := strconv.ParseUint(c.Query("cliente_id"), 10, 64)
	if err != nil || clienteID == 0 {
		c.JSON(http.StatusBadRequest, apierror.New("cliente_id inválido"))
		return
	}
	resp, err := h.svc.ListarPorCliente(c.Request.Context(), uint(clienteID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar facturas"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DescargarPDF handles GET /v1/facturas/:id/pdf. The PDF renders async
// after generation, so a recently created factura may not have one yet.
func (h *FacturasHandler) DescargarPDF(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	path, err := h.svc.ObtenerPDFPath(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.FileAttachment(path, "factura_"+strconv.FormatUint(uint64(id), 10)+".pdf")
}
