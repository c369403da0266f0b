package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Joecr98/sistema-precios-menus/internal/apierror"
	"github.com/Joecr98/sistema-precios-menus/internal/dto"
	"github.com/Joecr98/sistema-precios-menus/internal/service"

	"github.com/gin-gonic/gin"
)

type AsignacionesHandler struct{ svc service.AsignacionService }

func NewAsignacionesHandler(svc service.AsignacionService) *AsignacionesHandler {
	return &AsignacionesHandler{svc: svc}
}

// Guardar handles POST /v1/asignaciones — a transactional full replace of
// the client's weekly configuration.
func (h *AsignacionesHandler) Guardar(c *gin.Context) {
	var req dto.GuardarAsignacionesRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Guardar(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrDatosInvalidos) {
			c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New("Error al guardar asignaciones"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListarPorCliente handles GET /v1/asignaciones?cliente_id=N.
func (h *AsignacionesHandler) ListarPorCliente(c *gin.Context) {
	clienteID, err := strconv.ParseUint(c.Query("cliente_id"), 10, 64)
	if err != nil || clienteID == 0 {
		c.JSON(http.StatusBadRequest, apierror.New("cliente_id inválido"))
		return
	}
	resp, err := h.svc.ListarPorCliente(c.Request.Context(), uint(clienteID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar asignaciones"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// EliminarUna handles DELETE /v1/asignaciones?cliente_id=N&menu_id=M&dia_semana=Lunes.
func (h *AsignacionesHandler) EliminarUna(c *gin.Context) {
	clienteID, err1 := strconv.ParseUint(c.Query("cliente_id"), 10, 64)
	menuID, err2 := strconv.ParseUint(c.Query("menu_id"), 10, 64)
	dia := c.Query("dia_semana")
	if err1 != nil || err2 != nil || clienteID == 0 || menuID == 0 || dia == "" {
		c.JSON(http.StatusBadRequest, apierror.New("cliente_id, menu_id y dia_semana son obligatorios"))
		return
	}
	if err := h.svc.EliminarUna(c.Request.Context(), uint(clienteID), uint(menuID), dia); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}
