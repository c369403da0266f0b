package handler

import (
	"net/http"
	"strconv"

	"github.com/Joecr98/sistema-precios-menus/internal/apierror"
	"github.com/Joecr98/sistema-precios-menus/internal/dto"
	"github.com/Joecr98/sistema-precios-menus/internal/service"

	"github.com/gin-gonic/gin"
)

type CatalogoHandler struct{ svc service.CatalogoService }

func NewCatalogoHandler(svc service.CatalogoService) *CatalogoHandler {
	return &CatalogoHandler{svc: svc}
}

func (h *CatalogoHandler) CrearCategoria(c *gin.Context) {
	var req dto.CrearCategoriaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CrearCategoria(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *CatalogoHandler) ListarCategorias(c *gin.Context) {
	resp, err := h.svc.ListarCategorias(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar categorías"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CatalogoHandler) CrearSubcategoria(c *gin.Context) {
	var req dto.CrearSubcategoriaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CrearSubcategoria(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListarSubcategorias accepts an optional ?categoria_id=N filter.
func (h *CatalogoHandler) ListarSubcategorias(c *gin.Context) {
	var categoriaID *uint
	if raw := c.Query("categoria_id"); raw != "" {
		n, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("categoria_id inválido"))
			return
		}
		id := uint(n)
		categoriaID = &id
	}
	resp, err := h.svc.ListarSubcategorias(c.Request.Context(), categoriaID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar subcategorías"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CatalogoHandler) CrearPresentacion(c *gin.Context) {
	var req dto.CrearPresentacionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CrearPresentacion(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *CatalogoHandler) ListarPresentaciones(c *gin.Context) {
	resp, err := h.svc.ListarPresentaciones(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar presentaciones"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SelectOptions handles GET /v1/select-options: the three dropdown lists
// for the product form in one round trip.
func (h *CatalogoHandler) SelectOptions(c *gin.Context) {
	resp, err := h.svc.SelectOptions(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al obtener opciones"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
