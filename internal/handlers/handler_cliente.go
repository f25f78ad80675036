package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gestorobras/gestor_diarias_app/internal/apperrors"
	"github.com/gestorobras/gestor_diarias_app/internal/core/domain"
	portsrepo "github.com/gestorobras/gestor_diarias_app/internal/core/ports/repositories"
	portssvc "github.com/gestorobras/gestor_diarias_app/internal/core/ports/services"
	"github.com/gestorobras/gestor_diarias_app/internal/dto"
	"github.com/gestorobras/gestor_diarias_app/internal/middleware"

	"github.com/gin-gonic/gin"
)

// clienteHandler handles HTTP requests for client job-sites.
type clienteHandler struct {
	clienteService portssvc.ClienteSvcFacade
}

func newClienteHandler(cs portssvc.ClienteSvcFacade) *clienteHandler {
	return &clienteHandler{clienteService: cs}
}

// registerClienteRoutes registers all cliente routes.
func registerClienteRoutes(rg *gin.RouterGroup, clienteService portssvc.ClienteSvcFacade) {
	h := newClienteHandler(clienteService)

	clientes := rg.Group("/clientes")
	{
		clientes.POST("", h.createCliente)
		clientes.GET("", h.listClientes)
		clientes.GET("/:id", h.getCliente)
		clientes.PUT("/:id", h.updateCliente)
		clientes.DELETE("/:id", h.deleteCliente)
	}
}

// createCliente godoc
// @Summary Create a new cliente
// @Tags clientes
// @Accept json
// @Produce json
// @Param cliente body dto.CreateClienteRequest true "Cliente details"
// @Success 201 {object} domain.Cliente
// @Failure 400 {object} map[string]string "Invalid input, duplicate cnpj or unknown empresa"
// @Security BearerAuth
// @Router /clientes [post]
func (h *clienteHandler) createCliente(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateClienteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for create cliente", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"message": bindErrorMessage(err)})
		return
	}

	cliente, err := h.clienteService.CreateCliente(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrDuplicate):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Já existe um cliente com este CNPJ."})
		case errors.Is(err, apperrors.ErrInvalidReference):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Empresa informada não existe."})
		default:
			logger.Error("Failed to create cliente", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Erro ao criar cliente."})
		}
		return
	}

	c.JSON(http.StatusCreated, cliente)
}

// listClientes godoc
// @Summary List clientes
// @Tags clientes
// @Produce json
// @Param empresaId query int false "Filter by empresa"
// @Param status query string false "Filter by status" Enums(Ativo, Inativo, Concluído)
// @Success 200 {array} domain.ClienteWithEmpresa
// @Security BearerAuth
// @Router /clientes [get]
func (h *clienteHandler) listClientes(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListClientesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": bindErrorMessage(err)})
		return
	}

	filter := portsrepo.ClienteFilter{EmpresaID: params.EmpresaID}
	if params.Status != "" {
		s := domain.ClienteStatus(params.Status)
		filter.Status = &s
	}

	clientes, err := h.clienteService.ListClientes(c.Request.Context(), filter)
	if err != nil {
		logger.Error("Failed to list clientes", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Erro ao buscar clientes."})
		return
	}
	c.JSON(http.StatusOK, clientes)
}

// getCliente godoc
// @Summary Get a cliente by ID
// @Tags clientes
// @Produce json
// @Param id path int true "Cliente ID"
// @Success 200 {object} domain.ClienteWithEmpresa
// @Failure 404 {object} map[string]string "Cliente not found"
// @Security BearerAuth
// @Router /clientes/{id} [get]
func (h *clienteHandler) getCliente(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	cliente, err := h.clienteService.GetClienteByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Cliente não encontrado."})
			return
		}
		logger.Error("Failed to get cliente", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Erro ao buscar cliente."})
		return
	}
	c.JSON(http.StatusOK, cliente)
}

// updateCliente godoc
// @Summary Update a cliente
// @Tags clientes
// @Accept json
// @Produce json
// @Param id path int true "Cliente ID"
// @Param cliente body dto.UpdateClienteRequest true "Fields to update"
// @Success 200 {object} domain.Cliente
// @Failure 400 {object} map[string]string "Invalid input, duplicate cnpj or unknown empresa"
// @Failure 404 {object} map[string]string "Cliente not found"
// @Security BearerAuth
// @Router /clientes/{id} [put]
func (h *clienteHandler) updateCliente(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req dto.UpdateClienteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": bindErrorMessage(err)})
		return
	}

	cliente, err := h.clienteService.UpdateCliente(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Cliente não encontrado."})
		case errors.Is(err, apperrors.ErrDuplicate):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Já existe um cliente com este CNPJ."})
		case errors.Is(err, apperrors.ErrInvalidReference):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Empresa informada não existe."})
		default:
			logger.Error("Failed to update cliente", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Erro ao atualizar cliente."})
		}
		return
	}
	c.JSON(http.StatusOK, cliente)
}

// deleteCliente godoc
// @Summary Deactivate a cliente (soft delete)
// @Tags clientes
// @Produce json
// @Param id path int true "Cliente ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string "Cliente not found"
// @Security BearerAuth
// @Router /clientes/{id} [delete]
func (h *clienteHandler) deleteCliente(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.clienteService.DeactivateCliente(c.Request.Context(), id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Cliente não encontrado."})
			return
		}
		logger.Error("Failed to deactivate cliente", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Erro ao desativar cliente."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cliente desativado com sucesso."})
}
