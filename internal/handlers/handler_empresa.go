package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gestorobras/gestor_diarias_app/internal/apperrors"
	"github.com/gestorobras/gestor_diarias_app/internal/core/domain"
	portssvc "github.com/gestorobras/gestor_diarias_app/internal/core/ports/services"
	"github.com/gestorobras/gestor_diarias_app/internal/dto"
	"github.com/gestorobras/gestor_diarias_app/internal/middleware"

	"github.com/gin-gonic/gin"
)

// empresaHandler handles HTTP requests for contracting companies.
type empresaHandler struct {
	empresaService portssvc.EmpresaSvcFacade
}

func newEmpresaHandler(es portssvc.EmpresaSvcFacade) *empresaHandler {
	return &empresaHandler{empresaService: es}
}

// RegisterEmpresaRoutes registers all empresa routes.
func RegisterEmpresaRoutes(rg *gin.RouterGroup, empresaService portssvc.EmpresaSvcFacade) {
	h := newEmpresaHandler(empresaService)

	empresas := rg.Group("/empresas")
	{
		empresas.POST("", h.createEmpresa)
		empresas.GET("", h.listEmpresas)
		empresas.GET("/:id", h.getEmpresa)
		empresas.PUT("/:id", h.updateEmpresa)
		empresas.DELETE("/:id", h.deleteEmpresa)
		empresas.PUT("/:id/restore", h.restoreEmpresa)
		empresas.DELETE("/:id/force", h.forceDeleteEmpresa)
	}
}

// createEmpresa godoc
// @Summary Create a new empresa
// @Tags empresas
// @Accept json
// @Produce json
// @Param empresa body dto.CreateEmpresaRequest true "Empresa details"
// @Success 201 {object} domain.Empresa
// @Failure 400 {object} map[string]string "Invalid input or duplicate cnpj"
// @Security BearerAuth
// @Router /empresas [post]
func (h *empresaHandler) createEmpresa(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateEmpresaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for create empresa", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"message": bindErrorMessage(err)})
		return
	}

	empresa, err := h.empresaService.CreateEmpresa(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Empresa com este CNPJ já existe."})
			return
		}
		logger.Error("Failed to create empresa", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Erro ao criar empresa."})
		return
	}

	c.JSON(http.StatusCreated, empresa)
}

// listEmpresas godoc
// @Summary List empresas
// @Tags empresas
// @Produce json
// @Param status query string false "Filter by status" Enums(Ativo, Inativo)
// @Success 200 {array} domain.Empresa
// @Security BearerAuth
// @Router /empresas [get]
func (h *empresaHandler) listEmpresas(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListEmpresasParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": bindErrorMessage(err)})
		return
	}

	var status *domain.EmpresaStatus
	if params.Status != "" {
		s := domain.EmpresaStatus(params.Status)
		status = &s
	}

	empresas, err := h.empresaService.ListEmpresas(c.Request.Context(), status)
	if err != nil {
		logger.Error("Failed to list empresas", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Erro ao buscar empresas."})
		return
	}
	c.JSON(http.StatusOK, empresas)
}

// getEmpresa godoc
// @Summary Get an empresa by ID
// @Tags empresas
// @Produce json
// @Param id path int true "Empresa ID"
// @Success 200 {object} domain.Empresa
// @Failure 404 {object} map[string]string "Empresa not found"
// @Security BearerAuth
// @Router /empresas/{id} [get]
func (h *empresaHandler) getEmpresa(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	empresa, err := h.empresaService.GetEmpresaByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Empresa não encontrada."})
			return
		}
		logger.Error("Failed to get empresa", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Erro ao buscar empresa."})
		return
	}
	c.JSON(http.StatusOK, empresa)
}

// updateEmpresa godoc
// @Summary Update an empresa
// @Tags empresas
// @Accept json
// @Produce json
// @Param id path int true "Empresa ID"
// @Param empresa body dto.UpdateEmpresaRequest true "Fields to update"
// @Success 200 {object} domain.Empresa
// @Failure 400 {object} map[string]string "Invalid input or duplicate cnpj"
// @Failure 404 {object} map[string]string "Empresa not found"
// @Security BearerAuth
// @Router /empresas/{id} [put]
func (h *empresaHandler) updateEmpresa(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req dto.UpdateEmpresaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": bindErrorMessage(err)})
		return
	}

	empresa, err := h.empresaService.UpdateEmpresa(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Empresa não encontrada."})
		case errors.Is(err, apperrors.ErrDuplicate):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Empresa com este CNPJ já existe."})
		default:
			logger.Error("Failed to update empresa", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Erro ao atualizar empresa."})
		}
		return
	}
	c.JSON(http.StatusOK, empresa)
}

// deleteEmpresa godoc
// @Summary Deactivate an empresa (soft delete)
// @Tags empresas
// @Produce json
// @Param id path int true "Empresa ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string "Empresa not found"
// @Security BearerAuth
// @Router /empresas/{id} [delete]
func (h *empresaHandler) deleteEmpresa(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.empresaService.DeactivateEmpresa(c.Request.Context(), id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Empresa não encontrada."})
			return
		}
		logger.Error("Failed to deactivate empresa", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Erro ao desativar empresa."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Empresa desativada com sucesso."})
}

// restoreEmpresa godoc
// @Summary Restore an inactive empresa
// @Tags empresas
// @Produce json
// @Param id path int true "Empresa ID"
// @Success 200 {object} domain.Empresa
// @Failure 404 {object} map[string]string "Empresa not found"
// @Security BearerAuth
// @Router /empresas/{id}/restore [put]
func (h *empresaHandler) restoreEmpresa(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	empresa, err := h.empresaService.RestoreEmpresa(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Empresa não encontrada."})
			return
		}
		logger.Error("Failed to restore empresa", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Erro ao restaurar empresa."})
		return
	}
	c.JSON(http.StatusOK, empresa)
}

// forceDeleteEmpresa godoc
// @Summary Permanently delete an empresa with no dependents
// @Tags empresas
// @Produce json
// @Param id path int true "Empresa ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string "Empresa has dependents"
// @Failure 404 {object} map[string]string "Empresa not found"
// @Security BearerAuth
// @Router /empresas/{id}/force [delete]
func (h *empresaHandler) forceDeleteEmpresa(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.empresaService.ForceDeleteEmpresa(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Empresa não encontrada."})
		case errors.Is(err, apperrors.ErrDependencyConflict):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Empresa possui clientes ou funcionários vinculados e não pode ser excluída."})
		default:
			logger.Error("Failed to force delete empresa", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Erro ao excluir empresa."})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Empresa excluída permanentemente."})
}
