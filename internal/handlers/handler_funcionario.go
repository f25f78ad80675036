package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gestorobras/gestor_diarias_app/internal/apperrors"
	"github.com/gestorobras/gestor_diarias_app/internal/core/domain"
	portssvc "github.com/gestorobras/gestor_diarias_app/internal/core/ports/services"
	"github.com/gestorobras/gestor_diarias_app/internal/dto"
	"github.com/gestorobras/gestor_diarias_app/internal/middleware"

	"github.com/gin-gonic/gin"
)

// funcionarioHandler handles HTTP requests for workers.
type funcionarioHandler struct {
	funcionarioService portssvc.FuncionarioSvcFacade
}

func newFuncionarioHandler(fs portssvc.FuncionarioSvcFacade) *funcionarioHandler {
	return &funcionarioHandler{funcionarioService: fs}
}

// registerFuncionarioRoutes registers all funcionario routes.
func registerFuncionarioRoutes(rg *gin.RouterGroup, funcionarioService portssvc.FuncionarioSvcFacade) {
	h := newFuncionarioHandler(funcionarioService)

	funcionarios := rg.Group("/funcionarios")
	{
		funcionarios.POST("", h.createFuncionario)
		funcionarios.GET("", h.listFuncionarios)
		funcionarios.GET("/:id", h.getFuncionario)
		funcionarios.PUT("/:id", h.updateFuncionario)
		funcionarios.DELETE("/:id", h.deleteFuncionario)
		funcionarios.PUT("/:id/converter", h.convertFuncionario)
	}
}

// duplicateFuncionarioMessage tells a cpf conflict apart from an email one.
// The service wraps the sentinel with the offending field name.
func duplicateFuncionarioMessage(err error) string {
	if strings.Contains(err.Error(), "email") {
		return "Já existe um funcionário com este email."
	}
	return "Já existe um funcionário com este CPF."
}

// createFuncionario godoc
// @Summary Create a new funcionario
// @Tags funcionarios
// @Accept json
// @Produce json
// @Param funcionario body dto.CreateFuncionarioRequest true "Funcionario details"
// @Success 201 {object} domain.Funcionario
// @Failure 400 {object} map[string]string "Invalid input, duplicate cpf/email or unknown empresa"
// @Security BearerAuth
// @Router /funcionarios [post]
func (h *funcionarioHandler) createFuncionario(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateFuncionarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for create funcionario", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"message": bindErrorMessage(err)})
		return
	}

	funcionario, err := h.funcionarioService.CreateFuncionario(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrDuplicate):
			c.JSON(http.StatusBadRequest, gin.H{"message": duplicateFuncionarioMessage(err)})
		case errors.Is(err, apperrors.ErrInvalidReference):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Empresa informada não existe."})
		default:
			logger.Error("Failed to create funcionario", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Erro ao criar funcionário."})
		}
		return
	}

	c.JSON(http.StatusCreated, funcionario)
}

// listFuncionarios godoc
// @Summary List funcionarios
// @Tags funcionarios
// @Produce json
// @Param empresaId query int false "Filter by empresa"
// @Param status query string false "Filter by status" Enums(Ativo, Inativo)
// @Param tipo query string false "Filter by tipo" Enums(Treinamento, Autônomo)
// @Success 200 {array} domain.FuncionarioWithEmpresa
// @Security BearerAuth
// @Router /funcionarios [get]
func (h *funcionarioHandler) listFuncionarios(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListFuncionariosParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": bindErrorMessage(err)})
		return
	}

	filter := domain.FuncionarioFilter{EmpresaID: params.EmpresaID}
	if params.Status != "" {
		s := domain.FuncionarioStatus(params.Status)
		filter.Status = &s
	}
	if params.Tipo != "" {
		t := domain.FuncionarioTipo(params.Tipo)
		filter.Tipo = &t
	}

	funcionarios, err := h.funcionarioService.ListFuncionarios(c.Request.Context(), filter)
	if err != nil {
		logger.Error("Failed to list funcionarios", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Erro ao buscar funcionários."})
		return
	}
	c.JSON(http.StatusOK, funcionarios)
}

// getFuncionario godoc
// @Summary Get a funcionario by ID
// @Tags funcionarios
// @Produce json
// @Param id path int true "Funcionario ID"
// @Success 200 {object} domain.FuncionarioWithEmpresa
// @Failure 404 {object} map[string]string "Funcionario not found"
// @Security BearerAuth
// @Router /funcionarios/{id} [get]
func (h *funcionarioHandler) getFuncionario(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	funcionario, err := h.funcionarioService.GetFuncionarioByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Funcionário não encontrado."})
			return
		}
		logger.Error("Failed to get funcionario", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Erro ao buscar funcionário."})
		return
	}
	c.JSON(http.StatusOK, funcionario)
}

// updateFuncionario godoc
// @Summary Update a funcionario
// @Tags funcionarios
// @Accept json
// @Produce json
// @Param id path int true "Funcionario ID"
// @Param funcionario body dto.UpdateFuncionarioRequest true "Fields to update"
// @Success 200 {object} domain.Funcionario
// @Failure 400 {object} map[string]string "Invalid input, duplicate cpf/email or unknown empresa"
// @Failure 404 {object} map[string]string "Funcionario not found"
// @Security BearerAuth
// @Router /funcionarios/{id} [put]
func (h *funcionarioHandler) updateFuncionario(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req dto.UpdateFuncionarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": bindErrorMessage(err)})
		return
	}

	funcionario, err := h.funcionarioService.UpdateFuncionario(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Funcionário não encontrado."})
		case errors.Is(err, apperrors.ErrDuplicate):
			c.JSON(http.StatusBadRequest, gin.H{"message": duplicateFuncionarioMessage(err)})
		case errors.Is(err, apperrors.ErrInvalidReference):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Empresa informada não existe."})
		default:
			logger.Error("Failed to update funcionario", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Erro ao atualizar funcionário."})
		}
		return
	}
	c.JSON(http.StatusOK, funcionario)
}

// deleteFuncionario godoc
// @Summary Deactivate a funcionario (soft delete)
// @Tags funcionarios
// @Produce json
// @Param id path int true "Funcionario ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string "Funcionario not found"
// @Security BearerAuth
// @Router /funcionarios/{id} [delete]
func (h *funcionarioHandler) deleteFuncionario(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.funcionarioService.DeactivateFuncionario(c.Request.Context(), id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Funcionário não encontrado."})
			return
		}
		logger.Error("Failed to deactivate funcionario", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Erro ao desativar funcionário."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Funcionário desativado com sucesso."})
}

// convertFuncionario godoc
// @Summary Convert a funcionario from Treinamento to Autônomo
// @Tags funcionarios
// @Produce json
// @Param id path int true "Funcionario ID"
// @Success 200 {object} domain.Funcionario
// @Failure 400 {object} map[string]string "Funcionario is not in training"
// @Failure 404 {object} map[string]string "Funcionario not found"
// @Security BearerAuth
// @Router /funcionarios/{id}/converter [put]
func (h *funcionarioHandler) convertFuncionario(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	funcionario, err := h.funcionarioService.ConvertFuncionario(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Funcionário não encontrado."})
		case errors.Is(err, apperrors.ErrInvalidState):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Funcionário não está em treinamento."})
		default:
			logger.Error("Failed to convert funcionario", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Erro ao converter funcionário."})
		}
		return
	}
	c.JSON(http.StatusOK, funcionario)
}
