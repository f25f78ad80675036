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

// diariaHandler handles HTTP requests for daily work entries.
type diariaHandler struct {
	diariaService portssvc.DiariaSvcFacade
}

func newDiariaHandler(ds portssvc.DiariaSvcFacade) *diariaHandler {
	return &diariaHandler{diariaService: ds}
}

// registerDiariaRoutes registers all diaria routes.
func registerDiariaRoutes(rg *gin.RouterGroup, diariaService portssvc.DiariaSvcFacade) {
	h := newDiariaHandler(diariaService)

	diarias := rg.Group("/diarias")
	{
		diarias.POST("", h.createDiaria)
		diarias.GET("", h.listDiarias)
		diarias.GET("/:id", h.getDiaria)
		diarias.PUT("/:id", h.updateDiaria)
		diarias.DELETE("/:id", h.deleteDiaria)
	}
}

// invalidReferenceDiariaMessage tells a funcionario reference failure apart
// from a cliente one. The service wraps the sentinel with the field name.
func invalidReferenceDiariaMessage(err error) string {
	if strings.Contains(err.Error(), "cliente") {
		return "Cliente informado não existe."
	}
	return "Funcionário informado não existe."
}

// diariaFilterFromParams maps the bound query params onto the domain filter.
func diariaFilterFromParams(params dto.ListDiariasParams) domain.DiariaFilter {
	filter := domain.DiariaFilter{
		EmpresaID:     params.EmpresaID,
		ClienteID:     params.ClienteID,
		FuncionarioID: params.FuncionarioID,
		DataInicio:    params.DataInicio,
		DataFim:       params.DataFim,
	}
	if params.Status != "" {
		s := domain.DiariaStatus(params.Status)
		filter.Status = &s
	}
	return filter
}

// createDiaria godoc
// @Summary Create a new diaria
// @Tags diarias
// @Accept json
// @Produce json
// @Param diaria body dto.CreateDiariaRequest true "Diaria details"
// @Success 201 {object} domain.Diaria
// @Failure 400 {object} map[string]string "Invalid input or unknown funcionario/cliente"
// @Security BearerAuth
// @Router /diarias [post]
func (h *diariaHandler) createDiaria(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateDiariaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for create diaria", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"message": bindErrorMessage(err)})
		return
	}

	diaria, err := h.diariaService.CreateDiaria(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Valor da diária deve ser positivo."})
		case errors.Is(err, apperrors.ErrInvalidReference):
			c.JSON(http.StatusBadRequest, gin.H{"message": invalidReferenceDiariaMessage(err)})
		default:
			logger.Error("Failed to create diaria", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Erro ao criar diária."})
		}
		return
	}

	c.JSON(http.StatusCreated, diaria)
}

// listDiarias godoc
// @Summary List diarias
// @Tags diarias
// @Produce json
// @Param empresaId query int false "Filter by empresa"
// @Param clienteId query int false "Filter by cliente"
// @Param funcionarioId query int false "Filter by funcionario"
// @Param status query string false "Filter by status" Enums(Pendente, Aprovado, Cancelado)
// @Param dataInicio query string false "Start date (inclusive), YYYY-MM-DD"
// @Param dataFim query string false "End date (inclusive), YYYY-MM-DD"
// @Success 200 {array} domain.DiariaWithNames
// @Security BearerAuth
// @Router /diarias [get]
func (h *diariaHandler) listDiarias(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListDiariasParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": bindErrorMessage(err)})
		return
	}

	diarias, err := h.diariaService.ListDiarias(c.Request.Context(), diariaFilterFromParams(params))
	if err != nil {
		logger.Error("Failed to list diarias", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Erro ao buscar diárias."})
		return
	}
	c.JSON(http.StatusOK, diarias)
}

// getDiaria godoc
// @Summary Get a diaria by ID
// @Tags diarias
// @Produce json
// @Param id path int true "Diaria ID"
// @Success 200 {object} domain.DiariaWithNames
// @Failure 404 {object} map[string]string "Diaria not found"
// @Security BearerAuth
// @Router /diarias/{id} [get]
func (h *diariaHandler) getDiaria(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	diaria, err := h.diariaService.GetDiariaByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Diária não encontrada."})
			return
		}
		logger.Error("Failed to get diaria", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Erro ao buscar diária."})
		return
	}
	c.JSON(http.StatusOK, diaria)
}

// updateDiaria godoc
// @Summary Update a diaria
// @Tags diarias
// @Accept json
// @Produce json
// @Param id path int true "Diaria ID"
// @Param diaria body dto.UpdateDiariaRequest true "Fields to update"
// @Success 200 {object} domain.Diaria
// @Failure 400 {object} map[string]string "Invalid input, unknown reference or forbidden status transition"
// @Failure 404 {object} map[string]string "Diaria not found"
// @Security BearerAuth
// @Router /diarias/{id} [put]
func (h *diariaHandler) updateDiaria(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req dto.UpdateDiariaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": bindErrorMessage(err)})
		return
	}

	diaria, err := h.diariaService.UpdateDiaria(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Diária não encontrada."})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Valor da diária deve ser positivo."})
		case errors.Is(err, apperrors.ErrInvalidReference):
			c.JSON(http.StatusBadRequest, gin.H{"message": invalidReferenceDiariaMessage(err)})
		case errors.Is(err, apperrors.ErrInvalidState):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Transição de status não permitida."})
		default:
			logger.Error("Failed to update diaria", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Erro ao atualizar diária."})
		}
		return
	}
	c.JSON(http.StatusOK, diaria)
}

// deleteDiaria godoc
// @Summary Cancel a diaria (soft delete)
// @Tags diarias
// @Produce json
// @Param id path int true "Diaria ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string "Diaria not found"
// @Security BearerAuth
// @Router /diarias/{id} [delete]
func (h *diariaHandler) deleteDiaria(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.diariaService.CancelDiaria(c.Request.Context(), id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Diária não encontrada."})
			return
		}
		logger.Error("Failed to cancel diaria", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Erro ao cancelar diária."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Diária cancelada com sucesso."})
}
