package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/gestorobras/gestor_diarias_app/internal/core/ports/services"
	"github.com/gestorobras/gestor_diarias_app/internal/dto"
	"github.com/gestorobras/gestor_diarias_app/internal/middleware"

	"github.com/gin-gonic/gin"
)

// relatorioHandler handles the aggregate report endpoints.
type relatorioHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newRelatorioHandler(rs portssvc.ReportingSvcFacade) *relatorioHandler {
	return &relatorioHandler{reportingService: rs}
}

// registerRelatorioRoutes registers all report routes.
func registerRelatorioRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newRelatorioHandler(reportingService)

	relatorios := rg.Group("/relatorios")
	{
		relatorios.GET("/diarias", h.relatorioDiarias)
	}
}

// relatorioDiarias godoc
// @Summary Summarize diarias matching the filters
// @Description Returns the total amount and count of diarias. Filters mirror the diaria listing. An empty match yields zeros.
// @Tags relatorios
// @Produce json
// @Param empresaId query int false "Filter by empresa"
// @Param clienteId query int false "Filter by cliente"
// @Param funcionarioId query int false "Filter by funcionario"
// @Param status query string false "Filter by status" Enums(Pendente, Aprovado, Cancelado)
// @Param dataInicio query string false "Start date (inclusive), YYYY-MM-DD"
// @Param dataFim query string false "End date (inclusive), YYYY-MM-DD"
// @Success 200 {object} domain.RelatorioDiarias
// @Security BearerAuth
// @Router /relatorios/diarias [get]
func (h *relatorioHandler) relatorioDiarias(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListDiariasParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": bindErrorMessage(err)})
		return
	}

	relatorio, err := h.reportingService.RelatorioDiarias(c.Request.Context(), diariaFilterFromParams(params))
	if err != nil {
		logger.Error("Failed to summarize diarias", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Erro ao gerar relatório de diárias."})
		return
	}
	c.JSON(http.StatusOK, relatorio)
}
