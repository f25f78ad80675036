package handlers

import (
	"github.com/gestorobras/gestor_diarias_app/cmd/docs"
	portssvc "github.com/gestorobras/gestor_diarias_app/internal/core/ports/services"
	"github.com/gestorobras/gestor_diarias_app/internal/middleware"
	"github.com/gestorobras/gestor_diarias_app/pkg/config"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	rateLimiter *limiter.Limiter,
) {
	// Health check stays outside auth so load balancers can probe it.
	r.GET("/health", getHealth)

	// Public authentication routes
	registerAuthRoutes(r.Group(""), services.Auth)

	// API v1 routes behind auth and rate limiting
	setupAPIV1Routes(r, cfg, services, rateLimiter)

	// Swagger routes (disabled in production)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to the entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	rateLimiter *limiter.Limiter,
) {
	v1 := r.Group("/api/v1",
		middleware.RateLimit(rateLimiter),
		middleware.AuthMiddleware(cfg.JWTSecret),
	)

	RegisterEmpresaRoutes(v1, services.Empresa)
	registerClienteRoutes(v1, services.Cliente)
	registerFuncionarioRoutes(v1, services.Funcionario)
	registerDiariaRoutes(v1, services.Diaria)
	registerUserRoutes(v1, services.User)
	registerRelatorioRoutes(v1, services.Reporting)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
