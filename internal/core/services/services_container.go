package services

import (
	portsrepo "github.com/gestorobras/gestor_diarias_app/internal/core/ports/repositories"
	portssvc "github.com/gestorobras/gestor_diarias_app/internal/core/ports/services"
)

// NewServiceContainer wires every service with its repository dependencies.
func NewServiceContainer(authCfg AuthConfig, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Empresa = NewEmpresaService(repos.EmpresaRepo)
	container.Cliente = NewClienteService(repos.ClienteRepo, repos.EmpresaRepo)
	container.Funcionario = NewFuncionarioService(repos.FuncionarioRepo, repos.EmpresaRepo)
	container.Diaria = NewDiariaService(repos.DiariaRepo, repos.FuncionarioRepo, repos.ClienteRepo)
	container.User = NewUserService(repos.UserRepo)
	container.Auth = NewAuthService(authCfg, container.User)
	container.Reporting = NewReportingService(repos.ReportingRepo)

	return container
}
