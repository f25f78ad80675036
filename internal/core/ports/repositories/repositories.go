package repositories

// RepositoryProvider bundles every repository the service layer needs.
type RepositoryProvider struct {
	EmpresaRepo     EmpresaRepository
	ClienteRepo     ClienteRepository
	FuncionarioRepo FuncionarioRepository
	DiariaRepo      DiariaRepository
	UserRepo        UserRepository
	ReportingRepo   ReportingRepository
}
