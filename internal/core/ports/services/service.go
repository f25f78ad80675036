package services

// ServiceContainer bundles every service facade the transport layer needs.
type ServiceContainer struct {
	Empresa     EmpresaSvcFacade
	Cliente     ClienteSvcFacade
	Funcionario FuncionarioSvcFacade
	Diaria      DiariaSvcFacade
	User        UserSvcFacade
	Auth        AuthSvcFacade
	Reporting   ReportingSvcFacade
}
