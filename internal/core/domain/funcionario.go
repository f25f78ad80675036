package domain

// FuncionarioTipo is the contract type of a worker. The only legal
// transition is Treinamento -> Autonomo, through an explicit convert action.
type FuncionarioTipo string

const (
	FuncionarioTreinamento FuncionarioTipo = "Treinamento"
	FuncionarioAutonomo    FuncionarioTipo = "Autônomo"
)

// Valid reports whether t is a known tipo value.
func (t FuncionarioTipo) Valid() bool {
	return t == FuncionarioTreinamento || t == FuncionarioAutonomo
}

// CanConvert reports whether a worker of this tipo may be converted to Autônomo.
func (t FuncionarioTipo) CanConvert() bool {
	return t == FuncionarioTreinamento
}

// FuncionarioStatus is the lifecycle status of a worker.
type FuncionarioStatus string

const (
	FuncionarioAtivo   FuncionarioStatus = "Ativo"
	FuncionarioInativo FuncionarioStatus = "Inativo"
)

// Valid reports whether s is a known status value.
func (s FuncionarioStatus) Valid() bool {
	return s == FuncionarioAtivo || s == FuncionarioInativo
}

// Funcionario is a worker/contractor, owned by exactly one Empresa.
type Funcionario struct {
	ID        int64             `json:"id"`
	Nome      string            `json:"nome"`
	CPF       string            `json:"cpf"`
	Email     string            `json:"email,omitempty"`
	Telefone  string            `json:"telefone,omitempty"`
	Tipo      FuncionarioTipo   `json:"tipo"`
	Status    FuncionarioStatus `json:"status"`
	EmpresaID int64             `json:"empresaId"`
	Timestamps
}

// FuncionarioWithEmpresa is a Funcionario joined with its company's name.
type FuncionarioWithEmpresa struct {
	Funcionario
	EmpresaNome string `json:"empresaNome"`
}

// FuncionarioFilter narrows funcionario listings. Nil fields are not applied.
type FuncionarioFilter struct {
	EmpresaID *int64
	Status    *FuncionarioStatus
	Tipo      *FuncionarioTipo
}
