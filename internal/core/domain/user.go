package domain

// UserPapel is the role flag of an account.
type UserPapel string

const (
	PapelAdmin    UserPapel = "Admin"
	PapelOperador UserPapel = "Operador"
)

// Valid reports whether p is a known papel value.
func (p UserPapel) Valid() bool {
	return p == PapelAdmin || p == PapelOperador
}

// UserStatus is the lifecycle status of an account.
type UserStatus string

const (
	UserAtivo   UserStatus = "Ativo"
	UserInativo UserStatus = "Inativo"
)

// Valid reports whether s is a known status value.
func (s UserStatus) Valid() bool {
	return s == UserAtivo || s == UserInativo
}

// User is an application account. PasswordHash never leaves the backend.
type User struct {
	ID           int64      `json:"id"`
	Nome         string     `json:"nome"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Papel        UserPapel  `json:"papel"`
	Status       UserStatus `json:"status"`
	Timestamps
}
