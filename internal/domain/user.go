package domain

import (
	"strings"
	"time"
)

// User representa a entidade do usuário no sistema.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Oculta o hash da senha no JSON de resposta
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
}

// Identity é a projeção da identidade do usuário usada em sessão: apenas
// id, nome e e-mail, sem capacidades. É o valor passado explicitamente a
// toda operação que exige autorização.
type Identity struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Identity devolve a projeção de identidade do usuário.
func (u User) Identity() Identity {
	return Identity{ID: u.ID, Name: u.Name, Email: u.Email}
}

// UserRegistration representa o payload de entrada para o cadastro.
type UserRegistration struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"password_confirm"`
}

// NormalizeEmail aplica a normalização canônica de e-mails do sistema:
// minúsculas e sem espaços nas pontas. A unicidade de e-mail é sempre
// avaliada sobre a forma normalizada.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
