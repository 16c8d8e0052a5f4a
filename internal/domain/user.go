package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// User é um operador do coletor. O serviço é single-tenant: todos os
// operadores têm acesso às mesmas contas e alvos.
type User struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password,omitempty"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type Claims struct {
	UserID    int
	UserName  string
	UserEmail string
	jwt.RegisteredClaims
}
