package user

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmptyName       = errors.New("nome não pode ser vazio")
	ErrInvalidEmail    = errors.New("email inválido")
	ErrShortPassword   = errors.New("senha deve ter pelo menos 9 caracteres")
	ErrInvalidRole     = errors.New("perfil de usuário inválido")
	ErrWrongCredential = errors.New("credenciais inválidas")
)

// Role define o perfil de acesso do usuário
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleUser       Role = "user"
	RoleAccountant Role = "accountant"
)

// IsValid verifica se o perfil é um dos valores conhecidos
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleUser, RoleAccountant:
		return true
	}
	return false
}

// User representa um usuário do painel
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"-"` // hash bcrypt, nunca serializado
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewUser cria um novo usuário com a senha já criptografada
func NewUser(name, email, plainPassword string, role Role) (*User, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}
	if !strings.Contains(email, "@") {
		return nil, ErrInvalidEmail
	}
	if len(plainPassword) < 9 {
		return nil, ErrShortPassword
	}
	if !role.IsValid() {
		return nil, ErrInvalidRole
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(plainPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	return &User{
		ID:        uuid.New().String(),
		Name:      name,
		Email:     email,
		Password:  string(hash),
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// CheckPassword compara a senha informada com o hash armazenado
func (u *User) CheckPassword(plainPassword string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(plainPassword)); err != nil {
		return ErrWrongCredential
	}
	return nil
}

// SetPassword substitui a senha do usuário por um novo hash
func (u *User) SetPassword(plainPassword string) error {
	if len(plainPassword) < 9 {
		return ErrShortPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plainPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hash)
	u.UpdatedAt = time.Now()
	return nil
}
