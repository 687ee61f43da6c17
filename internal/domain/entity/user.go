package entity

import (
	"strings"
	"time"
)

// Roles válidos para User.
const (
	RoleAdmin     = "admin"
	RoleVisitante = "visitante"
)

// User representa un usuario del sistema. IsAdmin habilita las operaciones de escritura.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	IsAdmin      bool
	CreatedAt    time.Time
}

// Role devuelve el rol que se firma en el token.
func (u *User) Role() string {
	if u.IsAdmin {
		return RoleAdmin
	}
	return RoleVisitante
}

// NormalizeEmail recorta espacios y pasa a minúsculas el dominio (la parte local se conserva).
func NormalizeEmail(email string) string {
	email = strings.TrimSpace(email)
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return email
	}
	return email[:at] + "@" + strings.ToLower(email[at+1:])
}
