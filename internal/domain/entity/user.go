package entity

import (
	"strings"
	"time"
	"unicode"
)

// User representa un usuario del sistema. El login es un email; el alcance
// (tienda/sector) es una unión etiquetada determinada por el rol.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         Role
	Scope        Scope
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Actor es la identidad autenticada que se pasa explícitamente a cada
// operación de ciclo de vida y de reporte. Nunca hay "usuario actual" ambiente.
type Actor struct {
	ID    string
	Role  Role
	Scope Scope
}

// Actor proyecta el usuario a su identidad de autorización.
func (u *User) Actor() Actor {
	return Actor{ID: u.ID, Role: u.Role, Scope: u.Scope}
}

// DisplayName deriva el nombre a mostrar en reportes: si el login contiene
// "@" se toma la parte local con la primera letra en mayúscula y el resto en
// minúscula; si no, el login tal cual.
func (u *User) DisplayName() string {
	return DisplayNameFor(u.Email)
}

// DisplayNameFor aplica la derivación de nombre sobre un login arbitrario.
func DisplayNameFor(login string) string {
	at := strings.Index(login, "@")
	if at < 0 {
		return login
	}
	local := login[:at]
	if local == "" {
		return local
	}
	runes := []rune(strings.ToLower(local))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
