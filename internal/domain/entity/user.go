package entity

import "time"

// Roles válidos para User.
const (
	RoleAdministrator = "ADMINISTRATOR"
	RoleCustomer      = "CUSTOMER"
)

// Avatares permitidos; DefaultAvatar se aplica cuando el registro no envía uno.
var Avatars = []string{"Avatar 1", "Avatar 2", "Avatar 3", "Avatar 4"}

// ValidRole indica si el rol pertenece al conjunto permitido.
func ValidRole(role string) bool {
	return role == RoleAdministrator || role == RoleCustomer
}

// ValidAvatar indica si el avatar pertenece al conjunto enumerado.
func ValidAvatar(avatar string) bool {
	for _, a := range Avatars {
		if a == avatar {
			return true
		}
	}
	return false
}

// User representa una cuenta del sistema.
// Username es opcional (único si está presente); PasswordHash nunca viaja en respuestas.
type User struct {
	ID           int64
	Name         string
	Surname      string
	Phone        string
	Email        string
	Address      string
	Username     string
	PasswordHash string // bcrypt, nunca plano después de persistir
	Avatar       string
	Role         string // ADMINISTRATOR | CUSTOMER
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// DisplayName devuelve el nombre público (nombre + apellido) usado en el token.
func (u *User) DisplayName() string {
	return u.Name + " " + u.Surname
}
