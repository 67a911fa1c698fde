package entity

import "time"

// Roles de usuario.
const (
	RolAdmin   = "admin"
	RolGerente = "gerente"
	RolUsuario = "usuario"
)

// User usuario del sistema con rol y almacén asignado.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	Rol          string
	AlmacenID    *string // nil para admin (ve todos los almacenes)
	CreatedAt    time.Time
}
