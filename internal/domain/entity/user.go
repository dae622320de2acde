package entity

import (
	"fmt"
	"time"
)

// Role rol cerrado de un usuario del sistema.
type Role string

// Roles válidos para User.
const (
	RoleAdmin     Role = "ADMIN"
	RoleManager   Role = "MANAGER"
	RoleMarketing Role = "MARKETING"
	RoleOperator  Role = "OPERATOR"
)

// Roles devuelve todos los roles conocidos.
func Roles() []Role {
	return []Role{RoleAdmin, RoleManager, RoleMarketing, RoleOperator}
}

// ParseRole convierte un string en Role; falla si no es uno de los roles conocidos.
func ParseRole(s string) (Role, error) {
	switch r := Role(s); r {
	case RoleAdmin, RoleManager, RoleMarketing, RoleOperator:
		return r, nil
	default:
		return "", fmt.Errorf("rol desconocido %q", s)
	}
}

// CanOperateScale indica si el rol puede figurar como operador de báscula.
func (r Role) CanOperateScale() bool {
	switch r {
	case RoleOperator:
		return true
	case RoleAdmin, RoleManager, RoleMarketing:
		return false
	default:
		return false
	}
}

// CanManageCatalog indica si el rol puede crear y editar materiales y proveedores.
func (r Role) CanManageCatalog() bool {
	switch r {
	case RoleAdmin, RoleMarketing:
		return true
	case RoleManager, RoleOperator:
		return false
	default:
		return false
	}
}

// User representa un usuario del sistema.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         Role
	Department   string
	Phone        string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// DisplayName nombre a mostrar; "Unknown" si el usuario no tiene nombre.
func (u *User) DisplayName() string {
	if u == nil || u.Name == "" {
		return "Unknown"
	}
	return u.Name
}
