// Package entities содержит основные сущности домена недвижимости.
package entities

import (
	"errors"
	"strings"
	"time"
)

// Ошибки домена пользователя.
var (
	ErrUserNotFound = errors.New("user not found")
	ErrInvalidRole  = errors.New("invalid role specified")
	ErrInvalidEmail = errors.New("invalid email format")
)

// Role определяет роль учетной записи. Роль назначается при регистрации
// и не меняется в течение жизни учетной записи.
type Role string

// Поддерживаемые роли.
const (
	RoleCustomer Role = "CUSTOMER"
	RoleBusiness Role = "BUSINESS"
)

// ParseRole разбирает строковое представление роли без учета регистра.
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToUpper(s)) {
	case RoleCustomer:
		return RoleCustomer, nil
	case RoleBusiness:
		return RoleBusiness, nil
	default:
		return "", ErrInvalidRole
	}
}

// User представляет учетную запись с учетными данными для входа.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
}
