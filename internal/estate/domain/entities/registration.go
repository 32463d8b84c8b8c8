package entities

import "errors"

// Ошибки процесса регистрации.
var (
	ErrEmailAlreadyExists = errors.New("this email address is already in use")
	ErrPasswordMismatch   = errors.New("passwords do not match")
)

// Registration содержит данные заявки на регистрацию новой учетной записи.
// Набор полей профиля зависит от роли: BusinessName заполняется только
// для бизнес-аккаунтов.
type Registration struct {
	Email           string
	Password        string
	ConfirmPassword string
	Role            string

	FirstName    string
	LastName     string
	BusinessName string
	PhoneNumber  string
	Address      string
}
