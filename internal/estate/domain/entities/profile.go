package entities

import (
	"errors"
	"fmt"
	"regexp"
)

// Ошибки домена профилей.
var (
	ErrCustomerNotFound       = errors.New("customer not found")
	ErrBusinessNotFound       = errors.New("business not found")
	ErrCustomerProfileMissing = errors.New("customer profile not found")
	ErrInvalidPhoneNumber     = errors.New("phone number must contain exactly 11 digits")
	ErrProfileFieldOutOfRange = errors.New("field must be between 2 and 50 characters")
	ErrProfileFieldBlank      = errors.New("field cannot be blank")
)

var phoneNumberRegex = regexp.MustCompile(`^\d{11}$`)

// Customer представляет профиль клиента, связанный 1:1 с учетной записью.
// Клиент может владеть объявлениями как owner.
type Customer struct {
	ID          string
	FirstName   string
	LastName    string
	Address     string
	PhoneNumber string
	UserID      string
}

// Validate проверяет форму полей профиля клиента.
func (c *Customer) Validate() error {
	if err := validateProfileField("firstName", c.FirstName); err != nil {
		return err
	}
	if err := validateProfileField("lastName", c.LastName); err != nil {
		return err
	}
	if err := validateProfileField("address", c.Address); err != nil {
		return err
	}
	return validatePhoneNumber(c.PhoneNumber)
}

// Business представляет профиль компании, связанный 1:1 с учетной записью.
type Business struct {
	ID           string
	BusinessName string
	FirstName    string
	LastName     string
	Address      string
	PhoneNumber  string
	UserID       string
}

// Validate проверяет форму полей профиля компании.
func (b *Business) Validate() error {
	if err := validateProfileField("businessName", b.BusinessName); err != nil {
		return err
	}
	if err := validateProfileField("firstName", b.FirstName); err != nil {
		return err
	}
	if err := validateProfileField("lastName", b.LastName); err != nil {
		return err
	}
	if err := validateProfileField("address", b.Address); err != nil {
		return err
	}
	return validatePhoneNumber(b.PhoneNumber)
}

func validateProfileField(name, value string) error {
	if value == "" {
		return fmt.Errorf("%s: %w", name, ErrProfileFieldBlank)
	}
	if len(value) < 2 || len(value) > 50 {
		return fmt.Errorf("%s: %w", name, ErrProfileFieldOutOfRange)
	}
	return nil
}

func validatePhoneNumber(phone string) error {
	if !phoneNumberRegex.MatchString(phone) {
		return ErrInvalidPhoneNumber
	}
	return nil
}
