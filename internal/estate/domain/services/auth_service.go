// Package services содержит контракты и ошибки доменных сервисов.
package services

import "errors"

// Ошибки домена аутентификации.
var (
	ErrInvalidCredentials    = errors.New("invalid username or password")
	ErrTokenGenerationFailed = errors.New("failed to generate authentication token")
)
