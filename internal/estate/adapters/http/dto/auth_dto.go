// Package dto содержит структуры запросов и ответов HTTP API.
package dto

// RegisterRequest представляет запрос на регистрацию.
// Поля профиля зависят от роли: businessName требуется только для BUSINESS.
type RegisterRequest struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	Role            string `json:"role"`
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	BusinessName    string `json:"businessName"`
	PhoneNumber     string `json:"phoneNumber"`
	Address         string `json:"address"`
}

// LoginRequest представляет запрос на вход.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// JwtResponse представляет ответ на успешный вход.
type JwtResponse struct {
	ID    string `json:"id"`
	Token string `json:"token"`
	Type  string `json:"type"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// TokenType - схема авторизации, возвращаемая в JwtResponse.
const TokenType = "Bearer"
