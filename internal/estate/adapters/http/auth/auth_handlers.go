// Package auth содержит HTTP обработчики регистрации и входа.
package auth

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"estatehub/internal/estate/adapters/http/dto"
	"estatehub/internal/estate/domain/entities"
	"estatehub/internal/estate/domain/services"
	"estatehub/internal/estate/ports/api"
	svc "estatehub/internal/estate/ports/services"
	"estatehub/pkg/logger"
)

// Константы для логирования и сообщений API.
const (
	LogHandlerRegister = "auth handler: register"
	LogHandlerLogin    = "auth handler: login"

	ErrorInvalidRequest       = "invalid request"
	ErrorFailedToServeRequest = "failed to serve request"

	MsgUserRegistered     = "User registered successfully!"
	MsgEmailInUse         = "This email address is already in use!"
	MsgPasswordsMismatch  = "Passwords do not match!"
	MsgInvalidRole        = "Invalid role specified!"
	MsgInvalidCredentials = "Invalid username or password"
)

// Вспомогательная функция для обработки ошибок HTTP.
func sendErrorResponse(ctx fiber.Ctx, statusCode int, message string) error {
	if err := ctx.Status(statusCode).JSON(fiber.Map{
		"error": message,
	}); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// Handler содержит HTTP обработчики аутентификации.
type Handler struct {
	authUseCase api.AuthUseCase
	tokenSvc    svc.TokenService
}

// NewHandler создает новый экземпляр обработчика аутентификации.
func NewHandler(authUseCase api.AuthUseCase, tokenSvc svc.TokenService) *Handler {
	return &Handler{
		authUseCase: authUseCase,
		tokenSvc:    tokenSvc,
	}
}

// Register обрабатывает запрос на регистрацию нового пользователя.
func (h *Handler) Register(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerRegister)

	var req dto.RegisterRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Error(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusBadRequest, ErrorInvalidRequest)
	}

	if req.Email == "" || req.Password == "" {
		return sendErrorResponse(ctx, http.StatusBadRequest, "email and password are required")
	}

	registration := &entities.Registration{
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		Role:            req.Role,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		BusinessName:    req.BusinessName,
		PhoneNumber:     req.PhoneNumber,
		Address:         req.Address,
	}

	if _, err := h.authUseCase.Register(requestCtx, registration); err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusBadRequest, registrationErrorMessage(err))
	}

	if err := ctx.Status(http.StatusCreated).JSON(fiber.Map{
		"message": MsgUserRegistered,
	}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// Login обрабатывает запрос на вход пользователя.
func (h *Handler) Login(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerLogin)

	var req dto.LoginRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Error(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusBadRequest, ErrorInvalidRequest)
	}

	if req.Email == "" || req.Password == "" {
		return sendErrorResponse(ctx, http.StatusBadRequest, "email and password are required")
	}

	user, err := h.authUseCase.Login(requestCtx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return sendErrorResponse(ctx, http.StatusUnauthorized, MsgInvalidCredentials)
		}
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusInternalServerError, ErrorFailedToServeRequest)
	}

	token, _, err := h.tokenSvc.Issue(requestCtx, user.Email, user.Role)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusInternalServerError, ErrorFailedToServeRequest)
	}

	if err := ctx.Status(http.StatusOK).JSON(dto.JwtResponse{
		ID:    user.ID,
		Token: token,
		Type:  dto.TokenType,
		Email: user.Email,
		Role:  string(user.Role),
	}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// registrationErrorMessage переводит доменную ошибку регистрации
// в сообщение для клиента.
func registrationErrorMessage(err error) string {
	switch {
	case errors.Is(err, entities.ErrEmailAlreadyExists):
		return MsgEmailInUse
	case errors.Is(err, entities.ErrPasswordMismatch):
		return MsgPasswordsMismatch
	case errors.Is(err, entities.ErrInvalidRole):
		return MsgInvalidRole
	default:
		return err.Error()
	}
}
