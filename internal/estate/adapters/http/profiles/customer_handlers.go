// Package profiles содержит HTTP обработчики профилей клиентов и компаний.
// Обработчики работают с репозиториями напрямую: операции не содержат
// бизнес-логики сверх валидации полей.
package profiles

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"estatehub/internal/estate/adapters/http/dto"
	"estatehub/internal/estate/domain/entities"
	"estatehub/internal/estate/ports/repositories"
	"estatehub/pkg/logger"
)

// Константы для логирования и сообщений API.
const (
	LogHandlerCustomers = "customer handler"
	LogHandlerBusiness  = "business handler"

	ErrorInvalidRequest       = "invalid request"
	ErrorFailedToServeRequest = "failed to serve request"
	ErrorCustomerNotFound     = "customer not found"
	ErrorBusinessNotFound     = "business not found"
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

// CustomerHandler содержит HTTP обработчики профилей клиентов.
type CustomerHandler struct {
	customerRepo repositories.CustomerRepository
}

// NewCustomerHandler создает новый экземпляр обработчика клиентов.
func NewCustomerHandler(customerRepo repositories.CustomerRepository) *CustomerHandler {
	return &CustomerHandler{customerRepo: customerRepo}
}

// List обрабатывает запрос всех профилей клиентов.
func (h *CustomerHandler) List(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerCustomers+": list")

	customers, err := h.customerRepo.List(requestCtx)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusInternalServerError, ErrorFailedToServeRequest)
	}

	if err := ctx.Status(http.StatusOK).JSON(dto.NewCustomerResponseList(customers)); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// GetByUserID обрабатывает запрос профиля клиента по его учетной записи.
func (h *CustomerHandler) GetByUserID(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerCustomers+": get by user id")

	customer, err := h.customerRepo.FindByUserID(requestCtx, ctx.Params("id"))
	if err != nil {
		if errors.Is(err, entities.ErrCustomerNotFound) {
			return sendErrorResponse(ctx, http.StatusNotFound, ErrorCustomerNotFound)
		}
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusInternalServerError, ErrorFailedToServeRequest)
	}

	if err := ctx.Status(http.StatusOK).JSON(dto.NewCustomerResponse(customer)); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// Search обрабатывает поиск клиентов по подстроке имени или фамилии.
func (h *CustomerHandler) Search(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerCustomers+": search")

	customers, err := h.customerRepo.SearchByName(requestCtx, ctx.Query("query"))
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusInternalServerError, ErrorFailedToServeRequest)
	}

	if err := ctx.Status(http.StatusOK).JSON(dto.NewCustomerResponseList(customers)); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// Create обрабатывает запрос на создание профиля клиента.
func (h *CustomerHandler) Create(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerCustomers+": create")

	var req dto.CustomerRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Debug(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusBadRequest, ErrorInvalidRequest)
	}

	customer := req.ToEntity()
	if err := customer.Validate(); err != nil {
		return sendErrorResponse(ctx, http.StatusBadRequest, err.Error())
	}

	created, err := h.customerRepo.Create(requestCtx, customer)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusInternalServerError, ErrorFailedToServeRequest)
	}

	if err := ctx.Status(http.StatusCreated).JSON(dto.NewCustomerResponse(created)); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// Update обрабатывает запрос на изменение профиля клиента.
func (h *CustomerHandler) Update(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerCustomers+": update")

	var req dto.CustomerRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Debug(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusBadRequest, ErrorInvalidRequest)
	}

	customer := req.ToEntity()
	customer.ID = ctx.Params("id")
	if err := customer.Validate(); err != nil {
		return sendErrorResponse(ctx, http.StatusBadRequest, err.Error())
	}

	updated, err := h.customerRepo.Update(requestCtx, customer)
	if err != nil {
		if errors.Is(err, entities.ErrCustomerNotFound) {
			return sendErrorResponse(ctx, http.StatusNotFound, ErrorCustomerNotFound)
		}
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusInternalServerError, ErrorFailedToServeRequest)
	}

	if err := ctx.Status(http.StatusOK).JSON(dto.NewCustomerResponse(updated)); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// Delete обрабатывает запрос на удаление профиля клиента.
func (h *CustomerHandler) Delete(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerCustomers+": delete")

	if err := h.customerRepo.Delete(requestCtx, ctx.Params("id")); err != nil {
		if errors.Is(err, entities.ErrCustomerNotFound) {
			return sendErrorResponse(ctx, http.StatusNotFound, ErrorCustomerNotFound)
		}
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusInternalServerError, ErrorFailedToServeRequest)
	}

	if err := ctx.Status(http.StatusOK).JSON(fiber.Map{
		"message": "customer deleted",
	}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}
