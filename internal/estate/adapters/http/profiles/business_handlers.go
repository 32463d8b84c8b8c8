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

// BusinessHandler содержит HTTP обработчики профилей компаний.
type BusinessHandler struct {
	businessRepo repositories.BusinessRepository
}

// NewBusinessHandler создает новый экземпляр обработчика компаний.
func NewBusinessHandler(businessRepo repositories.BusinessRepository) *BusinessHandler {
	return &BusinessHandler{businessRepo: businessRepo}
}

// List обрабатывает запрос всех профилей компаний.
func (h *BusinessHandler) List(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerBusiness+": list")

	businesses, err := h.businessRepo.List(requestCtx)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusInternalServerError, ErrorFailedToServeRequest)
	}

	if err := ctx.Status(http.StatusOK).JSON(dto.NewBusinessResponseList(businesses)); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// GetByUserID обрабатывает запрос профиля компании по его учетной записи.
func (h *BusinessHandler) GetByUserID(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerBusiness+": get by user id")

	business, err := h.businessRepo.FindByUserID(requestCtx, ctx.Params("id"))
	if err != nil {
		if errors.Is(err, entities.ErrBusinessNotFound) {
			return sendErrorResponse(ctx, http.StatusNotFound, ErrorBusinessNotFound)
		}
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusInternalServerError, ErrorFailedToServeRequest)
	}

	if err := ctx.Status(http.StatusOK).JSON(dto.NewBusinessResponse(business)); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// Create обрабатывает запрос на создание профиля компании.
func (h *BusinessHandler) Create(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerBusiness+": create")

	var req dto.BusinessRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Debug(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusBadRequest, ErrorInvalidRequest)
	}

	business := req.ToEntity()
	if err := business.Validate(); err != nil {
		return sendErrorResponse(ctx, http.StatusBadRequest, err.Error())
	}

	created, err := h.businessRepo.Create(requestCtx, business)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusInternalServerError, ErrorFailedToServeRequest)
	}

	if err := ctx.Status(http.StatusCreated).JSON(dto.NewBusinessResponse(created)); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// Update обрабатывает запрос на изменение профиля компании.
func (h *BusinessHandler) Update(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerBusiness+": update")

	var req dto.BusinessRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Debug(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusBadRequest, ErrorInvalidRequest)
	}

	business := req.ToEntity()
	business.ID = ctx.Params("id")
	if err := business.Validate(); err != nil {
		return sendErrorResponse(ctx, http.StatusBadRequest, err.Error())
	}

	updated, err := h.businessRepo.Update(requestCtx, business)
	if err != nil {
		if errors.Is(err, entities.ErrBusinessNotFound) {
			return sendErrorResponse(ctx, http.StatusNotFound, ErrorBusinessNotFound)
		}
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusInternalServerError, ErrorFailedToServeRequest)
	}

	if err := ctx.Status(http.StatusOK).JSON(dto.NewBusinessResponse(updated)); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// Delete обрабатывает запрос на удаление профиля компании.
func (h *BusinessHandler) Delete(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerBusiness+": delete")

	if err := h.businessRepo.Delete(requestCtx, ctx.Params("id")); err != nil {
		if errors.Is(err, entities.ErrBusinessNotFound) {
			return sendErrorResponse(ctx, http.StatusNotFound, ErrorBusinessNotFound)
		}
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusInternalServerError, ErrorFailedToServeRequest)
	}

	if err := ctx.Status(http.StatusOK).JSON(fiber.Map{
		"message": "business deleted",
	}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}
