// Package properties содержит HTTP обработчики объявлений недвижимости.
package properties

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"estatehub/internal/estate/adapters/http/dto"
	"estatehub/internal/estate/adapters/http/middleware"
	"estatehub/internal/estate/domain/entities"
	"estatehub/internal/estate/ports/api"
	svc "estatehub/internal/estate/ports/services"
	"estatehub/pkg/logger"
)

// Константы для логирования и сообщений API.
const (
	LogHandlerList         = "property handler: list"
	LogHandlerSearch       = "property handler: search"
	LogHandlerGet          = "property handler: get"
	LogHandlerMyProperties = "property handler: my properties"
	LogHandlerCreate       = "property handler: create"
	LogHandlerUpdate       = "property handler: update"
	LogHandlerDelete       = "property handler: delete"

	ErrorInvalidRequest       = "invalid request"
	ErrorFailedToServeRequest = "failed to serve request"
	ErrorPropertyNotFound     = "property not found"

	partProperty = "property"
	partFiles    = "files"
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

// Handler содержит HTTP обработчики объявлений.
type Handler struct {
	propertyUseCase api.PropertyUseCase
}

// NewHandler создает новый экземпляр обработчика объявлений.
func NewHandler(propertyUseCase api.PropertyUseCase) *Handler {
	return &Handler{propertyUseCase: propertyUseCase}
}

// List обрабатывает запрос публичной выдачи всех объявлений.
func (h *Handler) List(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerList)

	summaries, err := h.propertyUseCase.List(requestCtx)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusInternalServerError, ErrorFailedToServeRequest)
	}

	if err := ctx.Status(http.StatusOK).JSON(dto.NewPropertySummaryResponseList(summaries)); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// Search обрабатывает запрос поиска объявлений по критериям.
func (h *Handler) Search(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerSearch)

	criteria, err := parseSearchCriteria(ctx)
	if err != nil {
		log.Debug(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusBadRequest, err.Error())
	}

	summaries, err := h.propertyUseCase.Search(requestCtx, criteria)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusInternalServerError, ErrorFailedToServeRequest)
	}

	if err := ctx.Status(http.StatusOK).JSON(dto.NewPropertySummaryResponseList(summaries)); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// Get обрабатывает запрос одного объявления по ID.
func (h *Handler) Get(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerGet)

	property, err := h.propertyUseCase.Get(requestCtx, ctx.Params("id"))
	if err != nil {
		if errors.Is(err, entities.ErrPropertyNotFound) {
			return sendErrorResponse(ctx, http.StatusNotFound, ErrorPropertyNotFound)
		}
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusInternalServerError, ErrorFailedToServeRequest)
	}

	if err := ctx.Status(http.StatusOK).JSON(dto.NewPropertyResponse(property)); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// MyProperties обрабатывает запрос объявлений текущего пользователя.
// Анонимный запрос получает пустой список.
func (h *Handler) MyProperties(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerMyProperties)

	principal, ok := middleware.PrincipalFrom(ctx)
	if !ok {
		if err := ctx.Status(http.StatusOK).JSON([]*dto.PropertyResponse{}); err != nil {
			return fmt.Errorf("sending response: %w", err)
		}
		return nil
	}

	properties, err := h.propertyUseCase.ListByLister(requestCtx, principal)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusInternalServerError, ErrorFailedToServeRequest)
	}

	if err := ctx.Status(http.StatusOK).JSON(dto.NewPropertyResponseList(properties)); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// Create обрабатывает multipart-запрос на создание объявления.
func (h *Handler) Create(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerCreate)

	principal, ok := middleware.PrincipalFrom(ctx)
	if !ok {
		return sendErrorResponse(ctx, http.StatusUnauthorized, middleware.ErrorUnauthorized)
	}

	form, err := ctx.MultipartForm()
	if err != nil {
		log.Debug(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusBadRequest, ErrorInvalidRequest)
	}

	draft, err := parsePropertyPart(form)
	if err != nil {
		log.Debug(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusBadRequest, err.Error())
	}

	uploads, closeUploads, err := openUploads(form)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusInternalServerError, ErrorFailedToServeRequest)
	}
	defer closeUploads()

	ownerID := formValue(ctx, form, "ownerId")
	listerID := formValue(ctx, form, "listerId")

	created, err := h.propertyUseCase.Create(requestCtx, principal, draft, ownerID, listerID, uploads)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return sendErrorResponse(ctx, propertyErrorStatus(err), err.Error())
	}

	if err := ctx.Status(http.StatusCreated).JSON(dto.NewPropertyResponse(created)); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// Update обрабатывает multipart-запрос на обновление объявления.
func (h *Handler) Update(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerUpdate)

	form, err := ctx.MultipartForm()
	if err != nil {
		log.Debug(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusBadRequest, ErrorInvalidRequest)
	}

	draft, err := parsePropertyPart(form)
	if err != nil {
		log.Debug(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusBadRequest, err.Error())
	}

	uploads, closeUploads, err := openUploads(form)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusInternalServerError, ErrorFailedToServeRequest)
	}
	defer closeUploads()

	updated, err := h.propertyUseCase.Update(requestCtx, ctx.Params("id"), draft, uploads)
	if err != nil {
		if errors.Is(err, entities.ErrPropertyNotFound) {
			return sendErrorResponse(ctx, http.StatusNotFound, ErrorPropertyNotFound)
		}
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return sendErrorResponse(ctx, propertyErrorStatus(err), err.Error())
	}

	if err := ctx.Status(http.StatusOK).JSON(dto.NewPropertyResponse(updated)); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// Delete обрабатывает запрос на удаление объявления.
func (h *Handler) Delete(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerDelete)

	if err := h.propertyUseCase.Delete(requestCtx, ctx.Params("id")); err != nil {
		if errors.Is(err, entities.ErrPropertyNotFound) {
			return sendErrorResponse(ctx, http.StatusNotFound, ErrorPropertyNotFound)
		}
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusInternalServerError, ErrorFailedToServeRequest)
	}

	if err := ctx.Status(http.StatusOK).JSON(fiber.Map{
		"message": "property deleted",
	}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// parsePropertyPart извлекает JSON-часть "property" из multipart-формы.
func parsePropertyPart(form *multipart.Form) (*entities.Property, error) {
	values := form.Value[partProperty]
	if len(values) == 0 {
		return nil, errors.New("property part is required")
	}

	var req dto.PropertyRequest
	if err := json.Unmarshal([]byte(values[0]), &req); err != nil {
		return nil, fmt.Errorf("invalid property payload: %w", err)
	}

	return req.ToEntity(), nil
}

// openUploads открывает загруженные файлы части "files".
func openUploads(form *multipart.Form) ([]svc.Upload, func(), error) {
	headers := form.File[partFiles]

	uploads := make([]svc.Upload, 0, len(headers))
	opened := make([]multipart.File, 0, len(headers))
	closeAll := func() {
		for _, file := range opened {
			_ = file.Close()
		}
	}

	for _, header := range headers {
		file, err := header.Open()
		if err != nil {
			closeAll()
			return nil, nil, fmt.Errorf("opening uploaded file: %w", err)
		}
		opened = append(opened, file)
		uploads = append(uploads, svc.Upload{
			Filename: header.Filename,
			Content:  file,
		})
	}

	return uploads, closeAll, nil
}

// formValue читает значение из полей формы либо из строки запроса.
func formValue(ctx fiber.Ctx, form *multipart.Form, key string) string {
	if values := form.Value[key]; len(values) > 0 {
		return values[0]
	}
	return ctx.Query(key)
}

// parseSearchCriteria собирает критерии поиска из строки запроса.
// Нечисловое значение числового параметра отклоняет весь запрос.
func parseSearchCriteria(ctx fiber.Ctx) (entities.SearchCriteria, error) {
	criteria := entities.SearchCriteria{
		PropertyType:  ctx.Query("propertyType"),
		Status:        ctx.Query("propertyStatus"),
		HeatingType:   ctx.Query("heatingType"),
		Address:       ctx.Query("address"),
		NumberOfRooms: ctx.Query("numberOfRooms"),
	}

	if raw := ctx.Query("floor"); raw != "" {
		floor, err := strconv.Atoi(raw)
		if err != nil {
			return criteria, fmt.Errorf("invalid floor value %q", raw)
		}
		criteria.Floor = &floor
	}

	for _, param := range []struct {
		name   string
		target **float64
	}{
		{"minPrice", &criteria.MinPrice},
		{"maxPrice", &criteria.MaxPrice},
		{"minArea", &criteria.MinArea},
		{"maxArea", &criteria.MaxArea},
	} {
		raw := ctx.Query(param.name)
		if raw == "" {
			continue
		}
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return criteria, fmt.Errorf("invalid %s value %q", param.name, raw)
		}
		*param.target = &value
	}

	return criteria, nil
}

// propertyErrorStatus переводит доменную ошибку в статус ответа.
func propertyErrorStatus(err error) int {
	switch {
	case errors.Is(err, entities.ErrCustomerNotFound),
		errors.Is(err, entities.ErrListerNotFound),
		errors.Is(err, entities.ErrPropertyNotFound):
		return http.StatusNotFound
	case errors.Is(err, entities.ErrUnknownPropertyType),
		errors.Is(err, entities.ErrUnknownHeatingType),
		errors.Is(err, entities.ErrUnknownStatus),
		errors.Is(err, entities.ErrUnknownNumberOfRooms),
		errors.Is(err, entities.ErrFieldNotPositive),
		errors.Is(err, entities.ErrProfileFieldBlank),
		errors.Is(err, entities.ErrProfileFieldOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
