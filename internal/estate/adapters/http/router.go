// Package http содержит компоненты для HTTP сервера.
package http

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/static"

	"estatehub/internal/estate/adapters/http/auth"
	"estatehub/internal/estate/adapters/http/middleware"
	"estatehub/internal/estate/adapters/http/profiles"
	"estatehub/internal/estate/adapters/http/properties"
	"estatehub/internal/estate/config"
	"estatehub/internal/estate/ports/api"
	"estatehub/internal/estate/ports/repositories"
	"estatehub/internal/estate/ports/services"
)

// Dependencies содержит зависимости HTTP слоя.
type Dependencies struct {
	AuthUseCase     api.AuthUseCase
	PropertyUseCase api.PropertyUseCase
	TokenService    services.TokenService
	UserRepo        repositories.UserRepository
	CustomerRepo    repositories.CustomerRepository
	BusinessRepo    repositories.BusinessRepository
	UploadDir       string
}

// SetupRouter настраивает маршрутизацию для HTTP сервера.
func SetupRouter(app *fiber.App, cfg *config.CORSConfig, deps Dependencies) {
	authHandler := auth.NewHandler(deps.AuthUseCase, deps.TokenService)
	propertyHandler := properties.NewHandler(deps.PropertyUseCase)
	customerHandler := profiles.NewCustomerHandler(deps.CustomerRepo)
	businessHandler := profiles.NewBusinessHandler(deps.BusinessRepo)

	// Middleware для всех запросов.
	app.Use(middleware.NewLoggerMiddleware())
	app.Use(middleware.NewRecoveryMiddleware())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.AllowedOrigin},
		AllowCredentials: cfg.AllowCredentials,
	}))
	app.Use(middleware.NewAuthMiddleware(deps.TokenService, deps.UserRepo))

	// Загруженные изображения объявлений.
	app.Use("/uploads", static.New(deps.UploadDir))

	apiGroup := app.Group("/api")

	// Auth routes (публичные).
	authRoutes := apiGroup.Group("/auth")
	authRoutes.Post("/register", authHandler.Register)
	authRoutes.Post("/login", authHandler.Login)

	// Объявления: чтение публично, изменение требует авторизации.
	propertyRoutes := apiGroup.Group("/properties")
	propertyRoutes.Get("/", propertyHandler.List)
	propertyRoutes.Get("/search", propertyHandler.Search)
	propertyRoutes.Get("/my-properties", propertyHandler.MyProperties)
	propertyRoutes.Get("/:id", propertyHandler.Get)
	propertyRoutes.Post("/", propertyHandler.Create, middleware.NewRequireAuth())
	propertyRoutes.Put("/:id", propertyHandler.Update, middleware.NewRequireAuth())
	propertyRoutes.Delete("/:id", propertyHandler.Delete, middleware.NewRequireAuth())

	// Профили клиентов (требуют авторизации).
	customerRoutes := apiGroup.Group("/customers")
	customerRoutes.Use(middleware.NewRequireAuth())
	customerRoutes.Get("/", customerHandler.List)
	customerRoutes.Get("/search", customerHandler.Search)
	customerRoutes.Get("/:id", customerHandler.GetByUserID)
	customerRoutes.Post("/", customerHandler.Create)
	customerRoutes.Put("/:id", customerHandler.Update)
	customerRoutes.Delete("/:id", customerHandler.Delete)

	// Профили компаний (требуют авторизации).
	businessRoutes := apiGroup.Group("/business")
	businessRoutes.Use(middleware.NewRequireAuth())
	businessRoutes.Get("/", businessHandler.List)
	businessRoutes.Get("/:id", businessHandler.GetByUserID)
	businessRoutes.Post("/", businessHandler.Create)
	businessRoutes.Put("/:id", businessHandler.Update)
	businessRoutes.Delete("/:id", businessHandler.Delete)

	// Обработчик для несуществующих маршрутов.
	app.Use(func(c fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Route not found",
		})
	})
}
