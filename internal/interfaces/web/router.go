package web

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/tienda-web/internal/application/auth"
	"github.com/jhoicas/tienda-web/internal/application/catalog"
	"github.com/jhoicas/tienda-web/pkg/config"
	"github.com/jhoicas/tienda-web/pkg/logger"
)

// AppDeps dependencias para armar la aplicación web.
type AppDeps struct {
	AuthUC    *auth.AuthUseCase
	CatalogUC *catalog.CatalogUseCase
	Session   config.SessionConfig
	AppName   string
	Log       *logger.Logger
}

// NewApp construye la aplicación Fiber completa: motor de plantillas,
// middlewares y rutas. La usan igual el main y los tests de flujo.
func NewApp(deps AppDeps) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      deps.AppName,
		Views:        NewEngine(),
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: errorHandler(deps.Log),
	})
	app.Use(recover.New())
	app.Use(RequestLogger(deps.Log))
	app.Use(CurrentUserMiddleware(deps.Session, deps.AuthUC))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.AppName})
	})

	authHandler := NewAuthHandler(deps.AuthUC, deps.Session, deps.AppName)
	storeHandler := NewStoreHandler(deps.CatalogUC)

	app.Get("/", storeHandler.Home)
	app.Get("/register", authHandler.RegisterForm)
	app.Post("/register", authHandler.Register)
	app.Get("/login", authHandler.LoginForm)
	app.Post("/login", authHandler.Login)
	app.Get("/logout", authHandler.Logout)
	app.Get("/cart/:product_id?", storeHandler.Cart)
	app.Post("/cart/:product_id?", storeHandler.Cart)

	return app
}

// errorHandler responde los errores no recuperados con la página de error.
// Los flujos normales nunca llegan aquí: los fallos esperados se resuelven
// con flash + render o redirect en los handlers.
func errorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			code = fiberErr.Code
		}
		log.Error().Err(err).Str("path", c.Path()).Int("status", code).Msg("error en request")
		c.Status(code)
		if renderErr := c.Render("error", fiber.Map{"Status": code}); renderErr != nil {
			return c.SendString("error interno del servidor")
		}
		return nil
	}
}
