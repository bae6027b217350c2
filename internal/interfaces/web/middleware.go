package web

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/tienda-web/internal/application/auth"
	"github.com/jhoicas/tienda-web/internal/application/dto"
	"github.com/jhoicas/tienda-web/pkg/config"
	"github.com/jhoicas/tienda-web/pkg/logger"
	"github.com/jhoicas/tienda-web/pkg/session"
)

// Locals keys en Fiber.
const (
	LocalCurrentUser = "current_user"
	LocalRequestID   = "request_id"
)

// CurrentUserMiddleware resuelve la identidad de cada request desde la cookie
// de sesión y la deja en c.Locals. Cualquier falla (cookie ausente, token
// malformado o forjado, usuario borrado) deja al visitante anónimo; nunca
// tumba el request.
func CurrentUserMiddleware(cfg config.SessionConfig, authUC *auth.AuthUseCase) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(session.CookieName)
		if token == "" {
			return c.Next()
		}
		userID, err := session.Parse(cfg.Secret, token)
		if err != nil {
			return c.Next()
		}
		user, err := authUC.CurrentUser(c.Context(), userID)
		if err != nil || user == nil {
			return c.Next()
		}
		c.Locals(LocalCurrentUser, &dto.UserView{ID: user.ID, Email: user.Email})
		return c.Next()
	}
}

// CurrentUser devuelve el usuario resuelto por el middleware, o nil si el
// visitante es anónimo.
func CurrentUser(c *fiber.Ctx) *dto.UserView {
	v := c.Locals(LocalCurrentUser)
	if v == nil {
		return nil
	}
	u, _ := v.(*dto.UserView)
	return u
}

// RequestLogger registra cada request con un id propio, método, ruta, status y duración.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		reqID := uuid.NewString()
		c.Locals(LocalRequestID, reqID)

		err := c.Next()

		log.Info().
			Str("request_id", reqID).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("duration", time.Since(start)).
			Msg("request")
		return err
	}
}
