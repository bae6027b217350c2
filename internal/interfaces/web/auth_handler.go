package web

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-web/internal/application/auth"
	"github.com/jhoicas/tienda-web/internal/application/dto"
	"github.com/jhoicas/tienda-web/internal/domain"
	"github.com/jhoicas/tienda-web/pkg/config"
	"github.com/jhoicas/tienda-web/pkg/session"
)

// Mensajes visibles para el usuario en los flujos de auth.
const (
	msgEmailExists       = "El correo ya está registrado, inicia sesión"
	msgEmailNotFound     = "El correo no está registrado. Intenta de nuevo o regístrate"
	msgIncorrectPassword = "La contraseña es incorrecta. Intenta de nuevo"
)

// AuthHandler maneja registro, login y logout.
type AuthHandler struct {
	uc      *auth.AuthUseCase
	session config.SessionConfig
	issuer  string
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, sessionCfg config.SessionConfig, issuer string) *AuthHandler {
	return &AuthHandler{uc: uc, session: sessionCfg, issuer: issuer}
}

// RegisterForm renderiza el formulario de registro.
func (h *AuthHandler) RegisterForm(c *fiber.Ctx) error {
	return render(c, "register", nil)
}

// Register ejecuta el flujo de registro: si el email ya existe, flash y
// redirect a /login; si no, crea el usuario, establece la sesión y
// redirige al inicio. Email y password vacíos pasan tal cual, como en el
// comportamiento original.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	// Un body vacío o sin campos equivale a strings vacíos; no se valida
	_ = c.BodyParser(&in)

	user, err := h.uc.Register(c.Context(), in.Email, in.Password)
	if err != nil {
		if errors.Is(err, domain.ErrEmailAlreadyExists) {
			setFlash(c, msgEmailExists)
			return c.Redirect("/login", fiber.StatusSeeOther)
		}
		return err
	}
	if err := h.establishSession(c, user.ID); err != nil {
		return err
	}
	return c.Redirect("/", fiber.StatusSeeOther)
}

// LoginForm renderiza el formulario de login.
func (h *AuthHandler) LoginForm(c *fiber.Ctx) error {
	return render(c, "login", nil)
}

// Login ejecuta el flujo de login. La existencia del email se reporta antes
// de verificar el password; ambos fallos re-renderizan el formulario con el
// mensaje (HTTP 200, sin redirect).
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	_ = c.BodyParser(&in)

	user, err := h.uc.Login(c.Context(), in.Email, in.Password)
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return render(c, "login", fiber.Map{"Flash": msgEmailNotFound})
	case errors.Is(err, domain.ErrIncorrectPassword):
		return render(c, "login", fiber.Map{"Flash": msgIncorrectPassword})
	case err != nil:
		return err
	}
	if err := h.establishSession(c, user.ID); err != nil {
		return err
	}
	return c.Redirect("/", fiber.StatusSeeOther)
}

// Logout limpia la identidad incondicionalmente (no-op para anónimos) y
// redirige al inicio.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	clearSessionCookie(c)
	return c.Redirect("/", fiber.StatusFound)
}

// establishSession emite el token firmado y lo deja en la cookie de sesión.
// Sin Expires: la cookie dura la sesión del navegador; el token además
// expira por su cuenta.
func (h *AuthHandler) establishSession(c *fiber.Ctx, userID int64) error {
	token, err := session.Issue(h.session.Secret, userID, h.issuer, h.session.ExpMinutes)
	if err != nil {
		return err
	}
	c.Cookie(&fiber.Cookie{
		Name:        session.CookieName,
		Value:       token,
		Path:        "/",
		HTTPOnly:    true,
		SameSite:    fiber.CookieSameSiteLaxMode,
		SessionOnly: true,
	})
	return nil
}

// clearSessionCookie expira la cookie de sesión.
func clearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     session.CookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}
