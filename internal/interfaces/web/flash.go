package web

import (
	"net/url"
	"time"

	"github.com/gofiber/fiber/v2"
)

// flashCookie cookie de un solo uso para mensajes que deben sobrevivir un redirect.
const flashCookie = "flash"

// setFlash guarda un mensaje para mostrarlo en el siguiente render.
// El valor va URL-escapado porque las cookies no admiten espacios ni tildes.
func setFlash(c *fiber.Ctx, message string) {
	c.Cookie(&fiber.Cookie{
		Name:     flashCookie,
		Value:    url.QueryEscape(message),
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// popFlash lee el mensaje pendiente y lo borra: un flash se muestra una sola vez.
func popFlash(c *fiber.Ctx) string {
	raw := c.Cookies(flashCookie)
	if raw == "" {
		return ""
	}
	c.Cookie(&fiber.Cookie{
		Name:     flashCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	msg, err := url.QueryUnescape(raw)
	if err != nil {
		return ""
	}
	return msg
}
