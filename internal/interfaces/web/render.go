package web

import "github.com/gofiber/fiber/v2"

// render envuelve c.Render inyectando lo que toda plantilla espera:
// el usuario actual (o nil para anónimo) y el flash pendiente.
// Un Flash pasado explícitamente en data tiene prioridad y no consume cookie.
func render(c *fiber.Ctx, name string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	data["CurrentUser"] = CurrentUser(c)
	if _, ok := data["Flash"]; !ok {
		if msg := popFlash(c); msg != "" {
			data["Flash"] = msg
		}
	}
	return c.Render(name, data)
}

// renderNotFound responde 404 con la página de no encontrado.
func renderNotFound(c *fiber.Ctx, message string) error {
	c.Status(fiber.StatusNotFound)
	return render(c, "404", fiber.Map{"Message": message})
}
