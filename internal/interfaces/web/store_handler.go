package web

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-web/internal/application/catalog"
	"github.com/jhoicas/tienda-web/internal/application/dto"
)

// StoreHandler maneja la página de inicio y el carrito.
type StoreHandler struct {
	uc *catalog.CatalogUseCase
}

// NewStoreHandler construye el handler de la tienda.
func NewStoreHandler(uc *catalog.CatalogUseCase) *StoreHandler {
	return &StoreHandler{uc: uc}
}

// Home renderiza el inicio con el producto destacado (id = 1).
// Si el producto no existe el request completo responde 404.
func (h *StoreHandler) Home(c *fiber.Ctx) error {
	product, err := h.uc.FeaturedProduct(c.Context())
	if err != nil {
		return err
	}
	if product == nil {
		return renderNotFound(c, "El producto destacado no existe")
	}
	return render(c, "index", fiber.Map{"Product": product})
}

// Cart renderiza la vista del carrito, con o sin producto en contexto.
// Un POST con id busca el producto y lo registra en el log; no existe
// carrito persistente, la vista se re-renderiza igual.
func (h *StoreHandler) Cart(c *fiber.Ctx) error {
	raw := c.Params("product_id")

	var productID int64
	hasID := raw != ""
	if hasID {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			// Ruta con id no numérico: no hay recurso que mostrar
			return renderNotFound(c, "Producto no encontrado")
		}
		productID = id
	}

	var product *dto.ProductView
	if c.Method() == fiber.MethodPost && hasID {
		view, err := h.uc.AddToCart(c.Context(), productID)
		if err != nil {
			return err
		}
		product = view
	}

	data := fiber.Map{}
	if hasID {
		data["ProductID"] = productID
	}
	if product != nil {
		data["Product"] = product
	}
	return render(c, "cart", data)
}
