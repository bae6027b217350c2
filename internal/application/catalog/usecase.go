package catalog

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-web/internal/application/dto"
	"github.com/jhoicas/tienda-web/internal/domain/entity"
	"github.com/jhoicas/tienda-web/internal/domain/repository"
	"github.com/jhoicas/tienda-web/pkg/logger"
)

// CatalogUseCase lecturas del catálogo y el stub de carrito.
type CatalogUseCase struct {
	repo repository.ProductRepository
	log  *logger.Logger
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(repo repository.ProductRepository, log *logger.Logger) *CatalogUseCase {
	return &CatalogUseCase{repo: repo, log: log}
}

// FeaturedProduct devuelve el producto destacado de la página de inicio (id = 1).
// Devuelve (nil, nil) si no existe; la capa web responde 404.
func (uc *CatalogUseCase) FeaturedProduct(ctx context.Context) (*dto.ProductView, error) {
	return uc.GetProduct(ctx, entity.FeaturedProductID)
}

// GetProduct obtiene un producto por id. Devuelve (nil, nil) si no existe.
func (uc *CatalogUseCase) GetProduct(ctx context.Context, id int64) (*dto.ProductView, error) {
	product, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("consultar producto %d: %w", id, err)
	}
	if product == nil {
		return nil, nil
	}
	return toProductView(product), nil
}

// AddToCart es el stub de "agregar al carrito": busca el producto y registra
// sus campos en el log. No existe entidad de carrito ni se persiste nada;
// la vista se re-renderiza igual que en un GET.
func (uc *CatalogUseCase) AddToCart(ctx context.Context, productID int64) (*dto.ProductView, error) {
	view, err := uc.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	if view == nil {
		uc.log.Warn().Int64("product_id", productID).Msg("agregar al carrito: producto no existe")
		return nil, nil
	}
	uc.log.Info().
		Int64("product_id", view.ID).
		Str("name", view.Name).
		Str("price", view.Price).
		Str("image", view.Image).
		Msg("producto agregado al carrito (sin persistencia)")
	return view, nil
}

// toProductView arma la vista. El precio almacenado es texto sin semántica
// numérica; solo para mostrar se normaliza a dos decimales cuando parsea.
func toProductView(p *entity.Product) *dto.ProductView {
	display := p.Price
	if d, err := decimal.NewFromString(p.Price); err == nil {
		display = d.StringFixed(2)
	}
	return &dto.ProductView{
		ID:           p.ID,
		Name:         p.Name,
		Image:        p.Image,
		Price:        p.Price,
		PriceDisplay: display,
	}
}
