package repository

import (
	"context"

	"github.com/jhoicas/tienda-web/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// FindByID devuelve (nil, nil) cuando el producto no existe.
// Create solo lo usa el tooling de seed: la aplicación trata el catálogo como lectura.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	FindByID(ctx context.Context, id int64) (*entity.Product, error)
}
