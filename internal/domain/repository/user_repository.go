package repository

import (
	"context"

	"github.com/jhoicas/tienda-web/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// FindByEmail y FindByID devuelven (nil, nil) cuando el usuario no existe.
// Create debe mapear la violación del constraint único de email a
// domain.ErrEmailAlreadyExists: la unicidad la garantiza la base de datos,
// no un check de aplicación.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id int64) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}
