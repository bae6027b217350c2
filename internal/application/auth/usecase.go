package auth

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/tienda-web/internal/domain"
	"github.com/jhoicas/tienda-web/internal/domain/entity"
	"github.com/jhoicas/tienda-web/internal/domain/repository"
)

// AuthUseCase casos de uso de autenticación: registro y login.
// La resolución de identidad por request vive en la capa web; aquí solo
// se decide si unas credenciales crean o identifican a un usuario.
type AuthUseCase struct {
	userRepo repository.UserRepository
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo}
}

// Register crea un usuario: verifica existencia antes de hashear (para no
// quemar un bcrypt en vano), hashea con bcrypt y persiste. Devuelve
// ErrEmailAlreadyExists si el email ya existe; el constraint único de la
// base de datos cubre la carrera entre el check y el insert.
func (uc *AuthUseCase) Register(ctx context.Context, email, password string) (*entity.User, error) {
	existing, err := uc.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("buscar email existente: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashear password: %w", err)
	}
	user := &entity.User{
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifica email/password. La existencia del email se comprueba
// siempre antes que el password: un email desconocido devuelve
// ErrUserNotFound y un password errado ErrIncorrectPassword.
func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (*entity.User, error) {
	user, err := uc.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("buscar usuario: %w", err)
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrIncorrectPassword
	}
	return user, nil
}

// CurrentUser resuelve el id extraído del token de sesión a un usuario.
// Devuelve (nil, nil) si el usuario ya no existe: el visitante queda anónimo.
func (uc *AuthUseCase) CurrentUser(ctx context.Context, userID int64) (*entity.User, error) {
	return uc.userRepo.FindByID(ctx, userID)
}
