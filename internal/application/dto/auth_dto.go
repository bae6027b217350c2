package dto

// RegisterRequest entrada del formulario de registro (password en texto, se hashea en el use case).
// El comportamiento original no valida email ni password vacíos y se conserva tal cual;
// el esquema explícito solo reemplaza el acceso duck-typed al form.
type RegisterRequest struct {
	Email    string `form:"email"`
	Password string `form:"password"`
}

// LoginRequest entrada del formulario de login.
type LoginRequest struct {
	Email    string `form:"email"`
	Password string `form:"password"`
}

// UserView datos del usuario visibles en las plantillas (sin hash).
type UserView struct {
	ID    int64
	Email string
}
