package entity

// User representa un usuario registrado de la tienda.
// El email es la llave de login (único, coincidencia exacta).
type User struct {
	ID           int64
	Email        string
	PasswordHash string // hash bcrypt, nunca el password plano
}
