package dto

// ProductView datos del producto para las plantillas.
// Price conserva el texto almacenado; PriceDisplay lo normaliza a dos
// decimales cuando el texto es numérico.
type ProductView struct {
	ID           int64
	Name         string
	Image        string
	Price        string
	PriceDisplay string
}
