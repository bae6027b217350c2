package entity

// FeaturedProductID id del producto destacado que muestra la página de inicio.
const FeaturedProductID int64 = 1

// Product representa una entrada del catálogo. Se crea fuera de banda
// (seed/admin) y la aplicación solo lo lee.
// Price se guarda como texto: el modelo no impone semántica numérica ni de moneda.
type Product struct {
	ID    int64
	Name  string // único
	Image string // URL de la imagen
	Price string
}
