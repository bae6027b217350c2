// seed carga productos al catálogo desde un archivo JSON. Los productos se
// crean fuera de banda (la aplicación web solo los lee); este comando es la
// herramienta de administración que los inserta.
//
// Uso: go run ./cmd/seed [ruta/products.json]
// Por defecto busca products.json en el directorio actual.
//
// Formato: [{"name": "...", "image": "...", "price": "..."}]
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/jhoicas/tienda-web/internal/domain"
	"github.com/jhoicas/tienda-web/internal/domain/entity"
	"github.com/jhoicas/tienda-web/internal/infrastructure/postgres"
	"github.com/jhoicas/tienda-web/pkg/config"
)

type seedProduct struct {
	Name  string `json:"name"`
	Image string `json:"image"`
	Price string `json:"price"`
}

func main() {
	path := "products.json"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer %s: %v\n", path, err)
		os.Exit(1)
	}
	var products []seedProduct
	if err := json.Unmarshal(data, &products); err != nil {
		fmt.Fprintf(os.Stderr, "Decodificar JSON: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	repo := postgres.NewProductRepository(pool)
	inserted, skipped := 0, 0
	for _, p := range products {
		product := &entity.Product{Name: p.Name, Image: p.Image, Price: p.Price}
		if err := repo.Create(ctx, product); err != nil {
			if errors.Is(err, domain.ErrDuplicate) {
				skipped++
				continue
			}
			fmt.Fprintf(os.Stderr, "Insertar %q: %v\n", p.Name, err)
			os.Exit(1)
		}
		inserted++
	}
	fmt.Printf("Productos insertados: %d, omitidos por duplicado: %d\n", inserted, skipped)
}
