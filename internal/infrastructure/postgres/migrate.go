package postgres

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/jhoicas/tienda-web/internal/infrastructure/postgres/migrations"
)

// RunMigrations aplica las migraciones incrustadas sobre la base de datos.
// Goose trabaja sobre database/sql, por eso abre una conexión stdlib aparte
// del pool pgx y la cierra al terminar.
func RunMigrations(ctx context.Context, dsn string, log goose.Logger) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("abrir conexión para migraciones: %w", err)
	}
	defer db.Close()

	if log != nil {
		goose.SetLogger(log)
	}
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("dialecto goose: %w", err)
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("aplicar migraciones: %w", err)
	}
	return nil
}
