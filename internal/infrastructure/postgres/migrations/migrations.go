// Package migrations incrusta los scripts SQL de esquema y seed
// que goose aplica al arrancar la aplicación.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
