package web

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/gofiber/template/html/v2"
)

//go:embed templates/*.html
var templatesFS embed.FS

// NewEngine construye el motor de plantillas HTML sobre los templates
// incrustados, para que el binario no dependa de archivos en disco.
func NewEngine() *html.Engine {
	sub, err := fs.Sub(templatesFS, "templates")
	if err != nil {
		// El embed es parte del binario; si falta es un error de compilación.
		panic("templates incrustados: " + err.Error())
	}
	return html.NewFileSystem(http.FS(sub), ".html")
}
