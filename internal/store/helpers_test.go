package store

import (
	"os"
	"path/filepath"
)

func escribirArchivo(ruta, contenido string) error {
	if err := os.MkdirAll(filepath.Dir(ruta), 0o755); err != nil {
		return err
	}
	return os.WriteFile(ruta, []byte(contenido), 0o644)
}
