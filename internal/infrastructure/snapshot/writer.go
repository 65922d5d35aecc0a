// Package snapshot persiste el dataset generado como un archivo JSON con
// marca de tiempo, manteniendo un único archivo por ejecución.
package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	filePrefix = "mock_data_"
	fileExt    = ".json"
)

// Write serializa v con indentación y lo escribe en
// <dir>/mock_data_<YYYYMMDD_HHMMSS>.json, creando el directorio si no existe
// y eliminando antes los snapshots de ejecuciones anteriores. Devuelve la
// ruta del archivo escrito.
func Write(dir string, v any) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("crear directorio de snapshots: %w", err)
	}

	Prune(dir)

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("serializar snapshot: %w", err)
	}

	path := filepath.Join(dir, filePrefix+time.Now().Format("20060102_150405")+fileExt)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("escribir snapshot: %w", err)
	}
	return path, nil
}

// Prune elimina los snapshots existentes en dir. Un fallo al borrar un
// archivo se registra como warning y no interrumpe la ejecución.
func Prune(dir string) {
	matches, err := filepath.Glob(filepath.Join(dir, filePrefix+"*"+fileExt))
	if err != nil {
		return
	}
	for _, path := range matches {
		if err := os.Remove(path); err != nil {
			log.Warn().Err(err).Str("file", path).Msg("no se pudo eliminar snapshot anterior")
		}
	}
}
