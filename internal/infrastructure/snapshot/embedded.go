// Package snapshot carga las instantáneas del reporte embebidas en el binario
// (YAML bajo data/). Son la fuente por defecto del dashboard.
package snapshot

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/jhoicas/wallet-dashboard/internal/domain/entity"
)

//go:embed data/*.yaml
var dataFS embed.FS

// EmbeddedSource implementa repository.ReportSource sobre los YAML embebidos.
type EmbeddedSource struct {
	fsys fs.FS
	dir  string
}

// NewEmbeddedSource fuente con los reportes compilados en el binario.
func NewEmbeddedSource() *EmbeddedSource {
	return &EmbeddedSource{fsys: dataFS, dir: "data"}
}

// NewFSSource fuente sobre cualquier fs.FS (tests, directorios externos).
func NewFSSource(fsys fs.FS, dir string) *EmbeddedSource {
	return &EmbeddedSource{fsys: fsys, dir: dir}
}

// LoadReports decodifica todos los .yaml del directorio, ordenados por nombre de archivo.
func (s *EmbeddedSource) LoadReports() ([]entity.Report, error) {
	entries, err := fs.ReadDir(s.fsys, s.dir)
	if err != nil {
		return nil, fmt.Errorf("snapshot.LoadReports: %w", err)
	}
	var files []string
	for _, e := range entries {
		if !e.IsDir() && path.Ext(e.Name()) == ".yaml" {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)

	reports := make([]entity.Report, 0, len(files))
	for _, name := range files {
		raw, err := fs.ReadFile(s.fsys, path.Join(s.dir, name))
		if err != nil {
			return nil, fmt.Errorf("snapshot.LoadReports %s: %w", name, err)
		}
		r, err := Decode(raw)
		if err != nil {
			return nil, fmt.Errorf("snapshot.LoadReports %s: %w", name, err)
		}
		reports = append(reports, r)
	}
	return reports, nil
}

// Decode parsea un reporte YAML. Campos desconocidos son error.
func Decode(raw []byte) (entity.Report, error) {
	var r entity.Report
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&r); err != nil {
		if errors.Is(err, io.EOF) {
			return entity.Report{}, fmt.Errorf("snapshot.Decode: documento vacío")
		}
		return entity.Report{}, fmt.Errorf("snapshot.Decode: %w", err)
	}
	if r.Name == "" {
		return entity.Report{}, fmt.Errorf("snapshot.Decode: campo name requerido")
	}
	return r, nil
}
