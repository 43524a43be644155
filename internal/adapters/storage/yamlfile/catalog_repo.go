package yamlfile

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"pet-crate-compliance/internal/domain/crates"

	"gopkg.in/yaml.v3"
)

// Formato:
//
//	models:
//	  - model_id: sky-kennel-300
//	    name: Sky Kennel 300
//	    interior: {length: 77, width: 51, height: 54}
//	    max_weight_kg: 16
//	    material: plastic
//	    giant_capable: false
//	    enhanced_ventilation: false
type catalogFile struct {
	Models []crates.CrateCatalogEntry `yaml:"models"`
}

type CatalogRepo struct {
	path string
}

func NewCatalogRepo(path string) *CatalogRepo {
	return &CatalogRepo{path: strings.TrimSpace(path)}
}

// Load lee el archivo completo en cada llamada. Claves desconocidas son error.
func (r *CatalogRepo) Load(ctx context.Context) ([]crates.CrateCatalogEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.path == "" {
		return nil, errors.New("yamlfile: empty catalog path")
	}

	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("yamlfile: read %s: %w", r.path, err)
	}

	return Decode(bytes.NewReader(data))
}

// Decode parsea un catálogo YAML. Un documento vacío es un catálogo vacío.
func Decode(rd io.Reader) ([]crates.CrateCatalogEntry, error) {
	dec := yaml.NewDecoder(rd)
	dec.KnownFields(true)

	var f catalogFile
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return []crates.CrateCatalogEntry{}, nil
		}
		return nil, fmt.Errorf("%w: %v", crates.ErrInvalidCatalog, err)
	}

	if f.Models == nil {
		return []crates.CrateCatalogEntry{}, nil
	}
	return f.Models, nil
}

// Encode escribe el catálogo en el mismo formato que lee Load.
func Encode(w io.Writer, entries []crates.CrateCatalogEntry) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(catalogFile{Models: entries}); err != nil {
		return err
	}
	return enc.Close()
}
