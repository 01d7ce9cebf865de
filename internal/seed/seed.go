// Package seed provides the bootstrap dataset for the application. The
// default dataset is embedded; alternative datasets load from YAML. Helpers
// to fabricate larger demo catalogs live in factories.go.
package seed

import (
	_ "embed"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"launchpad/internal/store"
)

//go:embed seed.yaml
var defaultSeed []byte

// Default returns the embedded bootstrap dataset.
func Default() (store.Dataset, error) {
	return parse(defaultSeed)
}

// Load parses a YAML dataset from r.
func Load(r io.Reader) (store.Dataset, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return store.Dataset{}, fmt.Errorf("read seed: %w", err)
	}
	return parse(raw)
}

// LoadFile parses a YAML dataset from path. An empty path falls back to the
// embedded default.
func LoadFile(path string) (store.Dataset, error) {
	if path == "" {
		return Default()
	}
	f, err := os.Open(path)
	if err != nil {
		return store.Dataset{}, fmt.Errorf("open seed file: %w", err)
	}
	defer f.Close()
	return Load(f)
}

func parse(raw []byte) (store.Dataset, error) {
	var ds store.Dataset
	if err := yaml.Unmarshal(raw, &ds); err != nil {
		return store.Dataset{}, fmt.Errorf("decode seed: %w", err)
	}
	return ds, nil
}
