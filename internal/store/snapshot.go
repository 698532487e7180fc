// Package store owns the canonical in-memory collections of the
// cafeteria system and mirrors each of them to a flat JSON file. Every
// mutation rewrites the whole snapshot; every store guards its
// read-modify-persist sequence with its own lock.
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"
)

func init() {
	// Money fields persist as JSON numbers, matching the historical
	// snapshot files.
	decimal.MarshalJSONWithoutQuotes = true
}

// cargarSnapshot reads a full JSON-array snapshot. A missing file is
// created as an empty snapshot so the data directory always exists
// after the first load; a blank file yields an empty collection.
func cargarSnapshot[T any](path string) ([]T, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		if err := guardarSnapshot[T](path, nil); err != nil {
			return nil, err
		}
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// guardarSnapshot rewrites the whole collection, pretty-printed. The
// write goes to a temp file renamed into place, so a crash mid-write
// leaves the previous snapshot intact.
func guardarSnapshot[T any](path string, items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.MarshalIndent(items, "", "    ")
	if err != nil {
		return err
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return err
	}
	defer func() { _ = os.Remove(tmp.Name()) }()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
