// Package staticcache reads and writes the build-time dictionary cache: a
// single JSON object mapping normalized word keys to meanings.
package staticcache

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/heartmarshall/nazm-backend/internal/domain"
)

// Entries is the in-memory form of the cache file.
type Entries map[string]*domain.WordMeaning

// decode parses the cache file body. Null values and entries without a
// meaning are dropped.
func decode(data []byte) (Entries, error) {
	var raw map[string]*domain.WordMeaning
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	out := make(Entries, len(raw))
	for k, v := range raw {
		if k == "" || v == nil || v.Meaning == "" {
			continue
		}
		out[k] = v
	}
	return out, nil
}

func readEntries(path string) (Entries, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	entries, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("staticcache: decode %s: %w", path, err)
	}
	return entries, nil
}

// ReadFile returns the entries stored at path. A missing file is an empty
// cache. Any other read or parse failure is logged and also yields an empty
// cache, so an incremental build can always proceed.
func ReadFile(path string, logger *slog.Logger) Entries {
	entries, err := readEntries(path)
	if err == nil {
		return entries
	}
	if !errors.Is(err, fs.ErrNotExist) {
		logger.Warn("unable to read existing dictionary cache",
			slog.String("path", path),
			slog.String("error", err.Error()),
		)
	}
	return Entries{}
}

// Encode renders entries deterministically: keys sorted, two-space indent,
// no HTML escaping, trailing newline.
func Encode(entries Entries) ([]byte, error) {
	if entries == nil {
		entries = Entries{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(map[string]*domain.WordMeaning(entries)); err != nil {
		return nil, fmt.Errorf("staticcache: encode: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteFile atomically replaces path with the encoded entries.
func WriteFile(path string, entries Entries) error {
	data, err := Encode(entries)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("staticcache: create dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".dictionary-cache-*.tmp")
	if err != nil {
		return fmt.Errorf("staticcache: create temp: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) //nolint:errcheck

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("staticcache: write: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("staticcache: sync: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("staticcache: close: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("staticcache: chmod: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("staticcache: rename: %w", err)
	}
	return nil
}
