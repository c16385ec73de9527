package staticcache

import (
	"errors"
	"io/fs"
	"log/slog"
	"sync"

	"github.com/heartmarshall/nazm-backend/internal/domain"
)

// Reader serves lookups from the cache file, loading it on first use.
// A missing or unparseable file is treated as an empty cache and logged once.
type Reader struct {
	path string
	log  *slog.Logger

	once    sync.Once
	entries Entries
	err     error
}

// NewReader creates a Reader for path. Nothing is read until the first call.
func NewReader(path string, logger *slog.Logger) *Reader {
	return &Reader{path: path, log: logger.With("adapter", "staticcache")}
}

func (r *Reader) load() {
	r.once.Do(func() {
		entries, err := readEntries(r.path)
		if err != nil {
			r.err = err
			r.entries = Entries{}
			msg := "static cache unreadable, using live lookups only"
			if errors.Is(err, fs.ErrNotExist) {
				msg = "static cache missing, using live lookups only"
			}
			r.log.Warn(msg, slog.String("path", r.path), slog.String("error", err.Error()))
			return
		}
		r.entries = entries
		r.log.Info("static cache loaded", slog.String("path", r.path), slog.Int("entries", len(entries)))
	})
}

// Lookup returns a copy of the entry stored under the normalized key.
func (r *Reader) Lookup(key string) (*domain.WordMeaning, bool) {
	r.load()
	m, ok := r.entries[key]
	if !ok {
		return nil, false
	}
	return m.Clone(), true
}

// Len returns the number of entries, loading the file if needed.
func (r *Reader) Len() int {
	r.load()
	return len(r.entries)
}

// Loaded reports whether the file was read successfully.
func (r *Reader) Loaded() bool {
	r.load()
	return r.err == nil
}

// Err returns the load failure, if any, loading the file if needed.
func (r *Reader) Err() error {
	r.load()
	return r.err
}

// Path returns the file the Reader serves.
func (r *Reader) Path() string { return r.path }
