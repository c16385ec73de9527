package staticcache

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/nazm-backend/internal/domain"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sampleEntries() Entries {
	return Entries{
		"सागर": {Word: "सागर", Meaning: "sea, ocean", Source: domain.SourceWiktionary},
		"दिल":  {Word: "दिल", Meaning: "heart <core>", Examples: []string{"a & b"}, Source: domain.SourceDictionaryAPI},
	}
}

func TestEncode_Deterministic(t *testing.T) {
	t.Parallel()

	first, err := Encode(sampleEntries())
	require.NoError(t, err)
	second, err := Encode(sampleEntries())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.True(t, bytes.HasSuffix(first, []byte("}\n")), "trailing newline")
	assert.Contains(t, string(first), "\n  \"दिल\": {\n    \"word\"", "two-space indent")
	assert.Contains(t, string(first), "heart <core>", "no HTML escaping")
	assert.Less(t, strings.Index(string(first), `"दिल"`), strings.Index(string(first), `"सागर"`), "keys sorted")
}

func TestEncode_Nil(t *testing.T) {
	t.Parallel()

	data, err := Encode(nil)
	require.NoError(t, err)
	assert.Equal(t, "{}\n", string(data))
}

func TestWriteFile_ReadFile_RoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "public", "dictionary-cache.json")
	require.NoError(t, WriteFile(path, sampleEntries()))

	got := ReadFile(path, discardLogger())
	assert.Equal(t, sampleEntries(), got)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())

	leftovers, err := filepath.Glob(filepath.Join(filepath.Dir(path), ".dictionary-cache-*"))
	require.NoError(t, err)
	assert.Empty(t, leftovers, "temp file must be renamed away")
}

func TestReadFile_MissingIsEmpty(t *testing.T) {
	t.Parallel()

	got := ReadFile(filepath.Join(t.TempDir(), "nope.json"), discardLogger())
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestReadFile_CorruptIsEmptyAndLogged(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "cache.json")
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o644))

	var buf bytes.Buffer
	got := ReadFile(path, slog.New(slog.NewTextHandler(&buf, nil)))
	assert.Empty(t, got)
	assert.Contains(t, buf.String(), "unable to read existing dictionary cache")
}

func TestDecode_DropsUnusableEntries(t *testing.T) {
	t.Parallel()

	got, err := decode([]byte(`{"a": null, "b": {"word": "b", "meaning": ""}, "": {"meaning": "x"}, "c": {"word": "c", "meaning": "sea"}}`))
	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, "sea", got["c"].Meaning)
}
