package adapter

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleCollection = `{
	"info": {"name": "Sample API", "schema": "https://schema.getpostman.com/json/collection/v2.1.0/collection.json"},
	"item": [{
		"name": "GET /users",
		"request": {"method": "GET", "url": "https://api.example.com/users"}
	}]
}`

func TestDecodeCollection(t *testing.T) {
	store := NewFileCollectionStore()

	c, err := store.Decode(strings.NewReader(sampleCollection))
	require.NoError(t, err)
	require.Equal(t, "Sample API", c.Info.Name)
	require.Len(t, c.Item, 1)
	require.Equal(t, "GET /users", c.Item[0].Name)
}

func TestDecodeInvalidJSON(t *testing.T) {
	store := NewFileCollectionStore()

	_, err := store.Decode(strings.NewReader("{not json"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "parse collection")
}

func TestLoadMissingFile(t *testing.T) {
	store := NewFileCollectionStore()

	_, err := store.Load(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "open collection")
}

func TestLoadWriteRoundTrip(t *testing.T) {
	store := NewFileCollectionStore()
	dir := t.TempDir()

	source := filepath.Join(dir, "collection.json")
	require.NoError(t, os.WriteFile(source, []byte(sampleCollection), 0o644))

	c, err := store.Load(source)
	require.NoError(t, err)

	target := filepath.Join(dir, "out.json")
	require.NoError(t, store.Write(target, c))

	written, err := os.ReadFile(target)
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(string(written), "\n"))

	reloaded, err := store.Load(target)
	require.NoError(t, err)
	require.Equal(t, c, reloaded)
}

func TestLoadRulesConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"version": "1.0",
		"enabledRules": ["test-http-status-mandatory", "hardcoded-secrets"],
		"customTemplates": {"overview": "# Overview"}
	}`), 0o644))

	cfg, err := LoadRulesConfig(path)
	require.NoError(t, err)
	require.Equal(t, "1.0", cfg.Version)
	require.Equal(t, []string{"test-http-status-mandatory", "hardcoded-secrets"}, cfg.EnabledRules)
	require.Equal(t, "# Overview", cfg.CustomTemplates["overview"])
}

func TestLoadRulesConfigMissing(t *testing.T) {
	_, err := LoadRulesConfig(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
}
