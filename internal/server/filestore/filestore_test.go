package filestore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/avigneron/boutique/internal/server/demo"
)

func TestProducts_RoundTrip(t *testing.T) {
	s := New(t.TempDir())

	got, err := s.LoadProducts()
	require.NoError(t, err)
	require.Nil(t, got, "missing document must read as nil, not error")

	seed := demo.Products()
	require.NoError(t, s.SaveProducts(seed))

	got, err = s.LoadProducts()
	require.NoError(t, err)
	require.Len(t, got, len(seed))
	require.Equal(t, seed[0].Name, got[0].Name)
	require.Equal(t, seed[0].Price, got[0].Price)
}

func TestShopConfig_PreservesAdminSection(t *testing.T) {
	dir := t.TempDir()
	raw := []byte(`{"shop":null,"admin":{"password":"admin123"}}`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"), raw, 0o644))

	s := New(dir)
	require.NoError(t, s.SaveShopConfig(demo.ShopConfig()))

	data, err := os.ReadFile(filepath.Join(dir, "config.json"))
	require.NoError(t, err)

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &doc))
	require.JSONEq(t, `{"password":"admin123"}`, string(doc["admin"]),
		"admin section must survive a shop save")

	cfg, err := s.LoadShopConfig()
	require.NoError(t, err)
	require.Equal(t, "Ma Boutique CBD", cfg.ShopName)
}

func TestLoadShopConfig_MissingFile(t *testing.T) {
	s := New(t.TempDir())
	cfg, err := s.LoadShopConfig()
	require.NoError(t, err)
	require.Nil(t, cfg)
}
