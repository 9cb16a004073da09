package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestParseEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		c, err := parseEnv()
		require.NoError(t, err)
		assert.Equal(t, ":8080", c.ListenAddr)
		assert.Equal(t, "info", c.LogLevel)
		assert.Equal(t, "pl", c.Collation)
		assert.Empty(t, c.MySQLDSN)
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("STOREFRONT_MAX_LINE_QUANTITY", "10")
		t.Setenv("STOREFRONT_REJECT_OUT_OF_STOCK", "true")
		t.Setenv("STOREFRONT_COLLATION", "en")

		c, err := parseEnv()
		require.NoError(t, err)
		opts, err := c.storeOptions()
		require.NoError(t, err)
		assert.Equal(t, 10, opts.MaxLineQuantity)
		assert.True(t, opts.RejectOutOfStock)
		assert.Equal(t, language.English, opts.Collation)
	})

	t.Run("invalid number", func(t *testing.T) {
		t.Setenv("STOREFRONT_MAX_CART_LINES", "many")
		_, err := parseEnv()
		require.Error(t, err)
	})
}

func TestStoreOptionsRejectsBadCollation(t *testing.T) {
	c := &config{Collation: "??"}
	_, err := c.storeOptions()
	require.Error(t, err)
}

func TestSetupLogging(t *testing.T) {
	assert.NoError(t, (&config{LogLevel: "debug"}).setupLogging())
	assert.Error(t, (&config{LogLevel: "loud"}).setupLogging())
}

func TestCatalog(t *testing.T) {
	t.Run("built-in", func(t *testing.T) {
		products, err := (&config{}).catalog()
		require.NoError(t, err)
		assert.Len(t, products, 8)
	})

	t.Run("missing seed file falls back", func(t *testing.T) {
		products, err := (&config{SeedFile: filepath.Join(t.TempDir(), "catalog.json")}).catalog()
		require.NoError(t, err)
		assert.Len(t, products, 8)
	})
}
