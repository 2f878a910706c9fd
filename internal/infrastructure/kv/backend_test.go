package kv_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/aska-invoice/internal/infrastructure/kv"
	"github.com/jhoicas/aska-invoice/pkg/config"
)

// runContract verifica el comportamiento común a todos los drivers.
func runContract(t *testing.T, b kv.Backend) {
	t.Helper()
	ctx := context.Background()

	_, found, err := b.Get(ctx, "aska.customers")
	require.NoError(t, err)
	assert.False(t, found, "una clave inexistente no debe encontrarse")

	require.NoError(t, b.Set(ctx, "aska.customers", `[{"id":"1"}]`))
	val, found, err := b.Get(ctx, "aska.customers")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `[{"id":"1"}]`, val)

	require.NoError(t, b.Set(ctx, "aska.customers", `[]`))
	val, _, err = b.Get(ctx, "aska.customers")
	require.NoError(t, err)
	assert.Equal(t, `[]`, val, "Set debe sobrescribir el valor completo")

	require.NoError(t, b.Set(ctx, "aska.settings", `{"lastInvoiceNumber":3}`))
	require.NoError(t, b.Delete(ctx, "aska.customers"))
	_, found, err = b.Get(ctx, "aska.customers")
	require.NoError(t, err)
	assert.False(t, found)

	_, found, err = b.Get(ctx, "aska.settings")
	require.NoError(t, err)
	assert.True(t, found, "Delete no debe tocar otras claves")

	require.NoError(t, b.Delete(ctx, "no.existe"), "borrar una clave inexistente no es error")

	_, _, err = b.Get(ctx, "")
	assert.ErrorIs(t, err, kv.ErrInvalidKey)
}

func TestMemoryBackend(t *testing.T) {
	b := kv.NewMemoryBackend()
	defer b.Close()
	runContract(t, b)
}

func TestFileBackend_MemMapFs(t *testing.T) {
	b, err := kv.NewFileBackend(afero.NewMemMapFs(), "/data")
	require.NoError(t, err)
	runContract(t, b)
}

func TestFileBackend_EscribeArchivoJSON(t *testing.T) {
	fsys := afero.NewMemMapFs()
	b, err := kv.NewFileBackend(fsys, "/data")
	require.NoError(t, err)

	require.NoError(t, b.Set(context.Background(), "aska.invoices", `[]`))

	data, err := afero.ReadFile(fsys, "/data/aska.invoices.json")
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(data))

	exists, err := afero.Exists(fsys, "/data/aska.invoices.json.tmp")
	require.NoError(t, err)
	assert.False(t, exists, "no debe quedar el temporal")
}

func TestFileBackend_RechazaRutas(t *testing.T) {
	b := kv.NewMemoryBackend()
	err := b.Set(context.Background(), "../etc/passwd", "x")
	assert.ErrorIs(t, err, kv.ErrInvalidKey)
}

func TestFileBackend_ContextoCancelado(t *testing.T) {
	b := kv.NewMemoryBackend()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := b.Get(ctx, "aska.customers")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSQLiteBackend(t *testing.T) {
	b, err := kv.OpenSQLite(filepath.Join(t.TempDir(), "aska.db"))
	require.NoError(t, err)
	defer b.Close()
	runContract(t, b)
}

func TestSQLiteBackend_PersisteEntreAperturas(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aska.db")
	b, err := kv.OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, b.Set(context.Background(), "aska.settings", `{}`))
	require.NoError(t, b.Close())

	b, err = kv.OpenSQLite(path)
	require.NoError(t, err)
	defer b.Close()
	val, found, err := b.Get(context.Background(), "aska.settings")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `{}`, val)
}

// Los drivers de red solo se prueban si hay un servidor disponible.
func TestPostgresBackend(t *testing.T) {
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL no definido")
	}
	ctx := context.Background()
	b, err := kv.OpenPostgres(ctx, config.DBConfig{DatabaseURL: url})
	require.NoError(t, err)
	defer b.Close()
	_ = b.Delete(ctx, "aska.customers")
	_ = b.Delete(ctx, "aska.settings")
	runContract(t, b)
}

func TestRedisBackend(t *testing.T) {
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR no definido")
	}
	ctx := context.Background()
	b, err := kv.OpenRedis(ctx, config.RedisConfig{Addr: addr})
	require.NoError(t, err)
	defer b.Close()
	_ = b.Delete(ctx, "aska.customers")
	_ = b.Delete(ctx, "aska.settings")
	runContract(t, b)
}

func TestOpen_Memory(t *testing.T) {
	b, err := kv.Open(context.Background(), &config.Config{Storage: config.StorageConfig{Driver: config.DriverMemory}})
	require.NoError(t, err)
	assert.IsType(t, &kv.FileBackend{}, b)
}

func TestOpen_DriverDesconocido(t *testing.T) {
	_, err := kv.Open(context.Background(), &config.Config{Storage: config.StorageConfig{Driver: "mongo"}})
	assert.Error(t, err)
}
