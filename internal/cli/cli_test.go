package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/aska-invoice/internal/bootstrap"
	"github.com/jhoicas/aska-invoice/internal/cli"
	"github.com/jhoicas/aska-invoice/internal/infrastructure/kv"
	"github.com/jhoicas/aska-invoice/internal/infrastructure/storage"
	"github.com/jhoicas/aska-invoice/pkg/config"
)

func newApp(t *testing.T) *bootstrap.App {
	t.Helper()
	cfg := &config.Config{Storage: config.StorageConfig{Driver: config.DriverMemory, Prefix: "aska"}}
	return bootstrap.NewWithBackend(cfg, nil, kv.NewMemoryBackend(), storage.Options{})
}

// run ejecuta la CLI con args y devuelve la salida estándar.
func run(t *testing.T, app *bootstrap.App, args ...string) (string, error) {
	t.Helper()
	cmd := cli.NewRootCommandWithApp(app)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCommandPresence(t *testing.T) {
	cmd := cli.NewRootCommand()
	for _, name := range []string{"seed", "next-number", "totals", "export", "pdf", "settings"} {
		t.Run(name, func(t *testing.T) {
			sub, _, err := cmd.Find([]string{name})
			require.NoError(t, err)
			assert.Equal(t, name, sub.Name())
		})
	}
}

func TestTotals_Texto(t *testing.T) {
	out, err := run(t, newApp(t), "totals", "--tax", "15", "3:50")
	require.NoError(t, err)
	assert.Contains(t, out, "Subtotal:  150.00")
	assert.Contains(t, out, "Impuesto:  22.50")
	assert.Contains(t, out, "Total:     172.50")
}

func TestTotals_JSONConDescuento(t *testing.T) {
	out, err := run(t, newApp(t), "--format", "json", "totals", "--discount", "10", "1:100", "1:33.33")
	require.NoError(t, err)

	var got map[string]float64
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, 133.33, got["subtotal"])
	assert.Equal(t, 13.33, got["discountAmount"])
	assert.Equal(t, 18.0, got["taxAmount"])
	assert.Equal(t, 138.0, got["total"])
}

func TestTotals_ArgumentosInvalidos(t *testing.T) {
	app := newApp(t)
	for _, args := range [][]string{
		{"totals", "3x50"},
		{"totals", "0:50"},
		{"totals", "1:-5"},
		{"totals", "--tax", "101", "1:5"},
		{"--format", "yaml", "totals"},
	} {
		_, err := run(t, app, args...)
		assert.Error(t, err, "%v", args)
	}
}

func TestSeedYNextNumber(t *testing.T) {
	app := newApp(t)

	out, err := run(t, app, "seed")
	require.NoError(t, err)
	assert.Contains(t, out, "datos de ejemplo cargados")

	out, err = run(t, app, "seed")
	require.NoError(t, err)
	assert.Contains(t, out, "ya existen datos")

	out, err = run(t, app, "next-number", "--peek")
	require.NoError(t, err)
	assert.Regexp(t, `INV-\d{4}-0002`, out)

	out, err = run(t, app, "next-number")
	require.NoError(t, err)
	assert.Regexp(t, `INV-\d{4}-0002`, out)

	out, err = run(t, app, "--format", "json", "settings", "show")
	require.NoError(t, err)
	var s map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &s))
	assert.Equal(t, 2.0, s["lastInvoiceNumber"])
}

func TestExportYPDF(t *testing.T) {
	app := newApp(t)
	_, err := run(t, app, "seed")
	require.NoError(t, err)

	dir := t.TempDir()
	xlsxPath := filepath.Join(dir, "out.xlsx")
	_, err = run(t, app, "export", "--out", xlsxPath)
	require.NoError(t, err)
	info, err := os.Stat(xlsxPath)
	require.NoError(t, err)
	assert.Positive(t, info.Size())

	_, err = run(t, app, "pdf", "no-existe", "--out", filepath.Join(dir, "x.pdf"))
	assert.Error(t, err)
}

func TestSettingsReset(t *testing.T) {
	app := newApp(t)
	out, err := run(t, app, "settings", "reset")
	require.NoError(t, err)
	assert.Contains(t, out, "Última factura: 0")
}
