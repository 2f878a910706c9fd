package kv

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/jhoicas/aska-invoice/pkg/config"
)

// Open construye el backend indicado por cfg.Storage.Driver.
func Open(ctx context.Context, cfg *config.Config) (Backend, error) {
	switch cfg.Storage.Driver {
	case config.DriverFile, "":
		return NewFileBackend(afero.NewOsFs(), cfg.Storage.Dir)
	case config.DriverMemory:
		return NewMemoryBackend(), nil
	case config.DriverSQLite:
		if dir := filepath.Dir(cfg.Storage.SQLitePath); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("kv sqlite: crear directorio %s: %w", dir, err)
			}
		}
		return OpenSQLite(cfg.Storage.SQLitePath)
	case config.DriverPostgres:
		return OpenPostgres(ctx, cfg.DB)
	case config.DriverRedis:
		return OpenRedis(ctx, cfg.Redis)
	}
	return nil, fmt.Errorf("kv: driver desconocido %q", cfg.Storage.Driver)
}
