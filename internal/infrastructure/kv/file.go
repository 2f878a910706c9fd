package kv

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

var _ Backend = (*FileBackend)(nil)

// FileBackend guarda cada clave en <dir>/<clave>.json.
// La escritura va a un temporal y luego se renombra, así un corte a mitad no deja JSON truncado.
type FileBackend struct {
	fs  afero.Fs
	dir string
}

// NewFileBackend crea el directorio si no existe.
func NewFileBackend(fsys afero.Fs, dir string) (*FileBackend, error) {
	if err := fsys.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("kv file: crear directorio %s: %w", dir, err)
	}
	return &FileBackend{fs: fsys, dir: dir}, nil
}

// NewMemoryBackend backend file sobre un sistema de archivos en memoria.
func NewMemoryBackend() *FileBackend {
	return &FileBackend{fs: afero.NewMemMapFs(), dir: "/"}
}

func (b *FileBackend) path(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return "", fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return filepath.Join(b.dir, key+".json"), nil
}

func (b *FileBackend) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	p, err := b.path(key)
	if err != nil {
		return "", false, err
	}
	data, err := afero.ReadFile(b.fs, p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("kv file: leer %s: %w", key, err)
	}
	return string(data), true, nil
}

func (b *FileBackend) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p, err := b.path(key)
	if err != nil {
		return err
	}
	tmp := p + ".tmp"
	if err := afero.WriteFile(b.fs, tmp, []byte(value), 0o644); err != nil {
		return fmt.Errorf("kv file: escribir %s: %w", key, err)
	}
	if err := b.fs.Rename(tmp, p); err != nil {
		_ = b.fs.Remove(tmp)
		return fmt.Errorf("kv file: renombrar %s: %w", key, err)
	}
	return nil
}

func (b *FileBackend) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p, err := b.path(key)
	if err != nil {
		return err
	}
	if err := b.fs.Remove(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("kv file: borrar %s: %w", key, err)
	}
	return nil
}

func (b *FileBackend) Close() error { return nil }
