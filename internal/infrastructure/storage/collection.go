// Package storage implementa el Record Store genérico y el Settings Store sobre un kv.Backend.
// Cada colección vive serializada como un único arreglo JSON en su namespace y toda
// mutación reescribe el arreglo completo.
package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/aska-invoice/internal/infrastructure/kv"
	"github.com/jhoicas/aska-invoice/pkg/logger"
)

// Record restricción de tipo para las entidades persistidas en una Collection.
type Record[T any] interface {
	*T
	RecordID() string
	Stamp(id string, createdAt time.Time)
	Touch(updatedAt time.Time)
}

// Patch actualización tipada de una entidad: solo modifica los campos que trae.
type Patch[T any] interface {
	Apply(*T)
}

// Options colaboradores externos de las colecciones (reloj y generador de IDs).
type Options struct {
	Now   func() time.Time
	NewID func() string
	Log   *logger.Logger
}

func (o Options) withDefaults() Options {
	if o.Now == nil {
		o.Now = func() time.Time { return time.Now().UTC() }
	}
	if o.NewID == nil {
		o.NewID = uuid.NewString
	}
	if o.Log == nil {
		o.Log = logger.Nop()
	}
	return o
}

// Collection CRUD genérico sobre un namespace del backend.
// mu serializa los ciclos leer-modificar-escribir dentro del proceso; entre procesos gana el último escritor.
type Collection[T any, PT Record[T]] struct {
	backend kv.Backend
	key     string
	opts    Options
	mu      sync.Mutex
}

// NewCollection construye la colección para el namespace key.
func NewCollection[T any, PT Record[T]](backend kv.Backend, key string, opts Options) *Collection[T, PT] {
	opts = opts.withDefaults()
	opts.Log = opts.Log.Component("storage")
	return &Collection[T, PT]{backend: backend, key: key, opts: opts}
}

// Key namespace de la colección.
func (c *Collection[T, PT]) Key() string { return c.key }

// All devuelve todos los registros en orden de inserción.
// Namespace ausente o JSON corrupto → lista vacía (la corrupción solo se registra en el log).
func (c *Collection[T, PT]) All(ctx context.Context) ([]T, error) {
	return c.load(ctx)
}

// Get búsqueda lineal por ID; (nil, nil) si no existe.
func (c *Collection[T, PT]) Get(ctx context.Context, id string) (*T, error) {
	items, err := c.load(ctx)
	if err != nil {
		return nil, err
	}
	if i := indexOf[T, PT](items, id); i >= 0 {
		return &items[i], nil
	}
	return nil, nil
}

// Create asigna ID y createdAt, agrega al final y persiste la colección completa.
func (c *Collection[T, PT]) Create(ctx context.Context, rec T) (*T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.load(ctx)
	if err != nil {
		return nil, err
	}
	PT(&rec).Stamp(c.opts.NewID(), c.opts.Now())
	items = append(items, rec)
	if err := c.save(ctx, items); err != nil {
		return nil, err
	}
	c.opts.Log.Debug().Str("key", c.key).Str("id", PT(&rec).RecordID()).Msg("registro creado")
	return &rec, nil
}

// Update aplica patch sobre el registro id, marca updatedAt y persiste.
// Si el registro no existe devuelve (nil, nil) sin escribir.
func (c *Collection[T, PT]) Update(ctx context.Context, id string, patch Patch[T]) (*T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.load(ctx)
	if err != nil {
		return nil, err
	}
	i := indexOf[T, PT](items, id)
	if i < 0 {
		return nil, nil
	}
	patch.Apply(&items[i])
	PT(&items[i]).Touch(c.opts.Now())
	if err := c.save(ctx, items); err != nil {
		return nil, err
	}
	updated := items[i]
	return &updated, nil
}

// Delete elimina el registro id. Devuelve false (sin escribir) si no existía.
func (c *Collection[T, PT]) Delete(ctx context.Context, id string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.load(ctx)
	if err != nil {
		return false, err
	}
	i := indexOf[T, PT](items, id)
	if i < 0 {
		return false, nil
	}
	items = append(items[:i], items[i+1:]...)
	if err := c.save(ctx, items); err != nil {
		return false, err
	}
	c.opts.Log.Debug().Str("key", c.key).Str("id", id).Msg("registro eliminado")
	return true, nil
}

// Replace sustituye la colección completa (importación y datos de ejemplo).
func (c *Collection[T, PT]) Replace(ctx context.Context, items []T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.save(ctx, items)
}

func (c *Collection[T, PT]) load(ctx context.Context) ([]T, error) {
	raw, found, err := c.backend.Get(ctx, c.key)
	if err != nil {
		return nil, fmt.Errorf("storage: leer %s: %w", c.key, err)
	}
	if !found || raw == "" {
		return []T{}, nil
	}
	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		c.opts.Log.Warn().Err(err).Str("key", c.key).Msg("datos corruptos, se usa colección vacía")
		return []T{}, nil
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func (c *Collection[T, PT]) save(ctx context.Context, items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("storage: serializar %s: %w", c.key, err)
	}
	if err := c.backend.Set(ctx, c.key, string(data)); err != nil {
		return fmt.Errorf("storage: guardar %s: %w", c.key, err)
	}
	return nil
}

func indexOf[T any, PT Record[T]](items []T, id string) int {
	for i := range items {
		if PT(&items[i]).RecordID() == id {
			return i
		}
	}
	return -1
}
