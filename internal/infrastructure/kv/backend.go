// Package kv implementa el primitivo de almacenamiento clave→string sobre el que viven
// las colecciones JSON (clientes, facturas, configuración).
//
// Drivers disponibles:
//
//	file      un archivo <clave>.json por namespace (afero, OS o memoria)
//	memory    driver file sobre afero.MemMapFs
//	sqlite    tabla kv_store en SQLite (mattn/go-sqlite3)
//	postgres  tabla kv_store en PostgreSQL (pgx)
//	redis     GET/SET/DEL (go-redis)
package kv

import (
	"context"
	"errors"
)

// ErrInvalidKey clave vacía o con caracteres no permitidos.
var ErrInvalidKey = errors.New("kv: clave inválida")

// Backend lectura/escritura de valores serializados por clave.
// Get devuelve found=false (sin error) cuando la clave no existe.
type Backend interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Close() error
}
