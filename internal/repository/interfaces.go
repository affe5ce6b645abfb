// Package repository persists literature chunks in SQLite.
package repository

import (
	"context"
	"errors"

	"github.com/lxltx2025/nsfcwriter/internal/domain"
)

// ErrNotFound indicates the requested row does not exist.
var ErrNotFound = errors.New("not found")

// ChunkRepo stores embedded literature chunks.
type ChunkRepo interface {
	// CreateBatch inserts chunks in one transaction.
	CreateBatch(ctx context.Context, chunks []*domain.Chunk) error

	// ListAll returns every stored chunk, embeddings included.
	ListAll(ctx context.Context) ([]*domain.Chunk, error)

	// CountChunks returns the number of stored chunks.
	CountChunks(ctx context.Context) (int, error)

	// CountDocuments returns the number of distinct source files.
	CountDocuments(ctx context.Context) (int, error)

	// DeleteBySource removes all chunks from one source file.
	DeleteBySource(ctx context.Context, source string) error

	// DeleteAll clears the store.
	DeleteAll(ctx context.Context) error
}
