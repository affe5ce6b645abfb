package repository

import (
	"context"
	"database/sql"
	"encoding/binary"
	"fmt"
	"math"
	"time"

	"github.com/lxltx2025/nsfcwriter/internal/domain"
)

// SQLiteChunkRepo implements ChunkRepo using a SQLite database.
type SQLiteChunkRepo struct {
	db *sql.DB
}

// NewSQLiteChunkRepo creates a new SQLiteChunkRepo.
func NewSQLiteChunkRepo(db *sql.DB) *SQLiteChunkRepo {
	return &SQLiteChunkRepo{db: db}
}

func (r *SQLiteChunkRepo) CreateBatch(ctx context.Context, chunks []*domain.Chunk) error {
	if len(chunks) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting chunk insert transaction: %w", err)
	}
	defer tx.Rollback()

	query := `INSERT INTO literature_chunks (id, source, title, section, content, embedding, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	now := time.Now().UTC().Format(time.RFC3339)

	for _, c := range chunks {
		_, err := tx.ExecContext(ctx, query,
			c.ID,
			c.Source,
			c.Title,
			c.Section,
			c.Content,
			encodeEmbedding(c.Embedding),
			now,
		)
		if err != nil {
			return fmt.Errorf("inserting literature chunk %s: %w", c.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing chunk insert: %w", err)
	}
	return nil
}

func (r *SQLiteChunkRepo) ListAll(ctx context.Context) ([]*domain.Chunk, error) {
	query := `SELECT id, source, title, section, content, embedding
		FROM literature_chunks ORDER BY created_at, id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing literature chunks: %w", err)
	}
	defer rows.Close()

	var chunks []*domain.Chunk
	for rows.Next() {
		var c domain.Chunk
		var embedding []byte
		if err := rows.Scan(&c.ID, &c.Source, &c.Title, &c.Section, &c.Content, &embedding); err != nil {
			return nil, fmt.Errorf("scanning literature chunk: %w", err)
		}
		c.Embedding = decodeEmbedding(embedding)
		chunks = append(chunks, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating literature chunks: %w", err)
	}
	return chunks, nil
}

func (r *SQLiteChunkRepo) CountChunks(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM literature_chunks`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting literature chunks: %w", err)
	}
	return n, nil
}

func (r *SQLiteChunkRepo) CountDocuments(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(DISTINCT source) FROM literature_chunks`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting literature documents: %w", err)
	}
	return n, nil
}

func (r *SQLiteChunkRepo) DeleteBySource(ctx context.Context, source string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM literature_chunks WHERE source = ?`, source)
	if err != nil {
		return fmt.Errorf("deleting chunks for %s: %w", source, err)
	}
	return nil
}

func (r *SQLiteChunkRepo) DeleteAll(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM literature_chunks`)
	if err != nil {
		return fmt.Errorf("clearing literature chunks: %w", err)
	}
	return nil
}

// encodeEmbedding packs a float32 vector as little-endian bytes for BLOB
// storage. Nil embeddings are stored as NULL.
func encodeEmbedding(vec []float32) []byte {
	if len(vec) == 0 {
		return nil
	}
	buf := make([]byte, 4*len(vec))
	for i, v := range vec {
		binary.LittleEndian.PutUint32(buf[4*i:], math.Float32bits(v))
	}
	return buf
}

func decodeEmbedding(buf []byte) []float32 {
	if len(buf) < 4 {
		return nil
	}
	vec := make([]float32, len(buf)/4)
	for i := range vec {
		vec[i] = math.Float32frombits(binary.LittleEndian.Uint32(buf[4*i:]))
	}
	return vec
}
