// Package literature maintains the retrieval-augmented reference store:
// parsed documents are chunked, embedded through the generation backend,
// persisted in SQLite, and ranked by cosine similarity at query time.
package literature

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"math"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/lxltx2025/nsfcwriter/internal/config"
	"github.com/lxltx2025/nsfcwriter/internal/document"
	"github.com/lxltx2025/nsfcwriter/internal/domain"
	"github.com/lxltx2025/nsfcwriter/internal/llm"
	"github.com/lxltx2025/nsfcwriter/internal/repository"
)

// maxContextSnippetRunes caps each retrieved snippet embedded into a
// generation prompt.
const maxContextSnippetRunes = 500

// Stats summarizes the store contents.
type Stats struct {
	TotalChunks    int
	TotalDocuments int
}

// Store is the literature service.
type Store struct {
	repo   repository.ChunkRepo
	client llm.Client
	cfg    config.LiteratureConfig
	logw   io.Writer
}

// NewStore creates a Store. logw receives per-file progress notices; nil
// discards them.
func NewStore(repo repository.ChunkRepo, client llm.Client, cfg config.LiteratureConfig, logw io.Writer) *Store {
	if logw == nil {
		logw = io.Discard
	}
	return &Store{repo: repo, client: client, cfg: cfg, logw: logw}
}

// AddFile parses, chunks, embeds, and stores one document. Re-adding a
// file replaces its previous chunks. Returns the number of chunks stored.
func (s *Store) AddFile(ctx context.Context, path string) (int, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return 0, fmt.Errorf("resolving %s: %w", path, err)
	}

	content, err := document.Parse(abs)
	if err != nil {
		return 0, err
	}

	var chunks []*domain.Chunk
	appendChunks := func(text, section string) {
		for _, c := range ChunkText(text, s.cfg.ChunkSize, s.cfg.ChunkOverlap) {
			chunks = append(chunks, &domain.Chunk{
				ID:      uuid.NewString(),
				Source:  abs,
				Title:   truncateRunes(content.Title, 100),
				Section: section,
				Content: c,
			})
		}
	}

	if len([]rune(content.Abstract)) > 20 {
		appendChunks(content.Abstract, "摘要")
	}
	if content.FullText != "" {
		appendChunks(content.FullText, "正文")
	}

	for _, c := range chunks {
		vec, err := s.client.Embed(ctx, c.Content)
		if err != nil {
			return 0, fmt.Errorf("embedding chunk of %s: %w", filepath.Base(abs), err)
		}
		c.Embedding = vec
	}

	if err := s.repo.DeleteBySource(ctx, abs); err != nil {
		return 0, err
	}
	if err := s.repo.CreateBatch(ctx, chunks); err != nil {
		return 0, err
	}

	return len(chunks), nil
}

// AddFiles adds each path independently; one bad file does not stop the
// batch. Returns chunk counts per path (0 for failures).
func (s *Store) AddFiles(ctx context.Context, paths []string) map[string]int {
	results := make(map[string]int, len(paths))
	for _, path := range paths {
		count, err := s.AddFile(ctx, path)
		results[path] = count
		if err != nil {
			fmt.Fprintf(s.logw, "✗ %s: %v\n", filepath.Base(path), err)
			continue
		}
		fmt.Fprintf(s.logw, "✓ %s: %d 个文本块\n", filepath.Base(path), count)
	}
	return results
}

// AddDirectory recursively adds every supported file under dir.
func (s *Store) AddDirectory(ctx context.Context, dir string) (map[string]int, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && document.Supported(path) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", dir, err)
	}
	if len(paths) == 0 {
		return map[string]int{}, nil
	}
	return s.AddFiles(ctx, paths), nil
}

// Retrieve embeds the query and returns the topK most similar chunks.
// An empty store yields no results, not an error.
func (s *Store) Retrieve(ctx context.Context, query string, topK int) ([]domain.RetrievedContext, error) {
	if topK <= 0 {
		topK = s.cfg.TopK
	}

	count, err := s.repo.CountChunks(ctx)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, nil
	}

	queryVec, err := s.client.Embed(ctx, query)
	if err != nil {
		return nil, err
	}

	chunks, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	type scored struct {
		chunk *domain.Chunk
		score float64
	}
	ranked := make([]scored, 0, len(chunks))
	for _, c := range chunks {
		if len(c.Embedding) == 0 {
			continue
		}
		ranked = append(ranked, scored{chunk: c, score: cosineSimilarity(queryVec, c.Embedding)})
	}

	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].score > ranked[j].score })
	if len(ranked) > topK {
		ranked = ranked[:topK]
	}

	contexts := make([]domain.RetrievedContext, len(ranked))
	for i, r := range ranked {
		contexts[i] = domain.RetrievedContext{
			Content: r.chunk.Content,
			Source:  r.chunk.Source,
			Section: r.chunk.Section,
			Score:   r.score,
		}
	}
	return contexts, nil
}

// BuildContext renders retrieval hits for query as a reference block
// suitable for embedding into a generation prompt. Empty when the store
// has nothing relevant or the backend is unreachable.
func (s *Store) BuildContext(ctx context.Context, query string, topK int) string {
	contexts, err := s.Retrieve(ctx, query, topK)
	if err != nil {
		fmt.Fprintf(s.logw, "获取文献上下文失败: %v\n", err)
		return ""
	}
	if len(contexts) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("【参考文献内容】")
	for i, c := range contexts {
		fmt.Fprintf(&b, "\n\n[来源%d] %s\n", i+1, filepath.Base(c.Source))
		b.WriteString(truncateRunes(c.Content, maxContextSnippetRunes))
		b.WriteString("...\n")
		b.WriteString(strings.Repeat("-", 30))
	}
	return b.String()
}

// GetStats reports chunk and distinct document counts.
func (s *Store) GetStats(ctx context.Context) (Stats, error) {
	chunks, err := s.repo.CountChunks(ctx)
	if err != nil {
		return Stats{}, err
	}
	docs, err := s.repo.CountDocuments(ctx)
	if err != nil {
		return Stats{}, err
	}
	return Stats{TotalChunks: chunks, TotalDocuments: docs}, nil
}

// Clear empties the store.
func (s *Store) Clear(ctx context.Context) error {
	return s.repo.DeleteAll(ctx)
}

// cosineSimilarity is zero for mismatched or zero-length vectors.
func cosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
