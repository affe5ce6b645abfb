package domain

// LiteratureContent is the parsed form of a reference document.
type LiteratureContent struct {
	Title      string
	Authors    []string
	Abstract   string
	Sections   map[string]string
	References []string
	FullText   string
	SourceFile string
	FileType   string
}

// Chunk is one embedded fragment of a literature document as stored in
// the vector store.
type Chunk struct {
	ID        string
	Source    string
	Title     string
	Section   string
	Content   string
	Embedding []float32
}

// RetrievedContext is a single retrieval hit for a query.
type RetrievedContext struct {
	Content string
	Source  string
	Section string
	Score   float64
}
