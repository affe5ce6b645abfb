package literature

import (
	"strings"
	"unicode/utf8"
)

// minChunkRunes filters fragments too short to be worth embedding.
const minChunkRunes = 20

// sentenceSeparators are tried in order when looking for a clean split
// point near the end of a chunk window.
var sentenceSeparators = []string{"。", "！", "？", ".", "!", "?", "\n\n", "\n"}

// ChunkText splits text into overlapping chunks of at most size runes,
// preferring to cut at a sentence boundary in the back half of each
// window. Overlap is measured in runes from the end of the previous
// chunk.
func ChunkText(text string, size, overlap int) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	runes := []rune(text)
	if len(runes) <= size {
		return []string{text}
	}

	var chunks []string
	start := 0

	for start < len(runes) {
		end := start + size
		if end > len(runes) {
			end = len(runes)
		} else {
			window := string(runes[start:end])
			for _, sep := range sentenceSeparators {
				if idx := strings.LastIndex(window, sep); idx >= 0 {
					runeIdx := utf8.RuneCountInString(window[:idx])
					// Keep the chunk from collapsing below half the window.
					if runeIdx > size/2 {
						end = start + runeIdx + 1
						break
					}
				}
			}
		}

		chunk := strings.TrimSpace(string(runes[start:end]))
		if utf8.RuneCountInString(chunk) > minChunkRunes {
			chunks = append(chunks, chunk)
		}

		next := end - overlap
		if next <= start {
			next = end
		}
		if next >= len(runes) {
			break
		}
		start = next
	}

	return chunks
}
