package ingest

import "strings"

const (
	// ChunkWords is the window size in words; ChunkOverlap is how many words
	// consecutive windows share so sentences on a boundary stay retrievable.
	ChunkWords   = 500
	ChunkOverlap = 50
)

// ChunkText splits text into overlapping fixed-size word windows.
func ChunkText(text string, size, overlap int) []string {
	if size <= 0 {
		size = ChunkWords
	}
	if overlap < 0 || overlap >= size {
		overlap = 0
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	step := size - overlap
	var chunks []string
	for i := 0; i < len(words); i += step {
		end := i + size
		if end > len(words) {
			end = len(words)
		}
		chunks = append(chunks, strings.Join(words[i:end], " "))
		if end == len(words) {
			break
		}
	}
	return chunks
}
