// Package chunker splits extracted text into overlapping fixed-size
// segments, the unit of embedding and retrieval.
package chunker

import "errors"

// Defaults used by the ingestion pipeline.
const (
	DefaultMaxLen  = 1000
	DefaultOverlap = 200
)

// ErrEmptyText is returned when there is nothing to split.
var ErrEmptyText = errors.New("empty text")

// Split cuts text into rune windows of at most maxLen, where every chunk
// after the first begins overlap runes before the end of its predecessor.
// Concatenating the first chunk with each later chunk's tail beyond the
// overlap reconstructs the input exactly. Text shorter than maxLen comes
// back as a single chunk.
func Split(text string, maxLen, overlap int) ([]string, error) {
	if text == "" {
		return nil, ErrEmptyText
	}
	if maxLen < 1 {
		maxLen = DefaultMaxLen
	}
	if overlap < 0 {
		overlap = 0
	}
	if overlap >= maxLen {
		overlap = maxLen - 1
	}

	runes := []rune(text)
	var chunks []string
	for start := 0; ; start += maxLen - overlap {
		end := start + maxLen
		if end >= len(runes) {
			chunks = append(chunks, string(runes[start:]))
			return chunks, nil
		}
		chunks = append(chunks, string(runes[start:end]))
	}
}
