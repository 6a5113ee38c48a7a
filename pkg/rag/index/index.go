// Package index implements the per-figure nearest-neighbor structure
// over chunk embeddings and its on-disk persistence.
package index

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"

	"figchat/pkg/rag/embedder"
)

// ErrEmptyBuild is returned when there are no chunks to index.
var ErrEmptyBuild = errors.New("no chunks to index")

const embedBatchSize = 32

// Entry pairs a chunk's vector with its source text.
type Entry struct {
	Vector []float32
	Text   string
}

// Index holds every chunk of a figure's documents as of the last
// rebuild. It is never updated in place: rebuilds replace it whole.
type Index struct {
	Model   string // embedding model the vectors came from
	Entries []Entry
}

// Result is one search hit.
type Result struct {
	Text  string
	Score float64
}

// Build embeds every chunk and assembles a fresh index. The provider is
// called in batches with a cancellation check in between, so a rebuild
// aborts between batches when the request context dies.
func Build(ctx context.Context, emb embedder.Embedder, chunks []string) (*Index, error) {
	if len(chunks) == 0 {
		return nil, ErrEmptyBuild
	}
	ix := &Index{Model: emb.Model(), Entries: make([]Entry, 0, len(chunks))}
	for start := 0; start < len(chunks); start += embedBatchSize {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		end := start + embedBatchSize
		if end > len(chunks) {
			end = len(chunks)
		}
		batch := chunks[start:end]
		vecs, err := emb.Embed(ctx, batch)
		if err != nil {
			return nil, fmt.Errorf("embed chunks %d-%d: %w", start, end-1, err)
		}
		for i, v := range vecs {
			ix.Entries = append(ix.Entries, Entry{Vector: v, Text: batch[i]})
		}
	}
	return ix, nil
}

// Search returns up to k entries ranked by cosine similarity, ties kept
// in insertion order. An empty index yields an empty result set, which
// callers read as "no relevant information", not a fault.
func (ix *Index) Search(query []float32, k int) []Result {
	if k <= 0 || len(ix.Entries) == 0 {
		return nil
	}
	scored := make([]Result, len(ix.Entries))
	for i, e := range ix.Entries {
		scored[i] = Result{Text: e.Text, Score: cosine(query, e.Vector)}
	}
	sort.SliceStable(scored, func(i, j int) bool { return scored[i].Score > scored[j].Score })
	if k > len(scored) {
		k = len(scored)
	}
	return scored[:k]
}

func cosine(a, b []float32) float64 {
	var dot, na, nb float64
	for i := 0; i < len(a) && i < len(b); i++ {
		dot += float64(a[i]) * float64(b[i])
		na += float64(a[i]) * float64(a[i])
		nb += float64(b[i]) * float64(b[i])
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
