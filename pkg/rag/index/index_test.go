package index

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"figchat/pkg/rag/embedder"
)

func TestBuildEmptyChunks(t *testing.T) {
	_, err := Build(context.Background(), embedder.NewLocal(16), nil)
	assert.ErrorIs(t, err, ErrEmptyBuild)
}

func TestBuildPreservesProviderError(t *testing.T) {
	boom := errors.New("boom")
	_, err := Build(context.Background(), failingEmbedder{err: boom}, []string{"a"})
	assert.ErrorIs(t, err, boom)
}

func TestSearchSelfRetrieval(t *testing.T) {
	emb := embedder.NewLocal(32)
	chunks := []string{
		"Napoleon commanded the Grande Armée across Europe.",
		"The printing press transformed medieval literacy.",
		"Sailing ships carried spices along monsoon routes.",
	}
	ix, err := Build(context.Background(), emb, chunks)
	require.NoError(t, err)
	require.Len(t, ix.Entries, 3)

	// the exact embedding of a source chunk must return that chunk first
	for _, want := range chunks {
		vecs, err := emb.Embed(context.Background(), []string{want})
		require.NoError(t, err)
		got := ix.Search(vecs[0], 1)
		require.Len(t, got, 1)
		assert.Equal(t, want, got[0].Text)
	}
}

func TestSearchClampsK(t *testing.T) {
	emb := embedder.NewLocal(16)
	ix, err := Build(context.Background(), emb, []string{"one", "two"})
	require.NoError(t, err)
	vecs, _ := emb.Embed(context.Background(), []string{"one"})
	assert.Len(t, ix.Search(vecs[0], 10), 2)
	assert.Empty(t, ix.Search(vecs[0], 0))
}

func TestSearchEmptyIndex(t *testing.T) {
	ix := &Index{Model: "local-hash"}
	assert.Empty(t, ix.Search([]float32{1, 0}, 3))
}

func TestSearchTiesKeepInsertionOrder(t *testing.T) {
	ix := &Index{Entries: []Entry{
		{Vector: []float32{1, 0}, Text: "first"},
		{Vector: []float32{1, 0}, Text: "second"},
		{Vector: []float32{0, 1}, Text: "off-axis"},
	}}
	got := ix.Search([]float32{1, 0}, 3)
	require.Len(t, got, 3)
	assert.Equal(t, "first", got[0].Text)
	assert.Equal(t, "second", got[1].Text)
	assert.Equal(t, "off-axis", got[2].Text)
}

func TestRebuildIsIdempotent(t *testing.T) {
	emb := embedder.NewLocal(32)
	chunks := []string{"alpha beta gamma", "delta epsilon zeta", "eta theta iota"}
	query, _ := emb.Embed(context.Background(), []string{"beta delta"})

	first, err := Build(context.Background(), emb, chunks)
	require.NoError(t, err)
	second, err := Build(context.Background(), emb, chunks)
	require.NoError(t, err)

	a := first.Search(query[0], 3)
	b := second.Search(query[0], 3)
	require.Equal(t, len(a), len(b))
	for i := range a {
		assert.Equal(t, a[i].Text, b[i].Text)
		assert.InDelta(t, a[i].Score, b[i].Score, 1e-9)
	}
}

func TestBuildCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Build(ctx, embedder.NewLocal(16), []string{"a"})
	assert.ErrorIs(t, err, context.Canceled)
}

type failingEmbedder struct{ err error }

func (f failingEmbedder) Model() string { return "failing" }
func (f failingEmbedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	return nil, f.err
}
