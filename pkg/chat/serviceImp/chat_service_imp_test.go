package serviceImp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"figchat/entities"
	"figchat/pkg/chat/service"
)

type stubFigures struct {
	fig *entities.Figure
}

func (s *stubFigures) Create(f *entities.Figure) error { return nil }
func (s *stubFigures) FindByID(id uint) (*entities.Figure, error) {
	if s.fig == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return s.fig, nil
}
func (s *stubFigures) List() ([]entities.Figure, error) { return nil, nil }
func (s *stubFigures) Update(f *entities.Figure) error  { return nil }
func (s *stubFigures) Delete(id uint) error             { return nil }

type stubRAG struct {
	chunks []string
	err    error
	calls  int
}

func (s *stubRAG) IngestDocument(ctx context.Context, fig *entities.Figure, name string, data []byte) (*entities.Document, int, error) {
	return nil, 0, nil
}
func (s *stubRAG) IngestURL(ctx context.Context, fig *entities.Figure, url string) (*entities.Document, int, error) {
	return nil, 0, nil
}
func (s *stubRAG) Rebuild(ctx context.Context, figureID uint) (int, error) { return 0, nil }
func (s *stubRAG) Retrieve(ctx context.Context, figureID uint, question string, k int) ([]string, error) {
	s.calls++
	return s.chunks, s.err
}
func (s *stubRAG) DropFigure(figureID uint) error { return nil }

type countingLLM struct {
	persona  string
	contexts []string
	calls    int
}

func (c *countingLLM) Answer(ctx context.Context, persona string, contexts []string, question string) (string, error) {
	c.calls++
	c.persona = persona
	c.contexts = contexts
	return "a grounded answer", nil
}

func TestAskEmptyQuestionSkipsProviders(t *testing.T) {
	rag := &stubRAG{}
	llm := &countingLLM{}
	svc := New(&stubFigures{fig: &entities.Figure{FigureID: 1, Name: "Napoleon"}}, rag, llm, 3)

	_, err := svc.Ask(context.Background(), 1, "   ")
	assert.ErrorIs(t, err, service.ErrEmptyQuestion)
	assert.Zero(t, rag.calls)
	assert.Zero(t, llm.calls)
}

func TestAskUnknownFigure(t *testing.T) {
	rag := &stubRAG{}
	svc := New(&stubFigures{}, rag, &countingLLM{}, 3)

	_, err := svc.Ask(context.Background(), 99, "anything?")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.Zero(t, rag.calls)
}

func TestAskNoRelevantChunksShortCircuits(t *testing.T) {
	llm := &countingLLM{}
	svc := New(&stubFigures{fig: &entities.Figure{FigureID: 1, Name: "Napoleon"}}, &stubRAG{}, llm, 3)

	got, err := svc.Ask(context.Background(), 1, "Where was he born?")
	require.NoError(t, err)
	assert.Equal(t, service.NoRelevantInfo, got)
	assert.Zero(t, llm.calls, "generation model must not run on empty context")
}

func TestAskPassesChunksAndPersona(t *testing.T) {
	llm := &countingLLM{}
	fig := &entities.Figure{FigureID: 1, Name: "Napoleon", Description: "Emperor of the French, terse and imperious"}
	svc := New(&stubFigures{fig: fig}, &stubRAG{chunks: []string{"born on Corsica"}}, llm, 3)

	got, err := svc.Ask(context.Background(), 1, "Where was he born?")
	require.NoError(t, err)
	assert.Equal(t, "a grounded answer", got)
	assert.Equal(t, 1, llm.calls)
	assert.Equal(t, "Emperor of the French, terse and imperious", llm.persona)
	assert.Equal(t, []string{"born on Corsica"}, llm.contexts)
}

func TestAskPersonaDefaultsToName(t *testing.T) {
	llm := &countingLLM{}
	fig := &entities.Figure{FigureID: 1, Name: "Napoleon"}
	svc := New(&stubFigures{fig: fig}, &stubRAG{chunks: []string{"born on Corsica"}}, llm, 3)

	_, err := svc.Ask(context.Background(), 1, "Where was he born?")
	require.NoError(t, err)
	assert.Equal(t, "Napoleon", llm.persona)
}
