package serviceImp

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"figchat/entities"
	"figchat/pkg/extract"
	"figchat/pkg/rag/chunker"
	"figchat/pkg/rag/embedder"
	"figchat/pkg/rag/index"
	"figchat/pkg/rag/repository"
	"figchat/pkg/rag/service"
)

type Svc struct {
	docs      repository.DocumentRepository
	emb       embedder.Embedder
	store     *index.Store
	uploadDir string
	maxLen    int
	overlap   int
}

func New(docs repository.DocumentRepository, emb embedder.Embedder, store *index.Store, uploadDir string, maxLen, overlap int) service.RAGService {
	if maxLen <= 0 {
		maxLen = chunker.DefaultMaxLen
	}
	if overlap < 0 {
		overlap = chunker.DefaultOverlap
	}
	return &Svc{docs: docs, emb: emb, store: store, uploadDir: uploadDir, maxLen: maxLen, overlap: overlap}
}

func (s *Svc) IngestDocument(ctx context.Context, fig *entities.Figure, fileName string, data []byte) (*entities.Document, int, error) {
	// extraction failures reject the upload before anything is persisted
	text, err := extract.Text(data, fileName)
	if err != nil {
		return nil, 0, fmt.Errorf("figure %d, %s: %w", fig.FigureID, fileName, err)
	}

	stored, err := s.storeFile(data, fileName)
	if err != nil {
		return nil, 0, err
	}

	d := &entities.Document{FigureID: fig.FigureID, FileName: fileName, StoredPath: stored, Text: text}
	return s.finishIngest(ctx, d)
}

func (s *Svc) IngestURL(ctx context.Context, fig *entities.Figure, url string) (*entities.Document, int, error) {
	text, title, err := extract.FetchURL(url)
	if err != nil {
		return nil, 0, fmt.Errorf("fetch %s: %w", url, err)
	}
	if strings.TrimSpace(text) == "" {
		return nil, 0, fmt.Errorf("%s: %w", url, extract.ErrNoText)
	}
	if title == "" {
		title = url
	}
	d := &entities.Document{FigureID: fig.FigureID, FileName: title, SourceURL: url, Text: text}
	return s.finishIngest(ctx, d)
}

// finishIngest persists the document and rebuilds the figure's index.
// A failed rebuild rolls the document back: nothing may stay persisted
// for an upload whose chunks never reached the index.
func (s *Svc) finishIngest(ctx context.Context, d *entities.Document) (*entities.Document, int, error) {
	if err := s.docs.Create(d); err != nil {
		s.removeFile(d.StoredPath)
		return nil, 0, fmt.Errorf("persist document: %w", err)
	}
	n, err := s.Rebuild(ctx, d.FigureID)
	if err != nil {
		if derr := s.docs.Delete(d.DocID); derr != nil {
			log.Printf("[rag] rollback doc %d: %v", d.DocID, derr)
		}
		s.removeFile(d.StoredPath)
		return nil, 0, err
	}
	return d, n, nil
}

// Rebuild recomputes the index from scratch over the concatenated text
// of all the figure's documents, then atomically replaces the artifact.
func (s *Svc) Rebuild(ctx context.Context, figureID uint) (int, error) {
	ds, err := s.docs.ByFigure(figureID)
	if err != nil {
		return 0, fmt.Errorf("list documents for figure %d: %w", figureID, err)
	}
	texts := make([]string, 0, len(ds))
	for _, d := range ds {
		texts = append(texts, d.Text)
	}
	chunks, err := chunker.Split(strings.Join(texts, "\n\n"), s.maxLen, s.overlap)
	if err != nil {
		return 0, fmt.Errorf("chunk figure %d: %w", figureID, err)
	}
	ix, err := index.Build(ctx, s.emb, chunks)
	if err != nil {
		return 0, fmt.Errorf("build index for figure %d: %w", figureID, err)
	}
	if err := s.store.Save(ix, figureID); err != nil {
		return 0, fmt.Errorf("save index for figure %d: %w", figureID, err)
	}
	return len(ix.Entries), nil
}

func (s *Svc) Retrieve(ctx context.Context, figureID uint, question string, k int) ([]string, error) {
	ix, err := s.store.Load(figureID)
	if err != nil {
		return nil, err
	}
	if ix.Model != s.emb.Model() {
		// mismatched embedding spaces degrade relevance silently
		log.Printf("[rag] figure %d index built with model %q, querying with %q", figureID, ix.Model, s.emb.Model())
	}
	vecs, err := s.emb.Embed(ctx, []string{question})
	if err != nil {
		return nil, fmt.Errorf("embed question: %w", err)
	}
	results := ix.Search(vecs[0], k)
	out := make([]string, 0, len(results))
	for _, r := range results {
		out = append(out, r.Text)
	}
	return out, nil
}

func (s *Svc) DropFigure(figureID uint) error {
	ds, err := s.docs.ByFigure(figureID)
	if err != nil {
		return err
	}
	for _, d := range ds {
		s.removeFile(d.StoredPath)
	}
	if err := s.docs.DeleteByFigure(figureID); err != nil {
		return err
	}
	return s.store.Delete(figureID)
}

func (s *Svc) storeFile(data []byte, fileName string) (string, error) {
	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return "", fmt.Errorf("upload dir: %w", err)
	}
	path := filepath.Join(s.uploadDir, uuid.NewString()+filepath.Ext(fileName))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("store upload: %w", err)
	}
	return path, nil
}

func (s *Svc) removeFile(path string) {
	if path == "" {
		return
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		log.Printf("[rag] remove %s: %v", path, err)
	}
}
