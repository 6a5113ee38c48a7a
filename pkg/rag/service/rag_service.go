package service

import (
	"context"

	"figchat/entities"
)

// RAGService is the ingestion and retrieval pipeline: extracted text is
// chunked, embedded and written into the figure's index; questions are
// embedded and matched against it.
type RAGService interface {
	// IngestDocument extracts text from an upload, persists the document
	// and rebuilds the figure's index from all of its documents. Returns
	// the stored document and the number of chunks indexed.
	IngestDocument(ctx context.Context, fig *entities.Figure, fileName string, data []byte) (*entities.Document, int, error)

	// IngestURL fetches a page and ingests its extracted text.
	IngestURL(ctx context.Context, fig *entities.Figure, url string) (*entities.Document, int, error)

	// Rebuild recomputes the figure's index from its stored documents.
	Rebuild(ctx context.Context, figureID uint) (int, error)

	// Retrieve returns up to k chunk texts relevant to the question.
	// An absent index surfaces as index.ErrNotFound; an empty result
	// means the index simply held nothing relevant.
	Retrieve(ctx context.Context, figureID uint, question string, k int) ([]string, error)

	// DropFigure removes the figure's documents, stored files and index.
	DropFigure(figureID uint) error
}
