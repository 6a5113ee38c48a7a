package service

import (
	"context"
	"errors"
)

// ErrEmptyQuestion rejects blank questions before any provider call.
var ErrEmptyQuestion = errors.New("question cannot be empty")

// NoRelevantInfo is returned when retrieval finds nothing; the
// generation model is not invoked in that case.
const NoRelevantInfo = "No relevant information found in the documents."

type ChatService interface {
	// Ask answers a question about a figure using only the content
	// indexed from that figure's documents.
	Ask(ctx context.Context, figureID uint, question string) (string, error)
}
