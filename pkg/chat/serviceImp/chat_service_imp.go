package serviceImp

import (
	"context"
	"fmt"
	"strings"

	"figchat/pkg/ai"
	"figchat/pkg/chat/service"
	figrepo "figchat/pkg/figure/repository"
	ragsvc "figchat/pkg/rag/service"
)

type Svc struct {
	figures figrepo.FigureRepository
	rag     ragsvc.RAGService
	llm     ai.Client
	topK    int
}

func New(figures figrepo.FigureRepository, rag ragsvc.RAGService, llm ai.Client, topK int) service.ChatService {
	if topK <= 0 {
		topK = 3
	}
	return &Svc{figures: figures, rag: rag, llm: llm, topK: topK}
}

func (s *Svc) Ask(ctx context.Context, figureID uint, question string) (string, error) {
	q := strings.TrimSpace(question)
	if q == "" {
		return "", service.ErrEmptyQuestion
	}

	fig, err := s.figures.FindByID(figureID)
	if err != nil {
		return "", fmt.Errorf("figure %d: %w", figureID, err)
	}

	chunks, err := s.rag.Retrieve(ctx, figureID, q, s.topK)
	if err != nil {
		return "", err
	}
	// nothing relevant: answer without burning a generation call
	if len(chunks) == 0 {
		return service.NoRelevantInfo, nil
	}

	persona := strings.TrimSpace(fig.Description)
	if persona == "" {
		persona = fig.Name
	}
	answer, err := s.llm.Answer(ctx, persona, chunks, q)
	if err != nil {
		return "", fmt.Errorf("answer for figure %d: %w", figureID, err)
	}
	return answer, nil
}
