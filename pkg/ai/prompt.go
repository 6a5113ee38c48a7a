package ai

import (
	"fmt"
	"strings"
)

// FallbackAnswer is the phrase the model is told to emit verbatim when
// the context cannot answer the question. Prompt-level contract only:
// the provider may still ignore it and output is not post-validated.
const FallbackAnswer = "The answer is not available in the provided context."

func renderSystemPrompt(persona string) string {
	return fmt.Sprintf("You are %s. Stay in character and answer as this persona would.", persona)
}

func renderQuestionPrompt(contexts []string, question string) string {
	return fmt.Sprintf(`Answer the question using only the provided context.
If the context is not enough to answer, reply exactly:
%q

Context:
%s

Question:
%s

Answer:`, FallbackAnswer, strings.Join(contexts, "\n\n"), question)
}
