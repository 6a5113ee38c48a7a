// pkg/ai/mock_client.go

package ai

import (
	"context"
	"fmt"
	"strings"
)

// mockClient answers without a model: it parrots the best-ranked context
// chunk. Used when no LLM credentials are configured, and in tests.
type mockClient struct{}

func NewMock() Client { return &mockClient{} }

func (m *mockClient) Answer(ctx context.Context, persona string, contexts []string, question string) (string, error) {
	if len(contexts) == 0 {
		return FallbackAnswer, nil
	}
	return fmt.Sprintf("(%s, from the records) %s", persona, strings.TrimSpace(contexts[0])), nil
}
