// pkg/ai/client.go

package ai

import (
	"context"
	"errors"
)

// ErrUnavailable marks generation provider outages; callers may retry at
// the boundary, the pipeline itself never does.
var ErrUnavailable = errors.New("generation provider unavailable")

// Client generates a grounded answer in the figure's voice. Implementations
// must answer from the given context chunks only.
type Client interface {
	Answer(ctx context.Context, persona string, contexts []string, question string) (string, error)
}
