package cwsummary

import "context"

// Asker answers natural language questions about a page summary.
type Asker interface {
	// Ask answers question using summary as the only context.
	Ask(ctx context.Context, summary, question string) (string, error)
}
