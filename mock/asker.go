package mock

import (
	"context"

	"github.com/fwojciec/cwsummary"
)

var _ cwsummary.Asker = (*Asker)(nil)

// Asker is a mock implementation of cwsummary.Asker.
type Asker struct {
	AskFn func(ctx context.Context, summary, question string) (string, error)
}

func (a *Asker) Ask(ctx context.Context, summary, question string) (string, error) {
	return a.AskFn(ctx, summary, question)
}
