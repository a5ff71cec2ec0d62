// Package pdf extracts plain text from PDF files.
package pdf

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fwojciec/cwsummary"
	lpdf "github.com/ledongthuc/pdf"
)

// Ensure Extractor implements cwsummary.TextExtractor at compile time.
var _ cwsummary.TextExtractor = (*Extractor)(nil)

// Extractor extracts text from PDF files using ledongthuc/pdf.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractText returns the plain text of every page of the PDF at path.
// The parser panics on some malformed files; those panics are returned as
// errors.
func (e *Extractor) ExtractText(ctx context.Context, path string) (text string, err error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("failed to parse PDF %q: %v", path, r)
		}
	}()

	f, r, err := lpdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF %q: %w", path, err)
	}
	defer f.Close()

	plain, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("failed to extract text from PDF %q: %w", path, err)
	}

	var b strings.Builder
	if _, err := io.Copy(&b, plain); err != nil {
		return "", fmt.Errorf("failed to read text from PDF %q: %w", path, err)
	}

	return b.String(), nil
}
