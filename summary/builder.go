// Package summary builds plain-text summaries of courseware pages.
// It walks the page's containers and blocks, extracts the text of every
// block according to its type and formats it for use as model context.
package summary

import (
	"context"
	"strings"

	"github.com/fwojciec/cwsummary"
)

// Builder builds page summaries.
type Builder struct {
	// Files resolves file references of document blocks.
	Files cwsummary.FileService

	// Extractor extracts text from PDF files.
	Extractor cwsummary.TextExtractor

	// Converter, when set, renders fragments as Markdown instead of
	// stripping their markup.
	Converter cwsummary.Converter
}

// BuildSummary returns the summary of page: the title followed by the
// formatted fragment of every block that produced text, separated by blank
// lines. Errors from the text extractor are returned unchanged.
func (b *Builder) BuildSummary(ctx context.Context, page *cwsummary.Page) (string, error) {
	var sb strings.Builder
	sb.WriteString(page.Title)
	sb.WriteString("\n\n")

	for _, c := range page.Containers {
		for _, block := range c.Blocks {
			raw, err := b.Fragment(ctx, block)
			if err != nil {
				return "", err
			}

			text, err := b.format(raw)
			if err != nil {
				return "", err
			}
			if text == "" {
				continue
			}
			sb.WriteString(text)
			sb.WriteString("\n\n")
		}
	}

	return strings.TrimSpace(sb.String()), nil
}

// Fragment returns the unformatted text of a single block.
// Blocks of unknown type and blocks missing their fields yield "".
func (b *Builder) Fragment(ctx context.Context, block *cwsummary.Block) (string, error) {
	switch p := cwsummary.DecodePayload(block.Type, block.Payload).(type) {
	case cwsummary.DocumentPayload:
		return b.documentText(ctx, p)
	case cwsummary.Fragmenter:
		return p.Fragment(), nil
	default:
		return "", nil
	}
}

// documentText returns the text of the PDF referenced by p. Files that
// cannot be resolved contribute nothing.
func (b *Builder) documentText(ctx context.Context, p cwsummary.DocumentPayload) (string, error) {
	if !p.IsPDF() || b.Files == nil || b.Extractor == nil {
		return "", nil
	}

	file, err := b.Files.FindFileByID(ctx, p.FileID)
	if cwsummary.ErrorCode(err) == cwsummary.ENOTFOUND {
		return "", nil
	} else if err != nil {
		return "", err
	}

	return b.Extractor.ExtractText(ctx, file.Path)
}

func (b *Builder) format(raw string) (string, error) {
	if b.Converter == nil {
		return Format(raw), nil
	}
	if strings.TrimSpace(raw) == "" {
		return "", nil
	}
	md, err := b.Converter.Convert(raw)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(md), nil
}
