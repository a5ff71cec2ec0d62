// Package htmltomarkdown renders block HTML as Markdown, for summaries that
// keep headings, lists and emphasis instead of flattening them.
package htmltomarkdown

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/cwsummary"
)

// Ensure Converter implements cwsummary.Converter at compile time.
var _ cwsummary.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown to convert block HTML to Markdown.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter with CommonMark and table support.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms an HTML fragment into Markdown. Fragments without any
// markup, such as code or PDF text, are returned trimmed without escaping.
func (c *Converter) Convert(fragment string) (string, error) {
	if strings.TrimSpace(fragment) == "" {
		return "", cwsummary.Errorf(cwsummary.EINVALID, "empty HTML input")
	}
	if !hasMarkup(fragment) {
		return strings.TrimSpace(fragment), nil
	}

	return c.conv.ConvertString(fragment)
}

// hasMarkup reports whether s contains a tag, comment or doctype.
func hasMarkup(s string) bool {
	z := html.NewTokenizer(strings.NewReader(s))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return false
		case html.TextToken:
		default:
			return true
		}
	}
}
