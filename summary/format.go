package summary

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/net/html"
)

// lineBreakTags matches tags after which the text continues on a new line.
var lineBreakTags = regexp.MustCompile(`(?i)<br.*?>|</p.*?>|</h[1-6].*?>|</div.*?>|</li.*?>|</section.*?>|</article.*?>|</blockquote.*?>|</details.*?>|</summary.*?>`)

// Format turns an HTML fragment into plain text. A newline is inserted after
// line-breaking tags, all markup is then stripped and the result trimmed.
func Format(text string) string {
	if text == "" {
		return ""
	}
	text = lineBreakTags.ReplaceAllString(text, "${0}\n")
	return strings.TrimSpace(StripTags(text))
}

// rawTextElements are the elements whose content the tokenizer returns as a
// single text token, markup included.
var rawTextElements = map[string]bool{
	"iframe":    true,
	"noembed":   true,
	"noframes":  true,
	"noscript":  true,
	"plaintext": true,
	"script":    true,
	"style":     true,
	"textarea":  true,
	"title":     true,
	"xmp":       true,
}

// StripTags removes tags, comments and doctypes from s. Text is kept exactly
// as written; character references are not decoded. Tags inside raw text
// elements such as script or textarea are stripped as well.
func StripTags(s string) string {
	var b strings.Builder
	z := html.NewTokenizer(strings.NewReader(s))
	inRawText := false
	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			// io.EOF is the only error a strings.Reader produces.
			return b.String()
		case html.TextToken:
			if inRawText {
				b.WriteString(StripTags(string(z.Raw())))
			} else {
				b.Write(z.Raw())
			}
		}
		inRawText = false
		if tt == html.StartTagToken {
			name, _ := z.TagName()
			inRawText = rawTextElements[string(name)]
		}
	}
}

// ComputeHash computes a hash of the summary using xxhash.
func ComputeHash(content string) string {
	h := xxhash.Sum64String(content)
	return fmt.Sprintf("%016x", h)
}

// FormatBytes formats bytes in human-readable form.
func FormatBytes(bytes int) string {
	const (
		KB = 1024
		MB = KB * 1024
	)
	switch {
	case bytes >= MB:
		return fmt.Sprintf("%.1f MB", float64(bytes)/float64(MB))
	case bytes >= KB:
		return fmt.Sprintf("%.1f KB", float64(bytes)/float64(KB))
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}
