package pdf_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/cwsummary"
	"github.com/fwojciec/cwsummary/pdf"
	"github.com/jung-kurt/gofpdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Extractor implements cwsummary.TextExtractor at compile time.
var _ cwsummary.TextExtractor = (*pdf.Extractor)(nil)

// writePDF renders each page's lines with a core font.
func writePDF(t *testing.T, path string, pages ...[]string) {
	t.Helper()

	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetFont("Helvetica", "", 12)
	for _, lines := range pages {
		doc.AddPage()
		for _, line := range lines {
			doc.Cell(0, 10, line)
			doc.Ln(10)
		}
	}
	require.NoError(t, doc.OutputFileAndClose(path))
}

func TestExtractor_ExtractText(t *testing.T) {
	t.Parallel()

	t.Run("extracts text from all pages", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "lesson.pdf")
		writePDF(t, path, []string{"Photosynthesis basics"}, []string{"Chlorophyll absorbs light"})

		text, err := pdf.NewExtractor().ExtractText(context.Background(), path)

		require.NoError(t, err)
		assert.Contains(t, text, "Photosynthesis basics")
		assert.Contains(t, text, "Chlorophyll absorbs light")
	})

	t.Run("returns error for malformed file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "broken.pdf")
		require.NoError(t, os.WriteFile(path, []byte("this is not a pdf"), 0644))

		_, err := pdf.NewExtractor().ExtractText(context.Background(), path)

		require.Error(t, err)
	})

	t.Run("returns error for missing file", func(t *testing.T) {
		t.Parallel()

		_, err := pdf.NewExtractor().ExtractText(context.Background(), filepath.Join(t.TempDir(), "missing.pdf"))

		require.Error(t, err)
	})

	t.Run("returns context error when cancelled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := pdf.NewExtractor().ExtractText(ctx, "unused.pdf")

		assert.ErrorIs(t, err, context.Canceled)
	})
}
