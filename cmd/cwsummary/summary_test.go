package main_test

import (
	"bytes"
	"context"
	"testing"

	main "github.com/fwojciec/cwsummary/cmd/cwsummary"
	"github.com/fwojciec/cwsummary/mock"
	"github.com/fwojciec/cwsummary/summary"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummaryCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints the summary", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    stderr,
			Pages:     pagesWith(introPage()),
			Summaries: &summary.Builder{},
		}

		err := (&main.SummaryCmd{PageID: "page-1"}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "Intro\n\nHello\n", stdout.String())
		assert.Empty(t, stderr.String())
	})

	t.Run("markdown mode uses the converter", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		builder := &summary.Builder{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    &bytes.Buffer{},
			Pages:     pagesWith(introPage()),
			Summaries: builder,
			Markdown: &mock.Converter{
				ConvertFn: func(html string) (string, error) { return "**Hello**", nil },
			},
		}

		err := (&main.SummaryCmd{PageID: "page-1", Markdown: true}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "Intro\n\n**Hello**\n", stdout.String())
		assert.Nil(t, builder.Converter, "shared builder must not be modified")
	})

	t.Run("stats go to stderr", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    stderr,
			Pages:     pagesWith(introPage()),
			Summaries: &summary.Builder{},
		}

		err := (&main.SummaryCmd{PageID: "page-1", Stats: true}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "Intro\n\nHello\n", stdout.String())
		assert.Contains(t, stderr.String(), "12 B")
		assert.Contains(t, stderr.String(), "1 blocks")
		assert.Contains(t, stderr.String(), summary.ComputeHash("Intro\n\nHello"))
	})
}
