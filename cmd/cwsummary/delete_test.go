package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/fwojciec/cwsummary"
	main "github.com/fwojciec/cwsummary/cmd/cwsummary"
	"github.com/fwojciec/cwsummary/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("deletes page when --force is set", func(t *testing.T) {
		t.Parallel()

		var deletedID string
		pages := &mock.PageService{
			DeletePageFn: func(_ context.Context, id string) error {
				deletedID = id
				return nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Pages:  pages,
		}

		err := (&main.DeleteCmd{PageID: "page-1", Force: true}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "page-1", deletedID)
		assert.Contains(t, stdout.String(), "Deleted page page-1")
	})

	t.Run("requires --force", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
			Pages:  &mock.PageService{},
		}

		err := (&main.DeleteCmd{PageID: "page-1"}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, cwsummary.EINVALID, cwsummary.ErrorCode(err))
		assert.Contains(t, stderr.String(), "--force")
	})

	t.Run("reports missing page", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
			Pages: &mock.PageService{
				DeletePageFn: func(context.Context, string) error {
					return cwsummary.Errorf(cwsummary.ENOTFOUND, "page not found")
				},
			},
		}

		err := (&main.DeleteCmd{PageID: "missing", Force: true}).Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "error: page not found")
	})
}
