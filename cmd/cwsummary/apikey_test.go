package main_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/cwsummary"
	main "github.com/fwojciec/cwsummary/cmd/cwsummary"
	"github.com/fwojciec/cwsummary/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIKeyCmds(t *testing.T) {
	t.Parallel()

	t.Run("set then get through the block's range", func(t *testing.T) {
		t.Parallel()

		config := mock.NewMemoryConfigStore()
		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Pages:  pagesWith(introPage()),
			Config: config,
		}

		require.NoError(t, (&main.APIKeySetCmd{BlockID: "block-1", Value: "sk-123"}).Run(deps))
		assert.Contains(t, stdout.String(), `range "course-1"`)

		stored, err := config.GetValue(context.Background(), "course-1", cwsummary.APIKeyName)
		require.NoError(t, err)
		assert.Equal(t, "sk-123", stored)

		stdout.Reset()
		require.NoError(t, (&main.APIKeyGetCmd{BlockID: "block-1"}).Run(deps))
		assert.Equal(t, "sk-123\n", stdout.String())
	})

	t.Run("get reports a missing key", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Pages:  pagesWith(introPage()),
			Config: mock.NewMemoryConfigStore(),
		}

		err := (&main.APIKeyGetCmd{BlockID: "block-1"}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, cwsummary.ENOTFOUND, cwsummary.ErrorCode(err))
		assert.Empty(t, stdout.String())
		assert.Contains(t, stderr.String(), "no API key set")
	})

	t.Run("unknown block", func(t *testing.T) {
		t.Parallel()

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: &bytes.Buffer{},
			Pages:  pagesWith(introPage()),
			Config: mock.NewMemoryConfigStore(),
		}

		err := (&main.APIKeySetCmd{BlockID: "nope", Value: "sk"}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, cwsummary.ENOTFOUND, cwsummary.ErrorCode(err))
	})

	t.Run("store failure is reported", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
			Pages:  pagesWith(introPage()),
			Config: &mock.ConfigStore{
				StoreValueFn: func(context.Context, string, string, string) error {
					return errors.New("disk full")
				},
			},
		}

		err := (&main.APIKeySetCmd{BlockID: "block-1", Value: "sk"}).Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "error: Internal error.")
	})
}
