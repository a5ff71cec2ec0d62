package cwsummary_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/cwsummary"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := cwsummary.Errorf(cwsummary.ENOTFOUND, "page %q not found", "p1")

	assert.Equal(t, cwsummary.ENOTFOUND, cwsummary.ErrorCode(err))
	assert.Equal(t, "page \"p1\" not found", cwsummary.ErrorMessage(err))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("loading page: %w", cwsummary.Errorf(cwsummary.EINVALID, "bad"))

	assert.Equal(t, cwsummary.EINVALID, cwsummary.ErrorCode(err))
	assert.Equal(t, "bad", cwsummary.ErrorMessage(err))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	err := errors.New("disk on fire")

	assert.Equal(t, cwsummary.EINTERNAL, cwsummary.ErrorCode(err))
	assert.Equal(t, "Internal error.", cwsummary.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, cwsummary.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, cwsummary.ErrorMessage(nil))
}
