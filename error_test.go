package seoscan_test

import (
	"fmt"
	"testing"

	"github.com/fwojciec/seoscan"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := seoscan.Errorf(seoscan.ENOTFOUND, "no records found in %q", "results")

	assert.Equal(t, seoscan.ENOTFOUND, seoscan.ErrorCode(err))
	assert.Equal(t, "no records found in \"results\"", seoscan.ErrorMessage(err))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("scrape: %w", seoscan.Errorf(seoscan.EUNAVAILABLE, "HTTP 502"))

	assert.Equal(t, seoscan.EUNAVAILABLE, seoscan.ErrorCode(err))
	assert.Equal(t, "HTTP 502", seoscan.ErrorMessage(err))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("disk full")

	assert.Equal(t, seoscan.EINTERNAL, seoscan.ErrorCode(err))
	assert.Equal(t, "Internal error.", seoscan.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, seoscan.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, seoscan.ErrorMessage(nil))
}
