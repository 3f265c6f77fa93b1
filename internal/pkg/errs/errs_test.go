//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"campus-booking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapAndMark(t *testing.T) {
	errPoolClosed := errors.New("pool closed")
	errBegin := errs.New("begin transaction")

	assert.NoError(t, errs.Wrap(nil, "load reservations"))

	wrapped := errs.Wrap(errPoolClosed, "load reservations")
	assert.EqualError(t, wrapped, "load reservations: pool closed")
	assert.True(t, errs.Is(wrapped, errPoolClosed))

	marked := errs.Mark(errPoolClosed, errBegin)
	assert.EqualError(t, marked, "pool closed")
	assert.True(t, errs.Is(marked, errBegin))
	assert.True(t, errs.Is(marked, errPoolClosed))

	assert.Same(t, errBegin, errs.Mark(nil, errBegin))
}

func TestExtractStackLines(t *testing.T) {
	assert.Nil(t, errs.ExtractStackLines(nil, 5))

	err := errs.Wrap(errs.New("seat lookup failed"), "check in")

	all := errs.ExtractStackLines(err, 0)
	require.NotEmpty(t, all)
	assert.Contains(t, all[0], "check in")
	for _, l := range all {
		assert.NotEmpty(t, l)
	}

	limited := errs.ExtractStackLines(err, 3)
	require.Len(t, limited, 3)
	assert.Equal(t, all[:3], limited)
}
