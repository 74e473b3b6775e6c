//go:build unit

package errs_test

import (
	"testing"

	"fleet-console/internal/pkg/errs"

	"github.com/stretchr/testify/require"
)

func TestIsMatchesMarkedSentinel(t *testing.T) {
	cause := errs.New("collection must not be before delivery")
	sentinel := errs.New("invalid rental span")

	marked := errs.Mark(cause, sentinel)

	require.True(t, errs.Is(marked, sentinel))
	require.True(t, errs.Is(marked, cause))
}

func TestIsMatchesMarkThroughWrap(t *testing.T) {
	cause := errs.New("row not found")
	sentinel := errs.New("booking not found")

	err := errs.Wrap(errs.Mark(cause, sentinel), "loading booking")

	require.True(t, errs.Is(err, sentinel))
}

func TestIsRejectsUnrelatedSentinel(t *testing.T) {
	err := errs.Mark(errs.New("cause"), errs.New("one identity"))
	require.False(t, errs.Is(err, errs.New("another identity")))
}

func TestMarkNilReturnsSentinel(t *testing.T) {
	sentinel := errs.New("sentinel")
	require.Equal(t, sentinel, errs.Mark(nil, sentinel))
}
