//go:build unit

package password_test

import (
	"testing"

	"fleet-console/internal/pkg/password"

	"github.com/stretchr/testify/require"
)

func TestHashAndCompare(t *testing.T) {
	hashed, err := password.Hash("s3cret-pass")
	require.NoError(t, err)
	require.NotEqual(t, "s3cret-pass", hashed)

	require.NoError(t, password.Compare(hashed, "s3cret-pass"))
	require.ErrorIs(t, password.Compare(hashed, "wrong-pass"), password.ErrMismatch)
}

func TestHashRejectsEmptyPassword(t *testing.T) {
	_, err := password.Hash("")
	require.ErrorIs(t, err, password.ErrEmptyPassword)
}

func TestCompareRejectsEmptyInput(t *testing.T) {
	require.ErrorIs(t, password.Compare("", "anything"), password.ErrEmptyPassword)
	require.ErrorIs(t, password.Compare("$2a$10$abcdefg", ""), password.ErrEmptyPassword)
}
