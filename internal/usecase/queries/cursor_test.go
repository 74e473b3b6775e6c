//go:build unit

package queries_test

import (
	"encoding/base64"
	"testing"
	"time"

	"fleet-console/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestCursorRoundTrip(t *testing.T) {
	createdAt := time.Date(2026, 3, 14, 15, 9, 26, 535_000, time.UTC)
	id := uuid.New()

	cursor := queries.EncodeAfterCursor(createdAt, id)
	gotTime, gotID, err := queries.DecodeAfterCursor(cursor)
	require.NoError(t, err)
	require.Equal(t, id, gotID)
	require.True(t, createdAt.Equal(gotTime), "expected %v, got %v", createdAt, gotTime)
}

func TestDecodeAfterCursorRejectsMalformedInput(t *testing.T) {
	tests := []struct {
		name   string
		cursor string
	}{
		{name: "empty", cursor: ""},
		{name: "not base64", cursor: "%%%"},
		{name: "wrong version", cursor: base64.URLEncoding.EncodeToString([]byte("v2:123-" + uuid.NewString()))},
		{name: "missing uuid", cursor: base64.URLEncoding.EncodeToString([]byte("v1:123"))},
		{name: "bad timestamp", cursor: base64.URLEncoding.EncodeToString([]byte("v1:abc-" + uuid.NewString()))},
		{name: "bad uuid", cursor: base64.URLEncoding.EncodeToString([]byte("v1:123-not-a-uuid"))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := queries.DecodeAfterCursor(tt.cursor)
			require.Error(t, err)
		})
	}
}

func TestValidateLimit(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{name: "zero falls back to default", limit: 0, want: queries.DefaultLimit},
		{name: "negative falls back to default", limit: -5, want: queries.DefaultLimit},
		{name: "in range passes through", limit: 50, want: 50},
		{name: "above max is clamped", limit: 1000, want: queries.MaxListLimit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, queries.ValidateLimit(tt.limit))
		})
	}
}
