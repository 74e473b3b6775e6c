//go:build unit

package notify_test

import (
	"context"
	"testing"

	"fleet-console/internal/notify"

	"github.com/stretchr/testify/require"
)

func TestSendRejectsUnknownTopic(t *testing.T) {
	m := notify.NewSendGridMailer("key", "desk@fleet-console.it", "Fleet Console")

	err := m.Send(context.Background(), "telemetry.ping", []byte(`{}`))
	require.Error(t, err)
	require.Contains(t, err.Error(), "no email template")
}

func TestSendRejectsMalformedPayload(t *testing.T) {
	m := notify.NewSendGridMailer("key", "desk@fleet-console.it", "Fleet Console")

	err := m.Send(context.Background(), "booking.created", []byte(`{`))
	require.Error(t, err)
}
