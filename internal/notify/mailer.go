package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"fleet-console/internal/pkg/errs"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Mailer sends operator notifications for drained outbox email jobs.
// Implementations must honor ctx so a slow provider cannot outlive the
// dispatch budget.
type Mailer interface {
	Send(ctx context.Context, topic string, payload []byte) error
}

type SendGridMailer struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewSendGridMailer(apiKey, fromEmail, fromName string) *SendGridMailer {
	return &SendGridMailer{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

type bookingEmailPayload struct {
	Reference     string `json:"reference"`
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
	VehiclePlate  string `json:"vehicle_plate"`
	TotalDays     int    `json:"total_days"`
	TotalCents    int64  `json:"total_cents"`
}

type fineEmailPayload struct {
	BookingReference string `json:"reference"`
	CustomerName     string `json:"customer_name"`
	CustomerEmail    string `json:"customer_email"`
	Number           string `json:"number"`
	AmountCents      int64  `json:"amount_cents"`
}

type resetEmailPayload struct {
	Email      string `json:"email"`
	ResetToken string `json:"reset_token"`
}

func (m *SendGridMailer) Send(ctx context.Context, topic string, payload []byte) error {
	switch topic {
	case "booking.created":
		var p bookingEmailPayload
		if err := json.Unmarshal(payload, &p); err != nil {
			return errs.Wrap(err, "failed to decode booking email payload")
		}
		subject := fmt.Sprintf("Booking %s confirmed", p.Reference)
		body := fmt.Sprintf(
			"Dear %s,\n\nyour booking %s (%s) is confirmed for %d day(s), total %.2f.\n",
			p.CustomerName, p.Reference, p.VehiclePlate, p.TotalDays, float64(p.TotalCents)/100,
		)
		return m.send(ctx, p.CustomerEmail, p.CustomerName, subject, body)

	case "fine.registered":
		var p fineEmailPayload
		if err := json.Unmarshal(payload, &p); err != nil {
			return errs.Wrap(err, "failed to decode fine email payload")
		}
		subject := fmt.Sprintf("Fine %s on booking %s", p.Number, p.BookingReference)
		body := fmt.Sprintf(
			"Dear %s,\n\na fine of %.2f received during booking %s will be recharged.\n",
			p.CustomerName, float64(p.AmountCents)/100, p.BookingReference,
		)
		return m.send(ctx, p.CustomerEmail, p.CustomerName, subject, body)

	case "auth.password_reset":
		var p resetEmailPayload
		if err := json.Unmarshal(payload, &p); err != nil {
			return errs.Wrap(err, "failed to decode reset email payload")
		}
		body := fmt.Sprintf("Use this token to reset your password: %s\n", p.ResetToken)
		return m.send(ctx, p.Email, "", "Password reset", body)
	}

	return fmt.Errorf("no email template for topic %q", topic)
}

func (m *SendGridMailer) send(ctx context.Context, to, toName, subject, plainText string) error {
	from := mail.NewEmail(m.fromName, m.fromEmail)
	recipient := mail.NewEmail(toName, to)
	message := mail.NewSingleEmail(from, subject, recipient, plainText, "")

	client := sendgrid.NewSendClient(m.apiKey)
	response, err := client.SendWithContext(ctx, message)
	if err != nil {
		return errs.Wrap(err, "failed to send email")
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}
