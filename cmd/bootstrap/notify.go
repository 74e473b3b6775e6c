package bootstrap

import (
	"context"

	"fleet-console/internal/notify"
	"fleet-console/internal/pkg/config"

	"go.uber.org/fx"
)

var NotifyModule = fx.Module("notify",
	fx.Provide(
		NewMailer,
		NewPublisher,
		notify.NewDispatcher,
	),
)

func NewMailer(cfg config.Config) notify.Mailer {
	return notify.NewSendGridMailer(cfg.Mail.SendGridAPIKey, cfg.Mail.FromEmail, cfg.Mail.FromName)
}

func NewPublisher(lc fx.Lifecycle, cfg config.Config) notify.Publisher {
	publisher := notify.NewKafkaPublisher(cfg.Events.Brokers, cfg.Events.Topic)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return publisher.Close()
		},
	})

	return publisher
}
