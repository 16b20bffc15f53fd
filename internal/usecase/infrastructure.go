package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/posh-choice/storefront-core/internal/domain"
	"github.com/posh-choice/storefront-core/pkg/logger"
)

// EventProducer публикует события взаимодействия в поток аналитики.
type EventProducer interface {
	Publish(ctx context.Context, event domain.InteractionEvent) error
}

// NoopProducer используется, когда поток событий отключён конфигурацией.
type NoopProducer struct{}

func (NoopProducer) Publish(_ context.Context, _ domain.InteractionEvent) error {
	return nil
}

func newEventID() string {
	return uuid.NewString()
}

// publishAsync отправляет событие в фоне с собственным таймаутом.
// Публикация — fire-and-forget: сбой логируется и не влияет на операцию.
func publishAsync(producer EventProducer, log logger.Logger, event domain.InteractionEvent) {
	if producer == nil {
		return
	}

	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		if err := producer.Publish(bgCtx, event); err != nil {
			log.Warnf("Failed to publish %s event: %v", event.Type, err)
		}
	}()
}
