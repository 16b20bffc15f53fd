package usecase

import (
	"context"
	"time"

	"github.com/posh-choice/storefront-core/internal/domain"
	"github.com/posh-choice/storefront-core/pkg/logger"
)

// RecencyService ведёт список недавно просмотренных товаров сессии
// и публикует событие просмотра.
type RecencyService struct {
	repo   RecencyRepository
	events EventProducer
	logger logger.Logger
}

func NewRecencyService(repo RecencyRepository, events EventProducer, logger logger.Logger) *RecencyService {
	return &RecencyService{
		repo:   repo,
		events: events,
		logger: logger,
	}
}

// Record фиксирует просмотр продукта: запись уходит в хранилище недавних,
// событие просмотра — в поток аналитики. Ошибок наружу нет.
func (s *RecencyService) Record(ctx context.Context, sessionID string, entry domain.ProductSummary) {
	s.repo.Record(ctx, sessionID, entry)

	publishAsync(s.events, s.logger, domain.InteractionEvent{
		EventID:    newEventID(),
		Type:       domain.EventProductViewed,
		SessionID:  sessionID,
		ProductID:  entry.ID,
		OccurredAt: time.Now().UTC(),
	})
}

// List возвращает список недавно просмотренных, от самого свежего к старому.
func (s *RecencyService) List(ctx context.Context, sessionID string) []domain.ProductSummary {
	return s.repo.List(ctx, sessionID)
}

// Clear явно очищает список недавно просмотренных сессии.
func (s *RecencyService) Clear(ctx context.Context, sessionID string) {
	s.repo.Clear(ctx, sessionID)
}
