package usecase

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/posh-choice/storefront-core/internal/cfg"
	"github.com/posh-choice/storefront-core/internal/domain"
	"github.com/posh-choice/storefront-core/pkg/e"
	"github.com/posh-choice/storefront-core/pkg/logger"
)

// SearchPipeline превращает поток вводимого текста в минимальное число
// запросов к удалённому API: не более одного запроса за период успокоения
// после последнего ввода. Каждый выданный запрос несёт монотонно растущий
// номер; ответ фиксируется в состоянии, только если его номер всё ещё
// последний — устаревшие ответы отбрасываются.
type SearchPipeline struct {
	gateway   ProductGateway
	events    EventProducer
	logger    logger.Logger
	sessionID string
	debounce  time.Duration
	limit     int

	mu     sync.Mutex
	timer  *time.Timer
	seq    uint64
	cancel context.CancelFunc
	state  SearchState
}

func NewSearchPipeline(
	sessionID string,
	gateway ProductGateway,
	events EventProducer,
	cfg *cfg.SearchCfg,
	logger logger.Logger,
) *SearchPipeline {
	return &SearchPipeline{
		gateway:   gateway,
		events:    events,
		logger:    logger,
		sessionID: sessionID,
		debounce:  cfg.Debounce,
		limit:     cfg.Limit,
	}
}

// Input принимает очередное состояние строки поиска. Каждый новый ввод
// отменяет ранее взведённый таймер; запрос уходит только после периода
// успокоения. Пустой ввод немедленно очищает результаты, отменяет запрос
// в полёте и не порождает сетевых вызовов.
func (s *SearchPipeline) Input(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}

	text = strings.TrimSpace(text)
	if text == "" {
		s.supersedeLocked()
		s.state = SearchState{}
		return
	}

	s.supersedeLocked()
	seq := s.seq
	s.state.Query = text
	s.timer = time.AfterFunc(s.debounce, func() {
		s.fire(seq, text)
	})
}

// Snapshot возвращает текущее состояние конвейера.
func (s *SearchPipeline) Snapshot() SearchState {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.state
	state.Results = append([]domain.ProductSummary(nil), s.state.Results...)

	return state
}

// Close останавливает таймер и отменяет запрос в полёте.
func (s *SearchPipeline) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.supersedeLocked()
}

// supersedeLocked делает недействительными запрос в полёте и ещё не
// сработавший колбэк таймера: увеличивает номер последовательности и
// отменяет контекст текущего запроса.
func (s *SearchPipeline) supersedeLocked() {
	s.seq++
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

// fire выдаёт запрос поиска по срабатыванию таймера успокоения.
// Номер seq присвоен при взведении таймера: если к моменту захвата
// мьютекса он уже не последний (таймер сработал одновременно с новым
// вводом или очисткой), запрос не выдаётся вовсе.
func (s *SearchPipeline) fire(seq uint64, query string) {
	s.mu.Lock()
	if seq != s.seq {
		s.mu.Unlock()
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.state.Loading = true
	s.state.Err = ""
	s.mu.Unlock()

	results, err := s.gateway.SearchProducts(ctx, query, s.limit)

	s.mu.Lock()
	defer s.mu.Unlock()
	cancel()

	// ответ на уже вытесненный запрос не должен попасть в состояние
	if seq != s.seq {
		return
	}
	s.cancel = nil
	s.state.Loading = false

	if err != nil {
		s.state.Results = nil
		s.state.Err = e.UserMessage(err)
		return
	}

	s.state.Results = results
	s.state.Err = ""

	publishAsync(s.events, s.logger, newSearchEvent(s.sessionID, query))
}

func newSearchEvent(sessionID, query string) domain.InteractionEvent {
	return domain.InteractionEvent{
		EventID:    newEventID(),
		Type:       domain.EventSearchPerformed,
		SessionID:  sessionID,
		Query:      query,
		OccurredAt: time.Now().UTC(),
	}
}
