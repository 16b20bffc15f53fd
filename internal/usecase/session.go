package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/posh-choice/storefront-core/internal/cfg"
	"github.com/posh-choice/storefront-core/pkg/logger"
)

// Session связывает сессионные компоненты слоя взаимодействия:
// конвейер поиска, менеджеры корзины и списка желаний.
type Session struct {
	ID       string
	Search   *SearchPipeline
	Cart     *CartManager
	Wishlist *WishlistManager

	mu       sync.Mutex
	lastSeen time.Time
}

func (s *Session) touch() {
	s.mu.Lock()
	s.lastSeen = time.Now()
	s.mu.Unlock()
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

// SessionDeps — зависимости, общие для всех сессий.
type SessionDeps struct {
	Products ProductGateway
	Cart     CartGateway
	Wishlist WishlistGateway
	Events   EventProducer
	Search   *cfg.SearchCfg
	Logger   logger.Logger
}

// SessionManager создаёт сессии по требованию и выметает простаивающие
// фоновым воркером.
type SessionManager struct {
	deps          SessionDeps
	idleTTL       time.Duration
	sweepInterval time.Duration

	mu       sync.Mutex
	sessions map[string]*Session

	stop chan struct{}
	wg   sync.WaitGroup
}

func NewSessionManager(deps SessionDeps, cfg *cfg.SessionCfg) *SessionManager {
	return &SessionManager{
		deps:          deps,
		idleTTL:       cfg.IdleTTL,
		sweepInterval: cfg.SweepInterval,
		sessions:      make(map[string]*Session),
		stop:          make(chan struct{}),
	}
}

// Get возвращает сессию по идентификатору, создавая её при первом обращении.
// Пустой идентификатор означает новую сессию.
func (m *SessionManager) Get(id string) *Session {
	if id == "" {
		id = uuid.NewString()
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if session, ok := m.sessions[id]; ok {
		session.touch()
		return session
	}

	session := &Session{
		ID:       id,
		Search:   NewSearchPipeline(id, m.deps.Products, m.deps.Events, m.deps.Search, m.deps.Logger),
		Cart:     NewCartManager(id, m.deps.Cart, m.deps.Events, m.deps.Logger),
		Wishlist: NewWishlistManager(id, m.deps.Wishlist, m.deps.Events, m.deps.Logger),
	}
	session.touch()
	m.sessions[id] = session

	return session
}

// Start запускает фоновую уборку простаивающих сессий.
func (m *SessionManager) Start() {
	m.wg.Add(1)
	go func() {
		defer m.wg.Done()

		ticker := time.NewTicker(m.sweepInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				m.sweep()
			case <-m.stop:
				return
			}
		}
	}()
}

// Close останавливает уборщик и закрывает все сессии.
func (m *SessionManager) Close(ctx context.Context) error {
	close(m.stop)

	done := make(chan struct{})
	go func() {
		m.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		return ctx.Err()
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for id, session := range m.sessions {
		session.Search.Close()
		delete(m.sessions, id)
	}

	return nil
}

// sweep закрывает сессии, простаивающие дольше idleTTL.
func (m *SessionManager) sweep() {
	cutoff := time.Now().Add(-m.idleTTL)

	m.mu.Lock()
	defer m.mu.Unlock()

	for id, session := range m.sessions {
		if session.idleSince().Before(cutoff) {
			session.Search.Close()
			delete(m.sessions, id)
			m.deps.Logger.Debugf("evicted idle session %s", id)
		}
	}
}

// Len возвращает число живых сессий.
func (m *SessionManager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}
