package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/posh-choice/storefront-core/internal/cfg"
	"github.com/posh-choice/storefront-core/pkg/logger"
)

func newTestSessionManager() *SessionManager {
	deps := SessionDeps{
		Products: newFakeProductGateway(),
		Cart:     &fakeCartGateway{},
		Wishlist: newFakeWishlistGateway(),
		Events:   NoopProducer{},
		Search:   &cfg.SearchCfg{Debounce: testDebounce, Limit: 8},
		Logger:   logger.NewNop(),
	}

	return NewSessionManager(deps, &cfg.SessionCfg{
		IdleTTL:       time.Hour,
		SweepInterval: time.Hour,
	})
}

func TestSessionGetCreatesOnDemand(t *testing.T) {
	m := newTestSessionManager()

	s1 := m.Get("abc")
	s2 := m.Get("abc")
	assert.Same(t, s1, s2)
	assert.Equal(t, 1, m.Len())

	require.NotNil(t, s1.Search)
	require.NotNil(t, s1.Cart)
	require.NotNil(t, s1.Wishlist)
}

func TestSessionEmptyIDGetsFreshSession(t *testing.T) {
	m := newTestSessionManager()

	s1 := m.Get("")
	s2 := m.Get("")
	assert.NotEqual(t, s1.ID, s2.ID)
	assert.Equal(t, 2, m.Len())
}

func TestSweepEvictsIdleSessions(t *testing.T) {
	m := newTestSessionManager()
	m.idleTTL = 10 * time.Millisecond

	m.Get("idle")
	time.Sleep(30 * time.Millisecond)
	fresh := m.Get("fresh")

	m.sweep()

	assert.Equal(t, 1, m.Len())
	assert.Same(t, fresh, m.Get("fresh"))
}

func TestCloseShutsDownSessions(t *testing.T) {
	m := newTestSessionManager()
	m.Start()
	m.Get("a")
	m.Get("b")

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, m.Close(ctx))
	assert.Equal(t, 0, m.Len())
}
