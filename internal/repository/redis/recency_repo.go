// Package redis хранит списки недавно просмотренных товаров в Redis.
// Хранилище отказоустойчиво: при недоступном Redis список продолжает жить
// в памяти процесса до конца сессии.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/jimlawless/whereami"
	r "github.com/redis/go-redis/v9"

	"github.com/posh-choice/storefront-core/internal/cfg"
	"github.com/posh-choice/storefront-core/internal/domain"
	"github.com/posh-choice/storefront-core/internal/repository/redis/converter"
	"github.com/posh-choice/storefront-core/pkg/clients"
	"github.com/posh-choice/storefront-core/pkg/e"
	"github.com/posh-choice/storefront-core/pkg/logger"
)

// store — минимальный контракт key-value хранилища под списком недавних.
type store interface {
	get(ctx context.Context, key string) ([]byte, error)
	set(ctx context.Context, key string, data []byte) error
	del(ctx context.Context, key string) error
}

type redisStore struct {
	client *clients.RedisClient
}

func (s redisStore) get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.client.Client.Get(ctx, key).Bytes()
	if errors.Is(err, r.Nil) {
		return nil, nil // ключа нет — пустой список
	}
	if err != nil {
		return nil, err
	}

	return data, nil
}

func (s redisStore) set(ctx context.Context, key string, data []byte) error {
	// без TTL: список живёт до явной очистки
	return s.client.Client.Set(ctx, key, data, 0).Err()
}

func (s redisStore) del(ctx context.Context, key string) error {
	return s.client.Client.Del(ctx, key).Err()
}

// RecencyRepo реализует usecase.RecencyRepository. Чтение-модификация-запись
// выполняется под мьютексом, поэтому конкурентные просмотры не теряют записей.
type RecencyRepo struct {
	store  store
	conv   converter.RecentEntryConverter
	cfg    *cfg.RecencyCfg
	logger logger.Logger

	mu  sync.Mutex
	mem map[string][]domain.ProductSummary
}

func NewRecencyRepo(client *clients.RedisClient, conv converter.RecentEntryConverter,
	cfg *cfg.RecencyCfg, logger logger.Logger) *RecencyRepo {
	return &RecencyRepo{
		store:  redisStore{client: client},
		conv:   conv,
		cfg:    cfg,
		logger: logger,
		mem:    map[string][]domain.ProductSummary{},
	}
}

// Record вставляет запись в начало списка сессии и персистирует результат.
// Сбой Redis логируется, состояние в памяти остаётся актуальным.
func (rr *RecencyRepo) Record(ctx context.Context, sessionID string, entry domain.ProductSummary) {
	rr.mu.Lock()
	defer rr.mu.Unlock()

	list := rr.loadLocked(ctx, sessionID)
	list = domain.PushRecent(list, entry, rr.cfg.Capacity)
	rr.mem[sessionID] = list

	data, err := json.Marshal(rr.conv.ToArrRedisModel(list))
	if err != nil {
		rr.logger.Warnf("recency marshal failed: %v", e.Wrap(whereami.WhereAmI(), err))
		return
	}

	if err := rr.store.set(ctx, rr.key(sessionID), data); err != nil {
		rr.logger.Warnf("recency persist failed: %v", e.Wrap(whereami.WhereAmI(), err))
	}
}

// List возвращает список недавно просмотренных, от самого свежего к старому.
func (rr *RecencyRepo) List(ctx context.Context, sessionID string) []domain.ProductSummary {
	rr.mu.Lock()
	defer rr.mu.Unlock()

	list := rr.loadLocked(ctx, sessionID)

	return append([]domain.ProductSummary(nil), list...)
}

// Clear удаляет список сессии из памяти и из Redis.
func (rr *RecencyRepo) Clear(ctx context.Context, sessionID string) {
	rr.mu.Lock()
	defer rr.mu.Unlock()

	delete(rr.mem, sessionID)

	if err := rr.store.del(ctx, rr.key(sessionID)); err != nil {
		rr.logger.Warnf("recency clear failed: %v", e.Wrap(whereami.WhereAmI(), err))
	}
}

// loadLocked возвращает список сессии: из памяти, иначе из Redis.
// Любой сбой чтения или разбора трактуется как пустой список.
func (rr *RecencyRepo) loadLocked(ctx context.Context, sessionID string) []domain.ProductSummary {
	if list, ok := rr.mem[sessionID]; ok {
		return list
	}

	data, err := rr.store.get(ctx, rr.key(sessionID))
	if err != nil {
		rr.logger.Warnf("recency load failed: %v", e.Wrap(whereami.WhereAmI(), err))
		return nil
	}
	if data == nil {
		return nil
	}

	var models []converter.RecentEntryRedisModel
	if err := json.Unmarshal(data, &models); err != nil {
		rr.logger.Warnf("recency unmarshal failed: %v", e.Wrap(whereami.WhereAmI(), err))
		return nil
	}

	list := rr.conv.ToArrDomain(models)
	if len(list) > rr.cfg.Capacity && rr.cfg.Capacity > 0 {
		list = list[:rr.cfg.Capacity]
	}
	rr.mem[sessionID] = list

	return list
}

// key возвращает Redis-ключ списка недавних для сессии.
func (rr *RecencyRepo) key(sessionID string) string {
	return fmt.Sprintf("%s:%s", rr.cfg.KeyPrefix, sessionID)
}
