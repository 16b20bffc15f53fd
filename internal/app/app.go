// Package app собирает приложение из слоёв и управляет его жизненным циклом.
package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	config "github.com/posh-choice/storefront-core/internal/cfg"
	v1Http "github.com/posh-choice/storefront-core/internal/delivery/v1/http"
	"github.com/posh-choice/storefront-core/internal/infrastructure/kafka"
	"github.com/posh-choice/storefront-core/internal/repository/gateway"
	redisRepo "github.com/posh-choice/storefront-core/internal/repository/redis"
	redisConv "github.com/posh-choice/storefront-core/internal/repository/redis/converter"
	"github.com/posh-choice/storefront-core/internal/usecase"
	"github.com/posh-choice/storefront-core/pkg/clients"
	"github.com/posh-choice/storefront-core/pkg/closer"
	"github.com/posh-choice/storefront-core/pkg/logger"
)

// App — собранное приложение. Ресурсы регистрируются в closer и закрываются
// в порядке LIFO при остановке.
type App struct {
	cfg      *config.Config
	logger   logger.Logger
	closer   *closer.Closer
	sessions *usecase.SessionManager
	httpSrv  *v1Http.Server
}

func NewApp(cfg *config.Config, log logger.Logger) (*App, error) {
	cl := closer.NewCloser(2 * time.Second)

	// Redis нужен только списку недавно просмотренных; недоступность —
	// повод для предупреждения, не для отказа в старте.
	redisClient := clients.NewRedisClient(cfg.Redis)
	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := redisClient.Ping(pingCtx); err != nil {
		log.Warnf("redis unavailable, recency lists will live in memory only: %v", err)
	}
	pingCancel()
	cl.Add(func(ctx context.Context) error {
		return redisClient.Close()
	})

	recencyRepo := redisRepo.NewRecencyRepo(redisClient, redisConv.NewRecentEntryConverter(), cfg.Recency, log)

	var events usecase.EventProducer = usecase.NoopProducer{}
	if cfg.Kafka.Enabled {
		producer, err := kafka.NewProducer(log, cfg.Kafka)
		if err != nil {
			return nil, err
		}
		if err := producer.EnsureTopic(10 * time.Second); err != nil {
			log.Warnf("kafka topic check failed: %v", err)
		}
		cl.Add(func(ctx context.Context) error {
			return producer.Close()
		})
		events = producer
	} else {
		log.Infof("interaction events disabled (KAFKA_BROKERS is empty)")
	}

	apiClient := gateway.NewClient(cfg.Gateway, log)
	productGw := gateway.NewProductGateway(apiClient)
	cartGw := gateway.NewCartGateway(apiClient)
	wishlistGw := gateway.NewWishlistGateway(apiClient)
	orderGw := gateway.NewOrderGateway(apiClient)
	blogGw := gateway.NewBlogGateway(apiClient)

	sessions := usecase.NewSessionManager(usecase.SessionDeps{
		Products: productGw,
		Cart:     cartGw,
		Wishlist: wishlistGw,
		Events:   events,
		Search:   cfg.Search,
		Logger:   log,
	}, cfg.Session)
	cl.Add(func(ctx context.Context) error {
		return sessions.Close(ctx)
	})

	catalog := usecase.NewCatalogService(productGw, blogGw, log)
	orders := usecase.NewOrderService(orderGw)
	recency := usecase.NewRecencyService(recencyRepo, events, log)

	r := chi.NewRouter()
	router := v1Http.NewRouter(r, log)
	router.Init(sessions, catalog, orders, recency)

	httpSrv := v1Http.NewServer(r, cfg.Http)
	cl.Add(func(ctx context.Context) error {
		return httpSrv.Stop(ctx)
	})

	return &App{
		cfg:      cfg,
		logger:   log,
		closer:   cl,
		sessions: sessions,
		httpSrv:  httpSrv,
	}, nil
}

// Run запускает приложение и блокируется до сигнала остановки
// или фатальной ошибки сервера.
func (a *App) Run() error {
	a.sessions.Start()

	errCh := make(chan error, 1)
	go func() {
		a.logger.Infof("HTTP server started on port %s", a.cfg.Http.Port)
		if err := a.httpSrv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Errorf(err, "HTTP server failed")
			errCh <- err
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	var appErr error
	select {
	case appErr = <-errCh:
	case <-shutdown:
		a.logger.Infof("Received shutdown signal, stopping gracefully...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.closer.Close(shutdownCtx); err != nil {
		a.logger.Warnf("shutdown finished with errors: %v", err)
	} else {
		a.logger.Infof("Application shutdown complete")
	}

	return appErr
}
