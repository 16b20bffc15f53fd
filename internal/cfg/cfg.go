package cfg

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/jimlawless/whereami"

	"github.com/posh-choice/storefront-core/pkg/e"
	"github.com/posh-choice/storefront-core/pkg/logger"
)

type Config struct {
	Http    *HTTPConfig
	Gateway *GatewayCfg
	Redis   *RedisCfg
	Kafka   *KafkaCfg
	Search  *SearchCfg
	Recency *RecencyCfg
	Session *SessionCfg
}

type HTTPConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// GatewayCfg описывает подключение к удалённому storefront API.
type GatewayCfg struct {
	BaseURL    string
	Timeout    time.Duration
	MaxRetries int
	RetryBase  time.Duration
	RetryMax   time.Duration
}

type RedisCfg struct {
	Addr        string
	Password    string
	User        string
	DB          int
	MaxRetries  int
	DialTimeout time.Duration
	Timeout     time.Duration
}

// KafkaCfg — поток событий взаимодействия. Enabled=false (пустой KAFKA_BROKERS)
// отключает публикацию событий целиком.
type KafkaCfg struct {
	Enabled     bool
	Brokers     []string
	Topic       string
	NetworkMode string
}

// SearchCfg — параметры конвейера поиска.
type SearchCfg struct {
	Debounce time.Duration // период "успокоения" после последнего ввода
	Limit    int           // лимит результатов в одном запросе
}

// RecencyCfg — параметры списка недавно просмотренных.
type RecencyCfg struct {
	Capacity  int
	KeyPrefix string
}

// SessionCfg — время жизни неактивной сессии и период уборки.
type SessionCfg struct {
	IdleTTL       time.Duration
	SweepInterval time.Duration
}

// Load безопасно загружает конфигурацию и возвращает ошибку в случае неудачи.
func Load(log logger.Logger) (*Config, error) {
	http, err := loadHTTPConfig(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	gateway, err := loadGatewayCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	redis, err := loadRedisCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	kafka, err := loadKafkaCfg()
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	search, err := loadSearchCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	recency, err := loadRecencyCfg()
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	session, err := loadSessionCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &Config{
		Http:    http,
		Gateway: gateway,
		Redis:   redis,
		Kafka:   kafka,
		Search:  search,
		Recency: recency,
		Session: session,
	}, nil
}

func loadHTTPConfig(log logger.Logger) (*HTTPConfig, error) {
	const (
		defaultPort         = "8080"
		defaultReadTimeout  = 5 * time.Second
		defaultWriteTimeout = 10 * time.Second
		defaultIdleTimeout  = 60 * time.Second
	)

	port := getEnvOrDefault("HTTP_PORT", defaultPort)

	readTimeout, err := parseDurationEnv("HTTP_READ_TIMEOUT", defaultReadTimeout)
	if err != nil {
		log.Errorf(err, "invalid HTTP_READ_TIMEOUT")
		return nil, err
	}

	writeTimeout, err := parseDurationEnv("HTTP_WRITE_TIMEOUT", defaultWriteTimeout)
	if err != nil {
		log.Errorf(err, "invalid HTTP_WRITE_TIMEOUT")
		return nil, err
	}

	idleTimeout, err := parseDurationEnv("KEEP_ALIVE", defaultIdleTimeout)
	if err != nil {
		log.Errorf(err, "invalid KEEP_ALIVE")
		return nil, err
	}

	return &HTTPConfig{
		Port:         port,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}, nil
}

func loadGatewayCfg(log logger.Logger) (*GatewayCfg, error) {
	const (
		defaultTimeout    = 10 * time.Second
		defaultMaxRetries = 3
		defaultRetryBase  = 200 * time.Millisecond
		defaultRetryMax   = 2 * time.Second
	)

	baseURL := getEnv("STOREFRONT_API_URL")
	if baseURL == "" {
		return nil, fmt.Errorf("STOREFRONT_API_URL environment variable is required")
	}
	baseURL = strings.TrimRight(baseURL, "/")

	timeout, err := parseDurationEnv("STOREFRONT_API_TIMEOUT", defaultTimeout)
	if err != nil {
		log.Errorf(err, "invalid STOREFRONT_API_TIMEOUT")
		return nil, err
	}

	maxRetries, err := parseIntEnv("STOREFRONT_API_MAX_RETRIES", defaultMaxRetries)
	if err != nil {
		return nil, e.Wrap("STOREFRONT_API_MAX_RETRIES", err)
	}

	retryBase, err := parseDurationEnv("STOREFRONT_API_RETRY_BASE", defaultRetryBase)
	if err != nil {
		log.Errorf(err, "invalid STOREFRONT_API_RETRY_BASE")
		return nil, err
	}

	retryMax, err := parseDurationEnv("STOREFRONT_API_RETRY_MAX", defaultRetryMax)
	if err != nil {
		log.Errorf(err, "invalid STOREFRONT_API_RETRY_MAX")
		return nil, err
	}

	return &GatewayCfg{
		BaseURL:    baseURL,
		Timeout:    timeout,
		MaxRetries: maxRetries,
		RetryBase:  retryBase,
		RetryMax:   retryMax,
	}, nil
}

func loadRedisCfg(log logger.Logger) (*RedisCfg, error) {
	const (
		defaultAddr         = "localhost:6379"
		defaultDB           = 0
		defaultMaxRetries   = 3
		defaultDialTimeout  = 5 * time.Second
		defaultReadTimeout  = 3 * time.Second
		defaultWriteTimeout = 3 * time.Second
	)

	addr := getEnvOrDefault("REDIS_ADDR", defaultAddr)
	password := getEnv("REDIS_PASSWORD")
	user := getEnv("REDIS_USER")

	db, err := parseIntEnv("REDIS_DB_ID", defaultDB)
	if err != nil {
		return nil, e.Wrap("REDIS_DB_ID", err)
	}

	maxRetries, err := parseIntEnv("REDIS_MAX_RETRIES", defaultMaxRetries)
	if err != nil {
		return nil, e.Wrap("REDIS_MAX_RETRIES", err)
	}

	dialTimeout, err := parseDurationEnv("DIAL_TIMEOUT", defaultDialTimeout)
	if err != nil {
		log.Errorf(err, "invalid DIAL_TIMEOUT")
		return nil, err
	}

	readTimeout, err := parseDurationEnv("READ_TIMEOUT", defaultReadTimeout)
	if err != nil {
		log.Errorf(err, "invalid READ_TIMEOUT")
		return nil, err
	}

	writeTimeout, err := parseDurationEnv("WRITE_TIMEOUT", defaultWriteTimeout)
	if err != nil {
		log.Errorf(err, "invalid WRITE_TIMEOUT")
		return nil, err
	}

	timeout := readTimeout
	if writeTimeout > timeout {
		timeout = writeTimeout
	}

	return &RedisCfg{
		Addr:        addr,
		Password:    password,
		User:        user,
		DB:          db,
		MaxRetries:  maxRetries,
		DialTimeout: dialTimeout,
		Timeout:     timeout,
	}, nil
}

func loadKafkaCfg() (*KafkaCfg, error) {
	const (
		defaultTopic       = "storefront.interactions"
		defaultNetworkMode = "tcp"
	)

	brokerStr := getEnv("KAFKA_BROKERS")
	if brokerStr == "" {
		// события взаимодействия опциональны
		return &KafkaCfg{Enabled: false}, nil
	}

	return &KafkaCfg{
		Enabled:     true,
		Brokers:     strings.Split(brokerStr, ","),
		Topic:       getEnvOrDefault("KAFKA_TOPIC", defaultTopic),
		NetworkMode: getEnvOrDefault("KAFKA_NETWORK_MODE", defaultNetworkMode),
	}, nil
}

func loadSearchCfg(log logger.Logger) (*SearchCfg, error) {
	const (
		defaultDebounce = 400 * time.Millisecond
		defaultLimit    = 8
	)

	debounce, err := parseDurationEnv("SEARCH_DEBOUNCE", defaultDebounce)
	if err != nil {
		log.Errorf(err, "invalid SEARCH_DEBOUNCE")
		return nil, err
	}

	limit, err := parseIntEnv("SEARCH_LIMIT", defaultLimit)
	if err != nil {
		return nil, e.Wrap("SEARCH_LIMIT", err)
	}

	return &SearchCfg{
		Debounce: debounce,
		Limit:    limit,
	}, nil
}

func loadRecencyCfg() (*RecencyCfg, error) {
	const (
		defaultCapacity  = 10
		defaultKeyPrefix = "storefront:recently_viewed"
	)

	capacity, err := parseIntEnv("RECENCY_CAPACITY", defaultCapacity)
	if err != nil {
		return nil, e.Wrap("RECENCY_CAPACITY", err)
	}

	return &RecencyCfg{
		Capacity:  capacity,
		KeyPrefix: getEnvOrDefault("RECENCY_KEY_PREFIX", defaultKeyPrefix),
	}, nil
}

func loadSessionCfg(log logger.Logger) (*SessionCfg, error) {
	const (
		defaultIdleTTL       = 30 * time.Minute
		defaultSweepInterval = 5 * time.Minute
	)

	idleTTL, err := parseDurationEnv("SESSION_IDLE_TTL", defaultIdleTTL)
	if err != nil {
		log.Errorf(err, "invalid SESSION_IDLE_TTL")
		return nil, err
	}

	sweepInterval, err := parseDurationEnv("SESSION_SWEEP_INTERVAL", defaultSweepInterval)
	if err != nil {
		log.Errorf(err, "invalid SESSION_SWEEP_INTERVAL")
		return nil, err
	}

	return &SessionCfg{
		IdleTTL:       idleTTL,
		SweepInterval: sweepInterval,
	}, nil
}

// getEnv возвращает значение переменной окружения.
// Возвращает пустую строку, если переменная не задана.
func getEnv(key string) string {
	return os.Getenv(key)
}

// getEnvOrDefault возвращает значение переменной окружения или значение по умолчанию.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}

// parseDurationEnv считывает длительность или возвращает значение по умолчанию.
func parseDurationEnv(key string, defaultValue time.Duration) (time.Duration, error) {
	if v := os.Getenv(key); v != "" {
		return time.ParseDuration(v)
	}

	return defaultValue, nil
}

func parseIntEnv(key string, defaultValue int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue, nil
	}

	intValue, err := strconv.Atoi(v)
	if err != nil {
		return defaultValue, e.ErrIncorrectEnvVariable
	}

	return intValue, nil
}
