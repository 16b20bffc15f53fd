// Package gateway реализует клиент удалённого storefront API поверх REST/JSON.
// Все интерфейсы шлюзов слоя usecase реализованы здесь.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/posh-choice/storefront-core/internal/cfg"
	"github.com/posh-choice/storefront-core/pkg/e"
	"github.com/posh-choice/storefront-core/pkg/jitter"
	"github.com/posh-choice/storefront-core/pkg/logger"
	"github.com/posh-choice/storefront-core/pkg/metrics"
)

const sessionHeader = "X-Session-ID"

// Client — низкоуровневый HTTP-клиент удалённого API: сборка запросов,
// retry с экспоненциальной задержкой для идемпотентных вызовов,
// разбор тел ошибок.
type Client struct {
	http    *http.Client
	baseURL string
	cfg     *cfg.GatewayCfg
	logger  logger.Logger
}

func NewClient(cfg *cfg.GatewayCfg, logger logger.Logger) *Client {
	return &Client{
		http:    &http.Client{Timeout: cfg.Timeout},
		baseURL: cfg.BaseURL,
		cfg:     cfg,
		logger:  logger,
	}
}

// get выполняет идемпотентный GET с повторными попытками на транспортных
// ошибках и ответах 5xx. Ответы 4xx не повторяются.
func (c *Client) get(ctx context.Context, op, path string, query url.Values, out any) error {
	var lastErr error

	for attempt := 0; attempt < c.cfg.MaxRetries; attempt++ {
		lastErr = c.do(ctx, op, http.MethodGet, path, query, "", nil, out)
		if lastErr == nil {
			return nil
		}
		if !retryable(lastErr) {
			return lastErr
		}
		if attempt == c.cfg.MaxRetries-1 {
			break
		}

		sleepTime := jitter.ExponentialBackoff(
			c.cfg.RetryBase,
			c.cfg.RetryMax,
			attempt,
			jitter.DefaultJitter,
		)

		c.logger.Warnf("%s failed, retrying in %v (attempt %d): %v", op, sleepTime, attempt+1, lastErr)
		select {
		case <-time.After(sleepTime):
		case <-ctx.Done():
			return e.Wrap(op, ctx.Err())
		}
	}

	return lastErr
}

// mutate выполняет мутирующий запрос без повторных попыток: повтор POST/PUT/DELETE
// мог бы задвоить операцию на сервере.
func (c *Client) mutate(ctx context.Context, op, method, path, sessionID string, body, out any) error {
	return c.do(ctx, op, method, path, nil, sessionID, body, out)
}

func (c *Client) do(ctx context.Context, op, method, path string, query url.Values, sessionID string, body, out any) (err error) {
	defer func() { metrics.ObserveGateway(op, err) }()

	var reader io.Reader
	if body != nil {
		payload, merr := json.Marshal(body)
		if merr != nil {
			return e.Wrap(op, merr)
		}
		reader = bytes.NewReader(payload)
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return e.Wrap(op, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if sessionID != "" {
		req.Header.Set(sessionHeader, sessionID)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return e.Wrap(op, err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return e.Wrap(op, readRemoteError(res))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return e.Wrap(op, fmt.Errorf("decode response: %w", err))
	}

	return nil
}

// errorBody — тело ошибки удалённого API. Разные эндпоинты используют
// поле error либо message.
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// readRemoteError извлекает человекочитаемое сообщение из тела ответа с ошибкой.
func readRemoteError(res *http.Response) error {
	data, err := io.ReadAll(io.LimitReader(res.Body, 4096))
	if err != nil {
		return e.NewRemoteError(res.StatusCode, "")
	}

	var body errorBody
	if err := json.Unmarshal(data, &body); err != nil {
		return e.NewRemoteError(res.StatusCode, "")
	}

	message := body.Error
	if message == "" {
		message = body.Message
	}

	return e.NewRemoteError(res.StatusCode, message)
}

// retryable отличает транспортные сбои и 5xx от финальных отказов 4xx.
func retryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var remote *e.RemoteError
	if errors.As(err, &remote) {
		return remote.StatusCode >= 500
	}

	// транспортная ошибка (conn refused, timeout и т.п.)
	return true
}
