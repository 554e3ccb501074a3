// Package upstream http-клиент к backend-сервису: один запрос, без ретраев и кеша
package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"git.lowcodeplatform.net/fabric/demo/internal/utils"
	"git.lowcodeplatform.net/fabric/demo/pkg/logger"
)

// maxBodySize ограничение на размер ответа upstream
const maxBodySize = 10 << 20

// Recorder принимает длительность запроса к upstream (реализует metrics.Registry)
type Recorder interface {
	RecordUpstream(status string, seconds float64) error
}

// Error неуспешный запрос к upstream: сетевая ошибка, таймаут, не-2xx или битое тело
type Error struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("upstream %s: status %d: %s", e.URL, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("upstream %s: %s", e.URL, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

var (
	ErrStatus      = errors.New("unexpected status code")
	ErrInvalidJSON = errors.New("response body is not valid json")
)

type Client struct {
	baseURL  string
	client   *http.Client
	recorder Recorder
}

// New baseURL резолвится один раз при старте; timeout=0 - без таймаута клиента
func New(baseURL string, timeout time.Duration, recorder Recorder) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout:   timeout,
			Transport: createTransport(timeout),
		},
		recorder: recorder,
	}
}

func createTransport(timeout time.Duration) *http.Transport {
	dialer := net.Dialer{
		Timeout: timeout,
	}

	return &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		DialContext:         dialer.DialContext,
		TLSHandshakeTimeout: timeout / 5,
		MaxIdleConns:        100,
		IdleConnTimeout:     90 * time.Second,
	}
}

// GetJSON выполняет GET {baseURL}{path} и возвращает тело ответа как есть.
// Успех только для 2xx с валидным json.
func (c *Client) GetJSON(ctx context.Context, path string) (body []byte, err error) {
	url := utils.JoinURLPath(c.baseURL, path)
	start := time.Now()
	status := "error"

	defer func() {
		if c.recorder == nil {
			return
		}
		if e := c.recorder.RecordUpstream(status, time.Since(start).Seconds()); e != nil {
			logger.Error(ctx, "[upstream] unable record metric", zap.Error(e))
		}
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &Error{URL: url, Err: errors.Wrap(err, "prepare request")}
	}
	req.Header.Set("Accept", "application/json")
	if id := logger.GetRequestIDCtx(ctx); id != "" {
		req.Header.Set("X-Request-Id", id)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &Error{URL: url, Err: err}
	}
	defer resp.Body.Close()
	status = strconv.Itoa(resp.StatusCode)

	body, err = io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, &Error{URL: url, StatusCode: resp.StatusCode, Err: errors.Wrap(err, "read body")}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &Error{URL: url, StatusCode: resp.StatusCode, Err: ErrStatus}
	}

	if !json.Valid(body) {
		return nil, &Error{URL: url, StatusCode: resp.StatusCode, Err: ErrInvalidJSON}
	}

	return body, nil
}
