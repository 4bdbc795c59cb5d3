package repositories

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sony/gobreaker/v2"
)

// ErrNotFound marks an absent resource. Callers branch on it; it is not a
// hard failure.
var ErrNotFound = errors.New("resource not found in remote store")

type remoteResult struct {
	status int
	body   []byte
}

// Remote is the HTTP client for the store of record. All repository
// implementations go through it; the circuit breaker trips on repeated
// transport or server errors, never on 4xx.
type Remote struct {
	baseURL string
	client  *http.Client
	breaker *gobreaker.CircuitBreaker[remoteResult]
}

func NewRemote(baseURL string, timeout time.Duration) *Remote {
	settings := gobreaker.Settings{
		Name:        "remote-store",
		MaxRequests: 3,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	}

	return &Remote{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		breaker: gobreaker.NewCircuitBreaker[remoteResult](settings),
	}
}

func (r *Remote) do(ctx context.Context, method, path string, body, out interface{}) error {
	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		payload = bytes.NewReader(data)
	}

	result, err := r.breaker.Execute(func() (remoteResult, error) {
		req, err := http.NewRequestWithContext(ctx, method, r.baseURL+path, payload)
		if err != nil {
			return remoteResult{}, err
		}
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		resp, err := r.client.Do(req)
		if err != nil {
			return remoteResult{}, fmt.Errorf("remote store unreachable: %w", err)
		}
		defer resp.Body.Close()

		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return remoteResult{}, err
		}
		if resp.StatusCode >= 500 {
			return remoteResult{}, fmt.Errorf("remote store error: %s", resp.Status)
		}
		return remoteResult{status: resp.StatusCode, body: data}, nil
	})
	if err != nil {
		return err
	}

	if result.status == http.StatusNotFound {
		return ErrNotFound
	}
	if result.status >= 400 {
		return fmt.Errorf("remote store rejected %s %s: status %d", method, path, result.status)
	}

	if out != nil {
		return json.Unmarshal(result.body, out)
	}
	return nil
}

func (r *Remote) get(ctx context.Context, path string, out interface{}) error {
	return r.do(ctx, http.MethodGet, path, nil, out)
}

func (r *Remote) post(ctx context.Context, path string, body, out interface{}) error {
	return r.do(ctx, http.MethodPost, path, body, out)
}

func (r *Remote) put(ctx context.Context, path string, body, out interface{}) error {
	return r.do(ctx, http.MethodPut, path, body, out)
}

func (r *Remote) delete(ctx context.Context, path string) error {
	return r.do(ctx, http.MethodDelete, path, nil, nil)
}
