// Package health provides liveness and readiness probe endpoints. Each
// registered check runs periodically in the background; the HTTP endpoints
// only read the latest results.
package health

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"sync/atomic"
	"time"
)

// CheckFunc probes one component. It returns nil when the component is
// healthy.
type CheckFunc func(ctx context.Context) error

type check struct {
	name    string
	timeout time.Duration
	fn      CheckFunc

	lastErr atomic.Pointer[error]
}

func (c *check) run(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	err := c.fn(ctx)
	c.lastErr.Store(&err)
}

func (c *check) failure() (string, bool) {
	p := c.lastErr.Load()
	if p == nil || *p == nil {
		return "", false
	}
	return (*p).Error(), true
}

// Health runs registered checks and serves their results. Construct with
// New, register checks, then Start.
type Health struct {
	mu        sync.Mutex
	liveness  []*check
	readiness []*check

	ready  atomic.Bool
	cancel context.CancelFunc
	done   chan struct{}
}

// New creates a Health service. Readiness starts false; call SetReady once
// the application has finished starting up.
func New() *Health {
	return &Health{}
}

// AddLivenessCheck registers a check consulted by the liveness endpoint.
func (h *Health) AddLivenessCheck(name string, timeout time.Duration, fn CheckFunc) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.liveness = append(h.liveness, &check{name: name, timeout: timeout, fn: fn})
}

// AddReadinessCheck registers a check consulted by the readiness endpoint.
func (h *Health) AddReadinessCheck(name string, timeout time.Duration, fn CheckFunc) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.readiness = append(h.readiness, &check{name: name, timeout: timeout, fn: fn})
}

// Start launches the background check loop. Checks run once immediately and
// then every interval until Stop or context cancellation.
func (h *Health) Start(ctx context.Context, interval time.Duration) {
	ctx, h.cancel = context.WithCancel(ctx)
	h.done = make(chan struct{})

	h.mu.Lock()
	checks := append(append([]*check(nil), h.liveness...), h.readiness...)
	h.mu.Unlock()

	go func() {
		defer close(h.done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			for _, c := range checks {
				c.run(ctx)
			}
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()
}

// Stop halts the background loop and waits for it to finish.
func (h *Health) Stop() {
	if h.cancel == nil {
		return
	}
	h.cancel()
	<-h.done
}

// SetReady flips the overall readiness gate. The readiness endpoint reports
// failure while the gate is down regardless of check results.
func (h *Health) SetReady(ready bool) {
	h.ready.Store(ready)
}

// IsReady reports the readiness gate.
func (h *Health) IsReady() bool {
	return h.ready.Load()
}

// LiveEndpoint is the liveness probe handler.
func (h *Health) LiveEndpoint(w http.ResponseWriter, _ *http.Request) {
	h.mu.Lock()
	checks := append([]*check(nil), h.liveness...)
	h.mu.Unlock()

	writeResponse(w, collectFailures(checks))
}

// ReadyEndpoint is the readiness probe handler.
func (h *Health) ReadyEndpoint(w http.ResponseWriter, _ *http.Request) {
	h.mu.Lock()
	checks := append([]*check(nil), h.readiness...)
	h.mu.Unlock()

	failures := collectFailures(checks)
	if !h.IsReady() {
		failures["ready"] = "not ready"
	}
	writeResponse(w, failures)
}

func collectFailures(checks []*check) map[string]string {
	failures := make(map[string]string)
	for _, c := range checks {
		if msg, failed := c.failure(); failed {
			failures[c.name] = msg
		}
	}
	return failures
}

type response struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

func writeResponse(w http.ResponseWriter, failures map[string]string) {
	w.Header().Set("Content-Type", "application/json")
	if len(failures) > 0 {
		w.WriteHeader(http.StatusServiceUnavailable)
		_ = json.NewEncoder(w).Encode(response{Status: "unavailable", Checks: failures})
		return
	}
	_ = json.NewEncoder(w).Encode(response{Status: "ok"})
}
