// Package status reports readiness of the storefront's startup-loaded
// components for /healthz.
package status

import (
	"context"
	"encoding/json"
	"net/http"
	"sort"
	"sync"
	"time"
)

// States reported per component and overall.
const (
	StateOK       = "ok"
	StateDegraded = "degraded"
)

// Component is the result of one check.
type Component struct {
	Name   string `json:"name"`
	Status string `json:"status"`
	Detail string `json:"detail,omitempty"`
}

// Summary captures the overall status.
type Summary struct {
	State      string      `json:"status"`
	CheckedAt  time.Time   `json:"checkedAt"`
	Components []Component `json:"components"`
}

// Check reports nil when the named component is usable.
type Check func(ctx context.Context) error

// Registry runs named checks.
type Registry struct {
	mu     sync.RWMutex
	checks map[string]Check
	now    func() time.Time
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{checks: map[string]Check{}, now: time.Now}
}

// Register adds or replaces a check.
func (r *Registry) Register(name string, check Check) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checks[name] = check
}

// Summary runs every check in name order.
func (r *Registry) Summary(ctx context.Context) Summary {
	r.mu.RLock()
	names := make([]string, 0, len(r.checks))
	for name := range r.checks {
		names = append(names, name)
	}
	checks := make(map[string]Check, len(r.checks))
	for k, v := range r.checks {
		checks[k] = v
	}
	r.mu.RUnlock()
	sort.Strings(names)

	s := Summary{State: StateOK, CheckedAt: r.now().UTC(), Components: make([]Component, 0, len(names))}
	for _, name := range names {
		c := Component{Name: name, Status: StateOK}
		if err := checks[name](ctx); err != nil {
			c.Status = StateDegraded
			c.Detail = err.Error()
			s.State = StateDegraded
		}
		s.Components = append(s.Components, c)
	}
	return s
}

// Handler serves the summary as JSON; degraded answers 503.
func (r *Registry) Handler() http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		s := r.Summary(req.Context())
		code := http.StatusOK
		if s.State != StateOK {
			code = http.StatusServiceUnavailable
		}
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		w.WriteHeader(code)
		_ = json.NewEncoder(w).Encode(s)
	}
}
