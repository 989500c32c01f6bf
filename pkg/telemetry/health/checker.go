package health

import (
	"context"
	"sync"
	"time"
)

// CheckFunc performs a health check for a named component. It returns nil
// when the component is healthy.
type CheckFunc func(ctx context.Context) error

// CheckResult is the outcome of a single component check.
type CheckResult struct {
	// Status is "ok" or "unhealthy".
	Status string `json:"status"`

	// Message carries the failure detail for unhealthy components.
	Message string `json:"message,omitempty"`

	// Duration is how long the check took.
	Duration time.Duration `json:"duration_ms,omitempty"`
}

// Status is the aggregated health of the process.
type Status struct {
	// Status is "ok", "ready", or "degraded".
	Status string `json:"status"`

	// Checks holds per-component results for readiness responses.
	Checks map[string]CheckResult `json:"checks,omitempty"`

	// Timestamp is when the check was performed.
	Timestamp time.Time `json:"timestamp"`
}

// DefaultCheckTimeout bounds each individual component check.
const DefaultCheckTimeout = 5 * time.Second

// Checker runs registered component checks for the readiness probe.
type Checker struct {
	mu     sync.RWMutex
	checks map[string]CheckFunc

	checkTimeout time.Duration
}

// New creates a checker. A zero timeout selects DefaultCheckTimeout.
func New(checkTimeout time.Duration) *Checker {
	if checkTimeout == 0 {
		checkTimeout = DefaultCheckTimeout
	}
	return &Checker{
		checks:       make(map[string]CheckFunc),
		checkTimeout: checkTimeout,
	}
}

// RegisterCheck registers a check under name, replacing any existing one.
func (c *Checker) RegisterCheck(name string, check CheckFunc) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.checks[name] = check
}

// CheckLiveness reports whether the process is alive. It never fails while
// the process can serve requests.
func (c *Checker) CheckLiveness(ctx context.Context) Status {
	return Status{
		Status:    "ok",
		Timestamp: time.Now(),
	}
}

// CheckReadiness runs all registered checks concurrently and aggregates
// them. Any unhealthy component degrades the overall status.
func (c *Checker) CheckReadiness(ctx context.Context) Status {
	c.mu.RLock()
	checks := make(map[string]CheckFunc, len(c.checks))
	for name, check := range c.checks {
		checks[name] = check
	}
	c.mu.RUnlock()

	if len(checks) == 0 {
		return Status{
			Status:    "ready",
			Checks:    make(map[string]CheckResult),
			Timestamp: time.Now(),
		}
	}

	results := make(map[string]CheckResult)
	var resultMu sync.Mutex
	var wg sync.WaitGroup

	for name, check := range checks {
		wg.Add(1)
		go func(name string, check CheckFunc) {
			defer wg.Done()

			result := c.runCheck(ctx, check)

			resultMu.Lock()
			results[name] = result
			resultMu.Unlock()
		}(name, check)
	}

	wg.Wait()

	status := "ready"
	for _, result := range results {
		if result.Status == "unhealthy" {
			status = "degraded"
		}
	}

	return Status{
		Status:    status,
		Checks:    results,
		Timestamp: time.Now(),
	}
}

func (c *Checker) runCheck(ctx context.Context, check CheckFunc) CheckResult {
	checkCtx, cancel := context.WithTimeout(ctx, c.checkTimeout)
	defer cancel()

	start := time.Now()

	errChan := make(chan error, 1)
	go func() {
		errChan <- check(checkCtx)
	}()

	select {
	case err := <-errChan:
		duration := time.Since(start)
		if err != nil {
			return CheckResult{
				Status:   "unhealthy",
				Message:  err.Error(),
				Duration: duration,
			}
		}
		return CheckResult{
			Status:   "ok",
			Duration: duration,
		}

	case <-checkCtx.Done():
		return CheckResult{
			Status:   "unhealthy",
			Message:  "health check timeout",
			Duration: time.Since(start),
		}
	}
}
