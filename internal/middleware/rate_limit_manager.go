package middleware

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	visitorIdleTimeout = 3 * time.Minute
	cleanupInterval    = time.Minute
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimitManager manages per-client rate limiters with lifecycle control
type RateLimitManager struct {
	requestsPerWindow int
	windowSeconds     int
	burst             int

	visitors   map[string]*visitor
	visitorsMu sync.Mutex
	now        func() time.Time

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewRateLimitManager creates a manager whose cleanup loop runs until ctx is
// canceled or Shutdown is called. A non-positive requestsPerWindow disables
// limiting.
func NewRateLimitManager(ctx context.Context, requestsPerWindow, windowSeconds, burst int) *RateLimitManager {
	managerCtx, cancel := context.WithCancel(ctx)

	if windowSeconds <= 0 {
		windowSeconds = 60
	}
	if burst < requestsPerWindow {
		burst = requestsPerWindow
	}

	m := &RateLimitManager{
		requestsPerWindow: requestsPerWindow,
		windowSeconds:     windowSeconds,
		burst:             burst,
		visitors:          make(map[string]*visitor),
		now:               time.Now,
		ctx:               managerCtx,
		cancel:            cancel,
	}

	m.wg.Add(1)
	go m.cleanupLoop()

	return m
}

// GetVisitor retrieves or creates the limiter for the given client IP
func (m *RateLimitManager) GetVisitor(ip string) *rate.Limiter {
	if m == nil || m.requestsPerWindow <= 0 {
		return nil
	}

	m.visitorsMu.Lock()
	defer m.visitorsMu.Unlock()

	v, exists := m.visitors[ip]
	if !exists {
		limit := rate.Limit(float64(m.requestsPerWindow) / float64(m.windowSeconds))
		v = &visitor{limiter: rate.NewLimiter(limit, m.burst)}
		m.visitors[ip] = v
	}

	v.lastSeen = m.now()
	return v.limiter
}

func (m *RateLimitManager) cleanupLoop() {
	defer m.wg.Done()

	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-m.ctx.Done():
			return
		case <-ticker.C:
			m.cleanup()
		}
	}
}

// cleanup removes limiters of clients idle for longer than visitorIdleTimeout
func (m *RateLimitManager) cleanup() {
	m.visitorsMu.Lock()
	defer m.visitorsMu.Unlock()

	now := m.now()
	for ip, v := range m.visitors {
		if now.Sub(v.lastSeen) > visitorIdleTimeout {
			delete(m.visitors, ip)
		}
	}
}

// Shutdown stops the cleanup goroutine and waits for it to finish
func (m *RateLimitManager) Shutdown() error {
	m.cancel()
	m.wg.Wait()
	return nil
}
