// Package ratelimit throttles API requests per client and endpoint.
package ratelimit

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Info contains information about rate limit status.
type Info struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	IdleTimeout     time.Duration
	Whitelist       map[string]bool
	Blacklist       map[string]bool
	EndpointConfigs []EndpointConfig
}

// visitor is one client+endpoint bucket and when it was last used.
type visitor struct {
	limiter  *rate.Limiter
	burst    int
	lastSeen time.Time
}

// Limiter manages one token bucket per client, endpoint, and method.
type Limiter struct {
	config *Config
	now    func() time.Time

	mu       sync.Mutex
	visitors map[string]*visitor

	stopOnce sync.Once
	stop     chan struct{}
}

// NewLimiter creates a limiter. A nil config enables a 1000/min default.
func NewLimiter(config *Config) *Limiter {
	if config == nil {
		config = &Config{
			Enabled:         true,
			DefaultLimit:    1000,
			DefaultWindow:   time.Minute,
			CleanupInterval: 5 * time.Minute,
		}
	}
	if config.IdleTimeout <= 0 {
		config.IdleTimeout = time.Hour
	}

	l := &Limiter{
		config:   config,
		now:      time.Now,
		visitors: make(map[string]*visitor),
		stop:     make(chan struct{}),
	}
	if config.Enabled && config.CleanupInterval > 0 {
		go l.cleanup(config.CleanupInterval)
	}
	return l
}

// Allow reports whether a request from clientID to endpoint may proceed.
func (l *Limiter) Allow(clientID, endpoint, method string) (bool, Info) {
	if !l.config.Enabled || l.config.Whitelist[clientID] {
		return true, Info{Allowed: true}
	}
	if l.config.Blacklist[clientID] {
		return false, Info{}
	}

	ec := MatchEndpoint(endpoint, method, l.config.EndpointConfigs)
	if ec == nil {
		ec = &EndpointConfig{
			Limit:  l.config.DefaultLimit,
			Window: l.config.DefaultWindow,
			Burst:  l.config.DefaultLimit,
		}
	}
	if ec.Limit <= 0 {
		return true, Info{Allowed: true}
	}

	now := l.now()
	key := endpoint
	if ec.Path != "" {
		key = ec.Path
	}
	v := l.visitor(clientID+":"+key+":"+method, ec, now)

	allowed := v.limiter.AllowN(now, 1)
	tokens := v.limiter.TokensAt(now)
	info := Info{
		Allowed:   allowed,
		Limit:     ec.Limit,
		Remaining: max(0, int(tokens)),
		ResetTime: now.Add(untilFull(tokens, v.burst, v.limiter.Limit())),
	}
	if !allowed {
		info.RetryAfter = untilFull(tokens, int(tokens)+1, v.limiter.Limit())
	}
	return allowed, info
}

func (l *Limiter) visitor(key string, ec *EndpointConfig, now time.Time) *visitor {
	l.mu.Lock()
	defer l.mu.Unlock()

	v, ok := l.visitors[key]
	if !ok {
		burst := ec.Burst
		if burst <= 0 {
			burst = ec.Limit
		}
		every := rate.Limit(float64(ec.Limit) / ec.Window.Seconds())
		v = &visitor{limiter: rate.NewLimiter(every, burst), burst: burst}
		l.visitors[key] = v
	}
	v.lastSeen = now
	return v
}

// untilFull is how long the bucket needs to climb from tokens to target.
func untilFull(tokens float64, target int, every rate.Limit) time.Duration {
	missing := float64(target) - tokens
	if missing <= 0 || every <= 0 {
		return 0
	}
	return time.Duration(missing / float64(every) * float64(time.Second))
}

func (l *Limiter) cleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			l.evictIdle()
		case <-l.stop:
			return
		}
	}
}

// evictIdle drops buckets unused for longer than the idle timeout.
func (l *Limiter) evictIdle() {
	cutoff := l.now().Add(-l.config.IdleTimeout)
	l.mu.Lock()
	defer l.mu.Unlock()
	for key, v := range l.visitors {
		if v.lastSeen.Before(cutoff) {
			delete(l.visitors, key)
		}
	}
}

// Stop stops the cleanup goroutine. It is safe to call more than once.
func (l *Limiter) Stop() {
	l.stopOnce.Do(func() { close(l.stop) })
}
