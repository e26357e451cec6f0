package auth

import (
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/mcdev12/tipster/go/internal/httpapi"
	"golang.org/x/time/rate"
)

const (
	// cleanupThreshold is the minimum map size before a cleanup pass runs.
	cleanupThreshold = 500
	// maxIdleAge is the duration after which an idle IP entry is eligible for cleanup.
	maxIdleAge = 10 * time.Minute
)

type ipEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// IPRateLimiter is an IP-based rate limiter that prunes stale entries inline.
type IPRateLimiter struct {
	ips   map[string]*ipEntry
	mu    sync.Mutex
	r     rate.Limit
	b     int
	clock clockwork.Clock
}

// NewIPRateLimiter allows perSecond requests per IP with the given burst.
func NewIPRateLimiter(perSecond float64, burst int, clock clockwork.Clock) *IPRateLimiter {
	return &IPRateLimiter{
		ips:   make(map[string]*ipEntry),
		r:     rate.Limit(perSecond),
		b:     burst,
		clock: clock,
	}
}

// Allow reports whether ip may make a request now.
func (i *IPRateLimiter) Allow(ip string) bool {
	i.mu.Lock()
	defer i.mu.Unlock()

	now := i.clock.Now()
	if len(i.ips) > cleanupThreshold {
		cutoff := now.Add(-maxIdleAge)
		for k, e := range i.ips {
			if e.lastSeen.Before(cutoff) {
				delete(i.ips, k)
			}
		}
	}

	e, exists := i.ips[ip]
	if !exists {
		e = &ipEntry{limiter: rate.NewLimiter(i.r, i.b)}
		i.ips[ip] = e
	}
	e.lastSeen = now

	return e.limiter.AllowN(now, 1)
}

// Middleware rejects requests over the limit with 429.
func (i *IPRateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}

		if !i.Allow(ip) {
			httpapi.WriteJSON(w, http.StatusTooManyRequests, httpapi.Response{
				Success: false,
				Message: "too many requests, try again later",
			})
			return
		}

		next.ServeHTTP(w, r)
	})
}
