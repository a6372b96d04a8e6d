package middleware

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"
)

// LoginRateLimiter throttles failed login attempts per client IP
type LoginRateLimiter struct {
	mu          sync.Mutex
	attempts    map[string][]time.Time
	maxAttempts int
	window      time.Duration
}

// NewLoginRateLimiter creates a limiter allowing maxAttempts per window
func NewLoginRateLimiter(maxAttempts int, window time.Duration) *LoginRateLimiter {
	return &LoginRateLimiter{
		attempts:    make(map[string][]time.Time),
		maxAttempts: maxAttempts,
		window:      window,
	}
}

// Allow reports whether a login attempt from ip may proceed
func (rl *LoginRateLimiter) Allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	return len(rl.recentLocked(ip)) < rl.maxAttempts
}

// Record registers a failed attempt from ip
func (rl *LoginRateLimiter) Record(ip string) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	rl.attempts[ip] = append(rl.recentLocked(ip), time.Now())
}

// Reset clears attempts for ip after a successful login
func (rl *LoginRateLimiter) Reset(ip string) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	delete(rl.attempts, ip)
}

// recentLocked drops attempts older than the window and returns what
// remains. Callers must hold the mutex.
func (rl *LoginRateLimiter) recentLocked(ip string) []time.Time {
	cutoff := time.Now().Add(-rl.window)

	var recent []time.Time
	for _, attempt := range rl.attempts[ip] {
		if attempt.After(cutoff) {
			recent = append(recent, attempt)
		}
	}

	if len(recent) == 0 {
		delete(rl.attempts, ip)
	} else {
		rl.attempts[ip] = recent
	}
	return recent
}

// ClientIP extracts the client address, preferring X-Forwarded-For
func ClientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if i := strings.IndexByte(fwd, ','); i >= 0 {
			return strings.TrimSpace(fwd[:i])
		}
		return strings.TrimSpace(fwd)
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
