package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// LoginRateLimiter throttles credential endpoints per client IP so a single
// host can't brute-force passwords. Buckets refill at loginRate and are
// created lazily per IP; idle entries are swept so the map stays bounded.
type LoginRateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

const (
	loginBurst = 10
	visitorTTL = 10 * time.Minute
)

var loginRate = rate.Limit(1) // one attempt per second once the burst is spent

func NewLoginRateLimiter() *LoginRateLimiter {
	l := &LoginRateLimiter{visitors: make(map[string]*visitor)}
	go l.cleanupLoop()
	return l
}

func (l *LoginRateLimiter) cleanupLoop() {
	for range time.Tick(visitorTTL) {
		l.sweep(time.Now().Add(-visitorTTL))
	}
}

// sweep removes visitors not seen since cutoff.
func (l *LoginRateLimiter) sweep(cutoff time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for ip, v := range l.visitors {
		if v.lastSeen.Before(cutoff) {
			delete(l.visitors, ip)
		}
	}
}

func (l *LoginRateLimiter) limiter(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	v, ok := l.visitors[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(loginRate, loginBurst)}
		l.visitors[ip] = v
	}
	v.lastSeen = time.Now()
	return v.limiter
}

func (l *LoginRateLimiter) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}

		if !l.limiter(ip).Allow() {
			http.Error(w, "Too many attempts", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}
