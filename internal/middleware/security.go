package middleware

import (
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/wellnest-health/wellnest-backend/pkg/clientip"
)

// SecurityHeaders sets security-related response headers.
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("X-XSS-Protection", "1; mode=block")
		w.Header().Set("Content-Security-Policy", "default-src 'self'")
		w.Header().Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		next.ServeHTTP(w, r)
	})
}

const (
	limiterCleanupInterval = 5 * time.Minute
	limiterTTL             = 30 * time.Minute
)

type limiterEntry struct {
	limiter *rate.Limiter
	lastUse time.Time
}

// PerIPLimit is an in-process token-bucket limiter keyed by client IP.
// Stale limiters are dropped periodically so the map does not grow without
// bound.
func PerIPLimit(rps rate.Limit, burst int) func(http.Handler) http.Handler {
	var (
		mu      sync.Mutex
		entries = make(map[string]*limiterEntry)
	)

	go func() {
		for range time.Tick(limiterCleanupInterval) {
			mu.Lock()
			for ip, e := range entries {
				if time.Since(e.lastUse) > limiterTTL {
					delete(entries, ip)
				}
			}
			mu.Unlock()
		}
	}()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := clientip.RealClientIP(r)

			mu.Lock()
			e, ok := entries[ip]
			if !ok {
				e = &limiterEntry{limiter: rate.NewLimiter(rps, burst)}
				entries[ip] = e
			}
			e.lastUse = time.Now()
			mu.Unlock()

			if !e.limiter.Allow() {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				w.Write([]byte(`{"success":false,"message":"Too many requests. Please slow down."}`))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
