package middleware

import (
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/Brommah/contentfinal-sub002/pkg/api"
)

// RateLimiter limits requests per client with a token bucket that refills
// continuously. It guards the sync trigger endpoints, which each start a
// run of paced remote calls.
type RateLimiter struct {
	now     func() time.Time
	buckets map[string]*bucket
	logger  *slog.Logger
	stop    chan struct{}
	rate    int
	window  time.Duration
	mu      sync.Mutex
	once    sync.Once
}

// bucket хранит токены одного клиента
type bucket struct {
	lastSeen time.Time
	tokens   float64
}

// NewRateLimiter создает limiter: не более rate запросов за window на клиента
func NewRateLimiter(rate int, window time.Duration, logger *slog.Logger) *RateLimiter {
	rl := &RateLimiter{
		now:     time.Now,
		buckets: make(map[string]*bucket),
		logger:  logger,
		stop:    make(chan struct{}),
		rate:    rate,
		window:  window,
	}
	go rl.cleanupLoop()
	return rl
}

// Stop останавливает фоновую очистку
func (rl *RateLimiter) Stop() {
	rl.once.Do(func() { close(rl.stop) })
}

// Allow списывает токен клиента key, если он есть
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	b, ok := rl.buckets[key]
	if !ok {
		b = &bucket{tokens: float64(rl.rate), lastSeen: now}
		rl.buckets[key] = b
	}

	// Пополняем пропорционально прошедшему времени
	elapsed := now.Sub(b.lastSeen)
	if elapsed > 0 {
		b.tokens += float64(rl.rate) * elapsed.Seconds() / rl.window.Seconds()
		if b.tokens > float64(rl.rate) {
			b.tokens = float64(rl.rate)
		}
	}
	b.lastSeen = now

	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}

// Limit wraps next so that clients over the limit get 429
func (rl *RateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := clientIP(r)
		if !rl.Allow(key) {
			rl.logger.Warn("Rate limit exceeded", "ip", key, "method", r.Method, "path", r.URL.Path)

			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("Retry-After", retryAfter(rl.window, rl.rate))
			w.WriteHeader(http.StatusTooManyRequests)
			_ = json.NewEncoder(w).Encode(api.ErrorResponse{
				Error:   api.ErrCodeRateLimited,
				Message: "rate limit exceeded, please try again later",
			})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (rl *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(rl.window * 2)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.cleanup()
		case <-rl.stop:
			return
		}
	}
}

// cleanup удаляет клиентов, чей бакет уже полностью восстановился
func (rl *RateLimiter) cleanup() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	for key, b := range rl.buckets {
		if now.Sub(b.lastSeen) > rl.window {
			delete(rl.buckets, key)
		}
	}
}

// retryAfter returns the seconds needed to earn one token, rounded up.
func retryAfter(window time.Duration, rate int) string {
	if rate <= 0 {
		return "60"
	}
	secs := int((window/time.Duration(rate) + time.Second - 1) / time.Second)
	if secs < 1 {
		secs = 1
	}
	return strconv.Itoa(secs)
}

// clientIP извлекает IP адрес клиента с учетом X-Forwarded-For и X-Real-IP
func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(first)
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
