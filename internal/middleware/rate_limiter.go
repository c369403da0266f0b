package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/Joecr98/sistema-precios-menus/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// buckets is a per-IP fixed-window counter shared by both limiters.
type buckets struct {
	mu      sync.Mutex
	entries map[string]*bucket
}

type bucket struct {
	count     int
	windowEnd time.Time
}

func newBuckets() *buckets {
	return &buckets{entries: make(map[string]*bucket)}
}

// allow counts one request for ip and reports whether it stays under limit.
func (b *buckets) allow(ip string, limit int, window time.Duration) (bool, time.Time) {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	e, ok := b.entries[ip]
	if !ok || now.After(e.windowEnd) {
		e = &bucket{windowEnd: now.Add(window)}
		b.entries[ip] = e
	}
	e.count++
	return e.count <= limit, e.windowEnd
}

func (b *buckets) purge(now time.Time) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	purged := 0
	for ip, e := range b.entries {
		if now.After(e.windowEnd) {
			delete(b.entries, ip)
			purged++
		}
	}
	return purged
}

var (
	loginBuckets = newBuckets()
	apiBuckets   = newBuckets()
)

// LoginRateLimiter limits login attempts to 20 per minute per IP, a much
// tighter budget than the general API limiter.
func LoginRateLimiter() gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, _ := loginBuckets.allow(c.ClientIP(), 20, time.Minute)
		if !ok {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New("Demasiados intentos de login. Intente en 1 minuto."))
			return
		}
		c.Next()
	}
}

// RateLimiter applies a fixed-window per-IP limit to the whole API.
func RateLimiter(limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, windowEnd := apiBuckets.allow(c.ClientIP(), limit, window)
		if !ok {
			c.Header("Retry-After", windowEnd.Format(time.RFC1123))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New("Demasiadas solicitudes. Intente nuevamente en un momento."))
			return
		}
		c.Next()
	}
}

// Expired entries are swept periodically so one-off IPs do not accumulate.
const purgeInterval = 5 * time.Minute

func init() {
	go func() {
		ticker := time.NewTicker(purgeInterval)
		defer ticker.Stop()
		for range ticker.C {
			now := time.Now()
			login := loginBuckets.purge(now)
			api := apiBuckets.purge(now)
			if login > 0 || api > 0 {
				log.Debug().
					Int("login_entries_purged", login).
					Int("api_entries_purged", api).
					Msg("rate limiter buckets purged")
			}
		}
	}()
}
