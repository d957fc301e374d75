package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

// How long an in-flight marker survives if the handler never finishes
// (crashed worker); duplicates fall through to the handler after this.
const inFlightTTL = 10 * time.Second

type cacheEntry struct {
	InProgress bool      `json:"in_progress"`
	Code       int       `json:"code"`
	Body       []byte    `json:"body"`
	CreatedAt  time.Time `json:"created_at"`
}

type respRecorder struct {
	w    http.ResponseWriter
	buf  *bytes.Buffer
	code int
}

func (r *respRecorder) Header() http.Header { return r.w.Header() }
func (r *respRecorder) Write(b []byte) (int, error) {
	if r.buf != nil {
		r.buf.Write(b)
	}
	return r.w.Write(b)
}
func (r *respRecorder) WriteHeader(statusCode int) { r.code = statusCode; r.w.WriteHeader(statusCode) }

func cacheKey(c echo.Context) string {
	caller := UserID(c)
	if caller == "" {
		caller = "anon"
	}
	return "respcache:" + c.Request().Method + ":" + c.Request().URL.RequestURI() + ":" + caller
}

// ResponseCache caches successful GET responses per caller for ttl and
// collapses duplicate concurrent requests onto one handler run. Read-side
// only; mutating methods always pass through.
func ResponseCache(rdb *redis.Client, ttl time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Method != http.MethodGet {
				return next(c)
			}

			key := cacheKey(c)
			ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
			defer cancel()

			marker, _ := json.Marshal(cacheEntry{InProgress: true, CreatedAt: time.Now().UTC()})
			set, err := rdb.SetNX(ctx, key, marker, inFlightTTL).Result()
			if err != nil {
				// Cache down: degrade to the handler, never block reads.
				return next(c)
			}
			if !set {
				if entry, ok := loadEntry(ctx, rdb, key); ok && !entry.InProgress {
					return c.Blob(entry.Code, echo.MIMEApplicationJSON, entry.Body)
				}
				// Another worker is filling the key; serve fresh rather than wait.
				return next(c)
			}

			rec := &respRecorder{w: c.Response().Writer, buf: &bytes.Buffer{}, code: http.StatusOK}
			c.Response().Writer = rec
			if err := next(c); err != nil {
				c.Error(err)
			}

			if rec.code == http.StatusOK {
				final, _ := json.Marshal(cacheEntry{
					Code:      rec.code,
					Body:      rec.buf.Bytes(),
					CreatedAt: time.Now().UTC(),
				})
				if err := rdb.Set(context.Background(), key, final, ttl).Err(); err != nil {
					log.Printf("respcache: save %s: %v", key, err)
				}
			} else {
				// Don't serve failures from cache.
				_ = rdb.Del(context.Background(), key).Err()
			}
			return nil
		}
	}
}

func loadEntry(ctx context.Context, rdb *redis.Client, key string) (cacheEntry, bool) {
	raw, err := rdb.Get(ctx, key).Bytes()
	if err != nil {
		return cacheEntry{}, false
	}
	var entry cacheEntry
	if err := json.Unmarshal(raw, &entry); err != nil {
		return cacheEntry{}, false
	}
	return entry, true
}
