package server

import (
	"log/slog"
	"net"
	"net/http"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/osse101/ValleyCompanion_Go/internal/handler"
)

// RequestSizeLimitMiddleware limits request body size
func RequestSizeLimitMiddleware(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// RateDetector counts requests per client IP in fixed windows and flags
// clients above the limit
type RateDetector struct {
	mu               sync.Mutex
	requestCountByIP map[string]int
	windowStart      time.Time
	window           time.Duration
	limit            int
	now              func() time.Time
}

// NewRateDetector allows limit requests per IP in each window
func NewRateDetector(limit int, window time.Duration) *RateDetector {
	return &RateDetector{
		requestCountByIP: make(map[string]int),
		windowStart:      time.Now(),
		window:           window,
		limit:            limit,
		now:              time.Now,
	}
}

// RecordRequest records a request and returns false if the IP is over the limit
func (d *RateDetector) RecordRequest(ip string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.resetIfNeeded()
	d.requestCountByIP[ip]++

	count := d.requestCountByIP[ip]
	if count > d.limit {
		// Log every 100 blocked requests
		if count%100 == 0 {
			slog.Warn(SecurityAlertHighRate, "ip", ip, "count_in_window", count)
		}
		return false
	}
	return true
}

// resetIfNeeded starts a new window once the current one has passed.
// Caller must hold the mutex.
func (d *RateDetector) resetIfNeeded() {
	if now := d.now(); now.Sub(d.windowStart) > d.window {
		d.requestCountByIP = make(map[string]int)
		d.windowStart = now
	}
}

// RateLimitMiddleware rejects clients the detector flags with 429
func RateLimitMiddleware(trustedProxies []string, detector *RateDetector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !detector.RecordRequest(extractIP(r, trustedProxies)) {
				handler.RespondError(w, http.StatusTooManyRequests, ErrMsgTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// extractIP gets the client IP address from request.
// It only trusts X-Forwarded-For if the request comes from a trusted proxy.
func extractIP(r *http.Request, trustedProxies []string) string {
	remoteIP, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		remoteIP = r.RemoteAddr
	}

	if slices.Contains(trustedProxies, remoteIP) {
		if forwarded := r.Header.Get(HeaderForwardedFor); forwarded != "" {
			// The rightmost entry is the hop that reached our proxy
			ips := strings.Split(forwarded, ",")
			return strings.TrimSpace(ips[len(ips)-1])
		}
	}

	return remoteIP
}

// SecurityHeadersMiddleware adds security headers to responses
func SecurityHeadersMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set(HeaderContentType, HeaderValueNoSniff)
			w.Header().Set(HeaderFrameOptions, HeaderValueSameOrigin)
			w.Header().Set(HeaderXSSProtection, HeaderValueXSSBlock)
			w.Header().Set(HeaderReferrerPolicy, HeaderValueReferrerStrictOrigin)

			next.ServeHTTP(w, r)
		})
	}
}
