package middleware

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/veloracommerce/velora-backend/api/responses"
	pkgerrors "github.com/veloracommerce/velora-backend/pkg/errors"
	"github.com/veloracommerce/velora-backend/pkg/logger"
)

type rateLimiterStore interface {
	IncrWithTTL(context.Context, string, time.Duration) (int64, error)
}

// AuthRateLimitPolicy throttles an auth surface with fixed-window counters
// keyed by client IP and by the submitted email. A zero window or all-zero
// limits disable the policy entirely.
type AuthRateLimitPolicy struct {
	name       string
	window     time.Duration
	ipLimit    int
	emailLimit int
}

func NewAuthRateLimitPolicy(name string, window time.Duration, ipLimit, emailLimit int) AuthRateLimitPolicy {
	return AuthRateLimitPolicy{
		name:       strings.ToLower(strings.TrimSpace(name)),
		window:     window,
		ipLimit:    ipLimit,
		emailLimit: emailLimit,
	}
}

func (p AuthRateLimitPolicy) enabled() bool {
	return p.window > 0 && (p.ipLimit > 0 || p.emailLimit > 0)
}

func (p AuthRateLimitPolicy) label() string {
	if p.name == "" {
		return "auth"
	}
	return p.name
}

// AuthRateLimit wraps an auth endpoint with the policy's counters. Emails
// are hashed before they become redis keys or log fields, so throttling
// state never stores an address in the clear.
func AuthRateLimit(policy AuthRateLimitPolicy, store rateLimiterStore, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if !policy.enabled() || store == nil {
			return next
		}
		limiter := &authLimiter{policy: policy, store: store, logg: logg}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			if done := limiter.checkIP(ctx, w, r); done {
				return
			}
			if done := limiter.checkEmail(ctx, w, r); done {
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

type authLimiter struct {
	policy AuthRateLimitPolicy
	store  rateLimiterStore
	logg   *logger.Logger
}

// checkIP reports true when it already wrote a response.
func (l *authLimiter) checkIP(ctx context.Context, w http.ResponseWriter, r *http.Request) bool {
	if l.policy.ipLimit <= 0 {
		return false
	}
	ip := clientIP(r)
	if ip == "" {
		return false
	}

	key := fmt.Sprintf("rl:ip:%s:%s", l.policy.label(), ip)
	count, err := l.store.IncrWithTTL(ctx, key, l.policy.window)
	if err != nil {
		responses.WriteError(ctx, nil, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "rate limiting"))
		return true
	}
	if count > int64(l.policy.ipLimit) {
		l.reject(ctx, w, "ip", map[string]any{"ip": ip}, count, l.policy.ipLimit)
		return true
	}
	return false
}

// checkEmail buffers the body to read the email field, then restores it for
// the handler. Reports true when it already wrote a response.
func (l *authLimiter) checkEmail(ctx context.Context, w http.ResponseWriter, r *http.Request) bool {
	if l.policy.emailLimit <= 0 {
		return false
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		responses.WriteError(ctx, nil, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "read request"))
		return true
	}
	r.Body = io.NopCloser(bytes.NewReader(body))

	email := strings.ToLower(strings.TrimSpace(extractEmail(body)))
	if email == "" {
		return false
	}
	digest := sha256.Sum256([]byte(email))
	hash := hex.EncodeToString(digest[:])

	key := fmt.Sprintf("rl:email:%s:%s", l.policy.label(), hash)
	count, err := l.store.IncrWithTTL(ctx, key, l.policy.window)
	if err != nil {
		responses.WriteError(ctx, nil, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "rate limiting"))
		return true
	}
	if count > int64(l.policy.emailLimit) {
		l.reject(ctx, w, "email", map[string]any{"email_hash": hash}, count, l.policy.emailLimit)
		return true
	}
	return false
}

func (l *authLimiter) reject(ctx context.Context, w http.ResponseWriter, scope string, extra map[string]any, count int64, limit int) {
	if l.logg != nil {
		fields := map[string]any{
			"scope":          scope,
			"policy":         l.policy.label(),
			"attempts":       count,
			"limit":          limit,
			"window_seconds": int(l.policy.window.Seconds()),
		}
		for k, v := range extra {
			fields[k] = v
		}
		l.logg.Warn(l.logg.WithFields(ctx, fields), "auth.rate_limit.blocked")
	}
	responses.WriteError(ctx, nil, w, pkgerrors.New(pkgerrors.CodeRateLimit, "rate limit exceeded"))
}

func clientIP(r *http.Request) string {
	if r == nil {
		return ""
	}
	if header := r.Header.Get("X-Forwarded-For"); header != "" {
		for _, part := range strings.Split(header, ",") {
			if ip := strings.TrimSpace(part); ip != "" {
				return ip
			}
		}
	}
	if ip := strings.TrimSpace(r.Header.Get("X-Real-IP")); ip != "" {
		return ip
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil && host != "" {
		return host
	}
	return r.RemoteAddr
}

func extractEmail(payload []byte) string {
	var body struct {
		Email string `json:"email"`
	}
	if err := json.Unmarshal(payload, &body); err != nil {
		return ""
	}
	return body.Email
}
