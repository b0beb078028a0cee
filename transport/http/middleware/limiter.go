package middleware

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"stayhub/shared"
	"stayhub/shared/cache"
	"stayhub/shared/constant"
	"stayhub/transport/http/response"
)

const (
	cacheKeyRateLimit = "limiter"
)

func (a *appMiddleware) RateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !a.config.App.RateLimiter.Enable {
			next.ServeHTTP(w, r)

			return
		}

		maxReqs := a.config.App.RateLimiter.MaxRequests
		windowSecs := a.config.App.RateLimiter.WindowSeconds

		userAgent := a.getUA(r)
		clientIP := a.getClientIP(r)
		cacheKey := shared.BuildCacheKey(cacheKeyRateLimit, clientIP, userAgent)

		var count int
		err := a.cache.Get(r.Context(), cacheKey, &count)

		if err != nil {
			if errors.Is(err, cache.Nil) {
				count = 1
			} else {
				// If cache fails, allow the request to continue
				next.ServeHTTP(w, r)

				return
			}
		} else {
			count++
		}

		if count > maxReqs {
			response.WithRequestLimitExceeded(w)

			return
		}

		err = a.cache.Save(r.Context(), cacheKey, count, windowSecs)
		if err != nil {
			// If cache save fails, allow the request to continue
			next.ServeHTTP(w, r)

			return
		}

		w.Header().Set(constant.RequestHeaderRateLimit, strconv.Itoa(maxReqs))
		w.Header().Set(constant.RequestHeaderRateLimitRemaining, strconv.Itoa(max(0, maxReqs-count)))
		w.Header().Set(constant.RequestHeaderRateLimitWindow, strconv.Itoa(windowSecs))

		next.ServeHTTP(w, r)
	})
}

func (a *appMiddleware) getUA(r *http.Request) string {
	ua := r.Header.Get(constant.RequestHeaderUserAgent)
	if ua == "" {
		ua = "unknown"
	}

	return ua
}

func (a *appMiddleware) getClientIP(r *http.Request) string {
	forwarded := r.Header.Get(constant.RequestHeaderForwardedFor)
	if forwarded != "" {
		parts := strings.Split(forwarded, ",")

		return strings.TrimSpace(parts[0])
	}

	realIP := r.Header.Get(constant.RequestHeaderRealIP)
	if realIP != "" {
		return realIP
	}

	host := r.RemoteAddr
	if index := strings.LastIndex(host, ":"); index != -1 {
		host = host[:index]
	}

	return host
}
