package middleware

import (
	"net/http"
	"strconv"
)

// NoStore prevents intermediaries and browsers from caching the response.
func NoStore() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Cache-Control", "no-store, max-age=0")
			w.Header().Set("Pragma", "no-cache")
			next.ServeHTTP(w, r)
		})
	}
}

// Revalidate lets shared caches keep pages for sMaxAge seconds while browsers always revalidate.
// A zero sMaxAge disables shared caching too.
func Revalidate(sMaxAge int) func(http.Handler) http.Handler {
	value := "public, max-age=0, must-revalidate"
	if sMaxAge > 0 {
		value += ", s-maxage=" + strconv.Itoa(sMaxAge)
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Cache-Control", value)
			next.ServeHTTP(w, r)
		})
	}
}

// SecureHeaders sets the baseline response headers for HTML pages.
func SecureHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		h.Set("X-Frame-Options", "DENY")
		next.ServeHTTP(w, r)
	})
}
