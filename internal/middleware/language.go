package middleware

import "net/http"

// ContentLanguage stamps every response with the storefront language tag.
func ContentLanguage(tag string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Language", tag)
			next.ServeHTTP(w, r)
		})
	}
}
