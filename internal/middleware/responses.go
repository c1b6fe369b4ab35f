package middleware

import (
	"encoding/json"
	"net/http"
	"strings"
)

type errorResponse struct {
	Error  string `json:"error"`
	Status int    `json:"status"`
}

// WriteError answers JSON for htmx and API callers and plain text otherwise.
func WriteError(w http.ResponseWriter, r *http.Request, code int, msg string) {
	if IsHTMX(r.Context()) || wantsJSON(r) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.WriteHeader(code)
		_ = json.NewEncoder(w).Encode(errorResponse{Error: msg, Status: code})
		return
	}
	http.Error(w, msg, code)
}

func wantsJSON(r *http.Request) bool {
	if strings.HasPrefix(r.URL.Path, "/api/") {
		return true
	}
	return strings.Contains(r.Header.Get("Accept"), "application/json")
}
