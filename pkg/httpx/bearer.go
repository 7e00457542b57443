package httpx

import (
	"net/http"
	"strings"
)

// BearerToken returns the raw Authorization header value. The scheme is left
// in place; the verifier strips it and decides what counts as malformed.
func BearerToken(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get("Authorization"))
}

// HeaderValue looks up name in a plain map without regard to case, the way
// net/http does for real headers.
func HeaderValue(headers map[string]string, name string) string {
	if v, ok := headers[name]; ok {
		return v
	}
	for k, v := range headers {
		if strings.EqualFold(k, name) {
			return v
		}
	}
	return ""
}

// WriteBearerError writes an RFC 6750-compliant 401 for bearer auth.
func WriteBearerError(w http.ResponseWriter, desc string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token", error_description="`+desc+`"`)
	WriteJSON(w, http.StatusUnauthorized, map[string]string{
		"error":             "invalid_token",
		"error_description": desc,
	})
}
