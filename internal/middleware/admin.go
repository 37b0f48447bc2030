package middleware

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
)

const HeaderAdminPassword = "X-Admin-Password"

type adminRejection struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// AdminGate guards administrative routes with a shared-secret header. The
// comparison is constant-time; a mismatch stops the chain with a 401.
func AdminGate(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			supplied := r.Header.Get(HeaderAdminPassword)
			if subtle.ConstantTimeCompare([]byte(supplied), []byte(secret)) != 1 {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_ = json.NewEncoder(w).Encode(adminRejection{Success: false, Error: "unauthorized"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
