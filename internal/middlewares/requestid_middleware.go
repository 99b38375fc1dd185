package middlewares

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/madome/auth-core/pkg"
)

// RequestIDMiddleware stamps every request with a fresh X-Request-ID header
// before it reaches any handler, so downstream logs and the JSON error
// payload's request_id field can be correlated back to a single request.
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := pkg.NewLogger()
		defer logger.Close()

		requestId, err := uuid.NewRandom()
		if err != nil {
			logger.Error("Error generating UUID for the request")
			next.ServeHTTP(w, r)
			return
		}

		w.Header().Set("X-Request-ID", requestId.String())
		logger.Info("Incoming request", "RequestID", requestId.String())

		next.ServeHTTP(w, r)
	})
}
