package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
)

// Readiness проверяет зависимости сервиса (например, ping БД)
type Readiness func(ctx context.Context) error

// readinessTimeout ограничивает проверку, чтобы health не зависал вместе с БД
const readinessTimeout = 2 * time.Second

// Handler возвращает HTTP handler для health check endpoint.
// 200 {"status":"ok"} если readiness не указана или вернула nil,
// 503 {"status":"not ready"} если readiness вернула ошибку.
func Handler(readiness Readiness) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		if readiness != nil {
			ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
			defer cancel()

			if err := readiness(ctx); err != nil {
				w.WriteHeader(http.StatusServiceUnavailable)
				json.NewEncoder(w).Encode(map[string]string{"status": "not ready"})
				return
			}
		}

		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}
}
