package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/Brommah/contentfinal-sub002/pkg/api"
)

// Recover перехватывает panic, логирует стек и возвращает 500 с JSON телом.
// http.ErrAbortHandler пробрасывается дальше, как того ожидает net/http.
func Recover(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				logger.Error("Panic recovered",
					"error", rec,
					"method", r.Method,
					"path", r.URL.Path,
					"stack", string(debug.Stack()),
				)

				// Детали паники клиенту не раскрываем
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				_ = json.NewEncoder(w).Encode(api.ErrorResponse{
					Error:   api.ErrCodeInternal,
					Message: "internal server error",
				})
			}()

			next.ServeHTTP(w, r)
		})
	}
}
