package http

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/inventory-hub/go-backend/pkg/logger"
)

type ctxKey string

const requestIDKey ctxKey = "request_id"

// RequestID проставляет каждому запросу идентификатор для корреляции логов.
// Уже присланный клиентом X-Request-Id сохраняется.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get("X-Request-Id")
		if reqID == "" {
			reqID = uuid.NewString()
		}

		w.Header().Set("X-Request-Id", reqID)
		ctx := context.WithValue(r.Context(), requestIDKey, reqID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequestIDFromCtx возвращает идентификатор запроса или пустую строку.
func RequestIDFromCtx(ctx context.Context) string {
	reqID, _ := ctx.Value(requestIDKey).(string)
	return reqID
}

// statusWriter запоминает код ответа для логирования.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// LogRequests логирует метод, путь, статус и длительность каждого запроса.
func LogRequests(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(sw, r)

			log.Infof(
				"%s %s %d %s request_id=%s",
				r.Method, r.URL.Path, sw.status, time.Since(start), RequestIDFromCtx(r.Context()),
			)
		})
	}
}
