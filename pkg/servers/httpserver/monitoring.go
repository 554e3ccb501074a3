package httpserver

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"git.lowcodeplatform.net/fabric/demo/pkg/logger"
	"git.lowcodeplatform.net/fabric/demo/pkg/metrics"
)

// Recorder принимает одно наблюдение на каждый завершенный запрос
type Recorder interface {
	Record(labels metrics.Labels, seconds float64) error
}

// responseWriter запоминает статус, фактически отправленный клиенту
type responseWriter struct {
	http.ResponseWriter
	statusCode  int
	wroteHeader bool
}

func (rw *responseWriter) WriteHeader(code int) {
	if !rw.wroteHeader {
		rw.statusCode = code
		rw.wroteHeader = true
	}
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.wroteHeader {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func (rw *responseWriter) Flush() {
	if !rw.wroteHeader {
		rw.WriteHeader(http.StatusOK)
	}
	if f, ok := rw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}

func (rw *responseWriter) headerWritten() bool {
	return rw.wroteHeader
}

// Monitoring замеряет каждый запрос и пишет ровно одно наблюдение после того,
// как ответ отдан клиенту (в т.ч. для 404 и 500)
func (h *httpserver) Monitoring(next http.Handler) http.Handler {
	return instrument(h.registry, next)
}

func instrument(recorder Recorder, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		defer func() {
			rw.Flush()
			timeInterval := time.Since(start)
			labels := metrics.Labels{
				Method:     r.Method,
				Route:      r.URL.Path,
				StatusCode: rw.statusCode,
			}
			monitoringTiming(r.Context(), recorder, labels, timeInterval)

			logger.Info(r.Context(), "Query: "+r.Method+" "+r.RequestURI,
				zap.Int("status", rw.statusCode),
				zap.Float64("timing", timeInterval.Seconds()))
		}()

		next.ServeHTTP(rw, r)
	})
}

// monitoringTiming запись best-effort: ответ уже отправлен, ошибки только логируем
func monitoringTiming(ctx context.Context, recorder Recorder, labels metrics.Labels, d time.Duration) {
	defer func() {
		if rec := recover(); rec != nil {
			logger.Error(ctx, "[Monitoring] panic on record metric", zap.Any("panic", rec))
		}
	}()

	if err := recorder.Record(labels, d.Seconds()); err != nil {
		logger.Error(ctx, "[Monitoring] unable record metric",
			zap.String("method", labels.Method),
			zap.String("route", labels.Route),
			zap.Error(err))
	}
}
