package httpserver

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/segmentio/ksuid"
	"go.uber.org/zap"

	"git.lowcodeplatform.net/fabric/demo/pkg/logger"
	"git.lowcodeplatform.net/fabric/demo/pkg/servers/httpserver/handlers"
)

const headerRequestID = "X-Request-Id"

// RequestID берем id из заголовка (если пришел от edge-сервиса) или генерируем новый
func (h *httpserver) RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(headerRequestID)
		if id == "" {
			id = ksuid.New().String()
		}
		w.Header().Set(headerRequestID, id)

		ctx := logger.SetRequestIDCtx(r.Context(), id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Recover паника в хендлере превращается в 500 без деталей для клиента
func (h *httpserver) Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}

			b := string(debug.Stack())
			logger.Error(r.Context(), fmt.Sprintf("Recover panic from path: %s", r.URL.String()),
				zap.Any("panic", rec),
				zap.String("debug stack", b))

			// если заголовки уже ушли клиенту - статус поменять нельзя
			if hw, ok := w.(interface{ headerWritten() bool }); ok && hw.headerWritten() {
				return
			}
			_ = handlers.WriteError(w, http.StatusInternalServerError, handlers.MsgInternalError)
		}()

		next.ServeHTTP(w, r)
	})
}
