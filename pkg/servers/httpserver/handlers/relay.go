package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"git.lowcodeplatform.net/fabric/demo/pkg/logger"
)

// RelayData проксирует /api/data в backend. Успешный ответ отдается байт-в-байт.
// @Router /api/data [get]
func (h *handlers) RelayData(w http.ResponseWriter, r *http.Request) {
	var err error
	defer func() {
		if err != nil {
			logger.Error(r.Context(), "[RelayData] Error response execution", zap.Error(err))
		}
	}()

	body, err := h.service.RelayData(r.Context())
	if err != nil {
		logger.Error(r.Context(), "Error fetching from backend", zap.String("backend", h.cfg.BackendURL), zap.Error(err))
		err = WriteError(w, http.StatusInternalServerError, MsgUpstreamFailed)
		return
	}

	err = transportBytes(w, http.StatusOK, body)
}
