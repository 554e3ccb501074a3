package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"git.lowcodeplatform.net/fabric/demo/pkg/logger"
)

// Health liveness-проверка сервиса
// @Router /health [get]
func (h *handlers) Health(w http.ResponseWriter, r *http.Request) {
	var err error
	defer func() {
		if err != nil {
			logger.Error(r.Context(), "[Health] Error response execution", zap.Error(err))
		}
	}()

	serviceResult, err := h.service.Health(r.Context())
	if err != nil {
		err = h.transportError(r.Context(), w, http.StatusInternalServerError, err, MsgInternalError)
		return
	}

	err = h.transportResponse(w, serviceResult)
}
