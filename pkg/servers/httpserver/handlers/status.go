package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"git.lowcodeplatform.net/fabric/demo/pkg/logger"
)

// Status описание сервиса
// @Router /api/status [get]
func (h *handlers) Status(w http.ResponseWriter, r *http.Request) {
	var err error
	defer func() {
		if err != nil {
			logger.Error(r.Context(), "[Status] Error response execution", zap.Error(err))
		}
	}()

	serviceResult, err := h.service.Status(r.Context())
	if err != nil {
		err = h.transportError(r.Context(), w, http.StatusInternalServerError, err, MsgInternalError)
		return
	}

	err = h.transportResponse(w, serviceResult)
}
