package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"git.lowcodeplatform.net/fabric/demo/pkg/logger"
)

// Data фиксированный набор элементов
// @Router /api/data [get]
func (h *handlers) Data(w http.ResponseWriter, r *http.Request) {
	var err error
	defer func() {
		if err != nil {
			logger.Error(r.Context(), "[Data] Error response execution", zap.Error(err))
		}
	}()

	serviceResult, err := h.service.Data(r.Context())
	if err != nil {
		err = h.transportError(r.Context(), w, http.StatusInternalServerError, err, MsgInternalError)
		return
	}

	err = h.transportResponse(w, serviceResult)
}
