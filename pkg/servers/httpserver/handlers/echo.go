package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"git.lowcodeplatform.net/fabric/demo/pkg/logger"
)

// Echo возвращает присланный json в конверте
// @Router /api/echo [post]
func (h *handlers) Echo(w http.ResponseWriter, r *http.Request) {
	var err error
	defer func() {
		if err != nil {
			logger.Error(r.Context(), "[Echo] Error response execution", zap.Error(err))
		}
	}()

	in, err := h.echoDecodeRequest(r.Context(), w, r)
	if err != nil {
		err = h.transportError(r.Context(), w, http.StatusInternalServerError, err, MsgInternalError)
		return
	}

	serviceResult, err := h.service.Echo(r.Context(), in)
	if err != nil {
		err = h.transportError(r.Context(), w, http.StatusInternalServerError, err, MsgInternalError)
		return
	}

	err = h.transportResponse(w, serviceResult)
}

// Content-Type не проверяется: любое тело разбирается как json, не-json дает 500
func (h *handlers) echoDecodeRequest(ctx context.Context, w http.ResponseWriter, r *http.Request) (request json.RawMessage, err error) {
	body := r.Body
	if limit := int64(h.cfg.MaxRequestBodySize.Value); limit > 0 {
		body = http.MaxBytesReader(w, r.Body, limit)
	}

	request, err = io.ReadAll(body)
	if err != nil {
		return nil, errors.Wrap(err, "read echo body")
	}

	return request, nil
}
