package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"git.lowcodeplatform.net/fabric/demo/pkg/logger"
	"git.lowcodeplatform.net/fabric/demo/pkg/model"
	"git.lowcodeplatform.net/fabric/demo/pkg/service"
)

// сообщения, которые уходят клиенту. Детали ошибок остаются в логах.
const (
	MsgNotFound       = "Not Found"
	MsgInternalError  = "Internal Server Error"
	MsgUpstreamFailed = "Failed to fetch data from backend"
)

type handlers struct {
	service service.Service
	cfg     model.Config
}

type Handlers interface {
	Health(w http.ResponseWriter, r *http.Request)
	Status(w http.ResponseWriter, r *http.Request)
	Data(w http.ResponseWriter, r *http.Request)
	Echo(w http.ResponseWriter, r *http.Request)
	RelayData(w http.ResponseWriter, r *http.Request)
	NotFound(w http.ResponseWriter, r *http.Request)
}

func (h *handlers) transportResponse(w http.ResponseWriter, response interface{}) (err error) {
	d, err := json.Marshal(response)
	if err != nil {
		return err
	}

	return transportBytes(w, http.StatusOK, d)
}

// transportError отдает клиенту фиксированный json {error: message}; причина пишется в лог
func (h *handlers) transportError(ctx context.Context, w http.ResponseWriter, code int, err error, message string) error {
	if err != nil {
		logger.Error(ctx, message, zap.Int("code", code), zap.Error(err))
	}

	return WriteError(w, code, message)
}

// WriteError используется и вне хендлеров (recover-middleware)
func WriteError(w http.ResponseWriter, code int, message string) error {
	d, err := json.Marshal(model.ErrorOut{Error: message})
	if err != nil {
		return err
	}

	return transportBytes(w, code, d)
}

func transportBytes(w http.ResponseWriter, code int, d []byte) (err error) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_, err = w.Write(d)

	return err
}

func New(
	service service.Service,
	cfg model.Config,
) Handlers {
	return &handlers{
		service,
		cfg,
	}
}
