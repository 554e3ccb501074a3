package handlers

import (
	"net/http"
)

// NotFound ответ на неизвестный маршрут. Ошибкой не считается и в лог не пишется.
func (h *handlers) NotFound(w http.ResponseWriter, r *http.Request) {
	_ = WriteError(w, http.StatusNotFound, MsgNotFound)
}
