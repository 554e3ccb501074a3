package model

import "encoding/json"

// TimeFormat формат меток времени в ответах (UTC, миллисекунды)
const TimeFormat = "2006-01-02T15:04:05.000Z07:00"

const (
	HealthStatusHealthy = "healthy"
	APIVersion          = "1.0.0"
	EchoMessage         = "Echo response"
	StatusMessage       = "Backend service is running"
)

// HealthOut ответ liveness-проверки
type HealthOut struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Service   string `json:"service"`
}

// StatusOut ответ /api/status
type StatusOut struct {
	Message   string `json:"message"`
	Version   string `json:"version"`
	Timestamp string `json:"timestamp"`
}

type Item struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type DataOut struct {
	Data []Item `json:"data"`
}

// EchoOut конверт ответа /api/echo. Received отдаем как пришло.
type EchoOut struct {
	Message   string          `json:"message"`
	Received  json.RawMessage `json:"received"`
	Timestamp string          `json:"timestamp"`
}

type ErrorOut struct {
	Error string `json:"error"`
}
