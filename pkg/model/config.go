package model

// роли сервиса
const (
	ServiceBackend  = "backend"
	ServiceFrontend = "frontend"
)

// порты по-умолчанию для ролей (если PORT не задан)
var DefaultPorts = map[string]string{
	ServiceBackend:  "5000",
	ServiceFrontend: "3000",
}

type Config struct {
	Service     string `envconfig:"SERVICE" default:"backend" description:"роль сервиса: backend/frontend"`
	Port        string `envconfig:"PORT" default:""`
	Environment string `envconfig:"ENVIRONMENT" default:"development"`

	// Upstream (только для frontend)
	BackendURL      string   `envconfig:"BACKEND_URL" default:"http://backend-service:5000"`
	UpstreamTimeout Duration `envconfig:"UPSTREAM_TIMEOUT" default:"10s" description:"таймаут запроса к backend-сервису"`

	// Http server
	ReadTimeout        Duration `envconfig:"READ_TIMEOUT" default:"10s"`
	WriteTimeout       Duration `envconfig:"WRITE_TIMEOUT" default:"15s" description:"должен быть больше UPSTREAM_TIMEOUT"`
	ShutdownTimeout    Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s" description:"время на завершение активных запросов при остановке"`
	MaxRequestBodySize Int      `envconfig:"MAX_REQUEST_BODY_SIZE" default:"102400"`
	EnablePprof        Bool     `envconfig:"ENABLE_PPROF" default:"false"`

	// Metrics
	MetricsNamespace string `envconfig:"METRICS_NAMESPACE" default:"app"`

	// Logger
	LogsLevel string `envconfig:"LOGS_LEVEL" default:"info"`

	// заполняются при старте
	ServiceVersion string `ignored:"true"`
	HashCommit     string `ignored:"true"`
	HashRun        string `ignored:"true"`
	ConfigName     string `ignored:"true"`
}
