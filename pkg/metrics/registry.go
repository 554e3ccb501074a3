// Package metrics реестр метрик процесса: runtime-коллекторы, гистограмма времени
// выполнения http-запросов и служебные метрики сервиса.
package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"runtime"
	"strconv"

	"github.com/go-kit/kit/metrics"
	kitprometheus "github.com/go-kit/kit/metrics/prometheus"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/prometheus/common/expfmt"
)

const (
	RequestDurationName  = "http_request_duration_seconds"
	UpstreamDurationName = "upstream_request_duration_seconds"
)

// Labels метки одного наблюдения (Metric Sample)
type Labels struct {
	Method     string
	Route      string
	StatusCode int
}

func (l Labels) values() []string {
	return []string{
		"method", l.Method,
		"route", l.Route,
		"status_code", strconv.Itoa(l.StatusCode),
	}
}

// Registry живет от старта до остановки процесса, между перезапусками не сохраняется
type Registry struct {
	reg *prometheus.Registry

	requestDuration  metrics.Histogram
	upstreamDuration metrics.Histogram
	buildInfo        metrics.Gauge
}

// NewRegistry создает реестр с runtime-коллекторами и гистограммами сервиса.
// namespace используется как префикс метрики build_info.
func NewRegistry(namespace string) *Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	requestVec := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    RequestDurationName,
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route", "status_code"})

	upstreamVec := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    UpstreamDurationName,
		Help:    "Duration of requests to the upstream service in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"status"})

	buildVec := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: buildInfoName(namespace),
		Help: fmt.Sprintf("A metric with a constant '1' value labeled by version, revision and goversion from which %s was built.", namespace),
	}, []string{"version", "revision", "goversion"})

	reg.MustRegister(requestVec, upstreamVec, buildVec)

	return &Registry{
		reg:              reg,
		requestDuration:  kitprometheus.NewHistogram(requestVec),
		upstreamDuration: kitprometheus.NewHistogram(upstreamVec),
		buildInfo:        kitprometheus.NewGauge(buildVec),
	}
}

func buildInfoName(namespace string) string {
	if namespace == "" {
		return "build_info"
	}
	return namespace + "_build_info"
}

// Record сохраняет одно наблюдение длительности запроса.
// Ошибки регистрации (паника prometheus на неверных метках) возвращаются как error.
func (r *Registry) Record(labels Labels, seconds float64) error {
	return observe(r.requestDuration, seconds, labels.values()...)
}

// RecordUpstream длительность запроса к upstream-сервису; status = код ответа или "error"
func (r *Registry) RecordUpstream(status string, seconds float64) error {
	return observe(r.upstreamDuration, seconds, "status", status)
}

// SetBuildInfo выставляет константную метрику с версией сборки
func (r *Registry) SetBuildInfo(version, revision string) {
	r.buildInfo.With(
		"version", version,
		"revision", revision,
		"goversion", runtime.Version(),
	).Set(1)
}

// Gatherer нужен для тестов и внешних экспортеров
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.reg
}

// Handler pull-эндпоинт в текстовом формате prometheus
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{
		ErrorHandling: promhttp.ContinueOnError,
	})
}

// Render текстовый снимок всех зарегистрированных коллекторов
func (r *Registry) Render() (string, error) {
	mfs, err := r.reg.Gather()
	if err != nil {
		return "", errors.Wrap(err, "gather metrics")
	}

	var buf bytes.Buffer
	enc := expfmt.NewEncoder(&buf, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range mfs {
		if err = enc.Encode(mf); err != nil {
			return "", errors.Wrapf(err, "encode metric family %s", mf.GetName())
		}
	}

	return buf.String(), nil
}

func observe(h metrics.Histogram, value float64, labelValues ...string) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("observe metric: %v", rec)
		}
	}()

	h.With(labelValues...).Observe(value)

	return nil
}
