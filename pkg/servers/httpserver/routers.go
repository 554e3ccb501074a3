package httpserver

import (
	"net/http"
	"net/http/pprof"
	"strings"

	"github.com/gorilla/mux"

	"git.lowcodeplatform.net/fabric/demo/pkg/model"
	"git.lowcodeplatform.net/fabric/demo/pkg/servers/httpserver/handlers"
)

type Route struct {
	Name        string
	Method      string
	Pattern     string
	HandlerFunc http.HandlerFunc
}

type Routes []Route

// NewRouter набор маршрутов зависит от роли сервиса
func (h *httpserver) NewRouter() *mux.Router {
	router := mux.NewRouter().StrictSlash(true)
	handler := handlers.New(h.src, h.cfg)

	var routes = Routes{
		Route{"Health", "GET,HEAD", "/health", handler.Health},
		Route{"Metrics", "GET", "/metrics", h.registry.Handler().ServeHTTP},
	}

	switch h.cfg.Service {
	case model.ServiceFrontend:
		routes = append(routes,
			Route{"Page", "GET,HEAD", "/", h.page.ServeHTTP},
			Route{"RelayData", "GET", "/api/data", handler.RelayData},
		)
	default:
		routes = append(routes,
			Route{"Status", "GET", "/api/status", handler.Status},
			Route{"Data", "GET", "/api/data", handler.Data},
			Route{"Echo", "POST", "/api/echo", handler.Echo},
		)
	}

	if h.cfg.EnablePprof.Value {
		routes = append(routes,
			// Регистрация pprof-обработчиков
			Route{"pprofIndex", "GET", "/debug/pprof/", pprof.Index},
			Route{"pprofIndex", "GET", "/debug/pprof/cmdline", pprof.Cmdline},
			Route{"pprofIndex", "GET", "/debug/pprof/profile", pprof.Profile},
			Route{"pprofIndex", "GET", "/debug/pprof/symbol", pprof.Symbol},
			Route{"pprofIndex", "GET", "/debug/pprof/trace", pprof.Trace},
		)
	}

	for _, route := range routes {
		for _, v := range strings.Split(route.Method, ",") {
			router.
				Methods(v).
				Path(route.Pattern).
				Name(route.Name).
				Handler(route.HandlerFunc)
		}
	}

	// неизвестный маршрут и неподдерживаемый метод отдаем одинаково
	router.NotFoundHandler = http.HandlerFunc(handler.NotFound)
	router.MethodNotAllowedHandler = http.HandlerFunc(handler.NotFound)

	return router
}

// Handler полная цепочка: request-id -> метрики и лог -> recover -> маршруты
func (h *httpserver) Handler() http.Handler {
	var handler http.Handler = h.NewRouter()
	handler = h.Recover(handler)
	handler = h.Monitoring(handler)
	handler = h.RequestID(handler)

	return handler
}
