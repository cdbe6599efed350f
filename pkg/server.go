package semgraph

import (
	"net/http"
	"net/http/pprof"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	clog "github.com/vilterp/semgraph/pkg/log"
	"go.uber.org/zap"
)

// MetricsServer exposes a store's prometheus registry and pprof over HTTP.
// It serves no graph data.
type MetricsServer struct {
	store      *Store
	httpServer *http.Server
}

func NewMetricsServer(store *Store, addr string) *MetricsServer {
	return &MetricsServer{
		store:      store,
		httpServer: &http.Server{Addr: addr, Handler: newMetricsHandler(store)},
	}
}

func newMetricsHandler(store *Store) http.Handler {
	mux := http.NewServeMux()

	mux.Handle(
		"/metrics",
		promhttp.HandlerFor(store.Registry(), promhttp.HandlerOpts{}),
	)

	mux.HandleFunc("/debug/pprof/", pprof.Index)
	mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("/debug/pprof/trace", pprof.Trace)

	return mux
}

func (s *MetricsServer) ListenAndServe() error {
	clog.Info(s.store, "serving metrics", zap.String("addr", "http://"+s.httpServer.Addr+"/metrics"))
	return s.httpServer.ListenAndServe()
}

func (s *MetricsServer) Close() error {
	clog.Info(s.store, "closing metrics server")
	return s.httpServer.Close()
}
