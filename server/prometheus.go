package server

import (
	"net/http"
	"strconv"

	"github.com/golang/glog"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bidon-io/bidon-proxy/config"
	"github.com/bidon-io/bidon-proxy/metrics"
)

func newPrometheusServer(cfg *config.Configuration, me *metrics.Metrics) *http.Server {
	if me == nil || me.Registry == nil {
		glog.Fatal("Prometheus metrics configured, but no metrics registry was found. Cannot set up a Prometheus listener.")
	}

	return &http.Server{
		Addr: cfg.Host + ":" + strconv.Itoa(cfg.Metrics.Prometheus.Port),
		Handler: promhttp.HandlerFor(me.Registry, promhttp.HandlerOpts{
			ErrorLog:            loggerForPrometheus{},
			MaxRequestsInFlight: 5,
			Timeout:             cfg.Metrics.Prometheus.Timeout(),
		}),
	}
}

type loggerForPrometheus struct{}

func (loggerForPrometheus) Println(v ...interface{}) {
	glog.Warningln(v...)
}
