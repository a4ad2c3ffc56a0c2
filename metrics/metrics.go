// Package metrics defines the Prometheus metrics for the proxy.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/bidon-io/bidon-proxy/config"
)

// Metrics holds the Prometheus collectors backing the proxy instrumentation.
type Metrics struct {
	Registry *prometheus.Registry

	connectionsOpened prometheus.Counter
	connectionsClosed prometheus.Counter
	connectionsError  *prometheus.CounterVec

	auctionRequests      *prometheus.CounterVec
	auctionRequestsTimer *prometheus.HistogramVec
	upstreamTimer        *prometheus.HistogramVec
	bidsReceived         *prometheus.CounterVec
}

const (
	adTypeLabel          = "ad_type"
	statusLabel          = "status"
	connectionErrorLabel = "connection_error"
	outcomeLabel         = "outcome"
)

const (
	connectionAcceptError = "accept"
	connectionCloseError  = "close"
)

// Request status label values.
const (
	RequestStatusOK       = "ok"
	RequestStatusBadInput = "bad_input"
	RequestStatusUpstream = "upstream_error"
	RequestStatusInternal = "internal_error"
)

// Bid outcome label values.
const (
	BidOutcomeWin   = "win"
	BidOutcomeNoBid = "no_bid"
)

// NewMetrics initializes a new Prometheus metrics instance.
func NewMetrics(cfg config.PrometheusMetrics) *Metrics {
	standardTimeBuckets := []float64{0.05, 0.1, 0.15, 0.20, 0.25, 0.3, 0.4, 0.5, 0.75, 1}

	metrics := Metrics{}
	metrics.Registry = prometheus.NewRegistry()

	metrics.connectionsOpened = newCounterWithoutLabels(cfg, metrics.Registry,
		"connections_opened",
		"Count of successful connections opened to the proxy.")

	metrics.connectionsClosed = newCounterWithoutLabels(cfg, metrics.Registry,
		"connections_closed",
		"Count of successful connections closed to the proxy.")

	metrics.connectionsError = newCounter(cfg, metrics.Registry,
		"connections_error",
		"Count of errors for connection open and close attempts labeled by type.",
		[]string{connectionErrorLabel})

	metrics.auctionRequests = newCounter(cfg, metrics.Registry,
		"auction_requests",
		"Count of auction requests labeled by ad type and status.",
		[]string{adTypeLabel, statusLabel})

	metrics.auctionRequestsTimer = newHistogramVec(cfg, metrics.Registry,
		"auction_request_time_seconds",
		"Seconds to resolve successful auction requests labeled by ad type.",
		[]string{adTypeLabel},
		standardTimeBuckets)

	metrics.upstreamTimer = newHistogramVec(cfg, metrics.Registry,
		"upstream_bid_time_seconds",
		"Seconds the upstream bidding engine took to answer labeled by ad type.",
		[]string{adTypeLabel},
		standardTimeBuckets)

	metrics.bidsReceived = newCounter(cfg, metrics.Registry,
		"bids_received",
		"Count of bids returned by the bidding engine labeled by ad type and outcome.",
		[]string{adTypeLabel, outcomeLabel})

	return &metrics
}

func newCounter(cfg config.PrometheusMetrics, registry *prometheus.Registry, name, help string, labels []string) *prometheus.CounterVec {
	opts := prometheus.CounterOpts{
		Namespace: cfg.Namespace,
		Subsystem: cfg.Subsystem,
		Name:      name,
		Help:      help,
	}
	counter := prometheus.NewCounterVec(opts, labels)
	registry.MustRegister(counter)
	return counter
}

func newCounterWithoutLabels(cfg config.PrometheusMetrics, registry *prometheus.Registry, name, help string) prometheus.Counter {
	opts := prometheus.CounterOpts{
		Namespace: cfg.Namespace,
		Subsystem: cfg.Subsystem,
		Name:      name,
		Help:      help,
	}
	counter := prometheus.NewCounter(opts)
	registry.MustRegister(counter)
	return counter
}

func newHistogramVec(cfg config.PrometheusMetrics, registry *prometheus.Registry, name, help string, labels []string, buckets []float64) *prometheus.HistogramVec {
	opts := prometheus.HistogramOpts{
		Namespace: cfg.Namespace,
		Subsystem: cfg.Subsystem,
		Name:      name,
		Help:      help,
		Buckets:   buckets,
	}
	histogram := prometheus.NewHistogramVec(opts, labels)
	registry.MustRegister(histogram)
	return histogram
}

func (m *Metrics) RecordConnectionAccept(success bool) {
	if success {
		m.connectionsOpened.Inc()
	} else {
		m.connectionsError.With(prometheus.Labels{
			connectionErrorLabel: connectionAcceptError,
		}).Inc()
	}
}

func (m *Metrics) RecordConnectionClose(success bool) {
	if success {
		m.connectionsClosed.Inc()
	} else {
		m.connectionsError.With(prometheus.Labels{
			connectionErrorLabel: connectionCloseError,
		}).Inc()
	}
}

func (m *Metrics) RecordAuctionRequest(adType string, status string) {
	m.auctionRequests.With(prometheus.Labels{
		adTypeLabel: adType,
		statusLabel: status,
	}).Inc()
}

func (m *Metrics) RecordAuctionTime(adType string, length time.Duration) {
	m.auctionRequestsTimer.With(prometheus.Labels{
		adTypeLabel: adType,
	}).Observe(length.Seconds())
}

func (m *Metrics) RecordUpstreamTime(adType string, length time.Duration) {
	m.upstreamTimer.With(prometheus.Labels{
		adTypeLabel: adType,
	}).Observe(length.Seconds())
}

func (m *Metrics) RecordBid(adType string, outcome string) {
	m.bidsReceived.With(prometheus.Labels{
		adTypeLabel:  adType,
		outcomeLabel: outcome,
	}).Inc()
}
