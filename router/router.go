package router

import (
	"net/http"
	"net/http/pprof"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/rs/cors"
	"google.golang.org/grpc"
	"google.golang.org/grpc/backoff"

	"github.com/bidon-io/bidon-proxy/bidding"
	"github.com/bidon-io/bidon-proxy/config"
	"github.com/bidon-io/bidon-proxy/endpoints"
	"github.com/bidon-io/bidon-proxy/mediation"
	"github.com/bidon-io/bidon-proxy/metrics"
)

type Router struct {
	*httprouter.Router
	Metrics  *metrics.Metrics
	Shutdown func()
}

// New builds the request router and everything behind it: the extension
// registry, the bidding backend and the metrics engine.
func New(cfg *config.Configuration, revision string) (*Router, error) {
	r := &Router{
		Router:   httprouter.New(),
		Metrics:  metrics.NewMetrics(cfg.Metrics.Prometheus),
		Shutdown: func() {},
	}

	bidder, shutdown, err := newBidder(cfg)
	if err != nil {
		return nil, err
	}
	r.Shutdown = shutdown

	r.POST("/v2/auction/:ad_type", endpoints.NewAuctionEndpoint(cfg, bidder, r.Metrics))
	r.GET("/status", handlerToHandle(endpoints.NewStatusEndpoint(cfg.StatusResponse)))
	r.GET("/version", handlerToHandle(endpoints.NewVersionEndpoint(revision)))

	return r, nil
}

func newBidder(cfg *config.Configuration) (bidding.Bidder, func(), error) {
	if cfg.Upstream.Echo {
		return bidding.Echo{}, func() {}, nil
	}

	opts := []grpc.DialOption{}
	if cfg.Upstream.ConnectTimeoutMS > 0 {
		opts = append(opts, grpc.WithConnectParams(grpc.ConnectParams{
			Backoff:           backoff.DefaultConfig,
			MinConnectTimeout: time.Duration(cfg.Upstream.ConnectTimeoutMS) * time.Millisecond,
		}))
	}

	client, err := bidding.NewGRPCClient(cfg.Upstream.Endpoint, mediation.NewRegistry(), opts...)
	if err != nil {
		return nil, nil, err
	}
	return client, func() { client.Close() }, nil
}

func handlerToHandle(h http.HandlerFunc) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		h(w, r)
	}
}

// Admin serves the operational surface on the admin port.
func Admin(revision string) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/version", endpoints.NewVersionEndpoint(revision))
	mux.HandleFunc("/debug/pprof/", pprof.Index)
	mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("/debug/pprof/trace", pprof.Trace)
	return mux
}

// SupportCORS wraps the handler with permissive CORS: every app embedding
// the SDK is a legitimate origin, so origin allow-listing buys nothing here.
func SupportCORS(handler http.Handler, cfg config.CORS) http.Handler {
	if !cfg.Enabled {
		return handler
	}

	c := cors.New(cors.Options{
		AllowCredentials: cfg.AllowCredentials,
		AllowOriginFunc: func(string) bool {
			return true
		},
		AllowedMethods: []string{http.MethodPost, http.MethodGet},
		AllowedHeaders: []string{"Origin", "X-Requested-With", "Content-Type", "Accept", "X-Bidon-Version"},
	})
	return c.Handler(handler)
}

// NoCache sets the no-caching headers on every response.
type NoCache struct {
	Handler http.Handler
}

func (m NoCache) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Add("Cache-Control", "no-cache, no-store, must-revalidate")
	w.Header().Add("Pragma", "no-cache")
	w.Header().Add("Expires", "0")
	m.Handler.ServeHTTP(w, r)
}
