package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/bidon-io/bidon-proxy/errortypes"
)

// Configuration is the top level config for the proxy.
type Configuration struct {
	ExternalURL string `mapstructure:"external_url"`
	Host        string `mapstructure:"host"`
	Port        int    `mapstructure:"port"`
	AdminPort   int    `mapstructure:"admin_port"`
	Environment string `mapstructure:"environment"`

	// DefaultTimeoutMS bounds the upstream bid call when the auction request
	// does not carry a tmax of its own.
	DefaultTimeoutMS uint64 `mapstructure:"default_timeout_ms"`

	// MaxRequestSize caps inbound auction request bodies, in bytes.
	MaxRequestSize int64 `mapstructure:"max_request_size"`

	// RequireVersionHeader rejects auction requests without an
	// x-bidon-version header. The SDK always sends one; disabling this is
	// only useful for local poking with curl.
	RequireVersionHeader bool `mapstructure:"require_version_header"`

	// StatusResponse is the body served on /status; empty means 204.
	StatusResponse string `mapstructure:"status_response"`

	EnableGzip bool     `mapstructure:"enable_gzip"`
	Upstream   Upstream `mapstructure:"upstream"`
	Metrics    Metrics  `mapstructure:"metrics"`
	CORS       CORS     `mapstructure:"cors"`
}

// Upstream configures the connection to the bidding engine.
type Upstream struct {
	// Endpoint is the gRPC target of the bidding engine, e.g.
	// "dns:///bidding.internal:50051".
	Endpoint string `mapstructure:"endpoint"`

	// Echo short-circuits the engine and answers every bid request with its
	// own payload. Integration testing only.
	Echo bool `mapstructure:"echo"`

	ConnectTimeoutMS uint64 `mapstructure:"connect_timeout_ms"`
}

type Metrics struct {
	Prometheus PrometheusMetrics `mapstructure:"prometheus"`
}

// PrometheusMetrics serves metrics on a dedicated sub-server when Port is set.
type PrometheusMetrics struct {
	Port             int    `mapstructure:"port"`
	Namespace        string `mapstructure:"namespace"`
	Subsystem        string `mapstructure:"subsystem"`
	TimeoutMillisRaw int    `mapstructure:"timeout_ms"`
}

func (m *PrometheusMetrics) Enabled() bool {
	return m.Port > 0
}

func (m *PrometheusMetrics) Timeout() time.Duration {
	return time.Duration(m.TimeoutMillisRaw) * time.Millisecond
}

type CORS struct {
	Enabled          bool `mapstructure:"enabled"`
	AllowCredentials bool `mapstructure:"allow_credentials"`
}

func (cfg *Configuration) validate() []error {
	var errs []error
	if cfg.Port <= 0 {
		errs = append(errs, fmt.Errorf("port must be positive: %d", cfg.Port))
	}
	if cfg.MaxRequestSize < 0 {
		errs = append(errs, fmt.Errorf("max_request_size must be non-negative: %d", cfg.MaxRequestSize))
	}
	if cfg.DefaultTimeoutMS == 0 {
		errs = append(errs, fmt.Errorf("default_timeout_ms must be positive"))
	}
	if !cfg.Upstream.Echo && cfg.Upstream.Endpoint == "" {
		errs = append(errs, fmt.Errorf("upstream.endpoint is required unless upstream.echo is set"))
	}
	return errs
}

// New uses viper to get our server configurations.
func New(v *viper.Viper) (*Configuration, error) {
	var c Configuration
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("viper failed to unmarshal app config: %v", err)
	}

	if errs := c.validate(); len(errs) > 0 {
		return &c, errortypes.NewAggregateErrors("validation errors", errs)
	}

	return &c, nil
}

// SetupViper sets the viper defaults and environment bindings. Run this
// before viper.ReadInConfig().
func SetupViper(v *viper.Viper, filename string) {
	if filename != "" {
		v.SetConfigName(filename)
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/config")
	}

	v.SetDefault("external_url", "http://localhost:8000")
	v.SetDefault("host", "")
	v.SetDefault("port", 8000)
	v.SetDefault("admin_port", 6060)
	v.SetDefault("environment", "dev")
	v.SetDefault("default_timeout_ms", 5000)
	v.SetDefault("max_request_size", 1024*256)
	v.SetDefault("require_version_header", true)
	v.SetDefault("status_response", "")
	v.SetDefault("enable_gzip", false)
	v.SetDefault("upstream.endpoint", "")
	v.SetDefault("upstream.echo", false)
	v.SetDefault("upstream.connect_timeout_ms", 1000)
	v.SetDefault("metrics.prometheus.port", 0)
	v.SetDefault("metrics.prometheus.namespace", "")
	v.SetDefault("metrics.prometheus.subsystem", "")
	v.SetDefault("metrics.prometheus.timeout_ms", 10000)
	v.SetDefault("cors.enabled", true)
	v.SetDefault("cors.allow_credentials", true)

	v.SetEnvPrefix("BIDONPROXY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.ReadInConfig()
}
