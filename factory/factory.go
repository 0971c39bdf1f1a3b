package factory

import (
	"github.com/openweb3-io/radixutils"
	"github.com/openweb3-io/radixutils/blockchain/radix"
	"github.com/openweb3-io/radixutils/blockchain/radix/batch"
	"github.com/openweb3-io/radixutils/blockchain/radix/gateway"
	httpclient "github.com/openweb3-io/radixutils/blockchain/radix/gateway/http_client"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

type IFactory interface {
	NewGateway(cfg *Config) (gateway.Gateway, error)
	NewClient(cfg *Config) (radixutils.IClient, error)
}

type Factory struct {
	registerer prometheus.Registerer
}

var _ IFactory = &Factory{}

type FactoryOption func(*Factory)

// WithRegisterer exposes gateway request metrics on reg
func WithRegisterer(reg prometheus.Registerer) FactoryOption {
	return func(f *Factory) {
		f.registerer = reg
	}
}

func NewFactory(opts ...FactoryOption) *Factory {
	f := &Factory{}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func NewDefaultFactory() *Factory {
	return NewFactory()
}

func (f *Factory) NewGateway(cfg *Config) (gateway.Gateway, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	network := cfg.NetworkConfig()

	opts := []httpclient.Option{
		httpclient.WithTimeout(cfg.RequestTimeout),
		httpclient.WithApplication(network.ApplicationName, network.ApplicationVersion),
	}
	if cfg.RateLimit > 0 {
		burst := cfg.RateBurst
		if burst < 1 {
			burst = 1
		}
		opts = append(opts, httpclient.WithRateLimiter(rate.NewLimiter(rate.Limit(cfg.RateLimit), burst)))
	}
	if f.registerer != nil {
		opts = append(opts, httpclient.WithRegisterer(f.registerer))
	}
	client, err := httpclient.NewHttpClient(network.GatewayURL(), opts...)
	if err != nil {
		return nil, err
	}
	return client, nil
}

func (f *Factory) NewClient(cfg *Config) (radixutils.IClient, error) {
	gw, err := f.NewGateway(cfg)
	if err != nil {
		return nil, err
	}
	network := cfg.NetworkConfig()
	logrus.WithField("network", network.String()).Debug("new radix client")

	return radix.NewClient(gw,
		radix.WithRetryOptions(
			batch.WithAttempts(cfg.RetryAttempts),
			batch.WithBaseDelay(cfg.RetryBaseDelay),
		),
	), nil
}
