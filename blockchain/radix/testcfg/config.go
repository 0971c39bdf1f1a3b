package testcfg

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the settings of acceptance tests run against a live gateway
type Config struct {
	GatewayURL     string        `env:"RDX_TEST_GATEWAY_URL" envDefault:"https://mainnet.radixdlt.com"`
	RequestTimeout time.Duration `env:"RDX_TEST_REQUEST_TIMEOUT" envDefault:"30s"`
	RateLimit      float64       `env:"RDX_TEST_RATE_LIMIT" envDefault:"5"`

	ValidatorAddress string `env:"RDX_TEST_VALIDATOR_ADDRESS" envDefault:"validator_rdx1sd5368vqdmjk0y2w7ymdts02cz9c52858gpyny56xdvzuheepdeyy0"`
	AccountAddress   string `env:"RDX_TEST_ACCOUNT_ADDRESS" envDefault:"account_rdx16y6q3q6ey64j5qvkex3q0yshtln6z2lmyk254xrjcq393rc070x66z"`
	XRDAddress       string `env:"RDX_TEST_XRD_ADDRESS" envDefault:"resource_rdx1tknxxxxxxxxxradxrdxxxxxxxxx009923554798xxxxxxxxxradxrd"`
}

// parseConfig wraps env.Parse to return (Config, error) for use with env.Must
func parseConfig() (Config, error) {
	var cfg Config
	err := env.Parse(&cfg)
	return cfg, err
}

// New loads test configuration from environment variables
func New() Config {
	return env.Must(parseConfig())
}
