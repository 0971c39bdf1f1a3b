package radix

import (
	"github.com/openweb3-io/radixutils/blockchain/radix/batch"
	"github.com/openweb3-io/radixutils/blockchain/radix/gateway"
	"github.com/openweb3-io/radixutils/client"
	"github.com/sirupsen/logrus"
)

// Client reshapes Babylon gateway responses into balances, validator info and claim data.
// It holds no state between calls and is safe for concurrent use when the gateway is.
type Client struct {
	gateway   gateway.Gateway
	clock     batch.Clock
	retryOpts []batch.RetryOption
	logger    *logrus.Entry
}

var _ client.WalletClient = &Client{}
var _ client.ValidatorClient = &Client{}
var _ client.TransactionClient = &Client{}
var _ client.FeeClient = &Client{}

type Option func(*Client)

// WithClock injects the clock used for date estimates and retry delays
func WithClock(clock batch.Clock) Option {
	return func(c *Client) {
		c.clock = clock
	}
}

// WithRetryOptions tunes the whole-batch retry of the resource check
func WithRetryOptions(opts ...batch.RetryOption) Option {
	return func(c *Client) {
		c.retryOpts = append(c.retryOpts, opts...)
	}
}

func WithLogger(logger *logrus.Entry) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

func NewClient(gw gateway.Gateway, opts ...Option) *Client {
	c := &Client{
		gateway: gw,
		clock:   batch.SystemClock{},
		logger:  logrus.WithField("module", "radix"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) retryOptions() []batch.RetryOption {
	return append([]batch.RetryOption{batch.WithClock(c.clock), batch.WithLogger(c.logger)}, c.retryOpts...)
}
