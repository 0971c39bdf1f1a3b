package factory

import (
	"fmt"
	"strings"
	"time"

	"github.com/openweb3-io/radixutils/types"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. RDX_GATEWAY_URL
const EnvPrefix = "RDX"

type Config struct {
	Network            string        `mapstructure:"network" json:"network" yaml:"network"`
	GatewayURL         string        `mapstructure:"gateway_url" json:"gateway_url,omitempty" yaml:"gateway_url,omitempty"`
	ApplicationName    string        `mapstructure:"application_name" json:"application_name,omitempty" yaml:"application_name,omitempty"`
	ApplicationVersion string        `mapstructure:"application_version" json:"application_version,omitempty" yaml:"application_version,omitempty"`
	RequestTimeout     time.Duration `mapstructure:"request_timeout" json:"request_timeout" yaml:"request_timeout"`
	// requests per second shared by all calls, 0 disables limiting
	RateLimit      float64       `mapstructure:"rate_limit" json:"rate_limit" yaml:"rate_limit"`
	RateBurst      int           `mapstructure:"rate_burst" json:"rate_burst" yaml:"rate_burst"`
	RetryAttempts  int           `mapstructure:"retry_attempts" json:"retry_attempts" yaml:"retry_attempts"`
	RetryBaseDelay time.Duration `mapstructure:"retry_base_delay" json:"retry_base_delay" yaml:"retry_base_delay"`
	LogLevel       string        `mapstructure:"log_level" json:"log_level" yaml:"log_level"`
}

func DefaultConfig() *Config {
	return &Config{
		Network:            string(types.Mainnet),
		ApplicationName:    "radixutils",
		ApplicationVersion: "1.0.0",
		RequestTimeout:     30 * time.Second,
		RateLimit:          0,
		RateBurst:          1,
		RetryAttempts:      3,
		RetryBaseDelay:     time.Second,
		LogLevel:           "info",
	}
}

// SetDefaults registers every key on v so that environment variables are picked up by Unmarshal
func SetDefaults(v *viper.Viper) {
	def := DefaultConfig()
	v.SetDefault("network", def.Network)
	v.SetDefault("gateway_url", def.GatewayURL)
	v.SetDefault("application_name", def.ApplicationName)
	v.SetDefault("application_version", def.ApplicationVersion)
	v.SetDefault("request_timeout", def.RequestTimeout)
	v.SetDefault("rate_limit", def.RateLimit)
	v.SetDefault("rate_burst", def.RateBurst)
	v.SetDefault("retry_attempts", def.RetryAttempts)
	v.SetDefault("retry_base_delay", def.RetryBaseDelay)
	v.SetDefault("log_level", def.LogLevel)
}

// LoadConfig reads configPath (optional) and RDX_* environment variables on top of the defaults.
// Values already bound on v, such as command line flags, take precedence.
func LoadConfig(v *viper.Viper, configPath string) (*Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "reading config %s", configPath)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(err, "decoding config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) Validate() error {
	if _, err := types.ParseNetwork(cfg.Network); err != nil {
		return err
	}
	if cfg.RateLimit < 0 {
		return fmt.Errorf("rate_limit must not be negative, got %v", cfg.RateLimit)
	}
	if cfg.RetryAttempts < 1 {
		return fmt.Errorf("retry_attempts must be at least 1, got %d", cfg.RetryAttempts)
	}
	return nil
}

// NetworkConfig resolves the gateway of the configured network
func (cfg *Config) NetworkConfig() types.NetworkConfig {
	network, _ := types.ParseNetwork(cfg.Network)
	return types.NetworkConfig{
		Network:            network,
		URL:                cfg.GatewayURL,
		ApplicationName:    cfg.ApplicationName,
		ApplicationVersion: cfg.ApplicationVersion,
	}
}
