package types

import (
	"fmt"
	"slices"
	"strings"
)

// Network is a Radix network the gateway serves
type Network string

// List of supported Network
const (
	Mainnet  = Network("mainnet")
	Stokenet = Network("stokenet")
)

var SupportedNetworks = []Network{
	Mainnet,
	Stokenet,
}

func (network Network) Valid() bool {
	return slices.Contains(SupportedNetworks, network)
}

// ID is the numeric network id used by the ledger
func (network Network) ID() uint8 {
	switch network {
	case Mainnet:
		return 0x01
	case Stokenet:
		return 0x02
	}
	return 0
}

// HRPSuffix is the bech32 suffix shared by every address of the network, e.g. "rdx" in
// account_rdx1...
func (network Network) HRPSuffix() string {
	switch network {
	case Mainnet:
		return "rdx"
	case Stokenet:
		return "tdx_2_"
	}
	return ""
}

// DefaultGatewayURL is the public gateway of the network
func (network Network) DefaultGatewayURL() string {
	switch network {
	case Mainnet:
		return "https://mainnet.radixdlt.com"
	case Stokenet:
		return "https://stokenet.radixdlt.com"
	}
	return ""
}

func ParseNetwork(name string) (Network, error) {
	for _, network := range SupportedNetworks {
		if strings.EqualFold(string(network), name) {
			return network, nil
		}
	}
	return "", fmt.Errorf("invalid network: %s\noptions: %v", name, SupportedNetworks)
}

// NetworkConfig describes how to reach a gateway
type NetworkConfig struct {
	Network            Network `yaml:"network,omitempty" mapstructure:"network"`
	URL                string  `yaml:"url,omitempty" mapstructure:"url"`
	ApplicationName    string  `yaml:"application_name,omitempty" mapstructure:"application_name"`
	ApplicationVersion string  `yaml:"application_version,omitempty" mapstructure:"application_version"`
}

// GatewayURL falls back to the network's public gateway when no URL is configured
func (cfg NetworkConfig) GatewayURL() string {
	if cfg.URL != "" {
		return cfg.URL
	}
	return cfg.Network.DefaultGatewayURL()
}

func (cfg NetworkConfig) String() string {
	return fmt.Sprintf(
		"NetworkConfig(network=%s url=%s app=%s/%s)",
		cfg.Network, cfg.GatewayURL(), cfg.ApplicationName, cfg.ApplicationVersion,
	)
}
