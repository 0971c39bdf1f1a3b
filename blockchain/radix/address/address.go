package address

import (
	"fmt"
	"strings"

	"github.com/openweb3-io/radixutils/types"
)

// EntityKind is the address space an address belongs to, taken from its human readable prefix.
type EntityKind string

const (
	Account       EntityKind = "account_"
	Validator     EntityKind = "validator_"
	Resource      EntityKind = "resource_"
	Component     EntityKind = "component_"
	Package       EntityKind = "package_"
	Pool          EntityKind = "pool_"
	InternalVault EntityKind = "internal_vault_"
)

var knownKinds = []EntityKind{
	InternalVault,
	Validator,
	Account,
	Resource,
	Component,
	Package,
	Pool,
}

// Kind returns the entity kind of an address
func Kind(addr string) (EntityKind, bool) {
	for _, kind := range knownKinds {
		if strings.HasPrefix(addr, string(kind)) {
			return kind, true
		}
	}
	return "", false
}

func IsValidator(addr string) bool {
	return addr != "" && strings.HasPrefix(addr, string(Validator))
}

// Validate checks that addr is non-empty and lives in the expected address space.
func Validate(addr string, kind EntityKind) error {
	if addr == "" || !strings.HasPrefix(addr, string(kind)) {
		return types.WrapErr(types.ErrInvalidAddress, fmt.Errorf("expected %s address, got %q", strings.TrimSuffix(string(kind), "_"), addr))
	}
	return nil
}

// Network infers the network from the bech32 prefix, e.g. account_rdx1... is mainnet.
func Network(addr string) (types.Network, bool) {
	kind, ok := Kind(addr)
	if !ok {
		return "", false
	}
	rest := strings.TrimPrefix(addr, string(kind))
	for _, network := range types.SupportedNetworks {
		if strings.HasPrefix(rest, network.HRPSuffix()+"1") {
			return network, true
		}
	}
	return "", false
}
