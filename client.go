package radixutils

import (
	"github.com/openweb3-io/radixutils/client"
)

// IClient is everything the library offers on top of a gateway
type IClient interface {
	client.WalletClient
	client.ValidatorClient
	client.TransactionClient
	client.FeeClient
}
