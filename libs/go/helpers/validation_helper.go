package helpers

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/rescuedao/rescuedao-api/libs/go/constants"
)

// IsAddressValid checks if the provided string is a 0x-prefixed, 20-byte
// hex Ethereum address.
func IsAddressValid(address string) bool {
	if len(address) != 42 || !strings.HasPrefix(address, "0x") {
		return false
	}
	return common.IsHexAddress(address)
}

// IsPrivateKeyValid checks if the provided string is a 0x-prefixed, 32-byte
// hex private key.
func IsPrivateKeyValid(key string) bool {
	if len(key) != 66 {
		return false
	}
	b, err := hexutil.Decode(key)
	return err == nil && len(b) == 32
}

// NormalizeAddress trims whitespace and lowercases an address. Addresses are
// case-insensitive identifiers, so every role lookup goes through here.
func NormalizeAddress(address string) string {
	return strings.ToLower(strings.TrimSpace(address))
}

// ShortAddress renders an address as 0x1234...abcd for status messages.
func ShortAddress(address string) string {
	if len(address) <= 10 {
		return address
	}
	return address[:6] + "..." + address[len(address)-4:]
}

// IsValidFrequency reports whether a recurring donation frequency is supported.
func IsValidFrequency(frequency string) bool {
	switch frequency {
	case constants.FrequencyDaily, constants.FrequencyWeekly, constants.FrequencyMonthly:
		return true
	default:
		return false
	}
}
