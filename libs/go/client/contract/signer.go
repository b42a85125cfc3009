package contract

import (
	"crypto/ecdsa"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
	"github.com/rescuedao/rescuedao-api/libs/go/helpers"
)

// ParsePrivateKey parses a 0x-prefixed hex secp256k1 key.
func ParsePrivateKey(hexKey string) (*ecdsa.PrivateKey, error) {
	hexKey = strings.TrimSpace(hexKey)
	if !strings.HasPrefix(hexKey, "0x") {
		hexKey = "0x" + hexKey
	}
	if !helpers.IsPrivateKeyValid(hexKey) {
		return nil, errors.New("signer private key must be 32 bytes of hex")
	}
	key, err := crypto.HexToECDSA(hexKey[2:])
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse signer private key")
	}
	return key, nil
}

// AddressOf returns the address controlled by key.
func AddressOf(key *ecdsa.PrivateKey) common.Address {
	return crypto.PubkeyToAddress(key.PublicKey)
}
