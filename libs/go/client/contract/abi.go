package contract

import (
	_ "embed"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/pkg/errors"
)

// DonationSystem method selectors. The names are fixed by the deployed
// contract, so they must match its ABI exactly.
const (
	methodIsAdmin             = "esAdmin"
	methodIsShelter           = "esProtectora"
	methodGetPool             = "obtenerPoolDonaciones"
	methodGetShelter          = "obtenerProtectora"
	methodGetAnimalsByShelter = "obtenerAnimalesPorProtectora"
	methodGetAnimal           = "obtenerAnimal"
	methodAddShelter          = "agregarProtectora"
	methodAddAnimal           = "agregarAnimal"
	methodDonate              = "donar"
	methodDonateRecurring     = "donarRecurrente"
	methodWithdrawToWallet    = "retirarAWallet"
	methodMarkSpent           = "marcarComoGastado"
)

//go:embed donation_system.abi.json
var donationSystemABI string

// requiredMethods must be present in any ABI a deployment supplies.
var requiredMethods = []string{
	methodIsAdmin, methodIsShelter, methodGetPool, methodGetShelter,
	methodGetAnimalsByShelter, methodGetAnimal, methodAddShelter, methodAddAnimal,
	methodDonate, methodDonateRecurring, methodWithdrawToWallet, methodMarkSpent,
}

// DefaultABI parses the embedded DonationSystem ABI.
func DefaultABI() (abi.ABI, error) {
	return ParseABI(donationSystemABI)
}

// ParseABI parses ABI JSON and checks that every method the gateway calls
// is present.
func ParseABI(raw string) (abi.ABI, error) {
	parsed, err := abi.JSON(strings.NewReader(raw))
	if err != nil {
		return abi.ABI{}, errors.Wrap(err, "failed to parse contract ABI")
	}
	for _, name := range requiredMethods {
		if _, ok := parsed.Methods[name]; !ok {
			return abi.ABI{}, errors.Errorf("contract ABI is missing method %s", name)
		}
	}
	return parsed, nil
}

// LoadABIFile reads and parses an ABI JSON file.
func LoadABIFile(path string) (abi.ABI, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return abi.ABI{}, errors.Wrapf(err, "failed to read ABI file %s", path)
	}
	return ParseABI(string(raw))
}
