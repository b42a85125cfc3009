package contract

import (
	"os"
	"path/filepath"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github.com/rescuedao/rescuedao-api/libs/go/helpers"
	"gopkg.in/yaml.v3"
)

// Deployment describes one deployed contract on one chain.
type Deployment struct {
	Address string `yaml:"address"`
	ABIFile string `yaml:"abi_file,omitempty"`
}

// Deployments maps chain id to contract name to deployment, e.g.
//
//	chains:
//	  31337:
//	    DonationSystem:
//	      address: "0x5FbDB2315678afecb367f032d93F642f64180aa3"
type Deployments struct {
	Chains map[int64]map[string]Deployment `yaml:"chains"`

	baseDir string
}

// ResolvedDeployment is a deployment whose address and ABI both parsed.
type ResolvedDeployment struct {
	ChainID int64
	Name    string
	Address common.Address
	ABI     abi.ABI
}

// LoadDeployments reads a YAML descriptor. A missing file yields an empty
// set, which means no contract is deployed anywhere.
func LoadDeployments(path string) (*Deployments, error) {
	d := &Deployments{Chains: map[int64]map[string]Deployment{}}
	if path == "" {
		return d, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return d, nil
		}
		return nil, errors.Wrapf(err, "failed to read deployments file %s", path)
	}
	if err := yaml.Unmarshal(raw, d); err != nil {
		return nil, errors.Wrapf(err, "failed to parse deployments file %s", path)
	}
	if d.Chains == nil {
		d.Chains = map[int64]map[string]Deployment{}
	}
	d.baseDir = filepath.Dir(path)
	return d, nil
}

// Resolve returns the deployment of name on chainID. ok is false when the
// chain has no such contract or its descriptor is unusable.
func (d *Deployments) Resolve(chainID int64, name string) (*ResolvedDeployment, bool, error) {
	if d == nil {
		return nil, false, nil
	}
	contracts, ok := d.Chains[chainID]
	if !ok {
		return nil, false, nil
	}
	dep, ok := contracts[name]
	if !ok || dep.Address == "" {
		return nil, false, nil
	}
	if !helpers.IsAddressValid(dep.Address) {
		return nil, false, errors.Errorf("deployment %s on chain %d has invalid address %q", name, chainID, dep.Address)
	}

	var (
		parsed abi.ABI
		err    error
	)
	if dep.ABIFile != "" {
		abiPath := dep.ABIFile
		if !filepath.IsAbs(abiPath) {
			abiPath = filepath.Join(d.baseDir, abiPath)
		}
		parsed, err = LoadABIFile(abiPath)
	} else {
		parsed, err = DefaultABI()
	}
	if err != nil {
		return nil, false, err
	}

	return &ResolvedDeployment{
		ChainID: chainID,
		Name:    name,
		Address: common.HexToAddress(dep.Address),
		ABI:     parsed,
	}, true, nil
}
