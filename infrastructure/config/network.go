package config

import (
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
)

// NetParams holds the network dependent encoding parameters.
type NetParams struct {
	Name string

	// WIFVersion is the version byte of private keys in wallet import
	// format.
	WIFVersion byte
}

// Known networks.
var (
	MainnetParams = NetParams{Name: "mainnet", WIFVersion: 0x80}
	TestnetParams = NetParams{Name: "testnet", WIFVersion: 0xef}
	RegtestParams = NetParams{Name: "regtest", WIFVersion: 0xef}
)

// NetParamsByWIFVersion returns the first known network using version.
// Testnet and regtest share their version byte, so testnet is reported for
// both.
func NetParamsByWIFVersion(version byte) (*NetParams, bool) {
	for _, params := range []*NetParams{&MainnetParams, &TestnetParams, &RegtestParams} {
		if params.WIFVersion == version {
			return params, true
		}
	}
	return nil, false
}

// NetworkFlags holds the network configuration, that is which network is selected.
type NetworkFlags struct {
	Testnet bool `long:"testnet" description:"Use the test network"`
	Regtest bool `long:"regtest" description:"Use the regression test network"`

	ActiveNetParams *NetParams
}

// ResolveNetwork parses the network command line argument and sets NetParams accordingly.
// It returns error if more than one network was selected, nil otherwise.
func (networkFlags *NetworkFlags) ResolveNetwork(parser *flags.Parser) error {
	// Default value is main-net.
	networkFlags.ActiveNetParams = &MainnetParams
	// Multiple networks can't be selected simultaneously.
	numNets := 0
	if networkFlags.Testnet {
		numNets++
		networkFlags.ActiveNetParams = &TestnetParams
	}
	if networkFlags.Regtest {
		numNets++
		networkFlags.ActiveNetParams = &RegtestParams
	}
	if numNets > 1 {
		message := "Multiple networks parameters (testnet, regtest) cannot be used " +
			"together. Please choose only one network"
		err := errors.New(message)
		if parser != nil {
			fmt.Fprintln(os.Stderr, err)
			parser.WriteHelp(os.Stderr)
		}
		return err
	}
	return nil
}

// NetParams returns the ActiveNetParams
func (networkFlags *NetworkFlags) NetParams() *NetParams {
	return networkFlags.ActiveNetParams
}

// CombineNetworkFlags merges network flags given before a sub-command into
// the sub-command's own flags.
func CombineNetworkFlags(dst, src *NetworkFlags) {
	dst.Testnet = dst.Testnet || src.Testnet
	dst.Regtest = dst.Regtest || src.Regtest
}
