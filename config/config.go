package config

import "github.com/mogwai-project/mogwai-node/chaincfg"

const NAME = "mogwai"

const VERSION_MAJOR = 0
const VERSION_MINOR = 12
const VERSION_PATCH = 3

// DefaultParams returns the parameters of the network this binary was built for.
func DefaultParams() *chaincfg.Params {
	p, err := chaincfg.ParamsForName(NETWORK_NAME)
	if err != nil {
		panic(err)
	}
	return p
}
