//go:build testnet && !regtest

package config

const NETWORK_NAME = "test"

const KEYSTORE_FILE = "keystore_testnet.db"
