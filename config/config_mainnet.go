//go:build !testnet && !regtest

package config

const NETWORK_NAME = "main"

const KEYSTORE_FILE = "keystore.db"
