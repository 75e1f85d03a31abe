//go:build regtest

package config

const NETWORK_NAME = "regtest"

const KEYSTORE_FILE = "keystore_regtest.db"
