package config

// This file holds advanced config options. You shouldn't edit these options unless you really know what you
// are doing.

const VERSION = VERSION_MAJOR<<32 + VERSION_MINOR<<16 + VERSION_PATCH

// BIP39 entropy of newly generated mnemonics, in bytes (12 words)
const SEED_ENTROPY = 16

// BIP32 recommends seeds between 128 and 512 bits
const MIN_SEED_BYTES = 16
const MAX_SEED_BYTES = 64

const BIP44_PURPOSE = 44

// argon2id parameters used to encrypt keystore entries. Memory is in KiB.
const KDF_ITERATIONS = 512
const KDF_MEMORY = 6 * 1024

// fast KDF, used by -fast-kdf and regtest tooling
const KDF_ITERATIONS_FAST = 128
const KDF_MEMORY_FAST = 2 * 1024

// max number of consecutive invalid child indices skipped before giving up
const MAX_INDEX_SKIP = 32
