package wallet

import (
	"strings"

	"github.com/mogwai-project/mogwai-node/bitcrypto"
	"github.com/mogwai-project/mogwai-node/config"
	"github.com/mogwai-project/mogwai-node/hdkey"
	"github.com/mogwai-project/mogwai-node/util"

	"github.com/pkg/errors"
	"github.com/tyler-smith/go-bip39"
)

var ErrInvalidMnemonic = errors.New("invalid mnemonic")
var ErrSeedLength = errors.New("seed length must be between 16 and 64 bytes")

// NewMnemonic generates a BIP39 mnemonic from SEED_ENTROPY bytes of fresh entropy.
func NewMnemonic() (string, error) {
	entropy := make([]byte, config.SEED_ENTROPY)
	bitcrypto.RandRead(entropy)
	defer util.Wipe(entropy)

	return bip39.NewMnemonic(entropy)
}

// normalizes whitespace and case, the wordlist is lowercase
func normalizeMnemonic(mnemonic string) string {
	return strings.Join(strings.Fields(strings.ToLower(mnemonic)), " ")
}

// MnemonicToSeed checks the mnemonic checksum and returns its 64-byte BIP39 seed.
func MnemonicToSeed(mnemonic, passphrase string) ([]byte, error) {
	mnemonic = normalizeMnemonic(mnemonic)
	if !bip39.IsMnemonicValid(mnemonic) {
		return nil, ErrInvalidMnemonic
	}
	return bip39.NewSeed(mnemonic, passphrase), nil
}

// MasterFromSeed returns the master key of seed, rejecting seeds outside the
// 128 to 512 bit range.
func MasterFromSeed(seed []byte) (*hdkey.ExtendedKey, error) {
	if len(seed) < config.MIN_SEED_BYTES || len(seed) > config.MAX_SEED_BYTES {
		return nil, errors.Wrapf(ErrSeedLength, "got %d bytes", len(seed))
	}
	return hdkey.NewMaster(seed)
}

func MasterFromMnemonic(mnemonic, passphrase string) (*hdkey.ExtendedKey, error) {
	seed, err := MnemonicToSeed(mnemonic, passphrase)
	if err != nil {
		return nil, err
	}
	defer util.Wipe(seed)

	return MasterFromSeed(seed)
}
