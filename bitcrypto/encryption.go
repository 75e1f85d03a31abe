package bitcrypto

import (
	"crypto/aes"
	"crypto/cipher"
	"errors"
)

var (
	ErrCiphertextTooShort = errors.New("encrypted data is too short")
	ErrAuthentication     = errors.New("message authentication failed")
)

// Cipher is AES-256-GCM with the random nonce stored in front of the ciphertext.
// The zero value is not usable.
type Cipher struct {
	aead cipher.AEAD
}

func NewCipher(key [32]byte) (Cipher, error) {
	block, err := aes.NewCipher(key[:])
	if err != nil {
		return Cipher{}, err
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return Cipher{}, err
	}
	return Cipher{aead: aead}, nil
}

// Encrypt seals plain and authenticates ad with it. The output is nonce || ciphertext || tag.
func (c Cipher) Encrypt(plain, ad []byte) ([]byte, error) {
	if c.aead == nil {
		return nil, errors.New("cipher is not initialized")
	}
	ns := c.aead.NonceSize()
	out := make([]byte, ns, ns+len(plain)+c.aead.Overhead())
	RandRead(out)
	return c.aead.Seal(out, out[:ns], plain, ad), nil
}

// Decrypt opens data produced by Encrypt with the same ad. A wrong key, wrong ad or
// modified data all report ErrAuthentication.
func (c Cipher) Decrypt(data, ad []byte) ([]byte, error) {
	if c.aead == nil {
		return nil, errors.New("cipher is not initialized")
	}
	ns := c.aead.NonceSize()
	if len(data) < ns+c.aead.Overhead() {
		return nil, ErrCiphertextTooShort
	}
	plain, err := c.aead.Open(nil, data[:ns], data[ns:], ad)
	if err != nil {
		return nil, ErrAuthentication
	}
	return plain, nil
}
