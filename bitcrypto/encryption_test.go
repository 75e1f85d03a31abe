package bitcrypto

import (
	"bytes"
	"errors"
	"testing"

	"github.com/mogwai-project/mogwai-node/binary"
)

func TestCipher(t *testing.T) {
	key := KDF([]byte("password"), []byte("somesalt12345678"), 1, 64)
	c, err := NewCipher(key)
	if err != nil {
		t.Fatal(err)
	}

	msg := []byte("extended private key material")
	ad := []byte("account-id")

	enc, err := c.Encrypt(msg, ad)
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Contains(enc, msg) {
		t.Fatal("ciphertext contains the plaintext")
	}

	dec, err := c.Decrypt(enc, ad)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(dec, msg) {
		t.Fatalf("decrypted %q", dec)
	}

	if _, err := c.Decrypt(enc, []byte("other-id")); !errors.Is(err, ErrAuthentication) {
		t.Fatalf("decrypt with wrong associated data: %v", err)
	}

	other, _ := NewCipher(KDF([]byte("password2"), []byte("somesalt12345678"), 1, 64))
	if _, err := other.Decrypt(enc, ad); !errors.Is(err, ErrAuthentication) {
		t.Fatalf("decrypt with wrong key: %v", err)
	}

	enc[len(enc)-1] ^= 1
	if _, err := c.Decrypt(enc, ad); !errors.Is(err, ErrAuthentication) {
		t.Fatalf("decrypt of tampered data: %v", err)
	}

	if _, err := (Cipher{}).Encrypt(msg, ad); err == nil {
		t.Fatal("zero Cipher should refuse to encrypt")
	}

	if _, err := c.Decrypt(enc[:5], ad); err != ErrCiphertextTooShort {
		t.Fatalf("expected ErrCiphertextTooShort, got %v", err)
	}
}

func TestKDF(t *testing.T) {
	a := KDF([]byte("test"), []byte("somesalt"), 1, 64)
	b := KDF([]byte("test"), []byte("somesalt"), 1, 64)
	c := KDF([]byte("test"), []byte("othersalt"), 1, 64)
	if a != b {
		t.Fatal("KDF is not deterministic")
	}
	if a == c {
		t.Fatal("salt has no effect")
	}
}

func TestKDFParams(t *testing.T) {
	p := NewKDFParams(1, 64)
	if p.Salt == [SALT_SIZE]byte{} {
		t.Fatal("salt was not generated")
	}

	s := binary.Ser{}
	p.Serialize(&s)
	if len(s.Output()) != SALT_SIZE+8 {
		t.Fatalf("serialized params are %d bytes", len(s.Output()))
	}

	var q KDFParams
	d := binary.NewDes(s.Output())
	if err := q.Deserialize(&d); err != nil {
		t.Fatal(err)
	}
	if q != p {
		t.Fatalf("params %+v != %+v", q, p)
	}
	if q.Key([]byte("pass")) != p.Key([]byte("pass")) {
		t.Fatal("keys differ")
	}

	weak := KDFParams{Time: 0, Memory: 64}
	s = binary.Ser{}
	weak.Serialize(&s)
	d = binary.NewDes(s.Output())
	if err := q.Deserialize(&d); !errors.Is(err, ErrWeakKDF) {
		t.Fatalf("expected ErrWeakKDF, got %v", err)
	}

	for _, costly := range []KDFParams{
		{Time: MAX_KDF_TIME + 1, Memory: 64},
		{Time: 1, Memory: MAX_KDF_MEMORY + 1},
		{Time: ^uint32(0), Memory: ^uint32(0)},
	} {
		s = binary.Ser{}
		costly.Serialize(&s)
		d = binary.NewDes(s.Output())
		if err := q.Deserialize(&d); !errors.Is(err, ErrCostlyKDF) {
			t.Fatalf("time %d memory %d: expected ErrCostlyKDF, got %v", costly.Time, costly.Memory, err)
		}
	}

	limit := KDFParams{Time: MAX_KDF_TIME, Memory: MAX_KDF_MEMORY}
	s = binary.Ser{}
	limit.Serialize(&s)
	d = binary.NewDes(s.Output())
	if err := q.Deserialize(&d); err != nil {
		t.Fatalf("parameters at the limit rejected: %v", err)
	}

	s = binary.Ser{}
	weak.Serialize(&s)
	d = binary.NewDes(s.Output()[:10])
	if err := q.Deserialize(&d); !errors.Is(err, binary.ErrShortData) {
		t.Fatalf("expected ErrShortData, got %v", err)
	}
}

func BenchmarkKDF(b *testing.B) {
	for i := 0; i < b.N; i++ {
		KDF([]byte("test"), []byte("somesalt"), 4, 4)
	}
}
