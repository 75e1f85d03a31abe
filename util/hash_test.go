package util

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/zeebo/blake3"
)

func TestHashJSON(t *testing.T) {
	in := map[string]Hash{"id": blake3.Sum256([]byte("test"))}

	data, err := json.Marshal(in)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"`+in["id"].String()+`"`) {
		t.Fatalf("hash should marshal as a hex string: %s", data)
	}

	var out map[string]Hash
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatal(err)
	}
	if out["id"] != in["id"] {
		t.Fatalf("round trip changed the hash: %s != %s", out["id"], in["id"])
	}

	if err := json.Unmarshal([]byte(`{"id":"00"}`), &out); err == nil {
		t.Fatal("short hash accepted")
	}
}

func TestHashFromStr(t *testing.T) {
	h, err := HashFromStr("0x000006ba48cbdecd71bc411a3e0b609f1acab9806fc652040f247c8b86831d06")
	if err != nil {
		t.Fatal(err)
	}
	if h[0] != 0 || h[2] != 0x06 || h[31] != 0x06 {
		t.Fatalf("unexpected byte order: %x", h[:])
	}
	if h.String() != "000006ba48cbdecd71bc411a3e0b609f1acab9806fc652040f247c8b86831d06" {
		t.Fatalf("unexpected string %s", h)
	}

	z, err := HashFromStr("0x00")
	if err != nil {
		t.Fatal(err)
	}
	if !z.IsZero() {
		t.Fatalf("expected zero hash, got %s", z)
	}

	if _, err := HashFromStr("zz"); err == nil {
		t.Fatal("expected error for non-hex input")
	}
	long := "00" + "000006ba48cbdecd71bc411a3e0b609f1acab9806fc652040f247c8b86831d06"
	if _, err := HashFromStr(long); err == nil {
		t.Fatal("expected error for long input")
	}
}
