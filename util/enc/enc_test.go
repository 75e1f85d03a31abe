package enc

import (
	"encoding/json"
	"testing"
)

type testStruct struct {
	Hexval Hex
	Empty  Hex
}

func TestHexJSON(t *testing.T) {
	str := testStruct{
		Hexval: Hex{0x34, 0x42, 0x19, 0x3e},
		Empty:  Hex{},
	}

	mar, err := json.Marshal(str)
	if err != nil {
		t.Fatal(err)
	}
	if string(mar) != `{"Hexval":"3442193e","Empty":""}` {
		t.Fatalf("unexpected json %s", mar)
	}

	str2 := testStruct{}
	err = json.Unmarshal(mar, &str2)
	if err != nil {
		t.Fatal(err)
	}

	if str2.Hexval.String() != "3442193e" || len(str2.Empty) != 0 {
		t.Fatal("structs are different")
	}
}

func TestHexInvalid(t *testing.T) {
	var h Hex
	for _, s := range []string{`"zz"`, `3442`, `"`} {
		if err := json.Unmarshal([]byte(s), &h); err == nil {
			t.Errorf("%s accepted", s)
		}
	}
	if err := h.UnmarshalText([]byte("0a0b")); err != nil || h.String() != "0a0b" {
		t.Fatalf("UnmarshalText: %v %s", err, h)
	}
}

func TestHexText(t *testing.T) {
	out, err := Hex{0xde, 0xad}.MarshalText()
	if err != nil || string(out) != "dead" {
		t.Fatalf("MarshalText: %s %v", out, err)
	}
	h := make(Hex, 0, 8)
	if err := h.UnmarshalText([]byte("abc")); err == nil || len(h) != 0 {
		t.Fatalf("odd length accepted: %x %v", h, err)
	}
}
