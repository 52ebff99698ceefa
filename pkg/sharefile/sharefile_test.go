package sharefile

import (
	"bytes"
	"math/big"
	"reflect"
	"testing"
)

func TestRoundTrip(t *testing.T) {
	originalHeader := &Header{
		Label:     "vault-key",
		Timestamp: 1620000000,
		Index:     2,
		Threshold: 3,
		X:         "2",
		Modulus:   "65537",
	}
	originalY := big.NewInt(12545)

	var buf bytes.Buffer
	writer := NewWriter(&buf)
	if err := writer.Write(originalHeader, originalY); err != nil {
		t.Fatalf("Failed to write share: %v", err)
	}

	reader, err := NewReader(&buf)
	if err != nil {
		t.Fatalf("Failed to read share back: %v", err)
	}

	if !reflect.DeepEqual(reader.Header, originalHeader) {
		t.Errorf("Headers do not match.\nGot: %+v\nWant: %+v", reader.Header, originalHeader)
	}
	if reader.Y.Cmp(originalY) != 0 {
		t.Errorf("Share value does not match. Got %s, want %s", reader.Y, originalY)
	}
}

func TestRoundTripLargeIntegers(t *testing.T) {
	// Values wider than 64 bits must survive the decimal encoding.
	modulus := "170141183460469231731687303715884105727"
	y, _ := new(big.Int).SetString("123456789012345678901234567890123456789", 10)

	header := &Header{
		Label:     "wide",
		Timestamp: 1,
		Index:     1,
		Threshold: 2,
		X:         "1",
		Modulus:   modulus,
	}

	var buf bytes.Buffer
	if err := NewWriter(&buf).Write(header, y); err != nil {
		t.Fatalf("Failed to write share: %v", err)
	}

	reader, err := NewReader(&buf)
	if err != nil {
		t.Fatalf("Failed to read share back: %v", err)
	}
	if reader.Y.Cmp(y) != 0 {
		t.Errorf("Share value does not match. Got %s, want %s", reader.Y, y)
	}
	if m, err := reader.Header.BigModulus(); err != nil || m.String() != modulus {
		t.Errorf("Modulus did not survive: got %v, %v", m, err)
	}
}

func TestHeaderValidation(t *testing.T) {
	base := Header{
		Label:     "vault-key",
		Timestamp: 1,
		Index:     1,
		Threshold: 2,
		X:         "1",
		Modulus:   "17",
	}

	cases := []struct {
		name   string
		mutate func(*Header)
	}{
		{"missing label", func(h *Header) { h.Label = "" }},
		{"zero index", func(h *Header) { h.Index = 0 }},
		{"zero threshold", func(h *Header) { h.Threshold = 0 }},
		{"garbage x", func(h *Header) { h.X = "abc" }},
		{"garbage modulus", func(h *Header) { h.Modulus = "abc" }},
		{"modulus one", func(h *Header) { h.Modulus = "1" }},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			h := base
			c.mutate(&h)
			if err := h.Validate(); err == nil {
				t.Error("Validate should have failed, but succeeded")
			}
		})
	}

	if err := base.Validate(); err != nil {
		t.Errorf("valid header rejected: %v", err)
	}
}

func TestWriterRejectsInvalidInput(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(&buf)

	bad := &Header{Label: "", Index: 1, Threshold: 2, X: "1", Modulus: "17"}
	if err := writer.Write(bad, big.NewInt(1)); err == nil {
		t.Error("Write should have rejected an invalid header")
	}

	good := &Header{Label: "ok", Index: 1, Threshold: 2, X: "1", Modulus: "17"}
	if err := writer.Write(good, nil); err == nil {
		t.Error("Write should have rejected a nil share value")
	}
}

func TestCorruptFile(t *testing.T) {
	// Looks right but the JSON is broken.
	corruptData := `# THIS FILE IS ONE SHARE OF A SECRET...
-- HEADER --
{ "broken_json": "missing_bracket"
-- VALUE --
12345`

	if _, err := NewReader(bytes.NewBufferString(corruptData)); err == nil {
		t.Error("Reader should have failed on corrupt JSON, but succeeded")
	}
}

func TestNonNumericValue(t *testing.T) {
	data := `banner
-- HEADER --
{"label":"k","timestamp":1,"index":1,"threshold":2,"x":"1","modulus":"17"}
-- VALUE --
not-a-number`

	if _, err := NewReader(bytes.NewBufferString(data)); err == nil {
		t.Error("Reader should have failed on a non-numeric share value")
	}
}

func TestGroupID(t *testing.T) {
	a := Header{Label: "k", Timestamp: 1, Index: 1, Threshold: 2, X: "1", Modulus: "17"}
	b := Header{Label: "k", Timestamp: 1, Index: 2, Threshold: 2, X: "2", Modulus: "17"}
	c := Header{Label: "k", Timestamp: 2, Index: 1, Threshold: 2, X: "1", Modulus: "17"}

	if a.GroupID() != b.GroupID() {
		t.Error("shares of the same issuance should share a GroupID")
	}
	if a.GroupID() == c.GroupID() {
		t.Error("shares of different issuances must not share a GroupID")
	}
}
