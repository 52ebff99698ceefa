package sharefile

import (
	"errors"
	"fmt"
	"math/big"
)

// Markers delineating the sections of the text-friendly share format.
const (
	// MagicHeader is the human-readable banner at the top of every share file.
	MagicHeader = `# THIS FILE IS ONE SHARE OF A SECRET.
# IT IS SHARE NUMBER %d, AND ANY %d SHARES OF THE SAME SECRET
# ARE ENOUGH TO RECONSTRUCT IT.
# RECOVER THE SECRET WITH THE PROGRAM FOUND AT:
# https://github.com/Beastly713/lagrange
`
	// HeaderMarker indicates the start of the JSON metadata.
	HeaderMarker = "-- HEADER --"

	// ValueMarker indicates the start of the decimal share value.
	ValueMarker = "-- VALUE --"
)

// Header carries the metadata needed to group shares of the same secret
// and interpolate them. The big integers travel as decimal strings so the
// format stays diff- and email-friendly.
type Header struct {
	// Label names the secret this share belongs to.
	Label string `json:"label"`

	// Timestamp is the unix time the shares were issued. Shares from
	// different issuances of the same label must not be mixed.
	Timestamp int64 `json:"timestamp"`

	// Index is the 1-based share number.
	Index int `json:"index"`

	// Threshold is how many shares reconstruction needs; the secret
	// polynomial has degree Threshold-1.
	Threshold int `json:"threshold"`

	// X is the share's evaluation coordinate, in decimal.
	X string `json:"x"`

	// Modulus is the prime field modulus, in decimal.
	Modulus string `json:"modulus"`
}

// Validate checks that the header contains sane values.
func (h *Header) Validate() error {
	if h.Label == "" {
		return errors.New("header is missing a label")
	}
	if h.Index < 1 {
		return fmt.Errorf("invalid share index %d", h.Index)
	}
	if h.Threshold < 1 {
		return fmt.Errorf("invalid threshold %d", h.Threshold)
	}
	if _, err := h.BigX(); err != nil {
		return err
	}
	if _, err := h.BigModulus(); err != nil {
		return err
	}
	return nil
}

// BigX parses the share's x-coordinate.
func (h *Header) BigX() (*big.Int, error) {
	x, ok := new(big.Int).SetString(h.X, 10)
	if !ok {
		return nil, fmt.Errorf("x-coordinate %q is not a decimal integer", h.X)
	}
	return x, nil
}

// BigModulus parses the field modulus and checks it can define a field.
func (h *Header) BigModulus() (*big.Int, error) {
	m, ok := new(big.Int).SetString(h.Modulus, 10)
	if !ok {
		return nil, fmt.Errorf("modulus %q is not a decimal integer", h.Modulus)
	}
	if m.Cmp(big.NewInt(1)) <= 0 {
		return nil, fmt.Errorf("modulus %s must be greater than 1", h.Modulus)
	}
	return m, nil
}

// GroupID identifies the issuance this share belongs to. Shares may only
// be combined with shares carrying the same GroupID.
func (h *Header) GroupID() string {
	return fmt.Sprintf("%s|%d|%s", h.Label, h.Timestamp, h.Modulus)
}
