package sharefile

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math/big"
	"strings"
)

// Reader holds a fully parsed share: its metadata and the y value.
type Reader struct {
	Header *Header
	Y      *big.Int
}

// NewReader parses a share stream. It scans past the banner to the header
// marker, decodes the JSON metadata, then reads the decimal share value.
func NewReader(r io.Reader) (*Reader, error) {
	bufReader := bufio.NewReader(r)

	// 1. Scan for the header marker. Garbage files should fail here, and
	// the line limit keeps the scan from chewing through huge ones.
	foundHeader := false
	for i := 0; i < 50; i++ {
		line, err := bufReader.ReadString('\n')
		if err != nil {
			return nil, fmt.Errorf("failed to read stream while looking for header: %w", err)
		}
		if strings.TrimSpace(line) == HeaderMarker {
			foundHeader = true
			break
		}
	}
	if !foundHeader {
		return nil, fmt.Errorf("invalid format: could not find %q marker", HeaderMarker)
	}

	// 2. Collect the JSON content up to the value marker.
	var jsonBuilder bytes.Buffer
	foundValue := false
	for {
		line, err := bufReader.ReadString('\n')
		if err != nil {
			return nil, fmt.Errorf("failed to read stream while reading header json: %w", err)
		}
		if strings.TrimSpace(line) == ValueMarker {
			foundValue = true
			break
		}
		jsonBuilder.WriteString(line)
	}
	if !foundValue {
		return nil, fmt.Errorf("invalid format: could not find %q marker", ValueMarker)
	}

	// 3. Unmarshal and validate the header.
	header := &Header{}
	if err := json.Unmarshal(jsonBuilder.Bytes(), header); err != nil {
		return nil, fmt.Errorf("failed to parse header json: %w", err)
	}
	if err := header.Validate(); err != nil {
		return nil, fmt.Errorf("header validation failed: %w", err)
	}

	// 4. The remainder of the stream is the decimal share value.
	rest, err := io.ReadAll(bufReader)
	if err != nil {
		return nil, fmt.Errorf("failed to read share value: %w", err)
	}
	y, ok := new(big.Int).SetString(strings.TrimSpace(string(rest)), 10)
	if !ok {
		return nil, fmt.Errorf("share value is not a decimal integer")
	}

	return &Reader{Header: header, Y: y}, nil
}
