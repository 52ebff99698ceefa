package sharefile

import (
	"encoding/json"
	"fmt"
	"io"
	"math/big"
)

// Writer handles the writing of a single share file.
type Writer struct {
	w io.Writer
}

// NewWriter creates a new Writer around an io.Writer (usually an os.File).
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Write serializes the header and the share value to the underlying writer.
func (sw *Writer) Write(header *Header, y *big.Int) error {
	// 1. Validate before writing anything.
	if err := header.Validate(); err != nil {
		return fmt.Errorf("invalid header: %w", err)
	}
	if y == nil {
		return fmt.Errorf("share value must be an integer")
	}

	// 2. The human-readable banner.
	magicText := fmt.Sprintf(MagicHeader, header.Index, header.Threshold)
	if _, err := fmt.Fprint(sw.w, magicText); err != nil {
		return fmt.Errorf("failed to write magic header: %w", err)
	}

	// 3. Header marker and JSON metadata.
	if _, err := fmt.Fprintln(sw.w, HeaderMarker); err != nil {
		return fmt.Errorf("failed to write header marker: %w", err)
	}
	headerBytes, err := json.Marshal(header)
	if err != nil {
		return fmt.Errorf("failed to marshal header: %w", err)
	}
	if _, err := sw.w.Write(headerBytes); err != nil {
		return fmt.Errorf("failed to write json header: %w", err)
	}
	if _, err := fmt.Fprintln(sw.w); err != nil {
		return err
	}

	// 4. Value marker and the decimal share value.
	if _, err := fmt.Fprintln(sw.w, ValueMarker); err != nil {
		return fmt.Errorf("failed to write value marker: %w", err)
	}
	if _, err := fmt.Fprintln(sw.w, y.Text(10)); err != nil {
		return fmt.Errorf("failed to write share value: %w", err)
	}

	return nil
}
