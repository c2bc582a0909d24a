package printer

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

const DefaultBytesPerLine = 16

var ErrInvalidWidth = errors.New("invalid bytes per line")

type Config struct {
	BytesPerLine int
	IncludeText  bool
}

func DefaultConfig() Config {
	return Config{BytesPerLine: DefaultBytesPerLine, IncludeText: true}
}

func (c Config) Validate() error {
	if c.BytesPerLine < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidWidth, c.BytesPerLine)
	}
	return nil
}

// DumpLine is one rendered row of a hex dump. Text is empty when the
// config has no text column.
type DumpLine struct {
	Offset int
	Hex    string
	Text   string
}

// Lines splits data into rows of config.BytesPerLine bytes. The last row
// holds the remainder.
func Lines(data []byte, config Config) []DumpLine {
	if err := config.Validate(); err != nil {
		panic(err)
	}
	width := config.BytesPerLine
	lines := make([]DumpLine, 0, (len(data)+width-1)/width)
	for offset := 0; offset < len(data); offset += width {
		end := min(offset+width, len(data))
		row := data[offset:end]

		var hex strings.Builder
		for _, b := range row {
			hex.WriteString(fmt.Sprintf(" %02x", b))
		}
		line := DumpLine{Offset: offset, Hex: hex.String()}
		if config.IncludeText {
			text := make([]byte, len(row))
			for i, b := range row {
				text[i] = printable(b)
			}
			line.Text = string(text)
		}
		lines = append(lines, line)
	}
	return lines
}

func printable(b byte) byte {
	if b < 0x20 || b > 0x7e {
		return '.'
	}
	return b
}

// HexDump renders data as offset, hex bytes and an optional text column,
// one line per config.BytesPerLine bytes. It panics if BytesPerLine < 1.
func HexDump(data []byte, config Config) string {
	var output strings.Builder
	writeLines(&output, data, config)
	return output.String()
}

// WriteHexDump writes the HexDump rendering of data to w.
func WriteHexDump(w io.Writer, data []byte, config Config) error {
	err := config.Validate()
	if err != nil {
		return err
	}
	return writeLines(w, data, config)
}

func writeLines(w io.Writer, data []byte, config Config) error {
	for _, line := range Lines(data, config) {
		var row strings.Builder
		row.WriteString(fmt.Sprintf("%04x  ", line.Offset))
		row.WriteString(line.Hex)
		if config.IncludeText {
			// hex/text separator, then one blank slot per byte missing from a short last line
			row.WriteString("   ")
			row.WriteString(strings.Repeat("   ", config.BytesPerLine-len(line.Text)))
			row.WriteString(line.Text)
		}
		row.WriteString("\n")
		_, err := io.WriteString(w, row.String())
		if err != nil {
			return err
		}
	}
	return nil
}
