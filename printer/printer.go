package printer

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"unicode"
)

var ErrUnknownDumpType = errors.New("unknown dump type")

type DumpType int

const (
	DumpPrintableText DumpType = iota
	DumpHexStream
	DumpEscapedString
	DumpBinary
	DumpHexDump
	DumpHexOnly
)

var dumpTypeNames = map[DumpType]string{
	DumpPrintableText: "text",
	DumpHexStream:     "hex",
	DumpEscapedString: "escaped",
	DumpBinary:        "binary",
	DumpHexDump:       "hexdump",
	DumpHexOnly:       "hexonly",
}

func DumpTypes() []DumpType {
	return []DumpType{DumpPrintableText, DumpHexStream, DumpEscapedString, DumpBinary, DumpHexDump, DumpHexOnly}
}

func (t DumpType) String() string {
	name, ok := dumpTypeNames[t]
	if !ok {
		return fmt.Sprintf("DumpType(%d)", int(t))
	}
	return name
}

func ParseDumpType(name string) (DumpType, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for t, n := range dumpTypeNames {
		if n == key {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: '%s'", ErrUnknownDumpType, name)
}

// Print renders data in the representation selected by t. config is only
// consulted for the line width of the hex dump types.
func Print(t DumpType, data []byte, config Config) ([]byte, error) {
	switch t {
	case DumpPrintableText:
		return []byte(PrintableText(data)), nil
	case DumpHexStream:
		return []byte(HexStream(data)), nil
	case DumpEscapedString:
		return []byte(EscapedString(data)), nil
	case DumpBinary:
		return append([]byte(nil), data...), nil
	case DumpHexDump, DumpHexOnly:
		config.IncludeText = t == DumpHexDump
		if err := config.Validate(); err != nil {
			return nil, err
		}
		return []byte(HexDump(data, config)), nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownDumpType, int(t))
}

// PrintableText keeps the ASCII bytes that are whitespace or letters.
// Bytes >= 0x80 are dropped.
func PrintableText(data []byte) string {
	var output strings.Builder
	for _, b := range data {
		if b >= 0x80 {
			continue
		}
		r := rune(b)
		if unicode.IsSpace(r) || unicode.IsLetter(r) {
			output.WriteByte(b)
		}
	}
	return output.String()
}

func HexStream(data []byte) string {
	return hex.EncodeToString(data)
}

// EscapedString renders data as a C string literal of \xNN escapes,
// continued onto a new quoted line every 16 bytes.
func EscapedString(data []byte) string {
	var output strings.Builder
	output.WriteString(`"`)
	for i, b := range data {
		if i%16 == 0 && i != 0 && i != len(data)-1 {
			output.WriteString("\" \\\n\"")
		}
		output.WriteString(fmt.Sprintf("\\x%02x", b))
	}
	output.WriteString("\"\n")
	return output.String()
}
