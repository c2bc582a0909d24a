package printer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseDumpType(t *testing.T) {
	for _, dumpType := range DumpTypes() {
		parsed, err := ParseDumpType(strings.ToUpper(dumpType.String()))
		require.Nil(t, err)
		require.Equal(t, dumpType, parsed)
	}
	_, err := ParseDumpType("ebcdic")
	require.ErrorIs(t, err, ErrUnknownDumpType)
	require.Equal(t, "DumpType(42)", DumpType(42).String())
}

func TestPrintableText(t *testing.T) {
	require.Equal(t, "a bc\n", PrintableText([]byte("a b\x00c\n1.")))
	require.Equal(t, "caf", PrintableText([]byte{'c', 'a', 'f', 0xe9}))
	require.Equal(t, "", PrintableText([]byte{0x85, 0xa0, 0xc0, 0xff}))
	require.Equal(t, "", PrintableText(nil))
}

func TestHexStream(t *testing.T) {
	require.Equal(t, "00410aff", HexStream([]byte{0x00, 0x41, 0x0a, 0xff}))
	require.Equal(t, "", HexStream(nil))
}

func TestEscapedString(t *testing.T) {
	require.Equal(t, "\"\"\n", EscapedString(nil))
	require.Equal(t, "\"\\x41\\x00\"\n", EscapedString([]byte{0x41, 0x00}))

	// the 17th byte is the last one, so no continuation line is started for it
	var expected strings.Builder
	expected.WriteString(`"`)
	for _, b := range sequence(17) {
		expected.WriteString(`\x` + HexStream([]byte{b}))
	}
	expected.WriteString("\"\n")
	require.Equal(t, expected.String(), EscapedString(sequence(17)))

	output := EscapedString(sequence(18))
	lines := strings.Split(output, "\n")
	require.Len(t, lines, 3)
	require.Equal(t, `"\x00\x01\x02\x03\x04\x05\x06\x07\x08\x09\x0a\x0b\x0c\x0d\x0e\x0f" \`, lines[0])
	require.Equal(t, `"\x10\x11"`, lines[1])
	require.Equal(t, "", lines[2])
}

func TestPrint(t *testing.T) {
	data := []byte("Hi\x00")
	config := Config{BytesPerLine: 16}

	output, err := Print(DumpPrintableText, data, config)
	require.Nil(t, err)
	require.Equal(t, "Hi", string(output))

	output, err = Print(DumpHexStream, data, config)
	require.Nil(t, err)
	require.Equal(t, "486900", string(output))

	output, err = Print(DumpEscapedString, data, config)
	require.Nil(t, err)
	require.Equal(t, "\"\\x48\\x69\\x00\"\n", string(output))

	output, err = Print(DumpBinary, data, config)
	require.Nil(t, err)
	require.Equal(t, data, output)
	output[0] = 'X'
	require.Equal(t, byte('H'), data[0])

	output, err = Print(DumpHexDump, data, config)
	require.Nil(t, err)
	require.Equal(t, HexDump(data, Config{BytesPerLine: 16, IncludeText: true}), string(output))

	output, err = Print(DumpHexOnly, data, Config{BytesPerLine: 16, IncludeText: true})
	require.Nil(t, err)
	require.Equal(t, "0000   48 69 00\n", string(output))

	_, err = Print(DumpHexDump, data, Config{})
	require.ErrorIs(t, err, ErrInvalidWidth)

	_, err = Print(DumpType(99), data, config)
	require.ErrorIs(t, err, ErrUnknownDumpType)
}

func TestHexChars(t *testing.T) {
	require.Equal(t, 16*3+1, HexChars(BytesViewHex, 8))
	require.Equal(t, 16*3+3, HexChars(BytesViewHex, 4))
	require.Equal(t, 8*9, HexChars(BytesViewBits, 8))
	require.Equal(t, 8*9+1, HexChars(BytesViewBits, 4))
	require.Equal(t, 16*3, HexChars(BytesViewHex, 0))

	view, err := ParseBytesView("BITS")
	require.Nil(t, err)
	require.Equal(t, BytesViewBits, view)
	_, err = ParseBytesView("octal")
	require.NotNil(t, err)
}
