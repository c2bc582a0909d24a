package printer

import (
	"fmt"
	"strings"
)

type BytesView int

const (
	BytesViewHex BytesView = iota
	BytesViewBits
)

func ParseBytesView(name string) (BytesView, error) {
	switch strings.ToLower(name) {
	case "hex", "":
		return BytesViewHex, nil
	case "bits", "bit", "binary":
		return BytesViewBits, nil
	}
	return BytesViewHex, fmt.Errorf("unknown bytes view: '%s'", name)
}

// HexChars returns the number of editor columns one row of the bytes view
// occupies, including a separator column every separatorInterval bytes.
func HexChars(view BytesView, separatorInterval int) int {
	rowWidth := 16
	charsPerByte := 3
	if view == BytesViewBits {
		rowWidth = 8
		charsPerByte = 9
	}
	columns := rowWidth * charsPerByte
	if separatorInterval > 0 {
		columns += (rowWidth - 1) / separatorInterval
	}
	return columns
}
