// Package encoding decodes text-based model files into UTF-8 strings.
package encoding

import (
	"bytes"
	"errors"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrBinaryContent is returned when the data looks like a binary file.
var ErrBinaryContent = errors.New("content is not text")

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// DecodeText converts file bytes to a UTF-8 string.
//
// A UTF-8 or UTF-16 byte order mark selects the encoding and is stripped.
// Without a BOM the data is taken as UTF-8, falling back to Windows-1252
// for exporters that write Latin-1 material and group names.
func DecodeText(data []byte) (string, error) {
	if len(data) == 0 {
		return "", nil
	}

	var result []byte
	switch {
	case hasBOM(data):
		decoded, _, err := transform.Bytes(unicode.BOMOverride(unicode.UTF8.NewDecoder()), data)
		if err != nil {
			return "", err
		}
		result = decoded
	case utf8.Valid(data):
		result = data
	default:
		decoded, _, err := transform.Bytes(charmap.Windows1252.NewDecoder(), data)
		if err != nil {
			return "", err
		}
		result = decoded
	}

	if bytes.IndexByte(result, 0) >= 0 {
		return "", ErrBinaryContent
	}
	return string(result), nil
}

func hasBOM(data []byte) bool {
	return bytes.HasPrefix(data, bomUTF8) ||
		bytes.HasPrefix(data, bomUTF16LE) ||
		bytes.HasPrefix(data, bomUTF16BE)
}
