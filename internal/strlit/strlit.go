package strlit

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const hexDigits = "0123456789abcdef"

// Escape maps text to a form safe to embed between double quotes in generated
// source. Control characters with short-form escapes use them, backslash and
// double quote gain a leading backslash, remaining code points below 0x20 become
// \u00XX escapes, and bytes that do not form valid UTF-8 become \xHH byte
// escapes so the original byte sequence survives a round trip. All other runes
// pass through unchanged.
func Escape(s string) string {
	var b strings.Builder
	b.Grow(len(s) + len(s)/8)

	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			c := s[i]
			b.WriteString(`\x`)
			b.WriteByte(hexDigits[c>>4])
			b.WriteByte(hexDigits[c&0xf])
			i++
			continue
		}

		switch r {
		case '\a':
			b.WriteString(`\a`)
		case '\b':
			b.WriteString(`\b`)
		case '\t':
			b.WriteString(`\t`)
		case '\n':
			b.WriteString(`\n`)
		case '\v':
			b.WriteString(`\v`)
		case '\f':
			b.WriteString(`\f`)
		case '\r':
			b.WriteString(`\r`)
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		default:
			if r < 0x20 {
				b.WriteString(`\u00`)
				b.WriteByte(hexDigits[r>>4])
				b.WriteByte(hexDigits[r&0xf])
			} else {
				b.WriteRune(r)
			}
		}
		i += size
	}
	return b.String()
}

// Unescape inverts Escape. It accepts exactly the escape forms Escape emits
// (\a \b \t \n \v \f \r \\ \" \xHH \uXXXX) and reports malformed input.
func Unescape(s string) (string, error) {
	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); {
		c := s[i]
		if c != '\\' {
			b.WriteByte(c)
			i++
			continue
		}
		if i+1 >= len(s) {
			return "", fmt.Errorf("truncated escape at offset %d", i)
		}

		switch s[i+1] {
		case 'a':
			b.WriteByte('\a')
		case 'b':
			b.WriteByte('\b')
		case 't':
			b.WriteByte('\t')
		case 'n':
			b.WriteByte('\n')
		case 'v':
			b.WriteByte('\v')
		case 'f':
			b.WriteByte('\f')
		case 'r':
			b.WriteByte('\r')
		case '\\':
			b.WriteByte('\\')
		case '"':
			b.WriteByte('"')
		case 'x':
			v, err := hexValue(s, i+2, 2)
			if err != nil {
				return "", fmt.Errorf("escape at offset %d: %w", i, err)
			}
			b.WriteByte(byte(v))
			i += 4
			continue
		case 'u':
			v, err := hexValue(s, i+2, 4)
			if err != nil {
				return "", fmt.Errorf("escape at offset %d: %w", i, err)
			}
			b.WriteRune(rune(v))
			i += 6
			continue
		default:
			return "", fmt.Errorf("unknown escape \\%c at offset %d", s[i+1], i)
		}
		i += 2
	}
	return b.String(), nil
}

func hexValue(s string, start, width int) (uint32, error) {
	if start+width > len(s) {
		return 0, fmt.Errorf("truncated hex escape")
	}
	var v uint32
	for _, c := range []byte(s[start : start+width]) {
		var d uint32
		switch {
		case c >= '0' && c <= '9':
			d = uint32(c - '0')
		case c >= 'a' && c <= 'f':
			d = uint32(c-'a') + 10
		case c >= 'A' && c <= 'F':
			d = uint32(c-'A') + 10
		default:
			return 0, fmt.Errorf("invalid hex digit %q", c)
		}
		v = v<<4 | d
	}
	return v, nil
}
