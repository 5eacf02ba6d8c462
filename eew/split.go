package eew

import (
	"bytes"
)

// Terminator marks the end of a telegram.
const Terminator = "9999="

// SplitTelegrams is a bufio.SplitFunc that splits a stream into telegrams. Each token ends with the Terminator;
// whitespace between telegrams is skipped. Trailing data without terminator is returned as last token.
func SplitTelegrams(data []byte, atEOF bool) (advance int, token []byte, err error) {
	start := 0
	for start < len(data) && isSpace(data[start]) {
		start++
	}

	if i := bytes.Index(data[start:], []byte(Terminator)); i >= 0 {
		end := start + i + len(Terminator)
		return end, data[start:end], nil
	}

	if atEOF {
		if start < len(data) {
			return len(data), data[start:], nil
		}
		return len(data), nil, nil
	}

	return start, nil, nil
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\r', '\n', '\f', '\v':
		return true
	default:
		return false
	}
}
