package encoding

import (
	"bytes"
	"os"
)

// Detect classifies data. It never fails.
func Detect(data []byte) Encoding {
	if len(data) >= len(BOM) && bytes.Equal(data[:len(BOM)], BOM) {
		return Utf8BOM
	}
	return classify(data)
}

// DetectFile reads path fully and classifies its contents. A file that
// cannot be read is reported as Ascii7.
func DetectFile(path string) Encoding {
	data, err := os.ReadFile(path)
	if err != nil {
		return Ascii7
	}
	return Detect(data)
}

// classify walks the UTF-8 lead byte grammar. It stops at the first byte that
// settles the outcome; a multi-byte sequence truncated by the end of the
// buffer stops the walk without counting as invalid.
func classify(data []byte) Encoding {
	ascii7 := true
	valid := true

	n := len(data)
	i := 0
scan:
	for i < n {
		b := data[i]
		if b >= 0x80 {
			ascii7 = false
		}
		switch {
		case b == 0x00:
			ascii7 = false
			valid = false
			break scan
		case b < 0x80:
			i++
		case b < 0xC0:
			// continuation byte without a lead byte
			valid = false
			break scan
		case b < 0xE0:
			if i+1 >= n {
				break scan
			}
			if b&0x1F == 0 || !isContinuation(data[i+1]) {
				valid = false
				break scan
			}
			i += 2
		case b < 0xF0:
			if i+2 >= n {
				break scan
			}
			if b&0x0F == 0 || !isContinuation(data[i+1]) || !isContinuation(data[i+2]) {
				valid = false
				break scan
			}
			i += 3
		default:
			// 4-byte sequences are not accepted
			valid = false
			break scan
		}
	}

	switch {
	case ascii7:
		return Ascii7
	case valid:
		return Utf8NoBOM
	default:
		return Ascii8
	}
}

func isContinuation(b byte) bool {
	return b&0xC0 == 0x80
}
