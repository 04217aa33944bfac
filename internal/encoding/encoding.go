package encoding

// Encoding identifies the byte-level encoding of a text buffer.
type Encoding int

const (
	// Ascii7 is pure 7-bit ASCII. It is also the fallback for empty or
	// unreadable input.
	Ascii7 Encoding = iota
	// Ascii8 holds bytes >= 0x80 that do not form valid UTF-8 and is treated
	// as an unspecified legacy codepage.
	Ascii8
	// Utf8BOM is UTF-8 prefixed by the EF BB BF byte order mark.
	Utf8BOM
	// Utf8NoBOM is valid UTF-8 containing multi-byte sequences but no BOM.
	Utf8NoBOM
)

// BOM is the UTF-8 byte order mark.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// String returns the human-readable label used in console output.
func (e Encoding) String() string {
	switch e {
	case Ascii7:
		return "ASCII"
	case Ascii8:
		return "ASCII with codepage"
	case Utf8BOM:
		return "UTF-8 with BOM"
	case Utf8NoBOM:
		return "UTF-8 without BOM"
	default:
		return "Unknown"
	}
}

// Key returns a stable machine-friendly identifier for structured output.
func (e Encoding) Key() string {
	switch e {
	case Ascii7:
		return "ascii7"
	case Ascii8:
		return "ascii8"
	case Utf8BOM:
		return "utf8_bom"
	case Utf8NoBOM:
		return "utf8"
	default:
		return "unknown"
	}
}

// NeedsConversion reports whether a file in this encoding must be rewritten
// to reach UTF-8 with BOM.
func (e Encoding) NeedsConversion() bool {
	return e != Utf8BOM
}
