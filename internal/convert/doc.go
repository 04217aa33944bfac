// Package convert rewrites subtitle files as UTF-8 with a byte order mark.
//
// The caller supplies the encoding it already detected for the file; the
// converter never re-detects. Files that are already UTF-8 with BOM are
// skipped untouched. BOM-less UTF-8 is decoded as UTF-8, while ASCII and
// legacy 8-bit text is taken byte for byte (each byte becomes the code point
// of the same value) so no codepage guess is made.
package convert
