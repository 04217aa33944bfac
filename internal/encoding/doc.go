// Package encoding classifies subtitle text by its byte-level encoding.
//
// Detect inspects a raw buffer for the UTF-8 byte order mark and otherwise
// walks the UTF-8 lead/continuation byte grammar to tell apart pure 7-bit
// ASCII, BOM-less UTF-8, and 8-bit text in some unspecified legacy codepage.
// The classifier never fails: empty or unreadable input is reported as ASCII.
//
// The scan mirrors the heuristic long used by Notepad++, including its
// treatment of a multi-byte sequence cut off at the end of the buffer, which
// is accepted rather than rejected. Callers rely on that to decide which
// files get rewritten, so keep it as is.
package encoding
