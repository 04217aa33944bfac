package convert

import (
	"bytes"
	"io"
	"log/slog"

	textencoding "golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"subbom/internal/encoding"
	"subbom/internal/fileutil"
	"subbom/internal/logging"
)

// Status is the per-file outcome of a conversion.
type Status int

const (
	StatusOK Status = iota
	StatusSkipped
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusSkipped:
		return "SKIP"
	case StatusFailed:
		return "FAILED"
	default:
		return "UNKNOWN"
	}
}

// Result describes what happened to one file.
type Result struct {
	Path     string
	Encoding encoding.Encoding
	Status   Status
	Err      error
}

// Converter rewrites files in place.
type Converter struct {
	logger *slog.Logger
}

// New returns a Converter that logs through logger. A nil logger discards.
func New(logger *slog.Logger) *Converter {
	return &Converter{logger: logging.NewComponentLogger(logger, "convert")}
}

// Convert rewrites path as UTF-8 with BOM according to enc, the encoding
// detected for it beforehand. The read and the write are separate scoped
// operations. A failed read leaves the file alone.
func (c *Converter) Convert(path string, enc encoding.Encoding) Result {
	res := Result{Path: path, Encoding: enc}
	logger := c.logger.With(logging.String(logging.FieldFile, path), logging.String(logging.FieldEncoding, enc.Key()))

	if !enc.NeedsConversion() {
		res.Status = StatusSkipped
		logger.Debug("already utf-8 with bom")
		return res
	}

	out, err := readConverted(path, enc)
	if err != nil {
		res.Status = StatusFailed
		res.Err = err
		logger.Warn("read failed", logging.String(logging.FieldErrorKind, fileutil.Kind(err)), logging.Error(err))
		return res
	}

	if err := writeConverted(path, out); err != nil {
		res.Status = StatusFailed
		res.Err = err
		logger.Warn("write failed", logging.String(logging.FieldErrorKind, fileutil.Kind(err)), logging.Error(err))
		return res
	}

	res.Status = StatusOK
	logger.Debug("converted", logging.Int("bytes", len(out)))
	return res
}

// decoderFor returns the decoder that turns a file in enc into UTF-8 text.
// Everything that is not UTF-8 is taken byte for byte as Latin-1.
func decoderFor(enc encoding.Encoding) *textencoding.Decoder {
	if enc == encoding.Utf8NoBOM || enc == encoding.Utf8BOM {
		return unicode.UTF8.NewDecoder()
	}
	return charmap.ISO8859_1.NewDecoder()
}

// transcode returns data rendered as UTF-8 with BOM, decoding it per enc.
func transcode(data []byte, enc encoding.Encoding) ([]byte, error) {
	reader := transform.NewReader(bytes.NewReader(data), decoderFor(enc))
	text, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	buf.Grow(len(text) + len(encoding.BOM))
	if err := encodeTo(&buf, text); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func readConverted(path string, enc encoding.Encoding) ([]byte, error) {
	data, err := fileutil.ReadFile(path)
	if err != nil {
		return nil, err
	}
	out, err := transcode(data, enc)
	if err != nil {
		return nil, fileutil.Wrap(fileutil.ErrOpenForRead, "decode", path, err)
	}
	return out, nil
}

func writeConverted(path string, out []byte) error {
	return fileutil.RewriteFile(path, func(w io.Writer) error {
		_, err := w.Write(out)
		return err
	})
}

// encodeTo writes the BOM followed by text. The BOM is emitted on Close even
// when text is empty.
func encodeTo(w io.Writer, text []byte) error {
	tw := transform.NewWriter(w, unicode.UTF8BOM.NewEncoder())
	if _, err := tw.Write(text); err != nil {
		_ = tw.Close()
		return err
	}
	return tw.Close()
}
