package pgn

import (
	"fmt"
	"io"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/lgbarn/chessnote/internal/config"
	"github.com/lgbarn/chessnote/internal/errors"
)

// NewDecodingReader wraps r so that it yields UTF-8 text from input in the
// named encoding. A leading UTF-8 byte order mark is dropped.
func NewDecodingReader(r io.Reader, encoding string) (io.Reader, error) {
	switch encoding {
	case config.EncodingUTF8, "":
		return transform.NewReader(r, unicode.UTF8BOM.NewDecoder()), nil
	case config.EncodingLatin1:
		return transform.NewReader(r, charmap.ISO8859_1.NewDecoder()), nil
	default:
		return nil, fmt.Errorf("encoding %q: %w", encoding, errors.ErrInvalidConfig)
	}
}
