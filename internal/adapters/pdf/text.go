package pdf

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/unicode/norm"
)

// textEncoder converts UTF-8 input to the Windows-1252 byte strings the
// standard PDF fonts expect. The first failure is kept and every later call
// becomes a no-op so layout code can stay linear and check once at the end.
type textEncoder struct {
	enc *encoding.Encoder
	err error
}

func newTextEncoder() *textEncoder {
	return &textEncoder{enc: charmap.Windows1252.NewEncoder()}
}

// encode normalizes line endings and composes characters (NFC) before
// encoding, so "e" + combining acute is accepted as "é".
func (t *textEncoder) encode(field, s string) string {
	if t.err != nil {
		return ""
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	out, err := t.enc.String(norm.NFC.String(s))
	if err != nil {
		t.err = fmt.Errorf("%s contains characters outside Windows-1252: %w", field, err)
		return ""
	}
	return out
}
