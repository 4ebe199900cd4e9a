package str

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// https://infra.spec.whatwg.org/#ascii-whitespace
const htmlSpaceChars = "\t\n\x0c\r "

// IsHTMLSpace reports whether r is an ASCII whitespace code point as defined
// by the HTML spec.
func IsHTMLSpace(r rune) bool {
	return r < 0x80 && strings.ContainsRune(htmlSpaceChars, r)
}

// SplitHTMLSpaceChars splits s on HTML ASCII whitespace, dropping empty runs.
// Any string is a valid input; the result may be empty.
func SplitHTMLSpaceChars(s string) []string {
	return strings.FieldsFunc(s, IsHTMLSpace)
}

// ParseUnsignedInteger parses s as a base-10 unsigned 32-bit integer.
func ParseUnsignedInteger(s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, errors.Wrapf(err, "parsing %q as an unsigned integer", s)
	}
	return uint32(v), nil
}
