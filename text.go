package xmltok

import (
	"io"
	"strings"
	"unicode/utf8"
)

// textMode distinguishes pass-through text from entity-escaped text.
type textMode byte

const (
	modeVerbatim textMode = iota
	modeEscaped
)

// Text is a lazy character decoder over a borrowed slice of the
// document. Verbatim text yields its characters as-is; escaped text
// resolves entity references on demand. Next advances an internal
// cursor, so keep a copy (Text is a small value) to decode again.
//
// The cursor is poisoned by its first decode error: later calls return
// io.EOF.
type Text struct {
	rest string
	mode textMode
}

// Verbatim returns a Text that yields s without interpretation.
func Verbatim(s string) Text {
	return Text{rest: s}
}

// Escaped returns a Text that resolves entity references in s.
func Escaped(s string) Text {
	return Text{rest: s, mode: modeEscaped}
}

// Raw returns the undecoded remainder.
func (t Text) Raw() string {
	return t.rest
}

// IsVerbatim reports whether t yields its characters without entity
// interpretation.
func (t Text) IsVerbatim() bool {
	return t.mode == modeVerbatim
}

// Next returns the next decoded character. It returns io.EOF when the
// text is exhausted, and on every call after the first decode error.
func (t *Text) Next() (rune, error) {
	if t.rest == "" {
		return 0, io.EOF
	}
	if t.mode == modeEscaped && t.rest[0] == '&' {
		return t.nextEntity()
	}
	r, size := utf8.DecodeRuneInString(t.rest)
	t.rest = t.rest[size:]
	return r, nil
}

// Equal reports whether t decodes to exactly s. A decode error compares
// unequal. The receiver is a copy, so t itself is not consumed.
func (t Text) Equal(s string) bool {
	for _, want := range s {
		got, err := t.Next()
		if err != nil || got != want {
			return false
		}
	}
	_, err := t.Next()
	return err == io.EOF
}

// EqualText reports whether t and o decode to the same character
// sequence. A decode error on either side compares unequal.
func (t Text) EqualText(o Text) bool {
	for {
		a, errA := t.Next()
		b, errB := o.Next()
		if errA == io.EOF || errB == io.EOF {
			return errA == io.EOF && errB == io.EOF
		}
		if errA != nil || errB != nil {
			return false
		}
		if a != b {
			return false
		}
	}
}

// AppendTo appends the decoded characters to dst and returns the
// extended slice. On a decode error the prefix decoded so far is
// returned together with the error.
func (t Text) AppendTo(dst []byte) ([]byte, error) {
	for {
		r, err := t.Next()
		if err == io.EOF {
			return dst, nil
		}
		if err != nil {
			return dst, err
		}
		dst = utf8.AppendRune(dst, r)
	}
}

var namedEntities = map[string]rune{
	"lt":   '<',
	"gt":   '>',
	"amp":  '&',
	"apos": '\'',
	"quot": '"',
}

// nextEntity resolves the entity reference at the cursor. The cursor
// sits on '&'; the reference runs to the next ';'.
func (t *Text) nextEntity() (rune, error) {
	semi := strings.IndexByte(t.rest, ';')
	if semi < 0 {
		return 0, t.fail(ErrUnterminatedEntity)
	}
	ref := t.rest[1:semi]
	t.rest = t.rest[semi+1:]
	if strings.HasPrefix(ref, "#") {
		r, err := parseCharRef(ref[1:])
		if err != nil {
			return 0, t.fail(err)
		}
		return r, nil
	}
	if r, ok := namedEntities[ref]; ok {
		return r, nil
	}
	return 0, t.fail(ErrInvalidNamedEntity)
}

// parseCharRef parses the numeral of a character reference, after the
// leading '#'. A leading 'x' or 'X' selects hexadecimal. The value must
// be a Unicode scalar other than U+0000.
func parseCharRef(ref string) (rune, error) {
	base := uint64(10)
	if len(ref) > 0 && (ref[0] == 'x' || ref[0] == 'X') {
		base = 16
		ref = ref[1:]
	}
	if ref == "" {
		return 0, ErrInvalidNumericEntity
	}
	var value uint64
	for i := 0; i < len(ref); i++ {
		b := ref[i]
		var digit uint64
		switch {
		case b >= '0' && b <= '9':
			digit = uint64(b - '0')
		case base == 16 && b >= 'a' && b <= 'f':
			digit = uint64(b-'a') + 10
		case base == 16 && b >= 'A' && b <= 'F':
			digit = uint64(b-'A') + 10
		default:
			return 0, ErrInvalidNumericEntity
		}
		value = value*base + digit
		if value > utf8.MaxRune {
			return 0, ErrInvalidNumericEntity
		}
	}
	r := rune(value)
	if r == 0 || (r >= 0xD800 && r <= 0xDFFF) {
		return 0, ErrInvalidNumericEntity
	}
	return r, nil
}

// fail poisons the cursor so every later call to Next returns io.EOF.
func (t *Text) fail(err error) error {
	t.rest = ""
	return err
}
