package xmltok

import (
	"io"
	"strings"
)

// Attrs is a lazy view over the attribute text of a start element. Each
// call to Next consumes one name="value" pair from the front of the
// remaining text. Attrs is a small value; copy it to iterate more than
// once.
//
// The view is poisoned by its first error: later calls return io.EOF.
type Attrs struct {
	rest string
}

// Raw returns the undecoded remainder of the attribute text.
func (a Attrs) Raw() string {
	return a.rest
}

// Next returns the next attribute name and value. The value decodes
// entity references lazily. Next returns io.EOF when no pairs remain,
// and on every call after the first decode error.
func (a *Attrs) Next() (string, Text, error) {
	rest := strings.TrimLeft(a.rest, whitespace)
	if rest == "" {
		a.rest = ""
		return "", Text{}, io.EOF
	}
	eq := strings.IndexByte(rest, '=')
	if eq < 0 {
		return "", Text{}, a.fail(ErrAttrMissingEq)
	}
	name := strings.Trim(rest[:eq], whitespace)
	if name == "" {
		return "", Text{}, a.fail(ErrAttrInvalidName)
	}
	rest = strings.TrimLeft(rest[eq+1:], whitespace)
	if rest == "" {
		return "", Text{}, a.fail(ErrAttrMissingQuote)
	}
	quote := rest[0]
	if quote != '\'' && quote != '"' {
		return "", Text{}, a.fail(ErrAttrInvalidQuote)
	}
	end := strings.IndexByte(rest[1:], quote)
	if end < 0 {
		return "", Text{}, a.fail(ErrAttrMissingEndQuote)
	}
	a.rest = rest[end+2:]
	return name, Escaped(rest[1 : end+1]), nil
}

// Get returns the value of the first attribute named name. The receiver
// is a copy, so the caller's cursor does not move. A decode error hit
// before a match is returned as-is; ok reports whether a match was
// found.
func (a Attrs) Get(name string) (value Text, ok bool, err error) {
	for {
		key, v, err := a.Next()
		if err == io.EOF {
			return Text{}, false, nil
		}
		if err != nil {
			return Text{}, false, err
		}
		if key == name {
			return v, true, nil
		}
	}
}

// fail poisons the view so every later call to Next returns io.EOF.
func (a *Attrs) fail(err error) error {
	a.rest = ""
	return err
}
