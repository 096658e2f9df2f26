package xmltok

import (
	"io"
	"iter"
	"strings"
)

// whitespace is the set of characters the tokenizer treats as blank.
const whitespace = " \t\r\n"

// Scanner walks an XML document and produces one Event per call to Next.
// The zero value is an exhausted scanner; use NewScanner.
//
// A Scanner never resumes after an error: the first lexical error clears
// the remaining input, so every later call returns io.EOF.
type Scanner struct {
	rest       string
	pending    string // tag name awaiting a synthetic end element
	hasPending bool
}

// NewScanner returns a Scanner positioned at the start of doc.
// The document must outlive the Scanner and every Event, Attrs or Text
// derived from it.
func NewScanner(doc string) *Scanner {
	return &Scanner{rest: doc}
}

// Rest returns the unconsumed tail of the document. Comparing its length
// across calls to Next gives the byte offset of each event.
func (s *Scanner) Rest() string {
	return s.rest
}

// Next returns the next event. It returns io.EOF once the document is
// exhausted, and on every call after the first lexical error.
func (s *Scanner) Next() (Event, error) {
	if s.hasPending {
		name := s.pending
		s.pending, s.hasPending = "", false
		return Event{kind: KindEndElement, name: name}, nil
	}
	switch {
	case s.rest == "":
		return Event{}, io.EOF
	case s.consume("<?"):
		content, ok := s.consumeTo("?>")
		if !ok {
			return Event{}, s.fail(ErrUnterminatedPI)
		}
		return Event{kind: KindPI, content: content}, nil
	case s.consume("<!--"):
		content, ok := s.consumeTo("-->")
		if !ok {
			return Event{}, s.fail(ErrUnterminatedComment)
		}
		return Event{kind: KindComment, content: content}, nil
	case s.consume("<![CDATA["):
		content, ok := s.consumeTo("]]>")
		if !ok {
			return Event{}, s.fail(ErrUnterminatedCDATA)
		}
		return Event{kind: KindCharData, text: Verbatim(content)}, nil
	case s.consume("<!DOCTYPE"):
		return s.scanDoctype()
	case s.consume("</"):
		name, ok := s.consumeTo(">")
		if !ok {
			return Event{}, s.fail(ErrUnterminatedClosingTag)
		}
		name = strings.Trim(name, whitespace)
		if name == "" {
			return Event{}, s.fail(ErrInvalidTagName)
		}
		return Event{kind: KindEndElement, name: name}, nil
	case s.consume("<"):
		return s.scanStartTag()
	default:
		return s.scanCharData(), nil
	}
}

// All returns the remaining events as a single-use sequence. Each event
// is yielded with a nil error; a lexical error is yielded once, as the
// final pair, with a zero Event.
func (s *Scanner) All() iter.Seq2[Event, error] {
	return func(yield func(Event, error) bool) {
		for {
			ev, err := s.Next()
			if err == io.EOF {
				return
			}
			if err != nil {
				yield(Event{}, err)
				return
			}
			if !yield(ev, nil) {
				return
			}
		}
	}
}

// scanStartTag parses the remainder of a start tag after the opening '<'
// has been consumed. A trailing '/' records the tag name so the next
// call to Next emits the matching end element.
func (s *Scanner) scanStartTag() (Event, error) {
	inside, ok := s.consumeToUnquoted(">")
	if !ok {
		return Event{}, s.fail(ErrUnterminatedTag)
	}
	name := inside
	var attrText string
	if i := strings.IndexAny(inside, whitespace+"/"); i >= 0 {
		name = inside[:i]
		attrText = strings.Trim(inside[i:], whitespace)
	}
	if name == "" {
		return Event{}, s.fail(ErrInvalidTagName)
	}
	if strings.HasSuffix(attrText, "/") {
		s.pending, s.hasPending = name, true
		attrText = strings.TrimRight(attrText[:len(attrText)-1], whitespace)
	}
	return Event{kind: KindStartElement, name: name, attrs: Attrs{rest: attrText}}, nil
}

// scanDoctype parses a doctype declaration after "<!DOCTYPE" has been
// consumed. The declaration name runs to the first unquoted '[' or '>';
// a '[' introduces the internal subset, which runs to the matching
// unquoted ']' and must be followed by a '>'.
func (s *Scanner) scanDoctype() (Event, error) {
	i := indexUnquoted(s.rest, "[>")
	if i < 0 {
		return Event{}, s.fail(ErrUnterminatedDoctype)
	}
	name := strings.Trim(s.rest[:i], whitespace)
	if s.rest[i] == '>' {
		s.rest = s.rest[i+1:]
		return Event{kind: KindDoctype, name: name}, nil
	}
	tail := s.rest[i+1:]
	j := indexUnquoted(tail, "]")
	if j < 0 {
		return Event{}, s.fail(ErrUnterminatedDoctypeSubset)
	}
	subset := strings.Trim(tail[:j], whitespace)
	tail = tail[j+1:]
	k := strings.IndexByte(tail, '>')
	if k < 0 {
		return Event{}, s.fail(ErrUnterminatedDoctype)
	}
	s.rest = tail[k+1:]
	return Event{kind: KindDoctype, name: name, content: subset}, nil
}

// scanCharData consumes one text run. A run starting with '&' extends
// through the first ';' when one occurs before the next '<' and decodes
// as escaped text; without a ';' the ambiguous run is still escaped and
// the entity error surfaces at decode time. Any other run extends to the
// next '<' or '&' and needs no interpretation.
func (s *Scanner) scanCharData() Event {
	if s.rest[0] == '&' {
		run := s.rest
		if limit := strings.IndexByte(run, '<'); limit >= 0 {
			run = run[:limit]
		}
		if semi := strings.IndexByte(run, ';'); semi >= 0 {
			run = run[:semi+1]
		}
		s.rest = s.rest[len(run):]
		return Event{kind: KindCharData, text: Escaped(run)}
	}
	run := s.rest
	if i := strings.IndexAny(run, "<&"); i >= 0 {
		run = run[:i]
	}
	s.rest = s.rest[len(run):]
	return Event{kind: KindCharData, text: Verbatim(run)}
}

// fail poisons the scanner so every later call to Next returns io.EOF.
func (s *Scanner) fail(err error) error {
	s.rest = ""
	s.pending, s.hasPending = "", false
	return err
}

func (s *Scanner) consume(prefix string) bool {
	if strings.HasPrefix(s.rest, prefix) {
		s.rest = s.rest[len(prefix):]
		return true
	}
	return false
}

func (s *Scanner) consumeTo(pattern string) (string, bool) {
	i := strings.Index(s.rest, pattern)
	if i < 0 {
		return "", false
	}
	out := s.rest[:i]
	s.rest = s.rest[i+len(pattern):]
	return out, true
}

func (s *Scanner) consumeToUnquoted(delims string) (string, bool) {
	i := indexUnquoted(s.rest, delims)
	if i < 0 {
		return "", false
	}
	out := s.rest[:i]
	s.rest = s.rest[i+1:]
	return out, true
}

// indexUnquoted returns the index of the first byte from delims that
// sits outside '...' and "..." runs, or -1 if none occurs. A quote left
// unclosed at the end of s does not hide delimiters: the scan resumes
// past it as if the quote were an ordinary character.
func indexUnquoted(s, delims string) int {
	var quote byte
	quoteStart := -1
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '\'' || c == '"':
			quote, quoteStart = c, i
		case strings.IndexByte(delims, c) >= 0:
			return i
		}
	}
	if quote != 0 {
		if i := indexUnquoted(s[quoteStart+1:], delims); i >= 0 {
			return quoteStart + 1 + i
		}
	}
	return -1
}
