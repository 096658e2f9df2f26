package xmltok

import "errors"

// The lexical error taxonomy is closed: a Scanner, Attrs or Text cursor
// returns exactly one of these values, once, and then behaves as
// exhausted. Errors carry no position; callers needing offsets can
// compare Scanner.Rest lengths across pulls.
var (
	ErrUnterminatedPI            = errors.New("unterminated processing instruction")
	ErrUnterminatedComment       = errors.New("unterminated comment")
	ErrUnterminatedCDATA         = errors.New("unterminated CDATA section")
	ErrUnterminatedTag           = errors.New("unterminated tag")
	ErrUnterminatedClosingTag    = errors.New("unterminated closing tag")
	ErrUnterminatedDoctype       = errors.New("unterminated doctype declaration")
	ErrUnterminatedDoctypeSubset = errors.New("unterminated doctype internal subset")
	ErrInvalidTagName            = errors.New("invalid tag name")

	ErrAttrMissingEq       = errors.New("attribute missing '='")
	ErrAttrInvalidName     = errors.New("attribute name is empty")
	ErrAttrMissingQuote    = errors.New("attribute value missing opening quote")
	ErrAttrInvalidQuote    = errors.New("attribute value not quoted")
	ErrAttrMissingEndQuote = errors.New("attribute value missing closing quote")

	ErrUnterminatedEntity   = errors.New("unterminated entity reference")
	ErrInvalidNamedEntity   = errors.New("invalid entity reference")
	ErrInvalidNumericEntity = errors.New("invalid character reference")
)
