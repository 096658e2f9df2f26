package xmltok

// Event is an allocation-free view of one lexical XML token.
// Every string it exposes is a sub-slice of the document given to
// NewScanner and stays valid as long as that document does.
type Event struct {
	name    string
	content string
	text    Text
	attrs   Attrs
	kind    Kind
}

// Kind reports the event kind.
func (e Event) Kind() Kind {
	return e.kind
}

// Name returns the tag name of a start or end element, or the
// declaration name of a doctype.
func (e Event) Name() string {
	return e.name
}

// Content returns the raw body of a processing instruction or comment,
// or the internal subset of a doctype (empty when the declaration has
// none).
func (e Event) Content() string {
	return e.content
}

// Attrs returns the attribute view of a start element. The returned
// value owns its own cursor; pulling from it does not affect the event.
func (e Event) Attrs() Attrs {
	return e.attrs
}

// Text returns the character data of a CharData event.
func (e Event) Text() Text {
	return e.text
}
