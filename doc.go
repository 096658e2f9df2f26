// Package xmltok is a streaming, non-validating XML tokenizer over an
// in-memory document. It turns a string into a lazy sequence of lexical
// events without copying or allocating: every returned value is a
// read-only view into the input, and attribute pairs and entity-escaped
// text decode on demand through their own lazy cursors.
//
// The tokenizer checks only what it needs to emit correct tokens.
// Matching open and close tag names, attribute uniqueness and DTD rules
// are the caller's concern.
package xmltok
