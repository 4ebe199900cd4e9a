package dom

import (
	"browser/atom"
	"browser/str"
	"browser/webidl"
)

type AttrValueType uint

const (
	StringAttrValue AttrValueType = iota
	TokenListAttrValue
	UIntAttrValue
	AtomAttrValue
)

// AttrValue is the parsed form of an attribute's text. For the token-list and
// unsigned-int variants the original text is kept verbatim as the canonical
// form and the derived structure is produced once, at construction.
type AttrValue struct {
	kind   AttrValueType
	text   webidl.DOMString
	tokens []atom.Atom
	num    uint32
	sym    atom.Atom
}

func AttrValueFromString(text webidl.DOMString) AttrValue {
	return AttrValue{kind: StringAttrValue, text: text}
}

// AttrValueFromTokenList splits text on HTML whitespace and interns each
// non-empty token. The original text, whitespace and duplicates included, is
// preserved as the textual form.
func AttrValueFromTokenList(text webidl.DOMString) AttrValue {
	parts := str.SplitHTMLSpaceChars(string(text))
	tokens := make([]atom.Atom, len(parts))
	for i, p := range parts {
		tokens[i] = atom.FromString(p)
	}
	return AttrValue{kind: TokenListAttrValue, text: text, tokens: tokens}
}

// AttrValueFromUInt parses text as a base-10 unsigned 32-bit integer, falling
// back to def when it does not parse. Parse failure is not an error to the
// caller; the original text is still the textual form.
func AttrValueFromUInt(text webidl.DOMString, def uint32) AttrValue {
	n, err := str.ParseUnsignedInteger(string(text))
	if err != nil {
		n = def
	}
	return AttrValue{kind: UIntAttrValue, text: text, num: n}
}

// AttrValueFromAtom interns text directly; no independent copy of the text is
// retained.
func AttrValueFromAtom(text webidl.DOMString) AttrValue {
	return AttrValue{kind: AtomAttrValue, sym: atom.FromString(string(text))}
}

func (v AttrValue) Kind() AttrValueType {
	return v.kind
}

// Tokens returns the parsed token sequence for the token-list variant. The
// returned slice is read-only.
func (v AttrValue) Tokens() ([]atom.Atom, bool) {
	if v.kind != TokenListAttrValue {
		return nil, false
	}
	return v.tokens, true
}

// UInt returns the parsed integer for the unsigned-int variant.
func (v AttrValue) UInt() (uint32, bool) {
	if v.kind != UIntAttrValue {
		return 0, false
	}
	return v.num, true
}

// Atom returns the interned symbol for the atom variant.
func (v AttrValue) Atom() (atom.Atom, bool) {
	if v.kind != AtomAttrValue {
		return 0, false
	}
	return v.sym, true
}

// AsText is the uniform textual projection of every variant. It never
// reparses and has no side effects.
func (v AttrValue) AsText() webidl.DOMString {
	if v.kind == AtomAttrValue {
		return webidl.DOMString(v.sym.String())
	}
	return v.text
}
