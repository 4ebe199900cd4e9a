package dom

import (
	"browser/atom"
	"browser/webidl"
)

// Namespace identifies an attribute or element namespace by its interned URI.
// The null namespace is a distinguished value; eligibility for element-kind
// hooks is decided by sentinel equality against it, never by inspecting the
// URI text.
type Namespace atom.Atom

var (
	NoNamespace     = Namespace(atom.FromString(""))
	HTMLNamespace   = Namespace(atom.FromString("http://www.w3.org/1999/xhtml"))
	MathMLNamespace = Namespace(atom.FromString("http://www.w3.org/1998/Math/MathML"))
	SVGNamespace    = Namespace(atom.FromString("http://www.w3.org/2000/svg"))
	XLinkNamespace  = Namespace(atom.FromString("http://www.w3.org/1999/xlink"))
	XMLNamespace    = Namespace(atom.FromString("http://www.w3.org/XML/1998/namespace"))
	XMLNSNamespace  = Namespace(atom.FromString("http://www.w3.org/2000/xmlns/"))
)

func (ns Namespace) IsNull() bool {
	return ns == NoNamespace
}

func (ns Namespace) URI() webidl.DOMString {
	return webidl.DOMString(atom.Atom(ns).String())
}
