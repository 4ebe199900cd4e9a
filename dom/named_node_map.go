package dom

import (
	"strings"

	"browser/webidl"
)

func NewNamedNodeMap(oe *Element) *NamedNodeMap {
	return &NamedNodeMap{
		attrs:             map[webidl.DOMString]*Attr{},
		associatedElement: oe,
	}
}

// NamedNodeMap is https://dom.spec.whatwg.org/#namednodemap: an element's
// attribute table, keyed by qualified name, with insertion order kept for
// reflection.
type NamedNodeMap struct {
	attrs             map[webidl.DOMString]*Attr
	order             []webidl.DOMString
	associatedElement *Element
}

func (n *NamedNodeMap) Length() int {
	return len(n.attrs)
}

func (n *NamedNodeMap) GetNamedItem(qn webidl.DOMString) *Attr {
	return n.getAttributeByName(qn)
}

func (n *NamedNodeMap) getAttributeByName(qn webidl.DOMString) *Attr {
	if n.associatedElement.lowercasesNames() {
		qn = webidl.DOMString(strings.ToLower(string(qn)))
	}

	if v, ok := n.attrs[qn]; ok {
		return v
	}

	return nil
}

func (n *NamedNodeMap) getAttributeByNSLocalName(ns Namespace, ln webidl.DOMString) *Attr {
	for _, qn := range n.order {
		v := n.attrs[qn]
		if v.namespace == ns && webidl.DOMString(v.localName.String()) == ln {
			return v
		}
	}

	return nil
}

func (n *NamedNodeMap) GetNamedItemNS(ns Namespace, ln webidl.DOMString) *Attr {
	return n.getAttributeByNSLocalName(ns, ln)
}

// SetNamedItem inserts s, replacing any attribute with the same namespace and
// local name, and returns the attribute it displaced.
func (n *NamedNodeMap) SetNamedItem(s *Attr) *Attr {
	if s == nil {
		return nil
	}

	oldAttr := n.getAttributeByNSLocalName(s.namespace, webidl.DOMString(s.localName.String()))
	if oldAttr == s {
		return s
	}
	if oldAttr != nil {
		n.RemoveNamedItem(webidl.DOMString(oldAttr.name.String()))
	}

	qn := webidl.DOMString(s.name.String())
	n.attrs[qn] = s
	n.order = append(n.order, qn)
	return oldAttr
}

func (n *NamedNodeMap) SetNamedItemNS(s *Attr) *Attr {
	return n.SetNamedItem(s)
}

func (n *NamedNodeMap) RemoveNamedItem(qn webidl.DOMString) *Attr {
	v, ok := n.attrs[qn]
	if !ok {
		return nil
	}
	delete(n.attrs, qn)
	for i, name := range n.order {
		if name == qn {
			n.order = append(n.order[:i], n.order[i+1:]...)
			break
		}
	}
	return v
}

// Names returns the qualified names in insertion order.
func (n *NamedNodeMap) Names() []webidl.DOMString {
	names := make([]webidl.DOMString, len(n.order))
	copy(names, n.order)
	return names
}
