package dom

import (
	"strings"

	"browser/atom"
	"browser/webidl"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Well-known null-namespace attribute names with non-string value routing.
var (
	classAttr    = atom.FromString("class")
	idAttr       = atom.FromString("id")
	tabindexAttr = atom.FromString("tabindex")
)

// Element is the attribute-owning side of
// https://dom.spec.whatwg.org/#interface-element: identity, an attribute
// table, and the hook dispatch that element kinds plug into. Tree structure
// and style computation live elsewhere.
type Element struct {
	localName     atom.Atom
	namespace     Namespace
	prefix        webidl.DOMString
	ownerDocument *Document
	attributes    *NamedNodeMap

	obs AttributeObserver
}

// NewElement creates an element in od. The optional trailing argument is the
// namespace prefix.
func NewElement(od *Document, name string, namespace Namespace, optionals ...string) *Element {
	if od == nil {
		panic(errors.New("dom: element created without an owner document"))
	}
	var prefix string
	if len(optionals) >= 1 {
		prefix = optionals[0]
	}
	e := &Element{
		localName:     atom.FromString(name),
		namespace:     namespace,
		prefix:        webidl.DOMString(prefix),
		ownerDocument: od,
	}
	e.attributes = NewNamedNodeMap(e)
	return e
}

func (e *Element) LocalName() atom.Atom {
	return e.localName
}

func (e *Element) NamespaceURI() Namespace {
	return e.namespace
}

func (e *Element) OwnerDocument() *Document {
	return e.ownerDocument
}

func (e *Element) Attributes() *NamedNodeMap {
	return e.attributes
}

// SetObserver installs the element kind's hook implementation. Element kinds
// call this once, at construction.
func (e *Element) SetObserver(obs AttributeObserver) {
	e.obs = obs
}

func (e *Element) observer() AttributeObserver {
	if e.obs == nil {
		return baseObserver{}
	}
	return e.obs
}

// ParseAttribute routes attribute text to its value variant by namespace and
// local name. The element kind's override runs first; the defaults below
// cover the null-namespace attributes every kind shares. Namespaced
// attributes are always plain strings.
func (e *Element) ParseAttribute(namespace Namespace, localName atom.Atom, text webidl.DOMString) AttrValue {
	if p, ok := e.observer().(AttributeParser); ok {
		if v, ok := p.ParseAttributeOverride(namespace, localName, text); ok {
			return v
		}
	}

	if namespace == NoNamespace {
		switch localName {
		case classAttr:
			return AttrValueFromTokenList(text)
		case idAttr:
			if e.ownerDocument.IsHTML() {
				return AttrValueFromAtom(text)
			}
		case tabindexAttr:
			return AttrValueFromUInt(text, 0)
		}
	}
	return AttrValueFromString(text)
}

// SetAttribute sets a null-namespace attribute by qualified name, creating it
// on first set and replacing its value afterwards.
func (e *Element) SetAttribute(qualifiedName string, value webidl.DOMString) {
	e.assertScriptPhase(qualifiedName)
	if e.lowercasesNames() {
		qualifiedName = strings.ToLower(qualifiedName)
	}
	name := atom.FromString(qualifiedName)
	parsed := e.ParseAttribute(NoNamespace, name, value)

	if existing := e.attributes.GetNamedItem(webidl.DOMString(qualifiedName)); existing != nil {
		existing.setValue(ReplacedAttr, parsed)
		return
	}

	attr := NewAttr(name, parsed, name, NoNamespace, "", e)
	e.attributes.SetNamedItem(attr)
	attr.setValue(FirstSetAttr, parsed)
}

// SetAttributeNS sets a namespaced attribute. The qualified name may carry a
// prefix; the local name is the part after the colon.
func (e *Element) SetAttributeNS(namespace Namespace, qualifiedName string, value webidl.DOMString) {
	e.assertScriptPhase(qualifiedName)
	prefix, local := splitQualifiedName(qualifiedName)
	localName := atom.FromString(local)
	name := atom.FromString(qualifiedName)
	parsed := e.ParseAttribute(namespace, localName, value)

	if existing := e.attributes.GetNamedItemNS(namespace, webidl.DOMString(local)); existing != nil {
		existing.setValue(ReplacedAttr, parsed)
		return
	}

	attr := NewAttr(localName, parsed, name, namespace, webidl.DOMString(prefix), e)
	e.attributes.SetNamedItem(attr)
	attr.setValue(FirstSetAttr, parsed)
}

func (e *Element) GetAttribute(qualifiedName string) webidl.DOMString {
	attr := e.GetAttributeNode(qualifiedName)
	if attr == nil {
		return ""
	}
	return attr.Value()
}

func (e *Element) GetAttributeNS(namespace Namespace, localName string) webidl.DOMString {
	attr := e.attributes.GetNamedItemNS(namespace, webidl.DOMString(localName))
	if attr == nil {
		return ""
	}
	return attr.Value()
}

func (e *Element) GetAttributeNode(qualifiedName string) *Attr {
	if e.lowercasesNames() {
		qualifiedName = strings.ToLower(qualifiedName)
	}
	return e.attributes.GetNamedItem(webidl.DOMString(qualifiedName))
}

func (e *Element) GetAttributeNodeNS(namespace Namespace, localName string) *Attr {
	return e.attributes.GetNamedItemNS(namespace, webidl.DOMString(localName))
}

func (e *Element) HasAttribute(qualifiedName string) bool {
	return e.GetAttributeNode(qualifiedName) != nil
}

// RemoveAttribute detaches a null-namespace attribute, running the owner
// kind's BeforeRemoveAttr hook with the attribute still attached and holding
// its final value. Removing an absent attribute is a no-op.
func (e *Element) RemoveAttribute(qualifiedName string) {
	attr := e.GetAttributeNode(qualifiedName)
	if attr == nil {
		return
	}
	e.removeAttributeNode(attr)
}

func (e *Element) RemoveAttributeNS(namespace Namespace, localName string) {
	attr := e.attributes.GetNamedItemNS(namespace, webidl.DOMString(localName))
	if attr == nil {
		return
	}
	e.removeAttributeNode(attr)
}

func (e *Element) assertScriptPhase(name string) {
	if e.ownerDocument.inLayoutPhase() {
		panic(errors.Errorf("dom: attribute %q mutated during the layout phase", name))
	}
}

func (e *Element) removeAttributeNode(attr *Attr) {
	e.assertScriptPhase(attr.name.String())
	if attr.namespace == NoNamespace {
		e.observer().BeforeRemoveAttr(attr)
	}
	e.attributes.RemoveNamedItem(webidl.DOMString(attr.name.String()))
	e.ownerDocument.bumpGeneration()

	logrus.WithField("attr", attr.name.String()).Debug("[ATTR]: removed")
}

// HTML documents lowercase qualified names on the set/get path for elements
// in the HTML namespace.
func (e *Element) lowercasesNames() bool {
	return e.namespace == HTMLNamespace && e.ownerDocument.IsHTML()
}

func splitQualifiedName(qualifiedName string) (prefix, local string) {
	if i := strings.IndexByte(qualifiedName, ':'); i >= 0 {
		return qualifiedName[:i], qualifiedName[i+1:]
	}
	return "", qualifiedName
}
