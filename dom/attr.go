package dom

import (
	"sync/atomic"

	"browser/atom"
	"browser/webidl"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type AttrSettingType uint

const (
	FirstSetAttr AttrSettingType = iota
	ReplacedAttr
)

func (t AttrSettingType) String() string {
	if t == FirstSetAttr {
		return "first-set"
	}
	return "replaced"
}

// valueCell holds an attribute's single AttrValue. It is a single-writer
// cell: the owning thread swaps it through the mutation protocol and reads it
// through scoped guards, and a swap while any guard is outstanding is a
// diagnosed caller bug rather than a silent deadlock.
type valueCell struct {
	readers int32
	value   AttrValue
}

func (c *valueCell) swap(v AttrValue) {
	if n := atomic.LoadInt32(&c.readers); n != 0 {
		panic(errors.Errorf("dom: attribute value swapped with %d guard(s) outstanding", n))
	}
	c.value = v
}

// ValueGuard is a scoped read view of an attribute's value. It must be
// released before the next mutation of the same attribute and must not be
// held when the document enters the layout phase.
type ValueGuard struct {
	attr     *Attr
	released bool
}

func (g *ValueGuard) Value() *AttrValue {
	if g.released {
		panic(errors.New("dom: value guard used after release"))
	}
	return &g.attr.cell.value
}

func (g *ValueGuard) Release() {
	if g.released {
		panic(errors.New("dom: value guard released twice"))
	}
	g.released = true
	atomic.AddInt32(&g.attr.cell.readers, -1)
	g.attr.owner.ownerDocument.addGuard(-1)
}

// Attr is https://dom.spec.whatwg.org/#attr restricted to the attribute
// entity itself: identity, the mutable value cell, and the element that owns
// it. The element is the sole owner of the attribute's lifetime.
type Attr struct {
	localName atom.Atom
	name      atom.Atom
	namespace Namespace
	prefix    webidl.DOMString
	cell      valueCell
	owner     *Element
}

// NewAttr binds a new attribute to owner. Identity components are assumed
// well-formed; no validation happens here. A nil owner violates the entity's
// lifetime invariant and panics.
func NewAttr(localName atom.Atom, value AttrValue, name atom.Atom, namespace Namespace, prefix webidl.DOMString, owner *Element) *Attr {
	if owner == nil {
		panic(errors.New("dom: attribute created without an owner element"))
	}
	return &Attr{
		localName: localName,
		name:      name,
		namespace: namespace,
		prefix:    prefix,
		cell:      valueCell{value: value},
		owner:     owner,
	}
}

func (a *Attr) LocalName() atom.Atom {
	return a.localName
}

func (a *Attr) Name() atom.Atom {
	return a.name
}

func (a *Attr) Namespace() Namespace {
	return a.namespace
}

// Borrow returns a scoped read guard over the current value. The guard is not
// reentrant-safe across mutation: release it before the next SetValue on this
// attribute.
func (a *Attr) Borrow() *ValueGuard {
	atomic.AddInt32(&a.cell.readers, 1)
	a.owner.ownerDocument.addGuard(1)
	return &ValueGuard{attr: a}
}

// setValue runs the mutation protocol. For null-namespace attributes a
// replacement is observably a remove-then-add: the owner's BeforeRemoveAttr
// hook sees the pre-mutation state, then the cell is swapped, then
// AfterSetAttr sees the post-mutation state (for first sets too). Namespaced
// attributes trigger neither hook.
func (a *Attr) setValue(setType AttrSettingType, value AttrValue) {
	doc := a.owner.ownerDocument
	if doc.inLayoutPhase() {
		panic(errors.Errorf("dom: attribute %q mutated during the layout phase", a.name.String()))
	}

	namespaceIsNull := a.namespace == NoNamespace

	if setType == ReplacedAttr && namespaceIsNull {
		a.owner.observer().BeforeRemoveAttr(a)
	}

	a.cell.swap(value)
	doc.bumpGeneration()

	if namespaceIsNull {
		a.owner.observer().AfterSetAttr(a)
	}

	logrus.WithFields(logrus.Fields{
		"attr": a.name.String(),
		"type": setType.String(),
	}).Debugf("[ATTR]: %q", value.AsText())
}

// Value returns the current textual form of the attribute.
func (a *Attr) Value() webidl.DOMString {
	g := a.Borrow()
	defer g.Release()
	return g.Value().AsText()
}

// SetValue parses text through the owner's namespace-and-name-aware routing
// and replaces the current value.
func (a *Attr) SetValue(text webidl.DOMString) {
	value := a.owner.ParseAttribute(a.namespace, a.localName, text)
	a.setValue(ReplacedAttr, value)
}

func (a *Attr) TextContent() webidl.DOMString {
	return a.Value()
}

func (a *Attr) SetTextContent(text webidl.DOMString) {
	a.SetValue(text)
}

// GetNamespaceURI reports the namespace URI; a null-namespace attribute has
// no URI at all, not an empty one.
func (a *Attr) GetNamespaceURI() (webidl.DOMString, bool) {
	if a.namespace == NoNamespace {
		return "", false
	}
	return a.namespace.URI(), true
}

func (a *Attr) GetPrefix() (webidl.DOMString, bool) {
	if a.prefix == "" {
		return "", false
	}
	return a.prefix, true
}

func (a *Attr) GetOwnerElement() *Element {
	return a.owner
}

// IsSpecified always reports true: there is no default or inherited attribute
// value in this model.
func (a *Attr) IsSpecified() bool {
	return true
}

// AttrInfo is the devtools projection of an attribute.
type AttrInfo struct {
	Namespace webidl.DOMString
	Name      webidl.DOMString
	Value     webidl.DOMString
}

func (a *Attr) Summarize() AttrInfo {
	return AttrInfo{
		Namespace: a.namespace.URI(),
		Name:      webidl.DOMString(a.name.String()),
		Value:     a.Value(),
	}
}
