package dom

import (
	"browser/atom"
	"browser/webidl"
)

// AttributeObserver is the element-kind hook surface of the mutation
// protocol. Dispatch is by the owning element's runtime kind, not by the
// attribute: each kind may override either hook, and kinds that override
// neither get the no-op base. Only null-namespace attributes are eligible;
// hooks must not fail observably.
type AttributeObserver interface {
	// BeforeRemoveAttr runs with the attribute still holding its
	// pre-mutation value, both for removal and for replacement.
	BeforeRemoveAttr(a *Attr)
	// AfterSetAttr runs with the attribute holding its post-mutation
	// value, for first sets and replacements alike.
	AfterSetAttr(a *Attr)
}

// AttributeParser lets an element kind override how particular attribute
// names parse into values. Returning false falls through to the element's
// default routing.
type AttributeParser interface {
	ParseAttributeOverride(namespace Namespace, localName atom.Atom, text webidl.DOMString) (AttrValue, bool)
}

// baseObserver is the default vtable entry: every hook is a no-op.
type baseObserver struct{}

func (baseObserver) BeforeRemoveAttr(*Attr) {}
func (baseObserver) AfterSetAttr(*Attr)     {}
