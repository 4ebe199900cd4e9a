package dom

import (
	"browser/atom"
	"browser/webidl"

	"github.com/pkg/errors"
)

// LayoutAttr is the layout thread's view of an attribute. Its accessors take
// no lock and extend no lifetime: they are sound only because the document's
// phase barrier guarantees the owning thread is parked, and never mutating,
// for as long as the layout phase is open. Every read checks that the phase
// is open and that the view was captured against the current generation, so
// an out-of-phase or stale view fails loudly instead of observing torn state.
type LayoutAttr struct {
	attr       *Attr
	generation uint64
}

// LayoutView captures a generation-tagged view of the attribute for the
// layout thread. Capture it after the last mutation of the pass; any further
// mutation invalidates it.
func (a *Attr) LayoutView() LayoutAttr {
	return LayoutAttr{
		attr:       a,
		generation: a.owner.ownerDocument.currentGeneration(),
	}
}

func (la LayoutAttr) assertReadable() {
	doc := la.attr.owner.ownerDocument
	if !doc.inLayoutPhase() {
		panic(errors.Errorf("dom: layout view of %q read outside the layout phase", la.attr.name.String()))
	}
	if g := doc.currentGeneration(); g != la.generation {
		panic(errors.Errorf("dom: stale layout view of %q (captured generation %d, document at %d)",
			la.attr.name.String(), la.generation, g))
	}
}

// ValueText returns the textual form of the current value.
func (la LayoutAttr) ValueText() webidl.DOMString {
	la.assertReadable()
	return la.attr.cell.value.AsText()
}

// ValueAtom returns the interned symbol if the current value is the atom
// variant.
func (la LayoutAttr) ValueAtom() (atom.Atom, bool) {
	la.assertReadable()
	return la.attr.cell.value.Atom()
}

// ValueTokens returns the token sequence if the current value is the
// token-list variant. The slice is read-only and valid only within the
// current layout phase.
func (la LayoutAttr) ValueTokens() ([]atom.Atom, bool) {
	la.assertReadable()
	return la.attr.cell.value.Tokens()
}

// LocalNameAtom returns the attribute's interned local name.
func (la LayoutAttr) LocalNameAtom() atom.Atom {
	la.assertReadable()
	return la.attr.localName
}
