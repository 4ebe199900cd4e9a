package html

import (
	"browser/atom"
	"browser/dom"
)

var (
	idAttr      = atom.FromString("id")
	classAttr   = atom.FromString("class")
	colspanAttr = atom.FromString("colspan")
	rowspanAttr = atom.FromString("rowspan")
)

// HTMLElement is the base HTML element kind. Its attribute hooks keep the
// cached Id and ClassList in step with the id and class attributes, so
// lookups keyed on them never reparse attribute text.
type HTMLElement struct {
	*dom.Element

	Id        atom.Atom
	ClassList []atom.Atom
}

func NewHTMLElement(od *dom.Document, name string) *HTMLElement {
	e := &HTMLElement{Element: dom.NewElement(od, name, dom.HTMLNamespace)}
	e.SetObserver(e)
	return e
}

func (e *HTMLElement) BeforeRemoveAttr(a *dom.Attr) {
	switch a.LocalName() {
	case idAttr:
		e.Id = atom.FromString("")
	case classAttr:
		e.ClassList = nil
	}
}

func (e *HTMLElement) AfterSetAttr(a *dom.Attr) {
	g := a.Borrow()
	defer g.Release()

	switch a.LocalName() {
	case idAttr:
		if sym, ok := g.Value().Atom(); ok {
			e.Id = sym
		} else {
			e.Id = atom.FromString(string(g.Value().AsText()))
		}
	case classAttr:
		tokens, _ := g.Value().Tokens()
		e.ClassList = append([]atom.Atom(nil), tokens...)
	}
}
