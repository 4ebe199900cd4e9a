package html

import (
	"browser/atom"
	"browser/dom"
	"browser/webidl"
)

// HTMLTableCellElement covers td and th. It routes colspan and rowspan to the
// unsigned-int variant with the spec default of 1; other kinds treat them as
// plain strings.
type HTMLTableCellElement struct {
	*HTMLElement
}

func NewHTMLTableCellElement(od *dom.Document, name string) *HTMLTableCellElement {
	e := &HTMLTableCellElement{HTMLElement: NewHTMLElement(od, name)}
	e.SetObserver(e)
	return e
}

func (e *HTMLTableCellElement) ParseAttributeOverride(namespace dom.Namespace, localName atom.Atom, text webidl.DOMString) (dom.AttrValue, bool) {
	if namespace == dom.NoNamespace {
		switch localName {
		case colspanAttr, rowspanAttr:
			return dom.AttrValueFromUInt(text, 1), true
		}
	}
	return dom.AttrValue{}, false
}
