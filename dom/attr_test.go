package dom

import (
	"fmt"
	"testing"

	"browser/webidl"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingObserver logs every hook call with the attribute's value as seen
// at call time.
type recordingObserver struct {
	calls []string
}

func (r *recordingObserver) BeforeRemoveAttr(a *Attr) {
	r.calls = append(r.calls, fmt.Sprintf("before(%s)", a.Value()))
}

func (r *recordingObserver) AfterSetAttr(a *Attr) {
	r.calls = append(r.calls, fmt.Sprintf("after(%s)", a.Value()))
}

func newTestElement(t *testing.T) (*Element, *recordingObserver) {
	t.Helper()
	doc := NewDocument("html")
	e := NewElement(doc, "div", HTMLNamespace)
	rec := &recordingObserver{}
	e.SetObserver(rec)
	return e, rec
}

func TestFirstSetFiresOnlyAfterSetAttr(t *testing.T) {
	e, rec := newTestElement(t)

	e.SetAttribute("class", "a  b")

	assert.Equal(t, []string{"after(a  b)"}, rec.calls)
}

func TestReplaceIsRemoveThenAdd(t *testing.T) {
	e, rec := newTestElement(t)

	e.SetAttribute("class", "a  b")
	rec.calls = nil

	e.SetAttribute("class", "b c")

	// before sees the pre-mutation state, after the post-mutation state
	assert.Equal(t, []string{"before(a  b)", "after(b c)"}, rec.calls)

	attr := e.GetAttributeNode("class")
	require.NotNil(t, attr)
	g := attr.Borrow()
	tokens, ok := g.Value().Tokens()
	require.True(t, ok)
	require.Len(t, tokens, 2)
	assert.Equal(t, "b", tokens[0].String())
	assert.Equal(t, "c", tokens[1].String())
	g.Release()
}

func TestNamespacedAttributesFireNoHooks(t *testing.T) {
	e, rec := newTestElement(t)

	e.SetAttributeNS(XLinkNamespace, "xlink:href", "#first")
	e.SetAttributeNS(XLinkNamespace, "xlink:href", "#second")

	assert.Empty(t, rec.calls)
	assert.Equal(t, webidl.DOMString("#second"), e.GetAttributeNS(XLinkNamespace, "href"))
}

func TestSetValueReflectsImmediately(t *testing.T) {
	e, _ := newTestElement(t)
	e.SetAttribute("title", "one")
	attr := e.GetAttributeNode("title")
	require.NotNil(t, attr)

	for _, next := range []webidl.DOMString{"two", "three", "three", ""} {
		attr.SetValue(next)
		assert.Equal(t, next, attr.Value())
	}
}

func TestGuardHeldAcrossMutationPanics(t *testing.T) {
	e, _ := newTestElement(t)
	e.SetAttribute("title", "one")
	attr := e.GetAttributeNode("title")
	require.NotNil(t, attr)

	g := attr.Borrow()
	assert.Panics(t, func() { attr.SetValue("two") })
	g.Release()

	// releasing the guard makes the attribute writable again
	attr.SetValue("two")
	assert.Equal(t, webidl.DOMString("two"), attr.Value())
}

func TestGuardDoubleReleasePanics(t *testing.T) {
	e, _ := newTestElement(t)
	e.SetAttribute("title", "one")
	g := e.GetAttributeNode("title").Borrow()
	g.Release()
	assert.Panics(t, func() { g.Release() })
	assert.Panics(t, func() { g.Value() })
}

// chainingObserver mutates a second attribute from within a hook; the nested
// set must run to completion, hooks included, before the outer call returns.
type chainingObserver struct {
	element *Element
	calls   []string
}

func (c *chainingObserver) BeforeRemoveAttr(a *Attr) {
	c.calls = append(c.calls, fmt.Sprintf("before(%s=%s)", a.LocalName().String(), a.Value()))
}

func (c *chainingObserver) AfterSetAttr(a *Attr) {
	c.calls = append(c.calls, fmt.Sprintf("after(%s=%s)", a.LocalName().String(), a.Value()))
	if a.LocalName().String() == "title" {
		c.element.SetAttribute("dirty", "yes")
	}
}

func TestHookTriggeredMutationCompletesBeforeOuterReturns(t *testing.T) {
	doc := NewDocument("html")
	e := NewElement(doc, "div", HTMLNamespace)
	chain := &chainingObserver{element: e}
	e.SetObserver(chain)

	e.SetAttribute("title", "t")

	assert.Equal(t, []string{"after(title=t)", "after(dirty=yes)"}, chain.calls)
	assert.Equal(t, webidl.DOMString("yes"), e.GetAttribute("dirty"))
}

func TestScriptSurface(t *testing.T) {
	doc := NewDocument("html")
	e := NewElement(doc, "use", SVGNamespace)
	e.SetAttributeNS(XLinkNamespace, "xlink:href", "#shape")
	attr := e.GetAttributeNodeNS(XLinkNamespace, "href")
	require.NotNil(t, attr)

	assert.Equal(t, "href", attr.LocalName().String())
	assert.Equal(t, "xlink:href", attr.Name().String())
	assert.Equal(t, XLinkNamespace, attr.Namespace())

	uri, ok := attr.GetNamespaceURI()
	assert.True(t, ok)
	assert.Equal(t, webidl.DOMString("http://www.w3.org/1999/xlink"), uri)

	prefix, ok := attr.GetPrefix()
	assert.True(t, ok)
	assert.Equal(t, webidl.DOMString("xlink"), prefix)

	assert.Same(t, e, attr.GetOwnerElement())
	assert.True(t, attr.IsSpecified())
	assert.Equal(t, webidl.DOMString("#shape"), attr.TextContent())

	attr.SetTextContent("#other")
	assert.Equal(t, webidl.DOMString("#other"), attr.Value())
}

func TestNullNamespaceHasNoURI(t *testing.T) {
	e, _ := newTestElement(t)
	e.SetAttribute("title", "x")
	attr := e.GetAttributeNode("title")
	require.NotNil(t, attr)

	uri, ok := attr.GetNamespaceURI()
	assert.False(t, ok)
	assert.Equal(t, webidl.DOMString(""), uri)

	_, ok = attr.GetPrefix()
	assert.False(t, ok)
}

func TestSummarize(t *testing.T) {
	e, _ := newTestElement(t)
	e.SetAttribute("class", "a b")
	info := e.GetAttributeNode("class").Summarize()

	assert.Equal(t, AttrInfo{
		Namespace: "",
		Name:      "class",
		Value:     "a b",
	}, info)
}

func TestNewAttrWithoutOwnerPanics(t *testing.T) {
	assert.Panics(t, func() {
		NewAttr(classAttr, AttrValueFromString(""), classAttr, NoNamespace, "", nil)
	})
}
