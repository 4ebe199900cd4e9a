package main

import (
	"browser/dom"
	"browser/html"

	"github.com/sirupsen/logrus"
)

func main() {
	logrus.SetLevel(logrus.DebugLevel)

	doc := dom.NewDocument("html")
	div := html.NewHTMLElement(doc, "div")
	div.SetAttribute("class", "note  highlight")
	div.SetAttribute("id", "intro")
	div.SetAttribute("class", "note")

	doc.EnterLayoutPhase()
	view := div.GetAttributeNode("class").LayoutView()
	logrus.Infof("class=%q id=%q", view.ValueText(), div.Id.String())
	doc.ExitLayoutPhase()
}
