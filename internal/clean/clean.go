// Package clean implements stage A of the pipeline: stripping comments and
// non-content subtrees from a parsed HTML tree while protecting text runs
// from being dropped together with their enclosing tag.
package clean

import (
	"strings"

	"golang.org/x/net/html"
)

// sentinelTag names the wrapper element inserted around text runs. Its name
// is arbitrary; it only needs to not collide with a real tag so later
// removal passes never mistake it for content to drop.
const sentinelTag = "kw"

// Clean mutates root in place: it wraps every non-blank text node in a
// sentinel element, then removes comment nodes and head/script/style
// subtrees, innermost first.
func Clean(root *html.Node) {
	protectText(root)
	removeMatching(root, isComment)
	removeMatching(root, isNonContent)
}

// protectText wraps every non-blank text node under root in a <kw> element
// so that dropping an enclosing tag later can never also drop text that
// conceptually belongs to its parent or successor. Blank (whitespace-only)
// text runs are discarded instead of wrapped.
//
// golang.org/x/net/html represents both a node's immediate inner text and
// the text trailing it (lxml's separate .tail attribute) the same way: as
// ordinary text-node siblings under the same parent. Wrapping every text
// node this pipeline encounters therefore covers both cases from a single
// pass.
func protectText(root *html.Node) {
	var texts []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			texts = append(texts, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)

	for _, t := range texts {
		parent := t.Parent
		if parent == nil {
			continue
		}
		if isBlank(t.Data) {
			parent.RemoveChild(t)
			continue
		}
		wrapper := &html.Node{Type: html.ElementNode, Data: sentinelTag}
		parent.InsertBefore(wrapper, t)
		parent.RemoveChild(t)
		wrapper.AppendChild(t)
	}
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func isComment(n *html.Node) bool {
	return n.Type == html.CommentNode
}

func isNonContent(n *html.Node) bool {
	if n.Type != html.ElementNode {
		return false
	}
	switch n.Data {
	case "head", "script", "style":
		return true
	}
	return false
}

// removeMatching drops every node matching pred from the tree. Matches are
// collected in post-order (innermost first) so that removing an ancestor
// can never invalidate a sibling index we still need to visit; a match
// nested inside another match is detached before its matching ancestor.
func removeMatching(root *html.Node, pred func(*html.Node) bool) {
	var matches []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
		if pred(n) {
			matches = append(matches, n)
		}
	}
	walk(root)

	for _, n := range matches {
		if n.Parent == nil {
			continue // the root has no parent to detach it from
		}
		n.Parent.RemoveChild(n)
	}
}
