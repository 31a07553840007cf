// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package pdftables

import "reflect"

// A Node is one element of a decoded page layout tree: the page itself, text
// boxes, text lines, characters and anything else a decoder produces.
type Node interface {
	// Type is the decoder's type tag for the node, e.g. "page" or "LTChar".
	Type() string
	// BBox returns the node's rectangle; ok is false when the node has none.
	BBox() (r Rect, ok bool)
	// Text returns the node's text; ok is false when the node carries no text.
	Text() (s string, ok bool)
	Children() []Node
}

// Element is a plain in-memory Node.
type Element struct {
	Tag     string
	Box     *[4]float64 // left, bottom, right, top
	Content *string
	Kids    []*Element
}

// NewElement returns an element with a rectangle and text.
func NewElement(tag string, r Rect, text string) *Element {
	return &Element{
		Tag:     tag,
		Box:     &[4]float64{r.Left, r.Bottom, r.Right, r.Top},
		Content: &text,
	}
}

// Add appends children to e and returns e.
func (e *Element) Add(kids ...*Element) *Element {
	e.Kids = append(e.Kids, kids...)
	return e
}

func (e *Element) Type() string { return e.Tag }

func (e *Element) BBox() (Rect, bool) {
	if e.Box == nil {
		return Rect{}, false
	}
	return Rect{Left: e.Box[0], Bottom: e.Box[1], Right: e.Box[2], Top: e.Box[3]}, true
}

func (e *Element) Text() (string, bool) {
	if e.Content == nil {
		return "", false
	}
	return *e.Content, true
}

func (e *Element) Children() []Node {
	nodes := make([]Node, 0, len(e.Kids))
	for _, k := range e.Kids {
		if k != nil {
			nodes = append(nodes, k)
		}
	}
	return nodes
}

// isNil reports whether n is nil or a nil pointer held in a Node.
func isNil(n Node) bool {
	if n == nil {
		return true
	}
	v := reflect.ValueOf(n)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// BoxFromNode converts a layout node to a Box. A node without a rectangle gets the
// zero rectangle and a node without text gets empty text.
func BoxFromNode(n Node) Box {
	r, _ := n.BBox()
	text, _ := n.Text()
	return NewBox(r, ParseKind(n.Type()), text)
}

// Flatten walks the tree under root depth first and returns a box for every node
// whose kind is in kinds (every node when kinds is empty). Children come before
// their parent, so the root is last. The walk uses an explicit stack.
func Flatten(root Node, kinds ...Kind) BoxList {
	type frame struct {
		node     Node
		children []Node
		next     int
	}

	var out BoxList
	if isNil(root) {
		return out
	}
	stack := []*frame{{node: root, children: root.Children()}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if top.next < len(top.children) {
			child := top.children[top.next]
			top.next++
			if !isNil(child) {
				stack = append(stack, &frame{node: child, children: child.Children()})
			}
			continue
		}
		stack = stack[:len(stack)-1]
		b := BoxFromNode(top.node)
		if len(kinds) == 0 || hasKind(kinds, b.Kind()) {
			out = append(out, b)
		}
	}
	return out
}

func hasKind(kinds []Kind, k Kind) bool {
	for _, want := range kinds {
		if want == k {
			return true
		}
	}
	return false
}
