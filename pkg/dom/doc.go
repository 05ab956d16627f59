// Package dom provides the mutable node tree that views render into.
//
// A Node is an element, a text node, a comment, or a fragment. Unlike a
// virtual DOM, nodes here have identity and a parent pointer: a view owns
// exactly one root element for its whole lifetime and only ever replaces
// that element's children. The router owns one outlet element and swaps
// views in and out of it.
//
// Fragments behave like DOM DocumentFragments: appending a fragment moves
// its children into the target and leaves the fragment empty.
//
//	root := dom.NewElement("section")
//	root.SetClassName("hero", "hero--dark")
//	root.SetData("trackId", "42") // data-track-id="42"
//	root.ReplaceChildren(dom.NewText("Hello"))
package dom
